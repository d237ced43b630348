package geometry

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"voxel-terrain/internal/scene"
)

// Collector is an in-memory scene.Sink. It keeps attached meshes in
// attachment order.
type Collector struct {
	mu     sync.Mutex
	meshes []*Mesh
	byTag  map[string]*Mesh
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{byTag: make(map[string]*Mesh)}
}

// Attach records g. Tags must be unique.
func (c *Collector) Attach(g scene.Geometry) error {
	m, ok := g.(*Mesh)
	if !ok || m == nil {
		return fmt.Errorf("geometry: attach %T: not a *geometry.Mesh", g)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.byTag[m.tag]; dup {
		return fmt.Errorf("geometry: attach %q: tag already attached", m.tag)
	}
	c.meshes = append(c.meshes, m)
	c.byTag[m.tag] = m
	return nil
}

// Meshes returns the attached meshes.
func (c *Collector) Meshes() []*Mesh {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Mesh, len(c.meshes))
	copy(out, c.meshes)
	return out
}

// Get returns the mesh attached under tag, or nil.
func (c *Collector) Get(tag string) *Mesh {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byTag[tag]
}

// Digest hashes the tags and baked vertices of every attached mesh.
func (c *Collector) Digest() [32]byte {
	h := sha256.New()
	var buf [4]byte
	for _, m := range c.Meshes() {
		h.Write([]byte(m.tag))
		for _, v := range m.Vertices() {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
			h.Write(buf[:])
		}
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
