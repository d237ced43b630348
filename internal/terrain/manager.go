package terrain

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"voxel-terrain/internal/config"
	"voxel-terrain/internal/meshing"
	"voxel-terrain/internal/profiling"
	"voxel-terrain/internal/scene"
	"voxel-terrain/internal/world"

	"golang.org/x/sync/errgroup"
)

// ErrPhaseOrder is returned when a build phase is started before the
// previous one has completed.
var ErrPhaseOrder = errors.New("terrain: build phase out of order")

type phase int

const (
	phaseNew phase = iota
	phaseGenerated
	phaseLinked
	phaseStitched
	phaseAttached
)

var phaseNames = [...]string{"new", "generated", "linked", "stitched", "attached"}

func (p phase) String() string { return phaseNames[p] }

// Manager owns an N×N grid of chunks and drives them through generation,
// neighbor linking, stitching and attachment, in that order.
type Manager struct {
	size, depth int
	inLine      int
	workers     int

	noise    world.NoiseSource
	scale    float64
	baseline int
	heights  *world.HeightField

	mesher *meshing.CellMesher
	log    *slog.Logger
	prof   *profiling.Recorder

	chunks  [][]*world.Chunk // [gridX][gridZ]
	reports [][]ChunkReport
	phase   phase
}

// Option customizes a Manager.
type Option func(*Manager)

// WithNoise overrides the noise source selected by the configuration.
func WithNoise(n world.NoiseSource) Option {
	return func(m *Manager) { m.noise = n }
}

// WithRecorder records phase timings into rec.
func WithRecorder(rec *profiling.Recorder) Option {
	return func(m *Manager) { m.prof = rec }
}

// WithWorkers overrides the number of chunks processed concurrently.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// NoiseFromConfig builds the noise source named by cfg.
func NoiseFromConfig(cfg *config.Terrain) world.NoiseSource {
	switch cfg.Noise {
	case config.NoiseValue:
		return world.NewValueNoise(cfg.SeedValue())
	default:
		return world.NewSimplex(cfg.SeedValue())
	}
}

// NewManager validates cfg and prepares an empty grid. Geometry is created
// through builder and every face uses the grass material.
func NewManager(cfg *config.Terrain, builder scene.Builder, log *slog.Logger, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	m := &Manager{
		size:     cfg.ChunkSize,
		depth:    cfg.ChunkDepth,
		inLine:   cfg.ChunksInLine,
		workers:  workers,
		noise:    NoiseFromConfig(cfg),
		scale:    cfg.NoiseScale,
		baseline: cfg.HeightBaseline,
		mesher:   meshing.NewCellMesher(builder, scene.Grass),
		log:      log,
		prof:     profiling.NewRecorder(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.heights = world.NewHeightField(m.noise, m.scale, m.baseline)
	return m, nil
}

// ChunksInLine returns the grid edge length in chunks.
func (m *Manager) ChunksInLine() int { return m.inLine }

// Chunk returns the chunk at grid position (i, j), or nil before generation
// or outside the grid.
func (m *Manager) Chunk(i, j int) *world.Chunk {
	if m.chunks == nil || i < 0 || j < 0 || i >= m.inLine || j >= m.inLine {
		return nil
	}
	return m.chunks[i][j]
}

// SurfaceHeightAt returns the terrain height of a world column.
func (m *Manager) SurfaceHeightAt(worldX, worldZ int) int {
	return m.heights.Height(worldX, worldZ)
}

// Recorder returns the phase timing recorder.
func (m *Manager) Recorder() *profiling.Recorder { return m.prof }

// Build runs every phase and hands the chunk meshes to sink.
func (m *Manager) Build(sink scene.Sink) (*Report, error) {
	defer m.prof.Track("terrain.build")()

	if err := m.Generate(); err != nil {
		return nil, err
	}
	if err := m.Link(); err != nil {
		return nil, err
	}
	if err := m.Stitch(); err != nil {
		return nil, err
	}
	if err := m.Attach(sink); err != nil {
		return nil, err
	}
	r := m.Report()
	m.log.Info("terrain built",
		"chunks", len(r.Chunks),
		"solid", r.TotalSolid(),
		"faces", r.TotalFaces(),
		"stitched", r.TotalStitched(),
		"attached", r.AttachedCount(),
	)
	return r, nil
}

func (m *Manager) advance(from, to phase) error {
	if m.phase != from {
		return fmt.Errorf("start %s phase from %s state: %w", to, m.phase, ErrPhaseOrder)
	}
	m.phase = to
	return nil
}

// forEachChunk runs fn for every grid position on up to m.workers goroutines
// and returns once all of them have finished.
func (m *Manager) forEachChunk(fn func(i, j int)) {
	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := 0; i < m.inLine; i++ {
		for j := 0; j < m.inLine; j++ {
			i, j := i, j
			g.Go(func() error {
				fn(i, j)
				return nil
			})
		}
	}
	_ = g.Wait()
}

// Generate creates every chunk and runs its terrain pass and local culling.
// Chunks do not see each other in this phase.
func (m *Manager) Generate() error {
	if err := m.advance(phaseNew, phaseGenerated); err != nil {
		return err
	}
	defer m.prof.Track("terrain.generate")()

	m.chunks = make([][]*world.Chunk, m.inLine)
	m.reports = make([][]ChunkReport, m.inLine)
	for i := range m.chunks {
		m.chunks[i] = make([]*world.Chunk, m.inLine)
		m.reports[i] = make([]ChunkReport, m.inLine)
	}

	m.forEachChunk(func(i, j int) {
		c := world.NewChunk(m.size, m.depth, m.size*i, m.size*j)
		r := &m.reports[i][j]
		r.GridX, r.GridZ = i, j
		r.XOffset, r.ZOffset = c.Offset()

		if err := c.Generate(m.heights, m.mesher); err != nil {
			r.Err = fmt.Errorf("generate: %w", err)
			m.log.Warn("chunk generation failed", "grid_x", i, "grid_z", j, "error", err)
		}
		r.SolidCells = c.SolidCount()
		r.LocalFaces = c.FaceCount()
		m.chunks[i][j] = c
	})
	m.log.Debug("terrain phase done", "phase", phaseGenerated, "chunks", m.inLine*m.inLine)
	return nil
}

// neighborsOf returns the grid neighbors of (i, j). Chunks that failed to
// generate are left out and count as missing.
func (m *Manager) neighborsOf(i, j int) world.Neighbors {
	pick := func(x, z int) *world.Chunk {
		c := m.Chunk(x, z)
		if c == nil || !c.Generated() {
			return nil
		}
		return c
	}
	return world.Neighbors{
		PrevX: pick(i-1, j),
		NextX: pick(i+1, j),
		PrevZ: pick(i, j-1),
		NextZ: pick(i, j+1),
	}
}

// Link associates every chunk with its grid neighbors.
func (m *Manager) Link() error {
	if err := m.advance(phaseGenerated, phaseLinked); err != nil {
		return err
	}
	defer m.prof.Track("terrain.link")()

	for i := 0; i < m.inLine; i++ {
		for j := 0; j < m.inLine; j++ {
			if err := m.chunks[i][j].Link(m.neighborsOf(i, j)); err != nil {
				m.reports[i][j].Err = errors.Join(m.reports[i][j].Err, fmt.Errorf("link: %w", err))
				m.log.Warn("chunk link failed", "grid_x", i, "grid_z", j, "error", err)
			}
		}
	}
	return nil
}

// Stitch reveals boundary faces now that neighbors are linked. Every chunk
// has finished Generate before any chunk starts stitching.
func (m *Manager) Stitch() error {
	if err := m.advance(phaseLinked, phaseStitched); err != nil {
		return err
	}
	defer m.prof.Track("terrain.stitch")()

	m.forEachChunk(func(i, j int) {
		c := m.chunks[i][j]
		if !c.Generated() {
			return
		}
		added, err := c.Stitch(m.neighborsOf(i, j), m.mesher)
		r := &m.reports[i][j]
		if err != nil {
			r.Err = errors.Join(r.Err, fmt.Errorf("stitch: %w", err))
			m.log.Warn("chunk stitch failed", "grid_x", i, "grid_z", j, "error", err)
			return
		}
		r.StitchedFaces = added
	})
	return nil
}

// Attach merges each chunk into one mesh and hands it to sink in grid order.
// Chunks with nothing to render are skipped.
func (m *Manager) Attach(sink scene.Sink) error {
	if err := m.advance(phaseStitched, phaseAttached); err != nil {
		return err
	}
	defer m.prof.Track("terrain.attach")()

	merged := make([][]scene.Geometry, m.inLine)
	for i := range merged {
		merged[i] = make([]scene.Geometry, m.inLine)
	}
	m.forEachChunk(func(i, j int) {
		g, err := m.mesher.MergeChunk(ChunkTag(i, j), m.chunks[i][j])
		switch {
		case errors.Is(err, scene.ErrEmptyMerge):
			m.log.Debug("chunk has nothing to render", "grid_x", i, "grid_z", j)
		case err != nil:
			m.reports[i][j].Err = errors.Join(m.reports[i][j].Err, fmt.Errorf("merge: %w", err))
			m.log.Warn("chunk merge failed", "grid_x", i, "grid_z", j, "error", err)
		default:
			merged[i][j] = g
		}
	})

	for i := 0; i < m.inLine; i++ {
		for j := 0; j < m.inLine; j++ {
			g := merged[i][j]
			if g == nil {
				continue
			}
			if err := sink.Attach(g); err != nil {
				m.reports[i][j].Err = errors.Join(m.reports[i][j].Err, fmt.Errorf("attach: %w", err))
				m.log.Warn("chunk attach failed", "grid_x", i, "grid_z", j, "error", err)
				continue
			}
			m.reports[i][j].Attached = true
		}
	}
	return nil
}

// ChunkTag names the merged mesh of the chunk at grid position (i, j).
func ChunkTag(i, j int) string {
	return fmt.Sprintf("chunk_%d_%d", i, j)
}
