package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
)

// Noise source names.
const (
	NoiseSimplex = "simplex"
	NoiseValue   = "value"
)

// heightSpan is how far above the baseline the surface can reach.
const heightSpan = 4

// Terrain holds world generation configuration.
type Terrain struct {
	ChunkSize      int     `json:"chunk_size"`
	ChunkDepth     int     `json:"chunk_depth"`
	ChunksInLine   int     `json:"chunks_in_line"`
	NoiseScale     float64 `json:"noise_scale"`     // noise is sampled at world/NoiseScale
	HeightBaseline int     `json:"height_baseline"` // lowest surface cell
	Seed           string  `json:"seed"`
	Noise          string  `json:"noise"`   // "simplex" or "value"
	Workers        int     `json:"workers"` // 0 = GOMAXPROCS, 1 = sequential
}

// DefaultTerrain returns a Terrain with the stock world settings.
func DefaultTerrain() *Terrain {
	return &Terrain{
		ChunkSize:      16,
		ChunkDepth:     128,
		ChunksInLine:   10,
		NoiseScale:     80,
		HeightBaseline: 10,
		Seed:           "12",
		Noise:          NoiseSimplex,
	}
}

// Load reads a JSON config file on top of the defaults.
func Load(path string) (*Terrain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultTerrain()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded values into cfg, but only for fields that were
// NOT explicitly set via CLI flags.
func Merge(cfg *Terrain, fromFile *Terrain, explicitFlags map[string]bool) {
	if !explicitFlags["chunk-size"] {
		cfg.ChunkSize = fromFile.ChunkSize
	}
	if !explicitFlags["chunk-depth"] {
		cfg.ChunkDepth = fromFile.ChunkDepth
	}
	if !explicitFlags["chunks"] {
		cfg.ChunksInLine = fromFile.ChunksInLine
	}
	if !explicitFlags["noise-scale"] {
		cfg.NoiseScale = fromFile.NoiseScale
	}
	if !explicitFlags["baseline"] {
		cfg.HeightBaseline = fromFile.HeightBaseline
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
}

// Validate checks that the configuration describes a buildable world.
func (t *Terrain) Validate() error {
	var errs []error
	if t.ChunkSize < 1 {
		errs = append(errs, fmt.Errorf("chunk_size must be positive, got %d", t.ChunkSize))
	}
	if t.ChunksInLine < 1 {
		errs = append(errs, fmt.Errorf("chunks_in_line must be positive, got %d", t.ChunksInLine))
	}
	if t.NoiseScale <= 0 {
		errs = append(errs, fmt.Errorf("noise_scale must be positive, got %g", t.NoiseScale))
	}
	if t.HeightBaseline < 0 {
		errs = append(errs, fmt.Errorf("height_baseline must not be negative, got %d", t.HeightBaseline))
	}
	if t.ChunkDepth <= t.HeightBaseline+heightSpan {
		errs = append(errs, fmt.Errorf("chunk_depth %d must exceed height_baseline+%d (%d)",
			t.ChunkDepth, heightSpan, t.HeightBaseline+heightSpan))
	}
	if t.Noise != NoiseSimplex && t.Noise != NoiseValue {
		errs = append(errs, fmt.Errorf("noise must be %q or %q, got %q", NoiseSimplex, NoiseValue, t.Noise))
	}
	if t.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", t.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid terrain config: %w", errors.Join(errs...))
	}
	return nil
}

// SeedValue maps the seed string to a number: decimal seeds are used as-is,
// anything else is hashed.
func (t *Terrain) SeedValue() int64 {
	if v, err := strconv.ParseInt(t.Seed, 10, 64); err == nil {
		return v
	}
	h := fnv.New64a()
	h.Write([]byte(t.Seed))
	return int64(h.Sum64())
}
