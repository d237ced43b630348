package config

import (
	"flag"
	"fmt"
)

// BindFlags registers the terrain settings on fs, using cfg's values as
// defaults and writing parsed values back into cfg.
func BindFlags(fs *flag.FlagSet, cfg *Terrain) {
	fs.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "chunk edge length in cells")
	fs.IntVar(&cfg.ChunkDepth, "chunk-depth", cfg.ChunkDepth, "chunk height in cells")
	fs.IntVar(&cfg.ChunksInLine, "chunks", cfg.ChunksInLine, "chunks per grid edge")
	fs.Float64Var(&cfg.NoiseScale, "noise-scale", cfg.NoiseScale, "noise sampling divisor")
	fs.IntVar(&cfg.HeightBaseline, "baseline", cfg.HeightBaseline, "lowest surface height")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "world seed")
	fs.StringVar(&cfg.Noise, "noise", cfg.Noise, `noise source ("simplex" or "value")`)
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "chunks generated concurrently (0 = all CPUs)")
}

// Resolve parses args into a terrain config. When the "config" flag names a
// file, its values apply to every setting not given on the command line.
func Resolve(fs *flag.FlagSet, args []string) (*Terrain, error) {
	cfg := DefaultTerrain()
	BindFlags(fs, cfg)
	path := fs.String("config", "", "JSON terrain config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path != "" {
		fromFile, err := Load(*path)
		if err != nil {
			return nil, err
		}
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("terrain config: %w", err)
	}
	return cfg, nil
}
