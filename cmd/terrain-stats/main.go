package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"voxel-terrain/internal/config"
	"voxel-terrain/internal/geometry"
	"voxel-terrain/internal/terrain"
)

func main() {
	fs := flag.NewFlagSet("terrain-stats", flag.ExitOnError)
	verbose := fs.Bool("v", false, "log every phase")
	perChunk := fs.Bool("chunks-table", false, "print a per-chunk table")
	cfg, err := config.Resolve(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	builder := geometry.NewBuilder()
	mgr, err := terrain.NewManager(cfg, builder, log)
	if err != nil {
		log.Error("create terrain manager", "error", err)
		os.Exit(1)
	}

	sink := geometry.NewCollector()
	report, err := mgr.Build(sink)
	if err != nil {
		log.Error("build terrain", "error", err)
		os.Exit(1)
	}

	if *perChunk {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "grid\toffset\tsolid\tlocal\tstitched\tattached\terror")
		for _, c := range report.Chunks {
			errText := "-"
			if c.Err != nil {
				errText = c.Err.Error()
			}
			fmt.Fprintf(tw, "%d,%d\t%d,%d\t%d\t%d\t%d\t%t\t%s\n",
				c.GridX, c.GridZ, c.XOffset, c.ZOffset, c.SolidCells, c.LocalFaces, c.StitchedFaces, c.Attached, errText)
		}
		tw.Flush()
	}

	planes, merges := builder.Stats()
	digest := sink.Digest()
	fmt.Printf("chunks=%d solid=%d faces=%d stitched=%d attached=%d planes=%d merges=%d\n",
		len(report.Chunks), report.TotalSolid(), report.TotalFaces(), report.TotalStitched(),
		report.AttachedCount(), planes, merges)
	fmt.Printf("timings: %s\n", mgr.Recorder().TopN(5))
	fmt.Printf("digest: %s\n", hex.EncodeToString(digest[:]))

	if n := len(report.Degraded()); n > 0 {
		log.Warn("some chunks degraded", "count", n)
		os.Exit(1)
	}
}
