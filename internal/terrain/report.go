package terrain

import "voxel-terrain/internal/profiling"

// ChunkReport summarizes the build of one chunk.
type ChunkReport struct {
	GridX, GridZ     int
	XOffset, ZOffset int

	SolidCells    int
	LocalFaces    int // faces after local culling
	StitchedFaces int // faces added by stitching
	Attached      bool

	// Err is set when the chunk degraded during the build.
	Err error
}

// Faces returns the total faces of the chunk.
func (c ChunkReport) Faces() int { return c.LocalFaces + c.StitchedFaces }

// Report summarizes a world build.
type Report struct {
	Chunks  []ChunkReport // grid order
	Timings []profiling.Section
}

// Report returns the per-chunk state of the current build.
func (m *Manager) Report() *Report {
	r := &Report{Timings: m.prof.Sections()}
	for i := range m.reports {
		r.Chunks = append(r.Chunks, m.reports[i]...)
	}
	return r
}

func (r *Report) TotalSolid() int {
	n := 0
	for _, c := range r.Chunks {
		n += c.SolidCells
	}
	return n
}

func (r *Report) TotalFaces() int {
	n := 0
	for _, c := range r.Chunks {
		n += c.Faces()
	}
	return n
}

func (r *Report) TotalStitched() int {
	n := 0
	for _, c := range r.Chunks {
		n += c.StitchedFaces
	}
	return n
}

func (r *Report) AttachedCount() int {
	n := 0
	for _, c := range r.Chunks {
		if c.Attached {
			n++
		}
	}
	return n
}

// Degraded returns the chunks that hit an error during the build.
func (r *Report) Degraded() []ChunkReport {
	var out []ChunkReport
	for _, c := range r.Chunks {
		if c.Err != nil {
			out = append(out, c)
		}
	}
	return out
}
