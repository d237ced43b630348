package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Recorder accumulates wall time per named section.
type Recorder struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	order  []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer rec.Track("terrain.generate")()
// A nil recorder tracks nothing.
func (r *Recorder) Track(name string) func() {
	if r == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		r.mu.Lock()
		if _, seen := r.totals[name]; !seen {
			r.order = append(r.order, name)
		}
		r.totals[name] += d
		r.mu.Unlock()
	}
}

// Reset clears all totals.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	clear(r.totals)
	r.order = r.order[:0]
	r.mu.Unlock()
}

// Section is one named total.
type Section struct {
	Name     string
	Duration time.Duration
}

// Sections returns totals in first-recorded order.
func (r *Recorder) Sections() []Section {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Section, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Section{Name: name, Duration: r.totals[name]})
	}
	return out
}

// TopN formats the n slowest sections.
// Example: "terrain.generate:4.2ms, terrain.stitch:2.1ms"
func (r *Recorder) TopN(n int) string {
	list := r.Sections()
	sort.SliceStable(list, func(i, j int) bool { return list[i].Duration > list[j].Duration })
	n = max(0, min(n, len(list)))
	parts := make([]string, 0, n)
	for _, s := range list[:n] {
		ms := float64(s.Duration.Microseconds()) / 1000.0
		parts = append(parts, s.Name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms")
	}
	return strings.Join(parts, ", ")
}
