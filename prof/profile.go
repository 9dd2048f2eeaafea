// Package prof collects coarse wall-clock timings for the advice
// pipeline stages (convolution, hashing, assembly) so the benchmark
// tool can report and plot them.
package prof

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Report writes per-label totals to w, first-seen order.
func Report(w io.Writer, entries []Entry) {
	totals := make(map[string]time.Duration)
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, seen := totals[e.Label]; !seen {
			order = append(order, e.Label)
		}
		totals[e.Label] += e.Dur
	}
	for _, label := range order {
		fmt.Fprintf(w, "%-24s %v\n", label, totals[label])
	}
}
