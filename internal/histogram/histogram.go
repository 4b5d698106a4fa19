// Package histogram counts how many clauses have each width.
package histogram

import "sort"

// Entry is one width and the number of clauses that had it.
type Entry struct {
	Width int `json:"width" yaml:"width"`
	Count int `json:"count" yaml:"count"`
}

// Histogram maps clause width to occurrence count. The zero value is not
// usable; call New.
type Histogram struct {
	counts map[int]int
	total  int
}

// New returns an empty histogram.
func New() *Histogram {
	return &Histogram{counts: make(map[int]int)}
}

// Record adds one clause of the given width.
func (h *Histogram) Record(width int) {
	h.counts[width]++
	h.total++
}

// Count returns the number of clauses recorded with width.
func (h *Histogram) Count(width int) int {
	return h.counts[width]
}

// Len returns the number of distinct widths.
func (h *Histogram) Len() int {
	return len(h.counts)
}

// Total returns the number of clauses recorded.
func (h *Histogram) Total() int {
	return h.total
}

// Entries returns the histogram sorted by ascending width.
// The slice is freshly allocated and never nil.
func (h *Histogram) Entries() []Entry {
	entries := make([]Entry, 0, len(h.counts))
	for w, c := range h.counts {
		entries = append(entries, Entry{Width: w, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Width < entries[j].Width
	})
	return entries
}
