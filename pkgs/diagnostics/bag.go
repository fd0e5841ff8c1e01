package diagnostics

import (
	"sort"
	"sync"
)

// Bag collects diagnostics for a single source file
type Bag struct {
	diagnostics []*Diagnostic
	filename    string
	mu          sync.Mutex
	errorCount  int
	hintCount   int
}

// NewBag creates a new diagnostic bag for a file
func NewBag(filename string) *Bag {
	return &Bag{filename: filename}
}

// Filename returns the file the bag reports against
func (b *Bag) Filename() string {
	return b.filename
}

// Add adds a diagnostic to the bag
func (b *Bag) Add(diag *Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, diag)

	switch diag.Severity {
	case Error:
		b.errorCount++
	case Hint:
		b.hintCount++
	}
}

// HasErrors returns true if there are any errors
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

// ErrorCount returns the number of errors
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// HintCount returns the number of hints
func (b *Bag) HintCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hintCount
}

// Diagnostics returns a copy of the diagnostics ordered by source offset.
// Diagnostics at the same offset keep insertion order.
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position.Offset < out[j].Position.Offset
	})
	return out
}
