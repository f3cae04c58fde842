package domain

import (
	"slices"
	"strings"
	"sync"
)

// Aggregate collects successful checksum results from concurrent writers.
// It keeps at most one entry per path; the first insert wins.
type Aggregate struct {
	mu      sync.RWMutex
	results []ChecksumResult
	index   map[string]int
}

// NewAggregate creates an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		index: make(map[string]int),
	}
}

// NewAggregateOf creates an Aggregate pre-populated with results.
// Duplicate paths are dropped.
func NewAggregateOf(results ...ChecksumResult) *Aggregate {
	a := NewAggregate()
	for _, r := range results {
		a.Add(r)
	}
	return a
}

// Add inserts a result and reports whether it was stored.
func (a *Aggregate) Add(result ChecksumResult) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.index[result.Path]; ok {
		return false
	}
	a.index[result.Path] = len(a.results)
	a.results = append(a.results, result)
	return true
}

// Len returns the number of stored results.
func (a *Aggregate) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.results)
}

// Contains reports whether a result for path is stored.
func (a *Aggregate) Contains(path string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.index[path]
	return ok
}

// Get returns the result stored for path.
func (a *Aggregate) Get(path string) (ChecksumResult, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	i, ok := a.index[path]
	if !ok {
		return ChecksumResult{}, false
	}
	return a.results[i], true
}

// Results returns a copy of the stored results in insertion order.
func (a *Aggregate) Results() []ChecksumResult {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.results)
}

// Sorted returns a copy of the stored results ordered by path.
func (a *Aggregate) Sorted() []ChecksumResult {
	out := a.Results()
	slices.SortFunc(out, func(x, y ChecksumResult) int {
		return strings.Compare(x.Path, y.Path)
	})
	return out
}
