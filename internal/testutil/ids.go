package testutil

import (
	"fmt"
	"sync"
)

// SequenceIDGenerator returns prefix-000001, prefix-000002, ...
//
// The zero-padded counter keeps binary collation equal to creation order.
type SequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceIDGenerator creates a generator. An empty prefix becomes "id".
func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	if prefix == "" {
		prefix = "id"
	}
	return &SequenceIDGenerator{prefix: prefix}
}

// Generate returns the next ID.
func (g *SequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%06d", g.prefix, g.n)
}

// FixedIDGenerator returns the same ID every time. Used for run IDs.
type FixedIDGenerator string

// Generate returns the fixed ID.
func (g FixedIDGenerator) Generate() string {
	return string(g)
}
