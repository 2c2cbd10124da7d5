package kernels

import (
	"sync"

	m "github.com/cwbudde/algo-microfft/internal/math"
)

// TwiddleTable is the twiddle table of one transform size, computed on first
// use and shared read-only afterwards. Sizes that are never transformed never
// pay for their table.
type TwiddleTable struct {
	n    int
	once sync.Once
	data []complex64
}

// NewTwiddleTable returns a lazily computed table for a size-n transform.
// The table holds W_n^k for k = 0..n/2-1.
func NewTwiddleTable(n int) *TwiddleTable {
	return &TwiddleTable{n: n}
}

// Size returns the transform size the table was built for.
func (t *TwiddleTable) Size() int {
	return t.n
}

// Get returns the table, computing it on the first call. Safe for concurrent
// use; the returned slice must not be modified.
func (t *TwiddleTable) Get() []complex64 {
	t.once.Do(func() {
		t.data = m.ComputeTwiddleTable(t.n)
	})

	return t.data
}
