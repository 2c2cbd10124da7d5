package microfft

import (
	"strconv"

	m "github.com/cwbudde/algo-microfft/internal/math"
)

// Size is one of the fixed transform lengths the package is built for.
type Size int

// Supported transform sizes.
const (
	N2     Size = 2
	N4     Size = 4
	N8     Size = 8
	N16    Size = 16
	N32    Size = 32
	N64    Size = 64
	N128   Size = 128
	N256   Size = 256
	N512   Size = 512
	N1024  Size = 1024
	N2048  Size = 2048
	N4096  Size = 4096
	N8192  Size = 8192
	N16384 Size = 16384
)

// MinSize and MaxSize bound the supported sizes.
const (
	MinSize = N2
	MaxSize = N16384
)

// numSizes is the number of supported sizes, log2(MaxSize).
const numSizes = 14

// Valid reports whether s is a supported size, regardless of whether it was
// compiled in.
func (s Size) Valid() bool {
	return s >= MinSize && s <= MaxSize && m.IsPowerOf2(int(s))
}

// String returns the size as a decimal string, e.g. "1024".
func (s Size) String() string {
	return strconv.Itoa(int(s))
}

// index maps a valid size to its slot in the registry.
func (s Size) index() int {
	return m.Log2(int(s)) - 1
}
