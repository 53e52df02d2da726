// Package ndarray implements the 3D double-precision array backend the
// patch database is built on. It is deliberately small: construction,
// shape query, half-open-range slicing on the first two axes, deep copy,
// and elementwise arithmetic with scalar broadcast are all this library
// needs from an N-dimensional array collaborator.
package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Array is a dense (Ni, Nj, K) array of float64, stored flat with fields
// innermost: element (i, j, k) lives at data[(i*Nj+j)*K+k].
type Array struct {
	Ni, Nj, K int
	data      []float64
}

// New allocates a zero-initialized array of the given shape.
func New(ni, nj, k int) *Array {
	if ni <= 0 || nj <= 0 || k <= 0 {
		panic(fmt.Sprintf("ndarray: invalid shape (%d, %d, %d)", ni, nj, k))
	}
	return &Array{Ni: ni, Nj: nj, K: k, data: make([]float64, ni*nj*k)}
}

// NewFromSlice wraps data as an (ni, nj, k) array without copying. len(data)
// must equal ni*nj*k.
func NewFromSlice(ni, nj, k int, data []float64) *Array {
	if len(data) != ni*nj*k {
		panic(fmt.Sprintf("ndarray: data length %d does not match shape (%d, %d, %d)", len(data), ni, nj, k))
	}
	return &Array{Ni: ni, Nj: nj, K: k, data: data}
}

// Shape returns (Ni, Nj, K).
func (a *Array) Shape() (int, int, int) {
	if a == nil {
		return 0, 0, 0
	}
	return a.Ni, a.Nj, a.K
}

// IsEmpty reports whether a is the sentinel used by the locator to mean
// "no data available". A nil *Array is the sentinel; a zero-shape array
// is never constructed by this package.
func (a *Array) IsEmpty() bool {
	return a == nil
}

func (a *Array) offset(i, j, k int) int {
	return (i*a.Nj+j)*a.K + k
}

// At returns the value at (i, j, k).
func (a *Array) At(i, j, k int) float64 {
	return a.data[a.offset(i, j, k)]
}

// Set assigns the value at (i, j, k).
func (a *Array) Set(i, j, k int, v float64) {
	a.data[a.offset(i, j, k)] = v
}

// Fill sets every element to v.
func (a *Array) Fill(v float64) *Array {
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// Raw exposes the flat backing slice, fields innermost. Callers must not
// retain it past the next mutation of a.
func (a *Array) Raw() []float64 {
	return a.data
}

// Copy returns a deep copy.
func (a *Array) Copy() *Array {
	if a == nil {
		return nil
	}
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{Ni: a.Ni, Nj: a.Nj, K: a.K, data: data}
}

// Slice returns a new array holding a deep copy of the half-open region
// [i0:i1, j0:j1, :]. Bounds must satisfy 0 <= i0 <= i1 <= a.Ni and
// 0 <= j0 <= j1 <= a.Nj.
func (a *Array) Slice(i0, i1, j0, j1 int) *Array {
	if i0 < 0 || j0 < 0 || i1 > a.Ni || j1 > a.Nj || i0 > i1 || j0 > j1 {
		panic(fmt.Sprintf("ndarray: slice [%d:%d, %d:%d] out of bounds for shape (%d, %d, %d)", i0, i1, j0, j1, a.Ni, a.Nj, a.K))
	}
	ni, nj := i1-i0, j1-j0
	out := New(ni, nj, a.K)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			src := a.offset(i0+i, j0+j, 0)
			dst := out.offset(i, j, 0)
			copy(out.data[dst:dst+a.K], a.data[src:src+a.K])
		}
	}
	return out
}

// SetSlice copies src into the region [i0:i1, j0:j1, :] of a, in place.
// src's shape must equal (i1-i0, j1-j0, a.K).
func (a *Array) SetSlice(i0, i1, j0, j1 int, src *Array) {
	ni, nj := i1-i0, j1-j0
	if src.Ni != ni || src.Nj != nj || src.K != a.K {
		panic(fmt.Sprintf("ndarray: SetSlice shape mismatch: dest region (%d, %d, %d), src (%d, %d, %d)", ni, nj, a.K, src.Ni, src.Nj, src.K))
	}
	if i0 < 0 || j0 < 0 || i1 > a.Ni || j1 > a.Nj {
		panic(fmt.Sprintf("ndarray: SetSlice [%d:%d, %d:%d] out of bounds for shape (%d, %d, %d)", i0, i1, j0, j1, a.Ni, a.Nj, a.K))
	}
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			dst := a.offset(i0+i, j0+j, 0)
			s := src.offset(i, j, 0)
			copy(a.data[dst:dst+a.K], src.data[s:s+a.K])
		}
	}
}

// StridedSlice extracts every si-th row starting at i0 (up to but excluding
// i1) and every sj-th column starting at j0 (up to but excluding j1), all
// fields. It is the "step 2" strided range the transfer operators use to
// pick out one quadrant's worth of interleaved cells, e.g. StridedSlice(0,
// mi, 2, 0, mj, 2) for the even-even sub-lattice.
func (a *Array) StridedSlice(i0, i1, si, j0, j1, sj int) *Array {
	ni := (i1 - i0 + si - 1) / si
	nj := (j1 - j0 + sj - 1) / sj
	out := New(ni, nj, a.K)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			src := a.offset(i0+i*si, j0+j*sj, 0)
			dst := out.offset(i, j, 0)
			copy(out.data[dst:dst+a.K], a.data[src:src+a.K])
		}
	}
	return out
}

// SetStridedSlice is the inverse of StridedSlice: it writes src into a at
// every si-th row starting at i0 and every sj-th column starting at j0.
func (a *Array) SetStridedSlice(i0, i1, si, j0, j1, sj int, src *Array) {
	ni := (i1 - i0 + si - 1) / si
	nj := (j1 - j0 + sj - 1) / sj
	if src.Ni != ni || src.Nj != nj || src.K != a.K {
		panic(fmt.Sprintf("ndarray: SetStridedSlice shape mismatch: dest region (%d, %d, %d), src (%d, %d, %d)", ni, nj, a.K, src.Ni, src.Nj, src.K))
	}
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			dst := a.offset(i0+i*si, j0+j*sj, 0)
			s := src.offset(i, j, 0)
			copy(a.data[dst:dst+a.K], src.data[s:s+a.K])
		}
	}
}

// Scale multiplies every element by s, in place, and returns a for chaining.
func (a *Array) Scale(s float64) *Array {
	floats.Scale(s, a.data)
	return a
}

// Add adds b elementwise into a, in place, and returns a for chaining.
// a and b must have identical shape.
func (a *Array) Add(b *Array) *Array {
	a.mustMatch(b)
	floats.Add(a.data, b.data)
	return a
}

// AddScaled returns a new array holding x*sx + y*sy elementwise. x and y
// must have identical shape and are left unmodified.
func AddScaled(x *Array, sx float64, y *Array, sy float64) *Array {
	x.mustMatch(y)
	out := New(x.Ni, x.Nj, x.K)
	copy(out.data, x.data)
	floats.Scale(sx, out.data)
	floats.AddScaled(out.data, sy, y.data)
	return out
}

// Equal reports whether a and b have identical shape and elementwise-equal
// data. Intended for tests.
func (a *Array) Equal(b *Array) bool {
	if a.IsEmpty() != b.IsEmpty() {
		return false
	}
	if a.IsEmpty() {
		return true
	}
	if a.Ni != b.Ni || a.Nj != b.Nj || a.K != b.K {
		return false
	}
	return floats.Equal(a.data, b.data)
}

func (a *Array) mustMatch(b *Array) {
	if a.Ni != b.Ni || a.Nj != b.Nj || a.K != b.K {
		panic(fmt.Sprintf("ndarray: shape mismatch (%d,%d,%d) vs (%d,%d,%d)", a.Ni, a.Nj, a.K, b.Ni, b.Nj, b.K))
	}
}
