package patches

import (
	"fmt"

	"github.com/jzrake/patches/ndarray"
)

// Quadrant slices a (ni, nj, K) coarse array into one of its four
// (ni/2, nj/2, K) quadrants, selected by (I, J) in {0,1}^2. ni and nj must
// be even; the block size is expected to be even for every use of this
// operator.
func Quadrant(a *ndarray.Array, I, J int) *ndarray.Array {
	if I != 0 && I != 1 || J != 0 && J != 1 {
		panic(fmt.Sprintf("patches: Quadrant: I and J must be 0 or 1, got (%d, %d)", I, J))
	}
	ni, nj, _ := a.Shape()
	hi, hj := ni/2, nj/2
	return a.Slice(I*hi, I*hi+hi, J*hj, J*hj+hj)
}

// Tile assembles a (2ni, 2nj, K) array from four same-shape (ni, nj, K)
// children, laid out in the order Refine produces them:
//
//	children[0] -> [0:ni,  0:nj]     children[1] -> [0:ni,  nj:2nj]
//	children[2] -> [ni:2ni,0:nj]     children[3] -> [ni:2ni,nj:2nj]
func Tile(children [4]*ndarray.Array) *ndarray.Array {
	ni, nj, k := children[0].Shape()
	out := ndarray.New(ni*2, nj*2, k)
	out.SetSlice(0, ni, 0, nj, children[0])
	out.SetSlice(0, ni, nj, nj*2, children[1])
	out.SetSlice(ni, ni*2, 0, nj, children[2])
	out.SetSlice(ni, ni*2, nj, nj*2, children[3])
	return out
}

// Prolong performs piecewise-constant (nearest-neighbor) injection: every
// fine cell (2a+alpha, 2b+beta) receives the value of coarse cell (a, b).
// This is deliberately low order; it is only ever used to synthesize a
// guard-zone fallback, never a physics update. Implemented as four strided
// writes of the whole coarse array into its four fine sub-lattices.
func Prolong(a *ndarray.Array) *ndarray.Array {
	ni, nj, _ := a.Shape()
	mi, mj := ni*2, nj*2
	out := ndarray.New(mi, mj, a.K)
	out.SetStridedSlice(0, mi, 2, 0, mj, 2, a)
	out.SetStridedSlice(0, mi, 2, 1, mj, 2, a)
	out.SetStridedSlice(1, mi, 2, 0, mj, 2, a)
	out.SetStridedSlice(1, mi, 2, 1, mj, 2, a)
	return out
}

// Restrict performs an unweighted average of each 2x2 block of fine cells
// into one coarse cell: A'[a,b,k] = (A[2a,2b,k]+A[2a,2b+1,k]+A[2a+1,2b,k]+A[2a+1,2b+1,k])/4.
// Implemented as four strided reads combined with gonum-backed elementwise
// sums.
func Restrict(a *ndarray.Array) *ndarray.Array {
	mi, mj, _ := a.Shape()
	b00 := a.StridedSlice(0, mi, 2, 0, mj, 2)
	b01 := a.StridedSlice(0, mi, 2, 1, mj, 2)
	b10 := a.StridedSlice(1, mi, 2, 0, mj, 2)
	b11 := a.StridedSlice(1, mi, 2, 1, mj, 2)

	sum := ndarray.AddScaled(b00, 1, b01, 1)
	sum = ndarray.AddScaled(sum, 1, b10, 1)
	sum = ndarray.AddScaled(sum, 1, b11, 1)
	return sum.Scale(0.25)
}
