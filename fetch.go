package patches

import (
	"fmt"

	"github.com/jzrake/patches/ndarray"
)

// Edge names one of the four sides of a patch's guard region.
type Edge uint8

const (
	EdgeIL Edge = iota // i-left,  neighbor (i-1, j)
	EdgeIR             // i-right, neighbor (i+1, j)
	EdgeJL             // j-left,  neighbor (i, j-1)
	EdgeJR             // j-right, neighbor (i, j+1)
)

func (e Edge) String() string {
	switch e {
	case EdgeIL:
		return "il"
	case EdgeIR:
		return "ir"
	case EdgeJL:
		return "jl"
	case EdgeJR:
		return "jr"
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// BoundaryFunc synthesizes guard-zone data for an edge whose neighbor
// could not be located. depth is the guard depth requested for that edge;
// the returned array must have shape (depth, nj, K) for EdgeIL/EdgeIR or
// (ni, depth, K) for EdgeJL/EdgeJR. center is the already-validated patch
// data at idx (with idx's own field), supplied so a boundary condition can
// depend on the interior solution. The callback runs synchronously during
// Fetch and must not mutate the Store.
type BoundaryFunc func(idx Index, edge Edge, depth int, center *ndarray.Array) (*ndarray.Array, error)

// FetchGuard is shorthand for Fetch with equal padding on all four edges.
func (s *Store) FetchGuard(idx Index, guard int) (*ndarray.Array, error) {
	return s.Fetch(idx, guard, guard, guard, guard)
}

// Fetch produces a patch-sized array padded with independently-sized guard
// zones on each of the four edges, populated from stored neighbors, from
// prolongation/restriction fallbacks, or from the boundary callback. Only
// cell-centered fields may be fetched. Corners are deliberately left
// unpopulated (zero, per Go's zero-initialized allocation). A downstream
// consumer that needs corner data must reach it through neighbors along
// one axis at a time; this library does not guess an ordering for that.
func (s *Store) Fetch(idx Index, ngil, ngir, ngjl, ngjr int) (*ndarray.Array, error) {
	if ngil < 0 || ngir < 0 || ngjl < 0 || ngjr < 0 {
		return nil, fmt.Errorf("patches: fetch %s: negative guard depth (%d,%d,%d,%d)", idx, ngil, ngir, ngjl, ngjr)
	}
	desc, err := s.header.Descriptor(idx.Field)
	if err != nil {
		return nil, err
	}
	if desc.Location != Cell {
		return nil, fmt.Errorf("patches: fetch %s: location %v: %w", idx, desc.Location, ErrUnsupportedLocation)
	}
	center, ok := s.patches[idx]
	if !ok {
		return nil, fmt.Errorf("patches: fetch %s: %w", idx, ErrPatchMissing)
	}

	ni, nj := s.ni, s.nj
	k := desc.NumFields
	mi := ni + ngil + ngir
	mj := nj + ngjl + ngjr
	out := ndarray.New(mi, mj, k)

	// Interior.
	out.SetSlice(ngil, ngil+ni, ngjl, ngjl+nj, center)

	type edgeSpec struct {
		edge      Edge
		depth     int
		neighbor  Index
		srcI0     int
		srcI1     int
		srcJ0     int
		srcJ1     int
		dstI0     int
		dstI1     int
		dstJ0     int
		dstJ1     int
	}
	specs := []edgeSpec{
		{EdgeIL, ngil, NewIndex(idx.I-1, idx.J, idx.Level, idx.Field),
			ni - ngil, ni, 0, nj,
			0, ngil, ngjl, ngjl + nj},
		{EdgeIR, ngir, NewIndex(idx.I+1, idx.J, idx.Level, idx.Field),
			0, ngir, 0, nj,
			mi - ngir, mi, ngjl, ngjl + nj},
		{EdgeJL, ngjl, NewIndex(idx.I, idx.J-1, idx.Level, idx.Field),
			0, ni, nj - ngjl, nj,
			ngil, ngil + ni, 0, ngjl},
		{EdgeJR, ngjr, NewIndex(idx.I, idx.J+1, idx.Level, idx.Field),
			0, ni, 0, ngjr,
			ngil, ngil + ni, mj - ngjr, mj},
	}

	for _, sp := range specs {
		if sp.depth <= 0 {
			continue
		}
		neighborData := s.locate(sp.neighbor)
		var slab *ndarray.Array
		if neighborData.IsEmpty() {
			if s.boundary == nil {
				return nil, fmt.Errorf("patches: fetch %s: edge %v needs a boundary value: %w", idx, sp.edge, ErrBoundaryUnresolved)
			}
			slab, err = s.boundary(idx, sp.edge, sp.depth, center)
			if err != nil {
				return nil, fmt.Errorf("patches: fetch %s: boundary callback for edge %v: %w", idx, sp.edge, err)
			}
			wantI, wantJ := sp.dstI1-sp.dstI0, sp.dstJ1-sp.dstJ0
			gi, gj, gk := slab.Shape()
			if gi != wantI || gj != wantJ || gk != k {
				return nil, fmt.Errorf("patches: fetch %s: boundary callback for edge %v returned shape (%d,%d,%d), want (%d,%d,%d)",
					idx, sp.edge, gi, gj, gk, wantI, wantJ, k)
			}
		} else {
			slab = neighborData.Slice(sp.srcI0, sp.srcI1, sp.srcJ0, sp.srcJ1)
		}
		out.SetSlice(sp.dstI0, sp.dstI1, sp.dstJ0, sp.dstJ1, slab)
	}

	return out, nil
}
