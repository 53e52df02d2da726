package patches

import (
	"fmt"

	"github.com/jzrake/patches/ndarray"
)

// Assemble stitches every patch in the half-open rectangle [i0,i1) x [j0,j1)
// at level for field into one array. Every required patch must already be
// present. Output dimensions depend on the field's MeshLocation: vertex-
// and face-centered fields carry an extra boundary row/column, and where
// adjacent patches would both contribute that boundary slab, the last
// patch visited in (i, j) order (j innermost) wins. No reconciliation of
// mismatched duplicate values is attempted.
func (s *Store) Assemble(i0, i1, j0, j1, level int, field Field) (*ndarray.Array, error) {
	if i0 >= i1 || j0 >= j1 {
		return nil, fmt.Errorf("patches: assemble: empty rectangle [%d,%d)x[%d,%d)", i0, i1, j0, j1)
	}
	desc, err := s.header.Descriptor(field)
	if err != nil {
		return nil, err
	}

	ni, nj := s.ni, s.nj
	oi, oj := desc.Location.ShapeIJ((i1-i0)*ni, (j1-j0)*nj)
	// ShapeIJ above adds the vert/face boundary slab once for the whole
	// assembled block, not once per patch.
	out := ndarray.New(oi, oj, desc.NumFields)

	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			idx := NewIndex(i, j, level, field)
			patch, ok := s.patches[idx]
			if !ok {
				return nil, fmt.Errorf("patches: assemble: %s: %w", idx, ErrPatchMissing)
			}
			pi, pj, _ := patch.Shape()
			dstI0 := (i - i0) * ni
			dstJ0 := (j - j0) * nj
			out.SetSlice(dstI0, dstI0+pi, dstJ0, dstJ0+pj, patch)
		}
	}
	return out, nil
}
