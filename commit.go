package patches

import (
	"fmt"

	"github.com/jzrake/patches/ndarray"
)

// Commit blends data into the stored patch at idx:
//
//	new = data*(1-rkFactor) + old*rkFactor
//
// rkFactor 0 overwrites; rkFactor 1 is a no-op; a value in (0,1) is a
// convex combination suitable for low-storage Runge-Kutta substeps.
// Commit requires idx to already be stored (Insert creates new patches)
// and requires idx's field to be cell-centered.
func (s *Store) Commit(idx Index, data *ndarray.Array, rkFactor float64) error {
	desc, err := s.header.Descriptor(idx.Field)
	if err != nil {
		return err
	}
	if desc.Location != Cell {
		return fmt.Errorf("patches: commit %s: location %v: %w", idx, desc.Location, ErrUnsupportedLocation)
	}
	old, ok := s.patches[idx]
	if !ok {
		return fmt.Errorf("patches: commit %s: %w", idx, ErrPatchMissing)
	}
	ei, ej, ek, err := s.ExpectedShape(idx)
	if err != nil {
		return err
	}
	di, dj, dk := data.Shape()
	if di != ei || dj != ej || dk != ek {
		return fmt.Errorf("patches: commit %s: got shape (%d,%d,%d), want (%d,%d,%d): %w",
			idx, di, dj, dk, ei, ej, ek, ErrShapeMismatch)
	}
	// Compute the blended value fully before swapping it in, so a failure
	// above never leaves the stored patch partially updated.
	blended := ndarray.AddScaled(data, 1-rkFactor, old, rkFactor)
	s.patches[idx] = blended
	return nil
}
