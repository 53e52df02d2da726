package patches

import (
	"fmt"
	"sort"

	"github.com/jzrake/patches/ndarray"
)

// Store is the patch database: an ordered mapping from Index to Array,
// fixed at construction to a block size (Ni, Nj) and a Header describing
// every field it may hold. Store is not safe for concurrent use; callers
// serialize their own access.
type Store struct {
	ni, nj   int
	header   Header
	patches  map[Index]*ndarray.Array
	boundary BoundaryFunc
}

// NewStore constructs an empty Store for the given block size and header.
func NewStore(ni, nj int, header Header) *Store {
	if ni <= 0 || nj <= 0 {
		panic(fmt.Sprintf("patches: invalid block size (%d, %d)", ni, nj))
	}
	return &Store{
		ni:      ni,
		nj:      nj,
		header:  header,
		patches: make(map[Index]*ndarray.Array),
	}
}

// BlockSize returns the (ni, nj) this store was constructed with.
func (s *Store) BlockSize() (int, int) { return s.ni, s.nj }

// Header returns the store's field header.
func (s *Store) Header() Header { return s.header }

// ExpectedShape returns the (Ni, Nj, K) shape a patch at idx must have.
func (s *Store) ExpectedShape(idx Index) (int, int, int, error) {
	return s.header.ExpectedShape(s.ni, s.nj, idx)
}

// Insert validates data's shape against idx's expected shape and stores a
// deep copy, overwriting any existing patch at idx. The source array is
// never retained, so later mutation of data by the caller does not affect
// the stored copy.
func (s *Store) Insert(idx Index, data *ndarray.Array) error {
	ei, ej, ek, err := s.ExpectedShape(idx)
	if err != nil {
		return err
	}
	ai, aj, ak := data.Shape()
	if ai != ei || aj != ej || ak != ek {
		return fmt.Errorf("patches: insert %s: got shape (%d,%d,%d), want (%d,%d,%d): %w",
			idx, ai, aj, ak, ei, ej, ek, ErrShapeMismatch)
	}
	// Stage the copy before publishing so a panic during Copy (out of
	// memory) can never leave the store half-modified.
	staged := data.Copy()
	s.patches[idx] = staged
	return nil
}

// Erase removes any patch at idx. It is a no-op if idx is absent.
func (s *Store) Erase(idx Index) {
	delete(s.patches, idx)
}

// Clear removes every patch.
func (s *Store) Clear() {
	s.patches = make(map[Index]*ndarray.Array)
}

// At borrows the array stored at idx. The borrow is invalidated by any
// subsequent Insert, Erase, Clear, or Commit at the same index; the
// caller must treat it as read-only and short-lived.
func (s *Store) At(idx Index) (*ndarray.Array, error) {
	a, ok := s.patches[idx]
	if !ok {
		return nil, fmt.Errorf("patches: at %s: %w", idx, ErrPatchMissing)
	}
	return a, nil
}

// AtField is At with idx's field component substituted by field.
func (s *Store) AtField(idx Index, field Field) (*ndarray.Array, error) {
	return s.At(idx.WithField(field))
}

// has reports whether idx is stored, without borrowing it.
func (s *Store) has(idx Index) bool {
	_, ok := s.patches[idx]
	return ok
}

// Patch pairs an Index with its stored array, as returned by All.
type Patch struct {
	Index Index
	Array *ndarray.Array
}

// All returns every stored (Index, *Array) pair for the given field, in
// sorted Index order.
func (s *Store) All(field Field) []Patch {
	var out []Patch
	for _, idx := range s.Keys() {
		if idx.Field == field {
			out = append(out, Patch{idx, s.patches[idx]})
		}
	}
	return out
}

// Keys returns every stored Index in sorted lexicographic order. Sorting
// on every call keeps iteration deterministic without imposing an ordered
// container on the map itself.
func (s *Store) Keys() []Index {
	out := make([]Index, 0, len(s.patches))
	for idx := range s.patches {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Count returns the number of stored patches for field.
func (s *Store) Count(field Field) int {
	n := 0
	for idx := range s.patches {
		if idx.Field == field {
			n++
		}
	}
	return n
}

// NumCells returns Count(field) * ni * nj.
func (s *Store) NumCells(field Field) int {
	return s.Count(field) * s.ni * s.nj
}

// Size returns the total number of stored patches, across all fields.
func (s *Store) Size() int {
	return len(s.patches)
}

// SetBoundary installs the boundary callback Fetch invokes when a guard
// region cannot be resolved by any neighbor. It executes synchronously and
// must not mutate the Store.
func (s *Store) SetBoundary(fn BoundaryFunc) {
	s.boundary = fn
}
