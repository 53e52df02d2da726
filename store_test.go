package patches

import (
	"testing"

	"github.com/jzrake/patches/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorePanicsOnInvalidBlockSize(t *testing.T) {
	header, err := NewHeader(map[Field]FieldDescriptor{Conserved: {NumFields: 1, Location: Cell}})
	require.NoError(t, err)
	assert.Panics(t, func() { NewStore(0, 4, header) })
	assert.Panics(t, func() { NewStore(4, -1, header) })
}

// Insert copies its input; mutating the caller's array afterward does
// not affect what is stored.
func TestInsertCopiesInput(t *testing.T) {
	s := newCellStore(t, 2, 2)
	idx := NewIndex(0, 0, 0, Conserved)
	a := ndarray.New(2, 2, 1).Fill(1)
	require.NoError(t, s.Insert(idx, a))
	a.Set(0, 0, 0, 99)

	got, err := s.At(idx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.At(0, 0, 0))
}

// Insert overwrites any existing patch at the same index.
func TestInsertOverwrites(t *testing.T) {
	s := newCellStore(t, 2, 2)
	idx := NewIndex(0, 0, 0, Conserved)
	require.NoError(t, s.Insert(idx, ndarray.New(2, 2, 1).Fill(1)))
	require.NoError(t, s.Insert(idx, ndarray.New(2, 2, 1).Fill(2)))

	got, err := s.At(idx)
	require.NoError(t, err)
	assert.True(t, ndarray.New(2, 2, 1).Fill(2).Equal(got))
	assert.Equal(t, 1, s.Size())
}

// a shape-mismatched Insert leaves the store unchanged.
func TestInsertShapeMismatchLeavesStoreUnchanged(t *testing.T) {
	s := newCellStore(t, 2, 2)
	idx := NewIndex(0, 0, 0, Conserved)
	require.NoError(t, s.Insert(idx, ndarray.New(2, 2, 1).Fill(1)))

	err := s.Insert(idx, ndarray.New(3, 2, 1))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	got, err := s.At(idx)
	require.NoError(t, err)
	assert.True(t, ndarray.New(2, 2, 1).Fill(1).Equal(got))
	assert.Equal(t, 1, s.Size())
}

func TestInsertUnknownFieldRejected(t *testing.T) {
	s := newCellStore(t, 2, 2)
	idx := NewIndex(0, 0, 0, Primitive)
	err := s.Insert(idx, ndarray.New(2, 2, 1))
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, 0, s.Size())
}

func TestEraseAndClear(t *testing.T) {
	s := newCellStore(t, 2, 2)
	idx0 := NewIndex(0, 0, 0, Conserved)
	idx1 := NewIndex(1, 0, 0, Conserved)
	require.NoError(t, s.Insert(idx0, ndarray.New(2, 2, 1)))
	require.NoError(t, s.Insert(idx1, ndarray.New(2, 2, 1)))

	s.Erase(idx0)
	assert.Equal(t, 1, s.Size())
	_, err := s.At(idx0)
	assert.ErrorIs(t, err, ErrPatchMissing)

	s.Erase(NewIndex(5, 5, 5, Conserved)) // no-op on absent index
	assert.Equal(t, 1, s.Size())

	s.Clear()
	assert.Equal(t, 0, s.Size())
}

// At returns exactly what was inserted, and AtField substitutes the
// field component of idx.
func TestAtFieldSubstitutesField(t *testing.T) {
	header, err := NewHeader(map[Field]FieldDescriptor{
		Conserved: {NumFields: 1, Location: Cell},
		Primitive: {NumFields: 1, Location: Cell},
	})
	require.NoError(t, err)
	s := NewStore(2, 2, header)
	idxC := NewIndex(0, 0, 0, Conserved)
	idxP := NewIndex(0, 0, 0, Primitive)
	require.NoError(t, s.Insert(idxC, ndarray.New(2, 2, 1).Fill(1)))
	require.NoError(t, s.Insert(idxP, ndarray.New(2, 2, 1).Fill(2)))

	got, err := s.AtField(idxC, Primitive)
	require.NoError(t, err)
	assert.True(t, ndarray.New(2, 2, 1).Fill(2).Equal(got))
}

func TestKeysSortedAndAllFiltersByField(t *testing.T) {
	header, err := NewHeader(map[Field]FieldDescriptor{
		Conserved: {NumFields: 1, Location: Cell},
		Primitive: {NumFields: 1, Location: Cell},
	})
	require.NoError(t, err)
	s := NewStore(2, 2, header)
	require.NoError(t, s.Insert(NewIndex(1, 0, 0, Conserved), ndarray.New(2, 2, 1)))
	require.NoError(t, s.Insert(NewIndex(0, 0, 0, Conserved), ndarray.New(2, 2, 1)))
	require.NoError(t, s.Insert(NewIndex(0, 0, 0, Primitive), ndarray.New(2, 2, 1)))

	keys := s.Keys()
	require.Len(t, keys, 3)
	for i := 1; i < len(keys); i++ {
		assert.True(t, keys[i-1].Less(keys[i]) || keys[i-1] == keys[i])
	}

	cons := s.All(Conserved)
	require.Len(t, cons, 2)
	assert.Equal(t, NewIndex(0, 0, 0, Conserved), cons[0].Index)
	assert.Equal(t, NewIndex(1, 0, 0, Conserved), cons[1].Index)

	assert.Equal(t, 2, s.Count(Conserved))
	assert.Equal(t, 1, s.Count(Primitive))
	assert.Equal(t, 2*2*2, s.NumCells(Conserved))
	assert.Equal(t, 3, s.Size())
}

func TestExpectedShapeVertAddsBoundaryRow(t *testing.T) {
	header, err := NewHeader(map[Field]FieldDescriptor{
		VertCoords: {NumFields: 2, Location: Vert},
	})
	require.NoError(t, err)
	s := NewStore(4, 3, header)
	ni, nj, k, err := s.ExpectedShape(NewIndex(0, 0, 0, VertCoords))
	require.NoError(t, err)
	assert.Equal(t, 5, ni)
	assert.Equal(t, 4, nj)
	assert.Equal(t, 2, k)
}
