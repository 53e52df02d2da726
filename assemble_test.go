package patches

import (
	"testing"

	"github.com/jzrake/patches/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assembling a rectangle of cell-centered patches reproduces every
// patch at its expected offset with no overlap.
func TestAssembleCellRectangle(t *testing.T) {
	s := newCellStore(t, 2, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.NoError(t, s.Insert(NewIndex(i, j, 0, Conserved), ndarray.New(2, 2, 1).Fill(float64(10*i+j))))
		}
	}

	got, err := s.Assemble(0, 2, 0, 2, 0, Conserved)
	require.NoError(t, err)
	ni, nj, k := got.Shape()
	assert.Equal(t, 4, ni)
	assert.Equal(t, 4, nj)
	assert.Equal(t, 1, k)

	assert.True(t, ndarray.New(2, 2, 1).Fill(0).Equal(got.Slice(0, 2, 0, 2)))
	assert.True(t, ndarray.New(2, 2, 1).Fill(1).Equal(got.Slice(0, 2, 2, 4)))
	assert.True(t, ndarray.New(2, 2, 1).Fill(10).Equal(got.Slice(2, 4, 0, 2)))
	assert.True(t, ndarray.New(2, 2, 1).Fill(11).Equal(got.Slice(2, 4, 2, 4)))
}

// Overlap resolution: for a vertex-centered field, adjacent patches share a
// boundary row/column; the patch visited last in (i, j) order (j innermost)
// wins that shared slab.
func TestAssembleVertOverlapLastWriteWins(t *testing.T) {
	header, err := NewHeader(map[Field]FieldDescriptor{
		VertCoords: {NumFields: 1, Location: Vert},
	})
	require.NoError(t, err)
	s := NewStore(2, 2, header)
	// Each patch is filled uniformly with a distinct value so the winner of
	// the shared boundary is unambiguous.
	require.NoError(t, s.Insert(NewIndex(0, 0, 0, VertCoords), ndarray.New(3, 3, 1).Fill(0)))
	require.NoError(t, s.Insert(NewIndex(0, 1, 0, VertCoords), ndarray.New(3, 3, 1).Fill(1)))
	require.NoError(t, s.Insert(NewIndex(1, 0, 0, VertCoords), ndarray.New(3, 3, 1).Fill(2)))
	require.NoError(t, s.Insert(NewIndex(1, 1, 0, VertCoords), ndarray.New(3, 3, 1).Fill(3)))

	got, err := s.Assemble(0, 2, 0, 2, 0, VertCoords)
	require.NoError(t, err)
	ni, nj, _ := got.Shape()
	assert.Equal(t, 5, ni)
	assert.Equal(t, 5, nj)

	// (i,j)=(1,1) is last in iteration order and its 3x3 patch spans rows
	// [2:5) and cols [2:5), so it owns the entire shared corner/edge region.
	assert.Equal(t, 3.0, got.At(2, 2, 0))
	assert.Equal(t, 3.0, got.At(4, 4, 0))

	// The row shared between (0,0) and (1,0) at row index 2 is won by
	// (1,0) since i=1 is visited after i=0.
	assert.Equal(t, 2.0, got.At(2, 0, 0))

	// The column shared between (0,0) and (0,1) at col index 2 is won by
	// (0,1) since, for i=0, j=1 is visited after j=0 (j innermost).
	assert.Equal(t, 1.0, got.At(0, 2, 0))

	// A corner untouched by any higher-priority patch keeps the
	// lowest-priority (0,0) contribution.
	assert.Equal(t, 0.0, got.At(0, 0, 0))
}

func TestAssembleRejectsEmptyRectangle(t *testing.T) {
	s := newCellStore(t, 2, 2)
	_, err := s.Assemble(1, 1, 0, 2, 0, Conserved)
	assert.Error(t, err)
}

func TestAssembleReportsMissingPatch(t *testing.T) {
	s := newCellStore(t, 2, 2)
	require.NoError(t, s.Insert(NewIndex(0, 0, 0, Conserved), ndarray.New(2, 2, 1)))
	_, err := s.Assemble(0, 2, 0, 1, 0, Conserved)
	assert.ErrorIs(t, err, ErrPatchMissing)
}
