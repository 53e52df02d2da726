package codec

import (
	"testing"

	"github.com/jzrake/patches"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRoundTrip(t *testing.T) {
	idx := patches.NewIndex(3, -2, 1, patches.Conserved)
	s := EncodeIndex(idx)
	assert.Equal(t, "1.3--2/conserved", s)

	got, err := ParseIndex(s)
	require.NoError(t, err)
	assert.Equal(t, idx, got)
}

func TestParseIndexRejectsMalformed(t *testing.T) {
	cases := []string{"", "1-2/conserved", "1.2/conserved", "1.2-3", "1.2-3/"}
	for _, c := range cases {
		_, err := ParseIndex(c)
		assert.ErrorIsf(t, err, patches.ErrParse, "input %q", c)
	}
}

func TestLocationRoundTrip(t *testing.T) {
	for _, m := range []patches.MeshLocation{patches.Cell, patches.Vert, patches.FaceI, patches.FaceJ} {
		s := EncodeLocation(m)
		got, err := ParseLocation(s)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestParseLocationRejectsUnknown(t *testing.T) {
	_, err := ParseLocation("centroid")
	assert.ErrorIs(t, err, patches.ErrParse)
}

func TestHeaderRoundTrip(t *testing.T) {
	header, err := patches.NewHeader(map[patches.Field]patches.FieldDescriptor{
		patches.Conserved:  {NumFields: 4, Location: patches.Cell},
		patches.VertCoords: {NumFields: 2, Location: patches.Vert},
	})
	require.NoError(t, err)

	data, err := MarshalHeader(header)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "num_fields", "field entries are [num_fields, location] tuples, not named objects")

	got, err := UnmarshalHeader(data)
	require.NoError(t, err)
	for _, f := range header.Fields() {
		want, _ := header.Descriptor(f)
		gotDesc, err := got.Descriptor(f)
		require.NoError(t, err)
		assert.Equal(t, want, gotDesc)
	}
}

func TestUnmarshalHeaderRejectsUnknownLocation(t *testing.T) {
	bad := []byte("fields:\n  conserved:\n  - 1\n  - bogus\n")
	_, err := UnmarshalHeader(bad)
	assert.ErrorIs(t, err, patches.ErrParse)
}

func TestBlockSizeRoundTrip(t *testing.T) {
	data, err := MarshalBlockSize(8, 12)
	require.NoError(t, err)
	ni, nj, err := UnmarshalBlockSize(data)
	require.NoError(t, err)
	assert.Equal(t, 8, ni)
	assert.Equal(t, 12, nj)
}
