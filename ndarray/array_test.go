package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray(t *testing.T) {
	// Construction and shape
	{
		a := New(2, 3, 1)
		ni, nj, k := a.Shape()
		assert.Equal(t, 2, ni)
		assert.Equal(t, 3, nj)
		assert.Equal(t, 1, k)
		assert.False(t, a.IsEmpty())

		var nilArray *Array
		assert.True(t, nilArray.IsEmpty())
	}
	// Set/At round trip and Fill
	{
		a := New(2, 2, 1)
		a.Set(0, 0, 0, 1)
		a.Set(0, 1, 0, 2)
		a.Set(1, 0, 0, 3)
		a.Set(1, 1, 0, 4)
		assert.Equal(t, 1.0, a.At(0, 0, 0))
		assert.Equal(t, 4.0, a.At(1, 1, 0))

		a.Fill(9)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				assert.Equal(t, 9.0, a.At(i, j, 0))
			}
		}
	}
	// Copy is deep
	{
		a := New(1, 1, 1)
		a.Set(0, 0, 0, 5)
		b := a.Copy()
		a.Set(0, 0, 0, 6)
		assert.Equal(t, 5.0, b.At(0, 0, 0))
	}
	// Slice / SetSlice
	{
		a := NewFromSlice(2, 2, 1, []float64{
			10, 1,
			20, 2,
		})
		il := a.Slice(0, 1, 0, 2)
		assert.Equal(t, 1, il.Ni)
		assert.Equal(t, 2, il.Nj)
		assert.Equal(t, 10.0, il.At(0, 0, 0))
		assert.Equal(t, 1.0, il.At(0, 1, 0))

		dest := New(2, 2, 1)
		dest.SetSlice(0, 1, 0, 2, il)
		assert.Equal(t, 10.0, dest.At(0, 0, 0))
		assert.Equal(t, 1.0, dest.At(0, 1, 0))
		assert.Equal(t, 0.0, dest.At(1, 0, 0))
	}
	// Scale / Add / AddScaled
	{
		a := New(1, 1, 1).Fill(2)
		a.Scale(3)
		assert.Equal(t, 6.0, a.At(0, 0, 0))

		b := New(1, 1, 1).Fill(1)
		a.Add(b)
		assert.Equal(t, 7.0, a.At(0, 0, 0))

		x := New(1, 1, 1).Fill(8)
		y := New(1, 1, 1).Fill(2)
		r := AddScaled(x, 0.75, y, 0.25)
		assert.Equal(t, 6.5, r.At(0, 0, 0))
	}
	// Equal
	{
		a := New(1, 1, 1).Fill(1)
		b := New(1, 1, 1).Fill(1)
		c := New(1, 1, 1).Fill(2)
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))

		var e1, e2 *Array
		assert.True(t, e1.Equal(e2))
		assert.False(t, e1.Equal(a))
	}
}
