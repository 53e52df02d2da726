package cmd

import (
	"github.com/jzrake/patches"
	"github.com/jzrake/patches/ndarray"
)

// buildFixture synthesizes a levels-deep quadtree covering an nxn grid of
// level-0 patches of size (blockSize, blockSize), with a single
// cell-centered "conserved" field seeded from each patch's own (i, j) so a
// dump/load round trip is easy to eyeball.
func buildFixture(n, blockSize, levels int) *patches.Store {
	header, err := patches.NewHeader(map[patches.Field]patches.FieldDescriptor{
		patches.Conserved: {NumFields: 1, Location: patches.Cell},
	})
	if err != nil {
		panic(err)
	}
	store := patches.NewStore(blockSize, blockSize, header)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			idx := patches.NewIndex(i, j, 0, patches.Conserved)
			data := ndarray.New(blockSize, blockSize, 1).Fill(float64(i*n + j))
			if err := store.Insert(idx, data); err != nil {
				panic(err)
			}
		}
	}

	// Refine the (0, 0) corner levels-1 times, so the fixture holds patches
	// at every level from 0 through levels-1.
	parent := patches.NewIndex(0, 0, 0, patches.Conserved)
	for l := 1; l < levels; l++ {
		children := patches.Refine(parent)
		for _, child := range children {
			data := ndarray.New(blockSize, blockSize, 1).Fill(float64(child.I*10 + child.J))
			if err := store.Insert(child, data); err != nil {
				panic(err)
			}
		}
		parent = children[0]
	}
	return store
}
