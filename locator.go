package patches

import "github.com/jzrake/patches/ndarray"

// locate resolves a possibly-absent patch through three cascading rules:
// an exact hit, a coarse parent's prolonged quadrant, or four fine
// children's restricted tile. It never mutates the store and returns nil
// (the ndarray "empty" sentinel) on a miss; Fetch decides what a miss
// means. Rule 1 returns the stored array itself, not a copy; callers must
// treat the result as read-only.
func (s *Store) locate(idx Index) *ndarray.Array {
	if a, ok := s.patches[idx]; ok {
		return a
	}

	parent := Coarsen(idx)
	if parent.Level >= 0 {
		if a, ok := s.patches[parent]; ok {
			I := euclidMod(idx.I, 2)
			J := euclidMod(idx.J, 2)
			return Prolong(Quadrant(a, I, J))
		}
	}

	children := Refine(idx)
	allPresent := true
	for _, c := range children {
		if !s.has(c) {
			allPresent = false
			break
		}
	}
	if allPresent {
		var kids [4]*ndarray.Array
		for i, c := range children {
			kids[i] = s.patches[c]
		}
		return Restrict(Tile(kids))
	}

	return nil
}
