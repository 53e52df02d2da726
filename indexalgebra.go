package patches

// floorDiv is integer division rounding toward -infinity, unlike Go's
// built-in / which truncates toward zero. Coarsen needs floored division
// so that negative patch indices coarsen consistently across sign, e.g.
// for spherical-topology wraps.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// euclidMod is the non-negative remainder of a mod b (b > 0), used to pick
// a quadrant from a negative patch index.
func euclidMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Coarsen returns the parent index one level up: floored division of I, J
// by two, Level-1. Calling Coarsen on a level-0 index yields level -1; the
// locator skips a parent at a negative level as "no coarse parent" and
// goes on to the fine-children rule.
func Coarsen(idx Index) Index {
	return Index{
		I:     floorDiv(idx.I, 2),
		J:     floorDiv(idx.J, 2),
		Level: idx.Level - 1,
		Field: idx.Field,
	}
}

// Refine returns the four child indices one level down, in the fixed order
// (0,0), (0,1), (1,0), (1,1), the order Tile expects them in.
func Refine(idx Index) [4]Index {
	return [4]Index{
		{I: idx.I*2 + 0, J: idx.J*2 + 0, Level: idx.Level + 1, Field: idx.Field},
		{I: idx.I*2 + 0, J: idx.J*2 + 1, Level: idx.Level + 1, Field: idx.Field},
		{I: idx.I*2 + 1, J: idx.J*2 + 0, Level: idx.Level + 1, Field: idx.Field},
		{I: idx.I*2 + 1, J: idx.J*2 + 1, Level: idx.Level + 1, Field: idx.Field},
	}
}
