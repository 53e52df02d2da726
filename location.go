package patches

import "fmt"

// MeshLocation fixes where within a cell a field's data lives, and thereby
// the array shape a patch of that field is expected to have.
type MeshLocation uint8

const (
	Cell MeshLocation = iota
	Vert
	FaceI
	FaceJ
)

var meshLocationNames = map[MeshLocation]string{
	Cell:  "cell",
	Vert:  "vert",
	FaceI: "face_i",
	FaceJ: "face_j",
}

// String returns the canonical spelling used by the codec package.
func (m MeshLocation) String() string {
	if name, ok := meshLocationNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MeshLocation(%d)", uint8(m))
}

// ShapeIJ returns the expected (Ni, Nj) for a block of size (ni, nj) at
// this location: cell-centered fields keep (ni, nj), vertex-centered
// fields gain a row and column, and face-centered fields gain one or the
// other depending on orientation.
func (m MeshLocation) ShapeIJ(ni, nj int) (int, int) {
	switch m {
	case Cell:
		return ni, nj
	case Vert:
		return ni + 1, nj + 1
	case FaceI:
		return ni + 1, nj
	case FaceJ:
		return ni, nj + 1
	default:
		panic(fmt.Sprintf("patches: unknown mesh location %v", m))
	}
}
