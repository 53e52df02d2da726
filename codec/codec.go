// Package codec provides the canonical text encoding for patch indices and
// the YAML encoding for a database's header.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jzrake/patches"
)

// EncodeIndex returns the canonical string form of idx: "<level>.<i>-<j>/<field>",
// identical to Index.String().
func EncodeIndex(idx patches.Index) string {
	return idx.String()
}

// ParseIndex parses the canonical string form produced by EncodeIndex.
func ParseIndex(s string) (patches.Index, error) {
	levelPart, rest, ok := strings.Cut(s, ".")
	if !ok {
		return patches.Index{}, fmt.Errorf("patches/codec: %q: missing '.': %w", s, patches.ErrParse)
	}
	ijPart, fieldPart, ok := strings.Cut(rest, "/")
	if !ok {
		return patches.Index{}, fmt.Errorf("patches/codec: %q: missing '/': %w", s, patches.ErrParse)
	}
	// i may itself be negative, so the separating '-' is searched for
	// after the first character.
	sep := -1
	if len(ijPart) > 1 {
		if k := strings.Index(ijPart[1:], "-"); k >= 0 {
			sep = k + 1
		}
	}
	if sep < 0 {
		return patches.Index{}, fmt.Errorf("patches/codec: %q: missing '-': %w", s, patches.ErrParse)
	}
	iPart, jPart := ijPart[:sep], ijPart[sep+1:]

	level, err := strconv.Atoi(levelPart)
	if err != nil {
		return patches.Index{}, fmt.Errorf("patches/codec: %q: bad level: %w", s, patches.ErrParse)
	}
	i, err := strconv.Atoi(iPart)
	if err != nil {
		return patches.Index{}, fmt.Errorf("patches/codec: %q: bad i: %w", s, patches.ErrParse)
	}
	j, err := strconv.Atoi(jPart)
	if err != nil {
		return patches.Index{}, fmt.Errorf("patches/codec: %q: bad j: %w", s, patches.ErrParse)
	}
	if fieldPart == "" {
		return patches.Index{}, fmt.Errorf("patches/codec: %q: empty field: %w", s, patches.ErrParse)
	}
	return patches.NewIndex(i, j, level, patches.Field(fieldPart)), nil
}

// EncodeLocation returns m's canonical spelling, identical to
// MeshLocation.String().
func EncodeLocation(m patches.MeshLocation) string {
	return m.String()
}

// ParseLocation parses one of "cell", "vert", "face_i", "face_j".
func ParseLocation(s string) (patches.MeshLocation, error) {
	switch s {
	case "cell":
		return patches.Cell, nil
	case "vert":
		return patches.Vert, nil
	case "face_i":
		return patches.FaceI, nil
	case "face_j":
		return patches.FaceJ, nil
	default:
		return 0, fmt.Errorf("patches/codec: %q: unknown mesh location: %w", s, patches.ErrParse)
	}
}
