package patches

import (
	"fmt"
	"sort"
)

// FieldDescriptor records how many components a field carries and where
// within a cell it lives.
type FieldDescriptor struct {
	NumFields int
	Location  MeshLocation
}

// Header maps every Field a Store will hold to its descriptor. Lookup of a
// Field not present in a Header is a programmer error, reported as
// ErrUnknownField.
type Header map[Field]FieldDescriptor

// NewHeader validates and returns a Header. Every descriptor must declare
// NumFields >= 1.
func NewHeader(fields map[Field]FieldDescriptor) (Header, error) {
	h := make(Header, len(fields))
	for f, d := range fields {
		if d.NumFields < 1 {
			return nil, fmt.Errorf("patches: field %q has NumFields %d, want >= 1", f, d.NumFields)
		}
		h[f] = d
	}
	return h, nil
}

// Descriptor looks up f, returning ErrUnknownField if it is not registered.
func (h Header) Descriptor(f Field) (FieldDescriptor, error) {
	d, ok := h[f]
	if !ok {
		return FieldDescriptor{}, fmt.Errorf("patches: field %q: %w", f, ErrUnknownField)
	}
	return d, nil
}

// Fields returns the header's fields in sorted order, for deterministic
// iteration and printing.
func (h Header) Fields() []Field {
	out := make([]Field, 0, len(h))
	for f := range h {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExpectedShape returns the (Ni, Nj, K) shape a patch for idx must have,
// per the block size (ni, nj) and idx's field's descriptor.
func (h Header) ExpectedShape(ni, nj int, idx Index) (int, int, int, error) {
	d, err := h.Descriptor(idx.Field)
	if err != nil {
		return 0, 0, 0, err
	}
	ei, ej := d.Location.ShapeIJ(ni, nj)
	return ei, ej, d.NumFields, nil
}
