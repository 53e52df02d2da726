package codec

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/jzrake/patches"
)

// fieldEntry is one field's descriptor on the wire: a 2-element
// [num_fields, location] sequence rather than a named object, so it
// marshals through ghodss/yaml (which round-trips via encoding/json) as
// e.g. `[1, "cell"]`.
type fieldEntry struct {
	NumFields int
	Location  string
}

func (f fieldEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{f.NumFields, f.Location})
}

func (f *fieldEntry) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("patches/codec: field entry has %d elements, want 2", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &f.NumFields); err != nil {
		return fmt.Errorf("patches/codec: field entry num_fields: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &f.Location); err != nil {
		return fmt.Errorf("patches/codec: field entry location: %w", err)
	}
	return nil
}

// headerYAML is the on-disk shape of header.yaml: a single top-level
// `fields` key whose value maps each field name to [num_fields, location].
// Field names are not top-level keys of the document.
type headerYAML struct {
	Fields map[string]fieldEntry `json:"fields"`
}

// blockSizeYAML is the on-disk shape of block_size.yaml.
type blockSizeYAML struct {
	Ni int `json:"ni"`
	Nj int `json:"nj"`
}

// MarshalHeader renders a Header to YAML, keyed by canonical field name.
func MarshalHeader(header patches.Header) ([]byte, error) {
	h := headerYAML{Fields: make(map[string]fieldEntry, len(header))}
	for _, f := range header.Fields() {
		d, err := header.Descriptor(f)
		if err != nil {
			return nil, err
		}
		h.Fields[string(f)] = fieldEntry{NumFields: d.NumFields, Location: d.Location.String()}
	}
	return yaml.Marshal(h)
}

// UnmarshalHeader parses YAML produced by MarshalHeader back into a Header.
func UnmarshalHeader(data []byte) (patches.Header, error) {
	var h headerYAML
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("patches/codec: unmarshal header: %w", err)
	}
	descriptors := make(map[patches.Field]patches.FieldDescriptor, len(h.Fields))
	for name, fd := range h.Fields {
		loc, err := ParseLocation(fd.Location)
		if err != nil {
			return nil, err
		}
		descriptors[patches.Field(name)] = patches.FieldDescriptor{NumFields: fd.NumFields, Location: loc}
	}
	return patches.NewHeader(descriptors)
}

// MarshalBlockSize renders (ni, nj) to YAML.
func MarshalBlockSize(ni, nj int) ([]byte, error) {
	return yaml.Marshal(blockSizeYAML{Ni: ni, Nj: nj})
}

// UnmarshalBlockSize parses YAML produced by MarshalBlockSize.
func UnmarshalBlockSize(data []byte) (ni, nj int, err error) {
	var b blockSizeYAML
	if err := yaml.Unmarshal(data, &b); err != nil {
		return 0, 0, fmt.Errorf("patches/codec: unmarshal block size: %w", err)
	}
	return b.Ni, b.Nj, nil
}
