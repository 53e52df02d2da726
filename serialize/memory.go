package serialize

import (
	"fmt"

	"github.com/jzrake/patches"
	"github.com/jzrake/patches/ndarray"
)

// Memory is an in-memory Serializer, used by the round-trip test and by
// tooling that wants dump/load semantics without touching a filesystem.
type Memory struct {
	ni, nj  int
	header  patches.Header
	patches map[patches.Index]*ndarray.Array
}

// NewMemory returns an empty Memory serializer.
func NewMemory() *Memory {
	return &Memory{patches: make(map[patches.Index]*ndarray.Array)}
}

func (m *Memory) ReadHeader() (patches.Header, error) {
	if m.header == nil {
		return nil, fmt.Errorf("patches/serialize: memory: header not written")
	}
	return m.header, nil
}

func (m *Memory) WriteHeader(header patches.Header) error {
	m.header = header
	return nil
}

func (m *Memory) ReadBlockSize() (int, int, error) {
	return m.ni, m.nj, nil
}

func (m *Memory) WriteBlockSize(ni, nj int) error {
	m.ni, m.nj = ni, nj
	return nil
}

func (m *Memory) ListFields() ([]patches.Field, error) {
	seen := make(map[patches.Field]bool)
	var out []patches.Field
	for idx := range m.patches {
		if !seen[idx.Field] {
			seen[idx.Field] = true
			out = append(out, idx.Field)
		}
	}
	return out, nil
}

func (m *Memory) ListPatches(field patches.Field) ([]patches.Index, error) {
	var out []patches.Index
	for idx := range m.patches {
		if idx.Field == field {
			out = append(out, idx)
		}
	}
	return out, nil
}

func (m *Memory) ReadArray(idx patches.Index) (*ndarray.Array, error) {
	a, ok := m.patches[idx]
	if !ok {
		return nil, fmt.Errorf("patches/serialize: memory: %s: %w", idx, patches.ErrPatchMissing)
	}
	return a.Copy(), nil
}

func (m *Memory) WriteArray(idx patches.Index, data *ndarray.Array) error {
	m.patches[idx] = data.Copy()
	return nil
}
