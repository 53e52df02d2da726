// Package serialize implements the storage-agnostic dump/load contract:
// a Serializer capability abstracts over where header, block size, and
// patch arrays live, and Dump/Load/LoadWithBailout walk a Store through
// that capability.
package serialize

import (
	"fmt"
	"sort"

	"github.com/jzrake/patches"
	"github.com/jzrake/patches/ndarray"
)

// Serializer is the storage capability a database can be dumped to or
// loaded from. Implementations need not be safe for concurrent use.
type Serializer interface {
	ReadHeader() (patches.Header, error)
	WriteHeader(header patches.Header) error

	ReadBlockSize() (ni, nj int, err error)
	WriteBlockSize(ni, nj int) error

	// ListFields returns every field with at least one stored patch.
	ListFields() ([]patches.Field, error)
	// ListPatches returns every stored Index for field.
	ListPatches(field patches.Field) ([]patches.Index, error)

	ReadArray(idx patches.Index) (*ndarray.Array, error)
	WriteArray(idx patches.Index, data *ndarray.Array) error
}

// Dump writes header, block size, and every stored patch to ser.
func Dump(store *patches.Store, ser Serializer) error {
	ni, nj := store.BlockSize()
	if err := ser.WriteBlockSize(ni, nj); err != nil {
		return fmt.Errorf("patches/serialize: dump: %w", err)
	}
	if err := ser.WriteHeader(store.Header()); err != nil {
		return fmt.Errorf("patches/serialize: dump: %w", err)
	}
	for _, field := range store.Header().Fields() {
		for _, p := range store.All(field) {
			if err := ser.WriteArray(p.Index, p.Array); err != nil {
				return fmt.Errorf("patches/serialize: dump %s: %w", p.Index, err)
			}
		}
	}
	return nil
}

// Load reads header, block size, and every patch from ser, restricted to
// fields when non-empty, and returns the reconstructed Store.
func Load(ser Serializer, fields ...patches.Field) (*patches.Store, error) {
	store, err := loadHeaderAndBlockSize(ser)
	if err != nil {
		return nil, err
	}
	_, err = loadPatches(ser, store, fields, nil)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadWithBailout is Load, except it stops and returns the
// partially-loaded store the instant bailout(idx) returns true for a
// patch about to be inserted. Loading is not atomic: a bailout leaves a
// usable but incomplete store rather than rolling back.
func LoadWithBailout(ser Serializer, bailout func(patches.Index) bool, fields ...patches.Field) (*patches.Store, error) {
	store, err := loadHeaderAndBlockSize(ser)
	if err != nil {
		return nil, err
	}
	_, err = loadPatches(ser, store, fields, bailout)
	if err != nil {
		return store, err
	}
	return store, nil
}

func loadHeaderAndBlockSize(ser Serializer) (*patches.Store, error) {
	ni, nj, err := ser.ReadBlockSize()
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: load: %w", err)
	}
	header, err := ser.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: load: %w", err)
	}
	return patches.NewStore(ni, nj, header), nil
}

// loadPatches inserts every stored patch into store, restricted to fields
// when non-empty, stopping early if bailout is non-nil and returns true.
func loadPatches(ser Serializer, store *patches.Store, fields []patches.Field, bailout func(patches.Index) bool) (bool, error) {
	wanted, err := fieldsToLoad(ser, fields)
	if err != nil {
		return false, err
	}
	for _, field := range wanted {
		indices, err := ser.ListPatches(field)
		if err != nil {
			return false, fmt.Errorf("patches/serialize: load: list patches for %q: %w", field, err)
		}
		sort.Slice(indices, func(i, j int) bool { return indices[i].Less(indices[j]) })
		for _, idx := range indices {
			if bailout != nil && bailout(idx) {
				return true, nil
			}
			data, err := ser.ReadArray(idx)
			if err != nil {
				return false, fmt.Errorf("patches/serialize: load %s: %w", idx, err)
			}
			if err := store.Insert(idx, data); err != nil {
				return false, fmt.Errorf("patches/serialize: load %s: %w", idx, err)
			}
		}
	}
	return false, nil
}

func fieldsToLoad(ser Serializer, fields []patches.Field) ([]patches.Field, error) {
	if len(fields) > 0 {
		out := make([]patches.Field, len(fields))
		copy(out, fields)
		return out, nil
	}
	all, err := ser.ListFields()
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: list fields: %w", err)
	}
	return all, nil
}
