package serialize

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/DataDog/zstd"
	"github.com/jzrake/patches"
	"github.com/jzrake/patches/codec"
	"github.com/jzrake/patches/ndarray"
)

// FS is a filesystem-backed Serializer rooted at a directory. Header and
// block size are written as YAML at fixed file names; each patch array is
// written under a directory named for its canonical index prefix, as a
// small binary format: a (Ni, Nj, K int32) shape header, followed by a
// zstd-compressed, length-prefixed little-endian float64 payload, the
// same length-prefix-then-compressed-block shape as guppy's
// WriteCompressedIntsZStd/ReadCompressedIntsZStd, adapted from quantized
// integers to raw doubles since this library does not quantize.
type FS struct {
	root string
}

// NewFS returns an FS rooted at dir. The directory is created if absent.
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: %w", err)
	}
	return &FS{root: dir}, nil
}

func (f *FS) headerPath() string    { return filepath.Join(f.root, "header.yaml") }
func (f *FS) blockSizePath() string { return filepath.Join(f.root, "block_size.yaml") }
func (f *FS) patchesDir() string    { return filepath.Join(f.root, "patches") }

func (f *FS) patchDirName(idx patches.Index) string {
	return fmt.Sprintf("%d.%d-%d", idx.Level, idx.I, idx.J)
}

func (f *FS) patchPath(idx patches.Index) string {
	return filepath.Join(f.patchesDir(), f.patchDirName(idx), string(idx.Field)+".bin")
}

func (f *FS) ReadHeader() (patches.Header, error) {
	data, err := os.ReadFile(f.headerPath())
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: read header: %w", err)
	}
	return codec.UnmarshalHeader(data)
}

func (f *FS) WriteHeader(header patches.Header) error {
	data, err := codec.MarshalHeader(header)
	if err != nil {
		return err
	}
	return os.WriteFile(f.headerPath(), data, 0o644)
}

func (f *FS) ReadBlockSize() (int, int, error) {
	data, err := os.ReadFile(f.blockSizePath())
	if err != nil {
		return 0, 0, fmt.Errorf("patches/serialize: fs: read block size: %w", err)
	}
	return codec.UnmarshalBlockSize(data)
}

func (f *FS) WriteBlockSize(ni, nj int) error {
	data, err := codec.MarshalBlockSize(ni, nj)
	if err != nil {
		return err
	}
	return os.WriteFile(f.blockSizePath(), data, 0o644)
}

func (f *FS) ListFields() ([]patches.Field, error) {
	entries, err := os.ReadDir(f.patchesDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: list fields: %w", err)
	}
	seen := make(map[patches.Field]bool)
	var out []patches.Field
	for _, dirEntry := range entries {
		files, err := os.ReadDir(filepath.Join(f.patchesDir(), dirEntry.Name()))
		if err != nil {
			return nil, fmt.Errorf("patches/serialize: fs: list fields: %w", err)
		}
		for _, file := range files {
			field := patches.Field(trimBinExt(file.Name()))
			if !seen[field] {
				seen[field] = true
				out = append(out, field)
			}
		}
	}
	return out, nil
}

func (f *FS) ListPatches(field patches.Field) ([]patches.Index, error) {
	entries, err := os.ReadDir(f.patchesDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: list patches: %w", err)
	}
	var out []patches.Index
	for _, dirEntry := range entries {
		path := filepath.Join(f.patchesDir(), dirEntry.Name(), string(field)+".bin")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// dirEntry.Name() carries no field component of its own; parsing it
		// through codec.ParseIndex needs one, so a placeholder is appended
		// and immediately discarded in favor of the field this call asked for.
		prefix, err := codec.ParseIndex(dirEntry.Name() + "/x")
		if err != nil {
			return nil, fmt.Errorf("patches/serialize: fs: list patches: %w", err)
		}
		out = append(out, prefix.WithField(field))
	}
	return out, nil
}

func trimBinExt(name string) string {
	const ext = ".bin"
	if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
		return name[:len(name)-len(ext)]
	}
	return name
}

func (f *FS) ReadArray(idx patches.Index) (*ndarray.Array, error) {
	file, err := os.Open(f.patchPath(idx))
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: read array %s: %w", idx, err)
	}
	defer file.Close()

	var shape [3]int32
	if err := binary.Read(file, binary.LittleEndian, &shape); err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: read array %s: shape header: %w", idx, err)
	}
	ni, nj, k := int(shape[0]), int(shape[1]), int(shape[2])

	var compressedLen int64
	if err := binary.Read(file, binary.LittleEndian, &compressedLen); err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: read array %s: length prefix: %w", idx, err)
	}
	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(file, compressed); err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: read array %s: payload: %w", idx, err)
	}
	raw, err := zstd.Decompress(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("patches/serialize: fs: read array %s: decompress: %w", idx, err)
	}
	data := bytesToFloats(raw, ni*nj*k)
	return ndarray.NewFromSlice(ni, nj, k, data), nil
}

func (f *FS) WriteArray(idx patches.Index, data *ndarray.Array) error {
	dir := filepath.Join(f.patchesDir(), f.patchDirName(idx))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("patches/serialize: fs: write array %s: %w", idx, err)
	}
	file, err := os.Create(f.patchPath(idx))
	if err != nil {
		return fmt.Errorf("patches/serialize: fs: write array %s: %w", idx, err)
	}
	defer file.Close()

	ni, nj, k := data.Shape()
	shape := [3]int32{int32(ni), int32(nj), int32(k)}
	if err := binary.Write(file, binary.LittleEndian, shape); err != nil {
		return fmt.Errorf("patches/serialize: fs: write array %s: shape header: %w", idx, err)
	}

	compressed, err := zstd.CompressLevel(nil, floatsToBytes(data.Raw()), 1)
	if err != nil {
		return fmt.Errorf("patches/serialize: fs: write array %s: compress: %w", idx, err)
	}
	if err := binary.Write(file, binary.LittleEndian, int64(len(compressed))); err != nil {
		return fmt.Errorf("patches/serialize: fs: write array %s: length prefix: %w", idx, err)
	}
	if _, err := file.Write(compressed); err != nil {
		return fmt.Errorf("patches/serialize: fs: write array %s: payload: %w", idx, err)
	}
	return nil
}

func floatsToBytes(data []float64) []byte {
	out := make([]byte, len(data)*8)
	for i, v := range data {
		binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
	}
	return out
}

func bytesToFloats(data []byte, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return out
}
