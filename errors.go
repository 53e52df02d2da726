package patches

import "errors"

// Sentinel errors for every failure mode the package reports.
// Call sites wrap these with fmt.Errorf("...: %w", ErrX) so a caller can
// still errors.Is/errors.As against the sentinel while getting context in
// the message.
var (
	// ErrUnknownField is returned when a Field is looked up against a
	// Header it was never registered in.
	ErrUnknownField = errors.New("patches: unknown field")

	// ErrPatchMissing is returned by At, Commit, or Assemble when the
	// requested Index has no stored patch.
	ErrPatchMissing = errors.New("patches: patch missing")

	// ErrShapeMismatch is returned by Insert or Commit when the supplied
	// array's shape does not match the field's expected shape.
	ErrShapeMismatch = errors.New("patches: shape mismatch")

	// ErrUnsupportedLocation is returned by Fetch or Commit when invoked
	// against a field whose MeshLocation is not Cell.
	ErrUnsupportedLocation = errors.New("patches: unsupported mesh location")

	// ErrBoundaryUnresolved is returned by Fetch when a guard region needs
	// a boundary value and no boundary callback is registered.
	ErrBoundaryUnresolved = errors.New("patches: boundary unresolved")

	// ErrParse is returned when a canonical string encoding cannot be
	// parsed. Defined here so the codec package can report the same
	// sentinel the core does.
	ErrParse = errors.New("patches: parse error")
)
