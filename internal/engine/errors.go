package engine

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the estimator. Compare with errors.Is.
var (
	// ErrInvalidReferenceKey indicates an airport code missing from the reference table.
	// The estimate is aborted; no partial result is produced.
	ErrInvalidReferenceKey = constError("invalid airport code")

	// ErrUnknownCategory indicates a location tag outside the five known categories.
	ErrUnknownCategory = constError("unknown location category")

	// ErrCategoryMismatch indicates a survey input paired with another category's tag.
	ErrCategoryMismatch = constError("survey input does not match category")

	// ErrNilInput indicates a nil survey input.
	ErrNilInput = constError("survey input is nil")
)
