package proj4rs

import "errors"

// Error taxonomy. Classification and validation errors are produced
// before any native call; only ErrInvalidDefinition and ErrTransform
// originate inside the native engine, which reports through a
// thread-local last-error channel whose text is wrapped verbatim.
var (
	// ErrInvalidDefinition means the engine rejected a projection
	// definition string at construction time.
	ErrInvalidDefinition = errors.New("invalid projection definition")

	// ErrInvalidBufferType means a coordinate argument is neither a
	// scalar, a sequence, nor a buffer the binding knows about.
	ErrInvalidBufferType = errors.New("invalid buffer type")

	// ErrShape means wrong dimensionality or an unsupported coordinate
	// width (packed buffers must be N x 2 or N x 3).
	ErrShape = errors.New("unexpected coordinate shape")

	// ErrLengthMismatch means parallel coordinate axes differ in length.
	ErrLengthMismatch = errors.New("arrays must have the same length")

	// ErrMissingData means a required coordinate axis was not supplied.
	ErrMissingData = errors.New("missing data")

	// ErrTransform carries the engine's own diagnostic for a failed
	// transform call.
	ErrTransform = errors.New("transform failed")
)
