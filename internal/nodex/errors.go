package nodex

import "errors"

// Error taxonomy. Every failure surfaced by this package wraps exactly one
// of these sentinels, so callers can branch with errors.Is.
var (
	// ErrUnsupportedInputKind reports an input the classifier cannot
	// determine a shape for.
	ErrUnsupportedInputKind = errors.New("unsupported input kind")

	// ErrDimensionMismatch reports operand shapes that cannot be broadcast
	// for the requested operator.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidOperatorArity reports a wrong operand count.
	ErrInvalidOperatorArity = errors.New("invalid operator arity")

	// ErrNonAdaptableConnection reports a connection that would require
	// lossy truncation of the source value.
	ErrNonAdaptableConnection = errors.New("non-adaptable connection")

	// ErrUnknownAttributeAddress reports an address the backend cannot
	// resolve.
	ErrUnknownAttributeAddress = errors.New("unknown attribute address")

	// ErrBackendNodeCreationFailure reports a backend-side failure,
	// passed through unchanged.
	ErrBackendNodeCreationFailure = errors.New("backend node creation failure")
)
