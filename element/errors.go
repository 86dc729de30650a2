package element

import "errors"

// Sentinel errors for model construction and solving. Callers classify
// failures with errors.Is; wrapped messages carry the offending values.
var (
	// ErrInvalidParameter reports a non-physical material property.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateElement reports an element whose end nodes coincide.
	ErrDegenerateElement = errors.New("degenerate element")

	// ErrSingularSystem reports a singular or near-singular reduced stiffness
	// matrix, meaning the structure is under-restrained or otherwise unstable.
	// Fatal to the current solve; not retried.
	ErrSingularSystem = errors.New("singular system")

	// ErrInvalidArgument reports malformed constructor or input arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)
