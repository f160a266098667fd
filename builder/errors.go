package builder

import "errors"

// The structured-column failures are static configuration faults: they are
// triggered by a mismatch between declarations, never by the environment,
// and retrying can never fix them.
var (
	// ErrCapacityExceedsFieldWidth reports that a structured column
	// declared more capacity than the chosen field has bits.
	ErrCapacityExceedsFieldWidth = errors.New("structured column capacity exceeds the field bit width")

	// ErrCapacityExceedsTableSize reports that a table was finalized with
	// more rows than a structured column declared it could serve.
	ErrCapacityExceedsTableSize = errors.New("table size exceeds the structured column capacity")

	// ErrMath wraps a failure surfaced by the field or expression
	// collaborators. The cause is preserved and reachable through
	// errors.Is and errors.As.
	ErrMath = errors.New("underlying math error")
)
