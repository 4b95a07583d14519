// Package prep: sentinel error set. Column-reference failures surface as
// the frame package's sentinels, unwrapped; only conditions the transforms
// themselves detect get sentinels here.
package prep

import "errors"

var (
	// ErrDateCoercion indicates a date-extraction target column could not
	// be coerced to a datetime representation.
	ErrDateCoercion = errors.New("prep: cannot coerce column to datetime")

	// ErrBadScaleMethod indicates an unknown ScaleMethod value.
	ErrBadScaleMethod = errors.New("prep: unknown scale method")
)
