// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// All frame operations return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ...)); callers match them via errors.Is. No frame
// operation panics on caller-triggered conditions.

package frame

import "errors"

var (
	// ErrColumnNotFound is returned when an operation names a column
	// absent from the frame (Column, Drop, Select).
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrDuplicateColumn is returned when a frame would end up with two
	// columns of the same name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrLengthMismatch is returned when a column's row count disagrees
	// with the frame's row count.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrTypeMismatch is returned when a typed accessor or conversion is
	// applied to a column of a different dtype.
	ErrTypeMismatch = errors.New("frame: column type mismatch")
)
