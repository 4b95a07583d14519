// SPDX-License-Identifier: MIT

// Package frame: column type system.
// This file defines the DType enumeration and the Column storage record.
// A column's type is resolved exactly once, at construction; all later
// branching happens on the stored tag, never on value inspection.

package frame

import "time"

// DType tags the declared type of a Column.
//
//   - String      — free-form text values.
//   - Numeric     — float64 values; NaN marks a missing entry.
//   - Bool        — true/false flags.
//   - Categorical — values drawn from a finite, sorted category domain,
//     stored as zero-based codes into that domain. The domain may be
//     flagged as totally ordered (ordinal).
//   - Datetime    — time.Time values.
type DType int

const (
	// String is the dtype of free-form text columns.
	String DType = iota

	// Numeric is the dtype of float64 columns; NaN encodes missing.
	Numeric

	// Bool is the dtype of boolean flag columns.
	Bool

	// Categorical is the dtype of enumerated-domain columns.
	Categorical

	// Datetime is the dtype of time.Time columns.
	Datetime
)

// String returns a human-readable dtype name.
func (t DType) String() string {
	switch t {
	case String:
		return "string"
	case Numeric:
		return "numeric"
	case Bool:
		return "bool"
	case Categorical:
		return "categorical"
	case Datetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Column is a named sequence of values of a single declared type.
// Exactly one storage slice is populated, selected by dtype.
// Columns are immutable once constructed; accessors return copies.
type Column struct {
	name  string
	dtype DType

	strs  []string
	nums  []float64
	bools []bool
	times []time.Time

	// Categorical storage: codes index into cats; cats is sorted
	// ascending and holds each distinct value exactly once.
	codes   []int
	cats    []string
	ordered bool
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the column dtype tag.
func (c *Column) Type() DType { return c.dtype }

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	switch c.dtype {
	case String:
		return len(c.strs)
	case Numeric:
		return len(c.nums)
	case Bool:
		return len(c.bools)
	case Categorical:
		return len(c.codes)
	case Datetime:
		return len(c.times)
	default:
		return 0
	}
}
