// SPDX-License-Identifier: MIT

// Package frame: column constructors, typed accessors and conversions.
// Constructors copy their input slices and accessors return fresh copies,
// so a Column never shares backing storage with caller data.

package frame

import (
	"fmt"
	"slices"
	"time"
)

// NewString builds a String column from values.
func NewString(name string, values []string) *Column {
	return &Column{name: name, dtype: String, strs: slices.Clone(values)}
}

// NewNumeric builds a Numeric column from values. NaN entries are missing.
func NewNumeric(name string, values []float64) *Column {
	return &Column{name: name, dtype: Numeric, nums: slices.Clone(values)}
}

// NewBool builds a Bool column from values.
func NewBool(name string, values []bool) *Column {
	return &Column{name: name, dtype: Bool, bools: slices.Clone(values)}
}

// NewTime builds a Datetime column from values.
func NewTime(name string, values []time.Time) *Column {
	return &Column{name: name, dtype: Datetime, times: slices.Clone(values)}
}

// NewCategorical builds a Categorical column from raw values.
// The category domain is the sorted set of distinct values; each row is
// stored as a zero-based code into that domain. When ordered is true the
// domain carries a total order (ordinal categorical).
func NewCategorical(name string, values []string, ordered bool) *Column {
	cats := distinctSorted(values)
	rank := make(map[string]int, len(cats))
	for i, cat := range cats {
		rank[cat] = i
	}
	codes := make([]int, len(values))
	for i, v := range values {
		codes[i] = rank[v]
	}
	return &Column{name: name, dtype: Categorical, codes: codes, cats: cats, ordered: ordered}
}

// Strings returns a copy of a String column's values.
func (c *Column) Strings() ([]string, error) {
	if c.dtype != String {
		return nil, fmt.Errorf("frame: %q is %s, want string: %w", c.name, c.dtype, ErrTypeMismatch)
	}
	return slices.Clone(c.strs), nil
}

// Floats returns a copy of a Numeric column's values.
func (c *Column) Floats() ([]float64, error) {
	if c.dtype != Numeric {
		return nil, fmt.Errorf("frame: %q is %s, want numeric: %w", c.name, c.dtype, ErrTypeMismatch)
	}
	return slices.Clone(c.nums), nil
}

// Bools returns a copy of a Bool column's values.
func (c *Column) Bools() ([]bool, error) {
	if c.dtype != Bool {
		return nil, fmt.Errorf("frame: %q is %s, want bool: %w", c.name, c.dtype, ErrTypeMismatch)
	}
	return slices.Clone(c.bools), nil
}

// Times returns a copy of a Datetime column's values.
func (c *Column) Times() ([]time.Time, error) {
	if c.dtype != Datetime {
		return nil, fmt.Errorf("frame: %q is %s, want datetime: %w", c.name, c.dtype, ErrTypeMismatch)
	}
	return slices.Clone(c.times), nil
}

// Codes returns a copy of a Categorical column's zero-based codes.
func (c *Column) Codes() ([]int, error) {
	if c.dtype != Categorical {
		return nil, fmt.Errorf("frame: %q is %s, want categorical: %w", c.name, c.dtype, ErrTypeMismatch)
	}
	return slices.Clone(c.codes), nil
}

// Categories returns a copy of a Categorical column's sorted domain.
func (c *Column) Categories() ([]string, error) {
	if c.dtype != Categorical {
		return nil, fmt.Errorf("frame: %q is %s, want categorical: %w", c.name, c.dtype, ErrTypeMismatch)
	}
	return slices.Clone(c.cats), nil
}

// Ordered reports whether a Categorical column's domain is totally
// ordered. It is always false for non-categorical columns.
func (c *Column) Ordered() bool {
	return c.dtype == Categorical && c.ordered
}

// AsCategorical converts a String column into a Categorical column with
// the same name, assigning the sorted distinct-value domain.
func (c *Column) AsCategorical(ordered bool) (*Column, error) {
	if c.dtype != String {
		return nil, fmt.Errorf("frame: cannot categorize %s column %q: %w", c.dtype, c.name, ErrTypeMismatch)
	}
	return NewCategorical(c.name, c.strs, ordered), nil
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	cp := &Column{
		name:    c.name,
		dtype:   c.dtype,
		strs:    slices.Clone(c.strs),
		nums:    slices.Clone(c.nums),
		bools:   slices.Clone(c.bools),
		times:   slices.Clone(c.times),
		codes:   slices.Clone(c.codes),
		cats:    slices.Clone(c.cats),
		ordered: c.ordered,
	}
	return cp
}

// distinctSorted returns the sorted set of distinct values.
func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
