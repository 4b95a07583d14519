// SPDX-License-Identifier: MIT

// Package frame: the Frame container.
// A Frame is an ordered collection of named, uniformly sized columns.
// Frames are value-like: every reshaping operation (Drop, WithColumn,
// Select) returns a new Frame and leaves the receiver untouched.

package frame

import "fmt"

// Frame is an ordered collection of named columns with a uniform row
// count. The zero column set is a valid empty frame.
type Frame struct {
	cols  []*Column
	index map[string]int
}

// New builds a frame from columns, preserving their order.
// Returns ErrDuplicateColumn on repeated names and ErrLengthMismatch when
// row counts differ.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if _, ok := f.index[c.name]; ok {
			return nil, fmt.Errorf("frame: new: %q: %w", c.name, ErrDuplicateColumn)
		}
		if len(f.cols) > 0 && c.Len() != f.cols[0].Len() {
			return nil, fmt.Errorf("frame: new: %q has %d rows, want %d: %w",
				c.name, c.Len(), f.cols[0].Len(), ErrLengthMismatch)
		}
		f.index[c.name] = len(f.cols)
		f.cols = append(f.cols, c.Clone())
	}
	return f, nil
}

// Len returns the row count.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Width returns the column count.
func (f *Frame) Width() int { return len(f.cols) }

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}
	return names
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the named column, or ErrColumnNotFound.
// The returned column is immutable; do not rely on pointer identity.
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("frame: column %q: %w", name, ErrColumnNotFound)
	}
	return f.cols[i], nil
}

// Columns returns the columns in frame order.
func (f *Frame) Columns() []*Column {
	out := make([]*Column, len(f.cols))
	copy(out, f.cols)
	return out
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	cp := &Frame{
		cols:  make([]*Column, len(f.cols)),
		index: make(map[string]int, len(f.index)),
	}
	for i, c := range f.cols {
		cp.cols[i] = c.Clone()
		cp.index[c.name] = i
	}
	return cp
}

// Drop returns a new frame without the named columns, preserving the
// relative order of the survivors. Naming an absent column is an error,
// never silently ignored.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	doomed := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := f.index[name]; !ok {
			return nil, fmt.Errorf("frame: drop %q: %w", name, ErrColumnNotFound)
		}
		doomed[name] = struct{}{}
	}
	var kept []*Column
	for _, c := range f.cols {
		if _, gone := doomed[c.name]; !gone {
			kept = append(kept, c)
		}
	}
	return New(kept...)
}

// Select returns a new frame holding exactly the named columns, in the
// order given. Returns ErrColumnNotFound for unknown names.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		i, ok := f.index[name]
		if !ok {
			return nil, fmt.Errorf("frame: select %q: %w", name, ErrColumnNotFound)
		}
		cols = append(cols, f.cols[i])
	}
	return New(cols...)
}

// WithColumn returns a new frame where the given column replaces the
// existing column of the same name in place, or is appended when no such
// column exists. Returns ErrLengthMismatch when the column's row count
// disagrees with a non-empty frame.
func (f *Frame) WithColumn(c *Column) (*Frame, error) {
	if len(f.cols) > 0 && c.Len() != f.Len() {
		return nil, fmt.Errorf("frame: with column %q: %d rows, want %d: %w",
			c.name, c.Len(), f.Len(), ErrLengthMismatch)
	}
	cols := f.Columns()
	if i, ok := f.index[c.name]; ok {
		cols[i] = c
	} else {
		cols = append(cols, c)
	}
	return New(cols...)
}
