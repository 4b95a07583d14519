// SPDX-License-Identifier: MIT

// Package frame provides the in-memory tabular structure the prep
// transforms operate on: an ordered collection of named, typed columns
// with a uniform row count.
//
// Column types are an explicit enumeration (DType), resolved once at
// construction:
//
//	String | Numeric | Bool | Categorical | Datetime
//
// Numeric columns use NaN for missing entries. Categorical columns own a
// sorted domain of distinct category values, a zero-based code per row,
// and an ordinal flag.
//
// Frames behave like values. Constructors and accessors copy; Drop,
// Select and WithColumn return new frames. Two goroutines working on
// frames derived from the same source never share backing storage.
//
// Usage:
//
//	f, err := frame.New(
//	  frame.NewNumeric("price", []float64{9.99, math.NaN(), 4.20}),
//	  frame.NewString("kind", []string{"book", "toy", "book"}),
//	)
//
// Errors are package-level sentinels (ErrColumnNotFound,
// ErrDuplicateColumn, ErrLengthMismatch, ErrTypeMismatch) matched with
// errors.Is.
package frame
