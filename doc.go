// Package structura is a toolkit for preparing tabular data for
// downstream modeling — categorical encoding, imputation and calendar
// feature extraction over an in-memory frame.
//
// 🚀 What is structura?
//
//	A small, pure-function library that brings together:
//		• frame — a typed, value-like table: named columns, explicit dtypes
//		• prep  — the transforms: categorize, numericalize (codes/one-hot),
//		  median interpolation with missingness flags, date feature
//		  extraction, numeric scaling
//
// ✨ Why choose structura?
//
//   - Pure transforms — inputs are copied, never mutated; no globals
//   - Explicit types — a tagged dtype per column, resolved once
//   - Honest errors — package sentinels, errors.Is, no silent fallbacks
//
// Start with the prep package; frame is its substrate.
//
//	go get github.com/djordjijeK/structura
package structura
