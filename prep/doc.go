// Package prep prepares in-memory tabular frames for modeling.
//
// 🚀 What is prep?
//
//	A small set of pure, independent transformations over frame.Frame:
//	  • Categorize          — text columns → categorical (ordinal or nominal)
//	  • Numericalize        — categorical columns → integer codes or one-hot
//	  • Interpolate         — median-fill missing numerics + _missing flags
//	  • ExtractDateFeatures — date columns → calendar feature columns
//	  • Scale               — standard / min-max / robust rescaling
//
// ✨ Guarantees:
//   - every transform copies its input frame; the original is never mutated
//   - row count is invariant; only columns change
//   - no global state, no caching — calls on independent frames are
//     race-free by construction
//   - a failure aborts the whole call; no partial frame is returned
//
// ⚙️ Usage (typical modeling order):
//
//	f, err = prep.Categorize(f, nil)
//	f, numMap, err = prep.Interpolate(f, nil)
//	f, err = prep.ExtractDateFeatures(f, []string{"SaleDate"}, nil)
//	f, catMap, err = prep.Numericalize(f, nil)
//
// The mapper return values (CategoryMapper, NumericMapper, ScaleMapper)
// describe the transformation applied per column; persist them yourself
// if you need to re-apply the same encoding to new data — prep does not.
//
// Errors are sentinels matched with errors.Is; invalid column references
// surface as frame.ErrColumnNotFound straight from the frame layer.
package prep
