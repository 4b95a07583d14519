// Package prep: options and mapper types for the preprocessing transforms.
package prep

// EncodingKind tags how Numericalize rewrote one categorical column.
//
//   - Coded  — the column was replaced by integer codes (code+1 in the
//     data; the recorded mapping keys stay zero-based).
//   - OneHot — the column was expanded into one indicator column per
//     category and dropped.
type EncodingKind int

const (
	// Coded marks a column replaced by shifted integer codes.
	Coded EncodingKind = iota

	// OneHot marks a column expanded into indicator columns.
	OneHot
)

// String returns a human-readable kind name.
func (k EncodingKind) String() string {
	if k == OneHot {
		return "one-hot"
	}
	return "coded"
}

// Encoding describes the transformation Numericalize applied to a single
// categorical column. Categories is populated only when Kind is Coded and
// maps each zero-based code to the original category value.
type Encoding struct {
	Kind       EncodingKind
	Categories map[int]string
}

// CategoryMapper maps column name to the encoding applied to it.
// Produced by Numericalize; it has no lifecycle beyond the return value.
type CategoryMapper map[string]Encoding

// NumericMapper maps column name to the median used to fill its missing
// entries. Produced by Interpolate.
type NumericMapper map[string]float64

// CategorizeOptions configures Categorize.
//
// Fields:
//   - Ordinal — text columns whose category domain carries a total order.
//   - Drop    — columns removed from the output before any processing.
//     Naming an absent column is an error.
//   - Skip    — text columns left in their original representation.
//
// A nil *CategorizeOptions means all three sets empty.
type CategorizeOptions struct {
	Ordinal []string
	Drop    []string
	Skip    []string
}

// NumericalizeOptions configures Numericalize.
//
// Fields:
//   - MaxCategories — a categorical column with more categories than this
//     is replaced by integer codes; one with at most this many is one-hot
//     expanded. The default 0 therefore codes every non-empty column;
//     callers wanting one-hot behavior must raise it explicitly.
//   - Skip — categorical columns left untouched.
//
// A nil *NumericalizeOptions means MaxCategories 0 and no skips.
type NumericalizeOptions struct {
	MaxCategories int
	Skip          []string
}

// InterpolateOptions configures Interpolate.
//
// Skip lists numeric columns left untouched; they get neither a median
// fill nor a _missing companion column. A nil pointer means no skips.
type InterpolateOptions struct {
	Skip []string
}

// DateOptions configures ExtractDateFeatures.
//
// Fields:
//   - Time — also extract hour, minute and second.
//   - Keep — retain the original date column alongside the derived
//     columns instead of dropping it.
//
// A nil *DateOptions is equivalent to DefaultDateOptions().
type DateOptions struct {
	Time bool
	Keep bool
}

// DefaultDateOptions returns the default extraction behavior: calendar
// attributes only, original column dropped.
func DefaultDateOptions() DateOptions {
	return DateOptions{Time: false, Keep: false}
}

// toSet normalizes a column selector slice into a membership set.
func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
