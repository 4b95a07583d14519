package prep

import "github.com/djordjijeK/structura/frame"

// Categorize converts every text column of f into a categorical column.
//
// Description:
//
//	Columns named in opts.Drop are removed first; naming a column absent
//	from the frame fails the whole call with frame.ErrColumnNotFound.
//	Every remaining String column not named in opts.Skip is converted to
//	Categorical: its domain is the sorted set of distinct values observed
//	in the column. Membership in opts.Ordinal flags that domain as
//	totally ordered (ordinal categorical); other converted columns are
//	nominal. Skipped text columns and all non-text columns pass through
//	unchanged.
//
// The input frame is never mutated; row count and the relative order of
// surviving columns are preserved.
//
// Example:
//
//	out, err := prep.Categorize(f, &prep.CategorizeOptions{
//	  Ordinal: []string{"severity"},
//	  Drop:    []string{"id"},
//	})
func Categorize(f *frame.Frame, opts *CategorizeOptions) (*frame.Frame, error) {
	if opts == nil {
		opts = &CategorizeOptions{}
	}
	ordinal := toSet(opts.Ordinal)
	skip := toSet(opts.Skip)

	out := f.Clone()
	if len(opts.Drop) > 0 {
		dropped, err := out.Drop(opts.Drop...)
		if err != nil {
			return nil, err
		}
		out = dropped
	}

	for _, col := range out.Columns() {
		if col.Type() != frame.String {
			continue
		}
		if _, skipped := skip[col.Name()]; skipped {
			continue
		}
		_, isOrdinal := ordinal[col.Name()]
		cat, err := col.AsCategorical(isOrdinal)
		if err != nil {
			return nil, err
		}
		if out, err = out.WithColumn(cat); err != nil {
			return nil, err
		}
	}
	return out, nil
}
