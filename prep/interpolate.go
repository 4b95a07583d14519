package prep

import (
	"math"

	"github.com/djordjijeK/structura/frame"
)

// missingSuffix names the companion flag column of an imputed column.
const missingSuffix = "_missing"

// Interpolate fills missing numeric values with the column median.
//
// Description:
//
//	For every Numeric column not named in opts.Skip, in frame order:
//	a Bool column {column}_missing is appended, true exactly where the
//	original value is NaN; the NaN entries are then replaced by the
//	median of the column's observed values, and that median is recorded
//	in the returned NumericMapper. Observed values are never altered.
//	A column with zero observed values keeps NaN as its fill (the median
//	of nothing is NaN); that is a caller-observable value, not an error.
//
//	Non-numeric and skipped columns are untouched and get no companion
//	column or mapper entry.
//
// Companion columns are appended after the surviving columns, one per
// processed column, in processing order.
func Interpolate(f *frame.Frame, opts *InterpolateOptions) (*frame.Frame, NumericMapper, error) {
	if opts == nil {
		opts = &InterpolateOptions{}
	}
	skip := toSet(opts.Skip)
	mapper := make(NumericMapper)

	out := f.Clone()
	var companions []*frame.Column

	for _, col := range f.Columns() {
		if col.Type() != frame.Numeric {
			continue
		}
		if _, skipped := skip[col.Name()]; skipped {
			continue
		}
		values, err := col.Floats()
		if err != nil {
			return nil, nil, err
		}

		missing := make([]bool, len(values))
		for i, v := range values {
			missing[i] = math.IsNaN(v)
		}
		fill := median(observed(values))
		for i := range values {
			if missing[i] {
				values[i] = fill
			}
		}

		companions = append(companions, frame.NewBool(col.Name()+missingSuffix, missing))
		mapper[col.Name()] = fill
		if out, err = out.WithColumn(frame.NewNumeric(col.Name(), values)); err != nil {
			return nil, nil, err
		}
	}

	for _, c := range companions {
		joined, err := out.WithColumn(c)
		if err != nil {
			return nil, nil, err
		}
		out = joined
	}
	return out, mapper, nil
}
