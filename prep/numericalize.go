package prep

import "github.com/djordjijeK/structura/frame"

// Numericalize converts categorical columns of f into numeric form.
//
// Description:
//
//	Every Categorical column not named in opts.Skip is rewritten based on
//	its domain size:
//
//	  - more categories than opts.MaxCategories → the column is replaced
//	    in place by a Numeric column holding code+1 per row (codes start
//	    at 1; 0 stays reserved for missing/unknown by convention). The
//	    mapper records Coded with the zero-based code→category mapping,
//	    so reconstructing a row's category is Categories[int(v)-1].
//
//	  - at most opts.MaxCategories categories → the column is expanded
//	    into one Numeric 0/1 indicator column per category, named
//	    {column}_{category} and appended after the surviving columns; the
//	    original column is dropped and the mapper records OneHot.
//
//	Non-categorical and skipped columns pass through unchanged, which
//	makes the transform a no-op on its own output.
//
// Returns the new frame and the CategoryMapper describing what was done
// to each rewritten column.
func Numericalize(f *frame.Frame, opts *NumericalizeOptions) (*frame.Frame, CategoryMapper, error) {
	if opts == nil {
		opts = &NumericalizeOptions{}
	}
	skip := toSet(opts.Skip)
	mapper := make(CategoryMapper)

	out := f.Clone()
	var indicators []*frame.Column
	var expanded []string

	for _, col := range f.Columns() {
		if col.Type() != frame.Categorical {
			continue
		}
		if _, skipped := skip[col.Name()]; skipped {
			continue
		}
		cats, err := col.Categories()
		if err != nil {
			return nil, nil, err
		}
		codes, err := col.Codes()
		if err != nil {
			return nil, nil, err
		}

		if len(cats) > opts.MaxCategories {
			shifted := make([]float64, len(codes))
			for i, code := range codes {
				shifted[i] = float64(code + 1)
			}
			mapping := make(map[int]string, len(cats))
			for code, cat := range cats {
				mapping[code] = cat
			}
			mapper[col.Name()] = Encoding{Kind: Coded, Categories: mapping}
			if out, err = out.WithColumn(frame.NewNumeric(col.Name(), shifted)); err != nil {
				return nil, nil, err
			}
			continue
		}

		for target, cat := range cats {
			flags := make([]float64, len(codes))
			for row, code := range codes {
				if code == target {
					flags[row] = 1
				}
			}
			indicators = append(indicators, frame.NewNumeric(col.Name()+"_"+cat, flags))
		}
		expanded = append(expanded, col.Name())
		mapper[col.Name()] = Encoding{Kind: OneHot}
	}

	if len(expanded) > 0 {
		dropped, err := out.Drop(expanded...)
		if err != nil {
			return nil, nil, err
		}
		out = dropped
	}
	for _, ind := range indicators {
		joined, err := out.WithColumn(ind)
		if err != nil {
			return nil, nil, err
		}
		out = joined
	}
	return out, mapper, nil
}
