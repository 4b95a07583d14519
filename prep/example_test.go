package prep_test

import (
	"fmt"
	"math"

	"github.com/djordjijeK/structura/frame"
	"github.com/djordjijeK/structura/prep"
)

// ExampleCategorize converts text columns to categorical, dropping an
// identifier column on the way.
func ExampleCategorize() {
	f, _ := frame.New(
		frame.NewNumeric("id", []float64{1, 2, 3}),
		frame.NewString("kind", []string{"book", "toy", "book"}),
	)

	out, _ := prep.Categorize(f, &prep.CategorizeOptions{Drop: []string{"id"}})

	kind, _ := out.Column("kind")
	fmt.Println(kind.Type())
	fmt.Println(out.Names())
	// Output:
	// categorical
	// [kind]
}

// ExampleNumericalize shows the default coding branch: categories become
// 1-based codes and the mapper keeps the zero-based inverse mapping.
func ExampleNumericalize() {
	f, _ := frame.New(
		frame.NewNumeric("col1", []float64{1, 2, 3}),
		frame.NewString("col2", []string{"a", "b", "a"}),
		frame.NewString("col3", []string{"Low", "Medium", "High"}),
	)
	f, _ = prep.Categorize(f, nil)

	out, mapper, _ := prep.Numericalize(f, nil)

	col2, _ := out.Column("col2")
	codes, _ := col2.Floats()
	fmt.Println(codes)
	fmt.Println(mapper["col3"].Kind, mapper["col3"].Categories)
	// Output:
	// [1 2 1]
	// coded map[0:High 1:Low 2:Medium]
}

// ExampleInterpolate fills a hole with the column median and flags it.
func ExampleInterpolate() {
	f, _ := frame.New(frame.NewNumeric("col1", []float64{1, math.NaN(), 3}))

	out, mapper, _ := prep.Interpolate(f, nil)

	col1, _ := out.Column("col1")
	vals, _ := col1.Floats()
	flags, _ := mustColumn(out, "col1_missing").Bools()
	fmt.Println(vals)
	fmt.Println(flags)
	fmt.Println(mapper["col1"])
	// Output:
	// [1 2 3]
	// [false true false]
	// 2
}

// ExampleExtractDateFeatures expands a date column into calendar columns
// and strips the "Date" suffix from the derived names.
func ExampleExtractDateFeatures() {
	f, _ := frame.New(frame.NewString("SaleDate", []string{"3/11/2000", "3/12/2000"}))

	out, _ := prep.ExtractDateFeatures(f, []string{"SaleDate"}, nil)

	days, _ := mustColumn(out, "Sale_day").Floats()
	fmt.Println(out.Has("SaleDate"))
	fmt.Println(days)
	// Output:
	// false
	// [11 12]
}

// mustColumn is example-local sugar; errors cannot happen on the names
// used above.
func mustColumn(f *frame.Frame, name string) *frame.Column {
	col, err := f.Column(name)
	if err != nil {
		panic(err)
	}
	return col
}
