package prep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djordjijeK/structura/frame"
	"github.com/djordjijeK/structura/prep"
)

// TestInterpolate_MedianFill reproduces the canonical scenario:
// col1 [1,NaN,3] fills with 2, col3 [NaN,2.5,7.3] fills with 4.9.
func TestInterpolate_MedianFill(t *testing.T) {
	nan := math.NaN()
	f, err := frame.New(
		frame.NewNumeric("col1", []float64{1, nan, 3}),
		frame.NewString("col2", []string{"a", "b", "a"}),
		frame.NewNumeric("col3", []float64{nan, 2.5, 7.3}),
	)
	require.NoError(t, err)

	out, mapper, err := prep.Interpolate(f, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Len(), "row count invariant")
	assert.Equal(t,
		[]string{"col1", "col2", "col3", "col1_missing", "col3_missing"},
		out.Names(), "flags appended after originals, no flag for text column")

	col1, _ := out.Column("col1")
	vals1, _ := col1.Floats()
	assert.Equal(t, []float64{1, 2, 3}, vals1, "fill is the median of observed values")

	col3, _ := out.Column("col3")
	vals3, _ := col3.Floats()
	assert.InDelta(t, 4.9, vals3[0], 1e-12, "filled row equals the median exactly")
	assert.Equal(t, 2.5, vals3[1], "observed values unchanged")
	assert.Equal(t, 7.3, vals3[2])

	m1, _ := out.Column("col1_missing")
	flags1, _ := m1.Bools()
	assert.Equal(t, []bool{false, true, false}, flags1)
	m3, _ := out.Column("col3_missing")
	flags3, _ := m3.Bools()
	assert.Equal(t, []bool{true, false, false}, flags3)

	require.Len(t, mapper, 2)
	assert.Equal(t, 2.0, mapper["col1"])
	assert.InDelta(t, 4.9, mapper["col3"], 1e-12)
}

// TestInterpolate_NoMissing still produces an all-false flag column and a
// mapper entry for complete numeric columns.
func TestInterpolate_NoMissing(t *testing.T) {
	f, err := frame.New(frame.NewNumeric("x", []float64{4, 1, 9}))
	require.NoError(t, err)

	out, mapper, err := prep.Interpolate(f, nil)
	require.NoError(t, err)

	flagCol, err := out.Column("x_missing")
	require.NoError(t, err)
	flags, _ := flagCol.Bools()
	assert.Equal(t, []bool{false, false, false}, flags)
	assert.Equal(t, 4.0, mapper["x"], "median recorded even without fills")

	x, _ := out.Column("x")
	vals, _ := x.Floats()
	assert.Equal(t, []float64{4, 1, 9}, vals, "values untouched")
}

// TestInterpolate_Skip leaves skipped numeric columns fully alone.
func TestInterpolate_Skip(t *testing.T) {
	nan := math.NaN()
	f, err := frame.New(
		frame.NewNumeric("keep", []float64{nan, 2}),
		frame.NewNumeric("skip", []float64{nan, 5}),
	)
	require.NoError(t, err)

	out, mapper, err := prep.Interpolate(f, &prep.InterpolateOptions{Skip: []string{"skip"}})
	require.NoError(t, err)

	assert.False(t, out.Has("skip_missing"), "skipped column gets no companion")
	assert.True(t, out.Has("keep_missing"))
	_, recorded := mapper["skip"]
	assert.False(t, recorded)

	skipped, _ := out.Column("skip")
	vals, _ := skipped.Floats()
	assert.True(t, math.IsNaN(vals[0]), "skipped NaN stays NaN")
}

// TestInterpolate_AllMissing: an all-NaN column has an undefined median;
// the fill propagates NaN and the call still succeeds.
func TestInterpolate_AllMissing(t *testing.T) {
	nan := math.NaN()
	f, err := frame.New(frame.NewNumeric("void", []float64{nan, nan}))
	require.NoError(t, err)

	out, mapper, err := prep.Interpolate(f, nil)
	require.NoError(t, err)

	void, _ := out.Column("void")
	vals, _ := void.Floats()
	assert.True(t, math.IsNaN(vals[0]))
	assert.True(t, math.IsNaN(vals[1]))
	assert.True(t, math.IsNaN(mapper["void"]), "mapper records the NaN median")

	flagCol, _ := out.Column("void_missing")
	flags, _ := flagCol.Bools()
	assert.Equal(t, []bool{true, true}, flags)
}

// TestInterpolate_PureInput verifies the input frame keeps its NaNs.
func TestInterpolate_PureInput(t *testing.T) {
	nan := math.NaN()
	f, err := frame.New(frame.NewNumeric("x", []float64{nan, 1}))
	require.NoError(t, err)

	_, _, err = prep.Interpolate(f, nil)
	require.NoError(t, err)

	x, _ := f.Column("x")
	vals, _ := x.Floats()
	assert.True(t, math.IsNaN(vals[0]), "input NaN untouched")
	assert.False(t, f.Has("x_missing"), "input gains no columns")
}
