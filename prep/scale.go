package prep

import (
	"fmt"
	"math"

	"github.com/djordjijeK/structura/frame"
)

// ScaleMethod selects the affine rescaling Scale applies per column.
//
//   - Standard — z-score: (x - mean) / std.
//   - MinMax   — map the observed range onto [0, 1].
//   - Robust   — (x - median) / IQR, resistant to outliers.
type ScaleMethod int

const (
	// Standard scales to zero mean and unit variance.
	Standard ScaleMethod = iota

	// MinMax scales the observed range to [0, 1].
	MinMax

	// Robust scales by median and interquartile range.
	Robust
)

// String returns a human-readable method name.
func (m ScaleMethod) String() string {
	switch m {
	case Standard:
		return "standard"
	case MinMax:
		return "min-max"
	case Robust:
		return "robust"
	default:
		return "unknown"
	}
}

// ScaleParams records the affine map fitted for one column, so the same
// rescaling can be re-applied to new data: scaled = (x - Center) / Spread.
type ScaleParams struct {
	Method ScaleMethod
	Center float64
	Spread float64
}

// ScaleMapper maps column name to the scaling fitted for it.
type ScaleMapper map[string]ScaleParams

// ScaleOptions configures Scale.
//
// Method selects the rescaling (Standard by default); Skip lists numeric
// columns left untouched. A nil *ScaleOptions means Standard, no skips.
type ScaleOptions struct {
	Method ScaleMethod
	Skip   []string
}

// Scale rescales every numeric column of f in place (on a copy).
//
// Statistics are fitted over the column's observed (non-NaN) values; NaN
// entries stay NaN in the output. A degenerate column (zero spread, e.g.
// constant values) scales to all zeros rather than dividing by zero.
// Non-numeric and skipped columns pass through unchanged.
//
// Returns the new frame and a ScaleMapper holding the fitted Center and
// Spread per column for consistent re-application to new data.
func Scale(f *frame.Frame, opts *ScaleOptions) (*frame.Frame, ScaleMapper, error) {
	if opts == nil {
		opts = &ScaleOptions{}
	}
	if opts.Method != Standard && opts.Method != MinMax && opts.Method != Robust {
		return nil, nil, fmt.Errorf("prep: scale method %d: %w", opts.Method, ErrBadScaleMethod)
	}
	skip := toSet(opts.Skip)
	mapper := make(ScaleMapper)

	out := f.Clone()
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

		center, spread := fitScale(opts.Method, observed(values))
		for i, v := range values {
			if math.IsNaN(v) {
				continue
			}
			if spread == 0 {
				values[i] = 0
			} else {
				values[i] = (v - center) / spread
			}
		}

		mapper[col.Name()] = ScaleParams{Method: opts.Method, Center: center, Spread: spread}
		if out, err = out.WithColumn(frame.NewNumeric(col.Name(), values)); err != nil {
			return nil, nil, err
		}
	}
	return out, mapper, nil
}

// fitScale computes the center/spread pair for one column's observed
// values. An empty input yields NaN statistics, mirroring the median
// convention in Interpolate.
func fitScale(method ScaleMethod, obs []float64) (center, spread float64) {
	if len(obs) == 0 {
		return math.NaN(), math.NaN()
	}
	switch method {
	case MinMax:
		lo, hi := obs[0], obs[0]
		for _, v := range obs {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		return lo, hi - lo
	case Robust:
		return median(obs), quantile(obs, 0.75) - quantile(obs, 0.25)
	default:
		mean := 0.0
		for _, v := range obs {
			mean += v
		}
		mean /= float64(len(obs))
		variance := 0.0
		for _, v := range obs {
			d := v - mean
			variance += d * d
		}
		variance /= float64(len(obs))
		return mean, math.Sqrt(variance)
	}
}
