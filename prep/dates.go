package prep

import (
	"fmt"
	"regexp"
	"time"

	"github.com/araddon/dateparse"

	"github.com/djordjijeK/structura/frame"
)

// dateSuffix strips a trailing "date"/"Date" token from a column name to
// form the derived-column stem ("SaleDate" → "Sale", "date" → "").
var dateSuffix = regexp.MustCompile(`[Dd]ate$`)

// calendar attribute names, in output order.
var dateAttrs = []string{
	"year", "month", "week", "day",
	"dayofweek", "dayofyear",
	"is_month_end", "is_month_start",
	"is_quarter_end", "is_quarter_start",
	"is_year_end", "is_year_start",
}

var timeAttrs = []string{"hour", "minute", "second"}

// ExtractDateFeatures expands date columns into calendar feature columns.
//
// Description:
//
//	Each named column is processed independently, in the order given.
//	A Datetime column is used as-is; a String column is coerced by
//	parsing every value with a permissive, layout-detecting parser. A
//	value that does not parse, or a column of any other dtype, fails the
//	call with ErrDateCoercion. An absent column fails with
//	frame.ErrColumnNotFound.
//
//	For every attribute in {year, month, week, day, dayofweek, dayofyear,
//	is_month_end, is_month_start, is_quarter_end, is_quarter_start,
//	is_year_end, is_year_start} — plus {hour, minute, second} when
//	opts.Time — a column named {stem}_{attribute} is appended, where stem
//	is the column name with a trailing "date"/"Date" removed. Counting
//	attributes are Numeric; is_* attributes are Bool. Week is the ISO
//	week number and dayofweek counts Monday=0 through Sunday=6.
//
//	The original column is dropped afterwards unless opts.Keep is set.
//
// Example:
//
//	out, err := prep.ExtractDateFeatures(f, []string{"SaleDate"}, nil)
//	// out has Sale_year, Sale_month, ... and no SaleDate column.
func ExtractDateFeatures(f *frame.Frame, dateColumns []string, opts *DateOptions) (*frame.Frame, error) {
	if opts == nil {
		def := DefaultDateOptions()
		opts = &def
	}
	attrs := dateAttrs
	if opts.Time {
		attrs = append(append([]string{}, dateAttrs...), timeAttrs...)
	}

	out := f.Clone()
	for _, name := range dateColumns {
		col, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		times, err := coerceToTimes(col)
		if err != nil {
			return nil, err
		}

		stem := dateSuffix.ReplaceAllString(name, "")
		for _, attr := range attrs {
			derived := dateFeature(stem+"_"+attr, attr, times)
			if out, err = out.WithColumn(derived); err != nil {
				return nil, err
			}
		}
		if !opts.Keep {
			if out, err = out.Drop(name); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// coerceToTimes yields the column's values as time.Time, parsing string
// columns value by value. No silent fallback: the first unparseable value
// aborts the coercion.
func coerceToTimes(col *frame.Column) ([]time.Time, error) {
	switch col.Type() {
	case frame.Datetime:
		return col.Times()
	case frame.String:
		raw, err := col.Strings()
		if err != nil {
			return nil, err
		}
		times := make([]time.Time, len(raw))
		for i, v := range raw {
			t, err := dateparse.ParseAny(v)
			if err != nil {
				return nil, fmt.Errorf("prep: column %q value %q: %w", col.Name(), v, ErrDateCoercion)
			}
			times[i] = t
		}
		return times, nil
	default:
		return nil, fmt.Errorf("prep: column %q is %s: %w", col.Name(), col.Type(), ErrDateCoercion)
	}
}

// dateFeature materializes one attribute column over times.
func dateFeature(name, attr string, times []time.Time) *frame.Column {
	switch attr {
	case "is_month_end", "is_month_start", "is_quarter_end", "is_quarter_start",
		"is_year_end", "is_year_start":
		flags := make([]bool, len(times))
		for i, t := range times {
			flags[i] = dateFlag(attr, t)
		}
		return frame.NewBool(name, flags)
	default:
		nums := make([]float64, len(times))
		for i, t := range times {
			nums[i] = float64(dateNumber(attr, t))
		}
		return frame.NewNumeric(name, nums)
	}
}

func dateNumber(attr string, t time.Time) int {
	switch attr {
	case "year":
		return t.Year()
	case "month":
		return int(t.Month())
	case "week":
		_, week := t.ISOWeek()
		return week
	case "day":
		return t.Day()
	case "dayofweek":
		// Monday=0 .. Sunday=6.
		return (int(t.Weekday()) + 6) % 7
	case "dayofyear":
		return t.YearDay()
	case "hour":
		return t.Hour()
	case "minute":
		return t.Minute()
	case "second":
		return t.Second()
	default:
		return 0
	}
}

func dateFlag(attr string, t time.Time) bool {
	switch attr {
	case "is_month_end":
		return t.AddDate(0, 0, 1).Day() == 1
	case "is_month_start":
		return t.Day() == 1
	case "is_quarter_end":
		return t.Month()%3 == 0 && t.AddDate(0, 0, 1).Day() == 1
	case "is_quarter_start":
		return t.Month()%3 == 1 && t.Day() == 1
	case "is_year_end":
		return t.Month() == time.December && t.Day() == 31
	case "is_year_start":
		return t.YearDay() == 1
	default:
		return false
	}
}
