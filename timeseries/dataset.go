// Package timeseries provides the dataset structure consumed by the configuration layer.
package timeseries

import (
	"errors"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
)

// ErrTimestampFormat indicates a date string that matches none of the known layouts.
var ErrTimestampFormat = errors.New("timeseries: unrecognized timestamp format")

// hoursPerDay converts timestamp offsets into the fractional-day time column.
const hoursPerDay = 24.0

// Dataset represents an observed time series with timestamps, a numeric time
// column, and target values.
type Dataset struct {
	Timestamps []time.Time
	Time       []float64 // days since the first observation
	Targets    []float64
	Name       string
}

// New creates a dataset from target values with synthetic hourly timestamps.
func New(targets []float64) *Dataset {
	timestamps := make([]time.Time, len(targets))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	d := &Dataset{
		Timestamps: timestamps,
		Targets:    targets,
	}
	d.Time = timeColumn(timestamps)
	return d
}

// NewDataset creates a dataset with explicit timestamps.
func NewDataset(timestamps []time.Time, targets []float64) (*Dataset, error) {
	if len(timestamps) != len(targets) {
		return nil, errors.New("timestamps and targets must have the same length")
	}
	return &Dataset{
		Timestamps: timestamps,
		Time:       timeColumn(timestamps),
		Targets:    targets,
	}, nil
}

// timeColumn renders timestamps as fractional days since the first observation.
func timeColumn(timestamps []time.Time) []float64 {
	if len(timestamps) == 0 {
		return nil
	}
	first := timestamps[0]
	col := make([]float64, len(timestamps))
	for i, ts := range timestamps {
		col[i] = ts.Sub(first).Hours() / hoursPerDay
	}
	return col
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.Targets)
}

// Mean calculates the arithmetic mean of the targets.
func (d *Dataset) Mean() float64 {
	if len(d.Targets) == 0 {
		return 0
	}
	return floats.Sum(d.Targets) / float64(len(d.Targets))
}

// Variance calculates the sample variance of the targets.
func (d *Dataset) Variance() float64 {
	if len(d.Targets) < 2 {
		return 0
	}
	mean := d.Mean()
	sumSq := 0.0
	for _, v := range d.Targets {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(d.Targets)-1)
}

// Std calculates the standard deviation of the targets.
func (d *Dataset) Std() float64 {
	return math.Sqrt(d.Variance())
}

// Min returns the minimum target value.
func (d *Dataset) Min() float64 {
	if len(d.Targets) == 0 {
		return math.NaN()
	}
	return floats.Min(d.Targets)
}

// Max returns the maximum target value.
func (d *Dataset) Max() float64 {
	if len(d.Targets) == 0 {
		return math.NaN()
	}
	return floats.Max(d.Targets)
}

// Copy creates a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	timestamps := make([]time.Time, len(d.Timestamps))
	copy(timestamps, d.Timestamps)

	timeCol := make([]float64, len(d.Time))
	copy(timeCol, d.Time)

	targets := make([]float64, len(d.Targets))
	copy(targets, d.Targets)

	return &Dataset{
		Timestamps: timestamps,
		Time:       timeCol,
		Targets:    targets,
		Name:       d.Name,
	}
}

// Span returns the distance between the earliest and latest date.
func Span(dates []time.Time) time.Duration {
	if len(dates) == 0 {
		return 0
	}
	first, last := dates[0], dates[0]
	for _, ts := range dates[1:] {
		if ts.Before(first) {
			first = ts
		}
		if ts.After(last) {
			last = ts
		}
	}
	return last.Sub(first)
}

// MinSpacing returns the smallest non-zero gap between consecutive sorted dates.
// It returns 0 when no positive gap exists.
func MinSpacing(dates []time.Time) time.Duration {
	if len(dates) < 2 {
		return 0
	}
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var minGap time.Duration
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Sub(sorted[i-1])
		if gap <= 0 {
			continue
		}
		if minGap == 0 || gap < minGap {
			minGap = gap
		}
	}
	return minGap
}

// ParseTimestamps parses date strings, trying the standard layouts when layout
// is empty. All values must parse for the call to succeed.
func ParseTimestamps(values []string, layout string) ([]time.Time, error) {
	layouts := []string{
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006",
	}
	if layout != "" {
		layouts = append([]string{layout}, layouts...)
	}

	timestamps := make([]time.Time, 0, len(values))
	for _, v := range values {
		parsed := false
		for _, l := range layouts {
			ts, err := time.Parse(l, v)
			if err == nil {
				timestamps = append(timestamps, ts)
				parsed = true
				break
			}
		}
		if !parsed {
			return nil, ErrTimestampFormat
		}
	}
	return timestamps, nil
}
