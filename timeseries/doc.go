// Package timeseries provides time series data structures and utilities.
//
// This package includes the Dataset type pairing timestamps with target
// values, along with the calendar helpers the configuration layer uses to
// inspect a dataset before training.
//
// # Creating a Dataset
//
// Create a dataset from a slice, with synthetic hourly timestamps:
//
//	targets := []float64{100, 102, 105, 103, 108, 110}
//	data := timeseries.New(targets)
//
// Or pair explicit timestamps with targets:
//
//	data, err := timeseries.NewDataset(timestamps, targets)
//
// The numeric Time column holds each observation's offset from the first
// timestamp in fractional days. It is derived once at construction.
//
// # Basic Statistics
//
// Calculate summary statistics over the targets:
//
//	mean := data.Mean()
//	std := data.Std()
//	min := data.Min()
//	max := data.Max()
//
// # Calendar Inspection
//
// Measure the date range and sampling density of a timestamp column:
//
//	span := timeseries.Span(data.Timestamps)       // earliest to latest
//	gap := timeseries.MinSpacing(data.Timestamps)  // smallest positive gap
//
// MinSpacing returns 0 when no positive gap exists, so callers comparing
// against a threshold treat an all-duplicate column as "below threshold".
//
// # Parsing Timestamps
//
// Parse date strings with a known layout, or let the package try the
// standard layouts:
//
//	timestamps, err := timeseries.ParseTimestamps(values, "2006-01-02")
//	timestamps, err = timeseries.ParseTimestamps(values, "")
package timeseries
