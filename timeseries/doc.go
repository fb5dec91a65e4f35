// Package timeseries provides annual series data structures and gap repair.
//
// This package includes the Series type for representing per-country annual
// observations, along with the windowed propagation used to repair sparse
// coverage before charting.
//
// # Creating a Series
//
// Create a series from a slice, using NaN for missing observations:
//
//	values := []float64{34.1, math.NaN(), math.NaN(), 33.8}
//	series := timeseries.New(values)
//
// Or with explicit year indices:
//
//	series, err := timeseries.NewWithYears(
//	    []int{2017, 2018, 2019, 2020},
//	    values,
//	)
//
// # Gap Repair
//
// Repair gaps by propagating known observations across up to five missing
// years in each direction:
//
//	filled := timeseries.Fill(series, timeseries.DefaultFillWindow)
//
// The forward pass runs first; the backward pass runs over its result, so
// backward propagation stops at forward-filled positions just as it stops
// at original observations. Known input values are never altered, and
// missing positions farther than the window from any known observation in
// both directions stay missing.
//
// The passes are also available individually:
//
//	ahead := timeseries.ForwardFill(series, 5)
//	back := timeseries.BackwardFill(series, 5)
//
// # Basic Statistics
//
// Summary statistics skip missing observations:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
package timeseries
