// Package timeseries provides the annual series data structure and gap
// repair used by the inequality report.
package timeseries

import (
	"errors"
	"math"
	"sort"
)

// Series represents an annual series of observations. Positions correspond
// to consecutive years; a missing observation is stored as NaN.
type Series struct {
	Years  []int
	Values []float64
	Name   string
}

// New creates a series from values with synthetic year indices 0..n-1.
func New(values []float64) *Series {
	years := make([]int, len(values))
	for i := range years {
		years[i] = i
	}
	return &Series{
		Years:  years,
		Values: values,
	}
}

// NewWithYears creates a series with explicit year indices.
func NewWithYears(years []int, values []float64) (*Series, error) {
	if len(years) != len(values) {
		return nil, errors.New("years and values must have the same length")
	}
	return &Series{
		Years:  years,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Present reports whether the observation at index i is known.
func (s *Series) Present(i int) bool {
	return i >= 0 && i < len(s.Values) && !math.IsNaN(s.Values[i])
}

// CountPresent returns the number of known observations.
func (s *Series) CountPresent() int {
	n := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Mean calculates the arithmetic mean of the known observations.
// Returns NaN when the series has no known observations.
func (s *Series) Mean() float64 {
	sum := 0.0
	n := 0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Variance calculates the sample variance of the known observations.
func (s *Series) Variance() float64 {
	mean := s.Mean()
	if math.IsNaN(mean) {
		return math.NaN()
	}
	sumSq := 0.0
	n := 0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		diff := v - mean
		sumSq += diff * diff
		n++
	}
	if n < 2 {
		return 0
	}
	return sumSq / float64(n-1)
}

// Std calculates the sample standard deviation of the known observations.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum known observation, or NaN if none is known.
func (s *Series) Min() float64 {
	min := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum known observation, or NaN if none is known.
func (s *Series) Max() float64 {
	max := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Median returns the median of the known observations, or NaN if none is
// known.
func (s *Series) Median() float64 {
	known := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			known = append(known, v)
		}
	}
	if len(known) == 0 {
		return math.NaN()
	}
	sort.Float64s(known)

	n := len(known)
	if n%2 == 0 {
		return (known[n/2-1] + known[n/2]) / 2
	}
	return known[n/2]
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	years := make([]int, len(s.Years))
	copy(years, s.Years)

	return &Series{
		Years:  years,
		Values: values,
		Name:   s.Name,
	}
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	years := make([]int, len(values))
	if len(s.Years) >= end {
		copy(years, s.Years[start:end])
	}

	return &Series{
		Years:  years,
		Values: values,
		Name:   s.Name,
	}
}
