package timeseries

import "math"

// DefaultFillWindow is the maximum number of consecutive missing
// observations a single known observation may be propagated across.
const DefaultFillWindow = 5

// ForwardFill returns a copy of the series where each known observation is
// propagated forward across up to window consecutive missing positions.
//
// The scan runs left to right. Propagation from a known value stops early
// at the next known value, which never gets overwritten and which may start
// a propagation run of its own. Positions filled by a run are not
// re-examined as sources. A non-positive window disables filling.
func ForwardFill(s *Series, window int) *Series {
	out := s.Copy()
	if window <= 0 {
		return out
	}
	forwardFillValues(out.Values, window)
	return out
}

// BackwardFill is the mirror image of ForwardFill: the scan runs right to
// left and known observations are propagated backward across up to window
// consecutive missing positions.
func BackwardFill(s *Series, window int) *Series {
	out := s.Copy()
	if window <= 0 {
		return out
	}
	backwardFillValues(out.Values, window)
	return out
}

// Fill repairs gaps in the series by running ForwardFill and then
// BackwardFill with the given window. The backward pass operates on the
// forward-pass result, so a position the forward pass filled counts as
// known and stops backward propagation. Known input observations are never
// altered; missing positions farther than window steps from a known
// observation in both directions stay missing.
func Fill(s *Series, window int) *Series {
	out := s.Copy()
	if window <= 0 {
		return out
	}
	forwardFillValues(out.Values, window)
	backwardFillValues(out.Values, window)
	return out
}

// FillValues applies the same two-pass repair to a raw value slice,
// returning a new slice of the same length.
func FillValues(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	if window <= 0 {
		return out
	}
	forwardFillValues(out, window)
	backwardFillValues(out, window)
	return out
}

func forwardFillValues(v []float64, window int) {
	i := 0
	for i < len(v) {
		if math.IsNaN(v[i]) {
			i++
			continue
		}
		src := v[i]
		j := i + 1
		steps := 0
		for j < len(v) && steps < window && math.IsNaN(v[j]) {
			v[j] = src
			j++
			steps++
		}
		// Resume past the covered range. If j stopped on a known value
		// that value becomes the next propagation source.
		i = j
	}
}

func backwardFillValues(v []float64, window int) {
	i := len(v) - 1
	for i >= 0 {
		if math.IsNaN(v[i]) {
			i--
			continue
		}
		src := v[i]
		j := i - 1
		steps := 0
		for j >= 0 && steps < window && math.IsNaN(v[j]) {
			v[j] = src
			j--
			steps++
		}
		i = j
	}
}
