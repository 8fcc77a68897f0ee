package geom

import "math"

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Mid returns the value halfway between the edges of i. The edges need not
// be ordered.
func (i Interval) Mid() float64 {
	e := i.Extent()
	return e.Max - math.Abs(e.Max-e.Min)/2
}

// Extent returns i with its edges in ascending order.
func (i Interval) Extent() Interval {
	if i.Min > i.Max {
		return Interval{i.Max, i.Min}
	}
	return i
}

// ----------------------------------------------------------------------------
// LinearScale

// LinearScale maps the Domain linearly onto the Range. The edges of the
// range may be given in either order, e.g. [AxisSize, 0] for a vertical
// scale growing upwards.
type LinearScale struct {
	Domain Interval
	Range  Interval
}

// Map maps the data value x to a pixel position.
// A degenerate domain maps every value to Range.Min; a NaN value or an
// unset domain yields NaN.
func (s LinearScale) Map(x float64) float64 {
	from, to := s.Domain, s.Range
	if math.IsNaN(x) || math.IsNaN(from.Min) || math.IsNaN(from.Max) {
		return math.NaN()
	}
	if from.Min == from.Max {
		return to.Min
	}
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}
