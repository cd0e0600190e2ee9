package cartesian

import "math"

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN,NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are the same interval. Two unset edges
// are considered equal.
func (i Interval) Equal(j Interval) bool {
	return sameFloat(i.Min, j.Min) && sameFloat(i.Max, j.Max)
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// IsDegenerate reports whether i is unset or collapses to a single point.
func (i Interval) IsDegenerate() bool {
	return !i.IsSet() || i.Min == i.Max
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Span returns Max-Min.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}
	return a == b
}
