// Scale Transformations
//
// A transformation maps an interval of source values onto an interval of
// target values. The intervals are directed: Min need not be smaller than
// Max, which is how the y-axis gets flipped.
package cartesian

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. Trans maps x from the interval from to the
// interval to; Inverse maps y in to back to from.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps from to to logarithmically. Both edges of from must be
// positive; non-positive x are mapped to NaN.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		if x <= 0 {
			return math.NaN()
		}
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(10, t*math.Log10(from.Max/from.Min))
	},
	Ticker: plot.LogTicks{},
}
