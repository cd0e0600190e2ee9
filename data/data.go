// Package data contains the data interfaces used by the geoms and
// prototypical implementations.
package data

import (
	"github.com/vdobler/cartesian"
	"gonum.org/v1/plot/plotter"
)

// XYUVer wraps the Len and XYUV methods.
type XYUVer interface {
	// Len returns the number of x, y, u, v quadruples.
	Len() int

	// XYUV returns an x, y, u, v quadruple.
	XYUV(int) (x, y, u, v float64)
}

// XYUVBounds returns the intervals covered by x and u and by y and v.
func XYUVBounds(xyuvs XYUVer) (x, y cartesian.Interval) {
	x, y = cartesian.UnsetInterval(), cartesian.UnsetInterval()
	for i := 0; i < xyuvs.Len(); i++ {
		xi, yi, ui, vi := xyuvs.XYUV(i)
		x.Update(xi, ui)
		y.Update(yi, vi)
	}
	return x, y
}

// XYUVs implements the XYUVer interface.
type XYUVs []struct{ X, Y, U, V float64 }

func (d XYUVs) Len() int                        { return len(d) }
func (d XYUVs) XYUV(i int) (x, y, u, v float64) { return d[i].X, d[i].Y, d[i].U, d[i].V }

// XYBounds returns the intervals covered by the x and y values of xys.
// NaN values are skipped.
func XYBounds(xys plotter.XYer) (x, y cartesian.Interval) {
	x, y = cartesian.UnsetInterval(), cartesian.UnsetInterval()
	for i := 0; i < xys.Len(); i++ {
		xi, yi := xys.XY(i)
		x.Update(xi)
		y.Update(yi)
	}
	return x, y
}

// Columns splits xys into its x and y values.
func Columns(xys plotter.XYer) (xs, ys []float64) {
	n := xys.Len()
	xs, ys = make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i], ys[i] = xys.XY(i)
	}
	return xs, ys
}

// Synthetic returns the synthetic coordinates of factors in r. Unknown
// factors are mapped to NaN.
func Synthetic(r *cartesian.FactorRange, factors []string) []float64 {
	xs := make([]float64, len(factors))
	for i, f := range factors {
		xs[i], _ = r.Synthetic(f)
	}
	return xs
}
