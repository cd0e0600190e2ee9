package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/renderer"
	"github.com/vdobler/cartesian/surface"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
)

// Aesthetic is a function mapping a certain data point to an aesthetic.
type Aesthetic func(i int) float64

// DiscreteAesthetic is a function mapping a certain data point to a
// discrete aesthetic like Shape or Palette index.
type DiscreteAesthetic func(i int) int

// pointColor returns the palette color of point i or base.
func pointColor(base color.Color, i int, palette DiscreteAesthetic) color.Color {
	if palette != nil {
		return plotutil.Color(palette(i))
	}
	return base
}

// setLineStyle configures ctx to stroke with ls.
func setLineStyle(ctx surface.Context2D, ls draw.LineStyle) {
	ctx.SetStrokeColor(ls.Color)
	ctx.SetLineWidth(float64(ls.Width))
	ctx.SetLineDash(renderer.Dashes(ls))
	ctx.SetLineDashOffset(float64(ls.DashOffs))
}

// contextOf returns the drawing surface of a view.
func contextOf(b *renderer.Base) (surface.Context2D, error) {
	ctx := b.Context()
	if ctx == nil {
		return nil, errDetached
	}
	return ctx, nil
}

// screenBox maps the data rectangle (x,y)-(u,v) to a canonic screen box.
func screenBox(cs *cartesian.CoordinateSystem, x, y, u, v float64) (cartesian.BBox, error) {
	sx, sy, err := cs.MapPoint(x, y)
	if err != nil {
		return cartesian.BBox{}, err
	}
	su, sv, err := cs.MapPoint(u, v)
	if err != nil {
		return cartesian.BBox{}, err
	}
	return cartesian.NewBBox(sx, sv, su, sy).Canonic(), nil
}

func finite(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
