package geom

import (
	"math"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/data"
	"github.com/vdobler/cartesian/renderer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Scatter draws a glyph at every (x,y) point.
type Scatter struct {
	renderer.Model
	XY plotter.XYer

	Palette DiscreteAesthetic // index into plotutil.DefaultColors
	Shape   DiscreteAesthetic // index into plotutil.DefaultGlyphShapes
	Radius  Aesthetic         // glyph radius in screen units
}

// NewScatter returns a visible scatter renderer of xy.
func NewScatter(name string, xy plotter.XYer) *Scatter {
	return &Scatter{Model: *scatterSchema.New(name), XY: xy}
}

func (s *Scatter) Base() *renderer.Model { return &s.Model }

func (s *Scatter) NewView(parent renderer.Parent) (renderer.View, error) {
	v, err := NewScatterView(s, parent)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ScatterView draws a Scatter.
type ScatterView struct {
	renderer.Base
	s *Scatter
}

func NewScatterView(s *Scatter, parent renderer.Parent) (*ScatterView, error) {
	v := &ScatterView{s: s}
	return v, v.Initialize(v, &s.Model, parent)
}

func (v *ScatterView) radius(i int) float64 {
	if v.s.Radius != nil {
		return v.s.Radius(i)
	}
	return float64(v.Visuals().Glyph.Radius)
}

func (v *ScatterView) Render() error {
	ctx, err := contextOf(&v.Base)
	if err != nil {
		return err
	}
	xs, ys := data.Columns(v.s.XY)
	sxs, sys, err := v.Scope().MapToScreen(xs, ys)
	if err != nil {
		return err
	}
	base := v.Visuals().Glyph
	for i := range sxs {
		if !finite(sxs[i], sys[i]) {
			continue
		}
		sty := base
		sty.Color = pointColor(base.Color, i, v.s.Palette)
		if v.s.Shape != nil {
			sty.Shape = plotutil.Shape(v.s.Shape(i))
		}
		sty.Radius = vg.Length(v.radius(i))
		if sty.Radius <= 0 {
			continue
		}
		ctx.DrawGlyph(sty, sxs[i], sys[i])
	}
	return nil
}

// InteractiveHit reports whether (sx, sy) lies within the glyph radius
// of any point.
func (v *ScatterView) InteractiveHit(sx, sy float64) bool {
	xs, ys := data.Columns(v.s.XY)
	sxs, sys, err := v.Scope().MapToScreen(xs, ys)
	if err != nil {
		return false
	}
	for i := range sxs {
		if r := v.radius(i); r > 0 && math.Hypot(sxs[i]-sx, sys[i]-sy) <= r {
			return true
		}
	}
	return false
}

func (v *ScatterView) DataBounds() (x, y cartesian.Interval) {
	return data.XYBounds(v.s.XY)
}
