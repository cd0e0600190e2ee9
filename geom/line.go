package geom

import (
	"sort"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/data"
	"github.com/vdobler/cartesian/renderer"
	"gonum.org/v1/plot/plotter"
)

// Line connects the (x,y) points. Non-finite points break the line.
type Line struct {
	renderer.Model
	XY plotter.XYer

	// SortByX connects the points in order of increasing x instead of
	// data order.
	SortByX bool
}

// NewLine returns a visible line renderer of xy.
func NewLine(name string, xy plotter.XYer) *Line {
	return &Line{Model: *lineSchema.New(name), XY: xy}
}

func (l *Line) Base() *renderer.Model { return &l.Model }

func (l *Line) NewView(parent renderer.Parent) (renderer.View, error) {
	v, err := NewLineView(l, parent)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// LineView draws a Line.
type LineView struct {
	renderer.Base
	l *Line
}

func NewLineView(l *Line, parent renderer.Parent) (*LineView, error) {
	v := &LineView{l: l}
	return v, v.Initialize(v, &l.Model, parent)
}

// points returns the data points in drawing order.
func (v *LineView) points() (xs, ys []float64) {
	xs, ys = data.Columns(v.l.XY)
	if !v.l.SortByX {
		return xs, ys
	}
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })
	sx, sy := make([]float64, len(xs)), make([]float64, len(ys))
	for i, j := range idx {
		sx[i], sy[i] = xs[j], ys[j]
	}
	return sx, sy
}

func (v *LineView) Render() error {
	ctx, err := contextOf(&v.Base)
	if err != nil {
		return err
	}
	sxs, sys, err := v.Scope().MapToScreen(v.points())
	if err != nil {
		return err
	}
	setLineStyle(ctx, v.Visuals().Line)
	ctx.BeginPath()
	penUp := true
	for i := range sxs {
		if !finite(sxs[i], sys[i]) {
			penUp = true
			continue
		}
		if penUp {
			ctx.MoveTo(sxs[i], sys[i])
			penUp = false
		} else {
			ctx.LineTo(sxs[i], sys[i])
		}
	}
	ctx.Stroke()
	return nil
}

func (v *LineView) DataBounds() (x, y cartesian.Interval) {
	return data.XYBounds(v.l.XY)
}
