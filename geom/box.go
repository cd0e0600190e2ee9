package geom

import (
	"math"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/renderer"
)

// BoxAnnotation shades a rectangle given in data coordinates. A NaN edge
// extends the box to the corresponding edge of the frame.
type BoxAnnotation struct {
	renderer.Model
	Left, Bottom, Right, Top float64
}

// NewBoxAnnotation returns a box annotation covering the whole frame.
func NewBoxAnnotation(name string) *BoxAnnotation {
	nan := math.NaN()
	return &BoxAnnotation{Model: *boxSchema.New(name), Left: nan, Bottom: nan, Right: nan, Top: nan}
}

func (b *BoxAnnotation) Base() *renderer.Model { return &b.Model }

func (b *BoxAnnotation) NewView(parent renderer.Parent) (renderer.View, error) {
	v, err := NewBoxAnnotationView(b, parent)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// BoxAnnotationView draws a BoxAnnotation.
type BoxAnnotationView struct {
	renderer.Base
	b *BoxAnnotation
}

func NewBoxAnnotationView(b *BoxAnnotation, parent renderer.Parent) (*BoxAnnotationView, error) {
	v := &BoxAnnotationView{b: b}
	return v, v.Initialize(v, &b.Model, parent)
}

// ScreenBox returns the box in screen coordinates.
func (v *BoxAnnotationView) ScreenBox() (cartesian.BBox, error) {
	cs := v.Scope()
	if err := cs.Resolve(); err != nil {
		return cartesian.BBox{}, err
	}
	box := cs.Frame().BBox()
	xs, ys := cs.Scales()
	edge := func(d float64, s cartesian.Scale, dflt float64) float64 {
		if math.IsNaN(d) {
			return dflt
		}
		return s.Compute(d)
	}
	return cartesian.NewBBox(
		edge(v.b.Left, xs, box.Left),
		edge(v.b.Top, ys, box.Top),
		edge(v.b.Right, xs, box.Right),
		edge(v.b.Bottom, ys, box.Bottom),
	).Canonic(), nil
}

func (v *BoxAnnotationView) Render() error {
	ctx, err := contextOf(&v.Base)
	if err != nil {
		return err
	}
	box, err := v.ScreenBox()
	if err != nil {
		return err
	}
	vis := v.Visuals()
	ctx.BeginPath()
	ctx.Rect(box)
	ctx.SetFillColor(vis.Fill)
	ctx.Fill()
	if v.b.Model.Color != nil {
		setLineStyle(ctx, vis.Line)
		ctx.Stroke()
	}
	return nil
}

func (v *BoxAnnotationView) InteractiveBBox(sx, sy float64) (cartesian.BBox, bool) {
	box, err := v.ScreenBox()
	if err != nil || !box.Contains(sx, sy) {
		return cartesian.BBox{}, false
	}
	return box, true
}

func (v *BoxAnnotationView) InteractiveHit(sx, sy float64) bool {
	_, ok := v.InteractiveBBox(sx, sy)
	return ok
}
