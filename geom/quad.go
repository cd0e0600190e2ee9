package geom

import (
	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/data"
	"github.com/vdobler/cartesian/renderer"
)

// Quad draws axis aligned rectangles spanned by (x,y) and (u,v).
type Quad struct {
	renderer.Model
	XYUV data.XYUVer

	Palette DiscreteAesthetic // fill color, index into plotutil.DefaultColors
}

// NewQuad returns a visible quad renderer of xyuv.
func NewQuad(name string, xyuv data.XYUVer) *Quad {
	return &Quad{Model: *quadSchema.New(name), XYUV: xyuv}
}

func (q *Quad) Base() *renderer.Model { return &q.Model }

func (q *Quad) NewView(parent renderer.Parent) (renderer.View, error) {
	v, err := NewQuadView(q, parent)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// QuadView draws a Quad.
type QuadView struct {
	renderer.Base
	q *Quad
}

func NewQuadView(q *Quad, parent renderer.Parent) (*QuadView, error) {
	v := &QuadView{q: q}
	return v, v.Initialize(v, &q.Model, parent)
}

// boxes returns the screen boxes of all finite rectangles.
func (v *QuadView) boxes() ([]cartesian.BBox, []int, error) {
	n := v.q.XYUV.Len()
	boxes, idx := make([]cartesian.BBox, 0, n), make([]int, 0, n)
	for i := 0; i < n; i++ {
		x, y, u, w := v.q.XYUV.XYUV(i)
		if !finite(x, y, u, w) {
			continue
		}
		b, err := screenBox(v.Scope(), x, y, u, w)
		if err != nil {
			return nil, nil, err
		}
		boxes, idx = append(boxes, b), append(idx, i)
	}
	return boxes, idx, nil
}

func (v *QuadView) Render() error {
	ctx, err := contextOf(&v.Base)
	if err != nil {
		return err
	}
	boxes, idx, err := v.boxes()
	if err != nil {
		return err
	}
	vis := v.Visuals()
	setLineStyle(ctx, vis.Line)
	for k, b := range boxes {
		ctx.BeginPath()
		ctx.Rect(b)
		ctx.SetFillColor(pointColor(vis.Fill, idx[k], v.q.Palette))
		ctx.Fill()
		ctx.Stroke()
	}
	return nil
}

// InteractiveBBox returns the topmost rectangle containing (sx, sy).
func (v *QuadView) InteractiveBBox(sx, sy float64) (cartesian.BBox, bool) {
	boxes, _, err := v.boxes()
	if err != nil {
		return cartesian.BBox{}, false
	}
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].Contains(sx, sy) {
			return boxes[i], true
		}
	}
	return cartesian.BBox{}, false
}

func (v *QuadView) InteractiveHit(sx, sy float64) bool {
	_, ok := v.InteractiveBBox(sx, sy)
	return ok
}

func (v *QuadView) DataBounds() (x, y cartesian.Interval) {
	return data.XYUVBounds(v.q.XYUV)
}
