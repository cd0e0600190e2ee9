package cartesian

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// BBox

// BBox is an axis-aligned rectangle in screen coordinates. The screen
// origin is the top-left corner, so Top <= Bottom for a proper box.
type BBox struct {
	Left, Top, Right, Bottom float64
}

// NewBBox returns the box spanned by the given edges.
func NewBBox(left, top, right, bottom float64) BBox {
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (b BBox) Width() float64  { return b.Right - b.Left }
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// Contains reports whether the screen point (sx, sy) lies in b.
func (b BBox) Contains(sx, sy float64) bool {
	return sx >= b.Left && sx <= b.Right && sy >= b.Top && sy <= b.Bottom
}

// Canonic returns b with Left <= Right and Top <= Bottom.
func (b BBox) Canonic() BBox {
	if b.Left > b.Right {
		b.Left, b.Right = b.Right, b.Left
	}
	if b.Top > b.Bottom {
		b.Top, b.Bottom = b.Bottom, b.Top
	}
	return b
}

// Intersect returns the overlap of b and c. The result has zero width or
// height if they do not overlap.
func (b BBox) Intersect(c BBox) BBox {
	b, c = b.Canonic(), c.Canonic()
	r := BBox{
		Left:   max64(b.Left, c.Left),
		Top:    max64(b.Top, c.Top),
		Right:  min64(b.Right, c.Right),
		Bottom: min64(b.Bottom, c.Bottom),
	}
	if r.Right < r.Left {
		r.Right = r.Left
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	return r
}

// Rectangle converts b into a gonum rectangle on a canvas of the given
// height. Gonum canvases have their origin in the bottom-left corner.
func (b BBox) Rectangle(height vg.Length) vg.Rectangle {
	b = b.Canonic()
	return vg.Rectangle{
		Min: vg.Point{X: vg.Length(b.Left), Y: height - vg.Length(b.Bottom)},
		Max: vg.Point{X: vg.Length(b.Right), Y: height - vg.Length(b.Top)},
	}
}

// XView returns the transform from frame-relative x to screen x.
func (b BBox) XView() ViewTransform { return ViewTransform{Origin: b.Left, Sign: 1} }

// YView returns the transform from frame-relative y (growing upwards)
// to screen y.
func (b BBox) YView() ViewTransform { return ViewTransform{Origin: b.Bottom, Sign: -1} }

func (b BBox) String() string {
	return fmt.Sprintf("BBox[l=%g t=%g r=%g b=%g]", b.Left, b.Top, b.Right, b.Bottom)
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ----------------------------------------------------------------------------
// ViewTransform

// ViewTransform is a one-dimensional transform v -> Origin + Sign*v.
type ViewTransform struct {
	Origin float64
	Sign   float64
}

func (t ViewTransform) Compute(v float64) float64 { return t.Origin + t.Sign*v }
func (t ViewTransform) Invert(s float64) float64  { return (s - t.Origin) / t.Sign }
