// Package surface adapts a gonum draw.Canvas to the fixed set of drawing
// capabilities renderers rely on.
//
// All coordinates are screen coordinates with the origin in the top-left
// corner. The adapter is built once per canvas; capabilities the canvas
// lacks (line dash offset state, image smoothing, text ascent) are
// provided by the adapter itself.
package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/vdobler/cartesian"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of canvases made by NewCanvas: one vg.Length
// point is one image pixel.
const DPI = 72

// NewCanvas returns an image canvas of w by h pixels on which screen
// coordinates are pixel coordinates.
func NewCanvas(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))
}

// AscentFactor approximates the ascent of a font as a multiple of the
// width of the letter "m".
const AscentFactor = 1.6

// TextMetrics are the dimensions of a text in screen units.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
	Height  float64
}

// Context2D is the capability set of a drawing surface.
type Context2D interface {
	Size() (width, height float64)

	Save()
	Restore()
	Clip(b cartesian.BBox)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(b cartesian.BBox)
	ClosePath()
	Stroke()
	Fill()

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	SetLineDash(dashes []float64)
	LineDash() []float64
	SetLineDashOffset(offset float64)
	LineDashOffset() float64
	SetImageSmoothingEnabled(enabled bool)
	ImageSmoothingEnabled() bool

	MeasureText(font vg.Font, text string) TextMetrics
	FillText(sty draw.TextStyle, x, y float64, text string)
	DrawGlyph(sty draw.GlyphStyle, x, y float64)
	DrawImage(img image.Image, b cartesian.BBox)
}

// state is the part of a Surface saved by Save.
type state struct {
	clip       cartesian.BBox
	stroke     color.Color
	fill       color.Color
	lineWidth  float64
	dashes     []float64
	dashOffset float64
	smoothing  bool
}

// Surface implements Context2D on top of a draw.Canvas.
type Surface struct {
	canvas draw.Canvas
	origin vg.Point // bottom-left corner of canvas
	height vg.Length

	state
	saved []state

	// path is a list of polylines; closed records which were closed.
	path   [][]vg.Point
	closed []bool
}

var _ Context2D = (*Surface)(nil)

// New wraps c. Screen coordinates are relative to the top-left corner
// of c. The clip box initially covers all of c.
func New(c draw.Canvas) *Surface {
	size := c.Size()
	s := &Surface{
		canvas: c,
		origin: c.Min,
		height: size.Y,
	}
	s.clip = cartesian.NewBBox(0, 0, float64(size.X), float64(size.Y))
	s.stroke = color.Black
	s.fill = color.Black
	s.lineWidth = 1
	s.smoothing = true
	return s
}

// Size returns the size of the underlying canvas.
func (s *Surface) Size() (width, height float64) {
	size := s.canvas.Size()
	return float64(size.X), float64(size.Y)
}

// point converts screen coordinates to canvas coordinates.
func (s *Surface) point(x, y float64) vg.Point {
	return vg.Point{X: s.origin.X + vg.Length(x), Y: s.origin.Y + s.height - vg.Length(y)}
}

// rect converts the screen box b to a canvas rectangle.
func (s *Surface) rect(b cartesian.BBox) vg.Rectangle {
	r := b.Rectangle(s.height)
	return vg.Rectangle{Min: r.Min.Add(s.origin), Max: r.Max.Add(s.origin)}
}

// clipCanvas returns the canvas restricted to the current clip box.
func (s *Surface) clipCanvas() draw.Canvas {
	return draw.Canvas{Canvas: s.canvas.Canvas, Rectangle: s.rect(s.clip)}
}

// Save pushes the current state.
func (s *Surface) Save() {
	st := s.state
	st.dashes = append([]float64(nil), s.dashes...)
	s.saved = append(s.saved, st)
}

// Restore pops the state pushed by the last Save. Unbalanced calls are
// ignored.
func (s *Surface) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.state = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Clip restricts further drawing to the intersection of the current clip
// box and b.
func (s *Surface) Clip(b cartesian.BBox) {
	s.clip = s.clip.Intersect(b)
}

// ClipBox returns the current clip box.
func (s *Surface) ClipBox() cartesian.BBox { return s.clip }

func (s *Surface) BeginPath() {
	s.path, s.closed = s.path[:0], s.closed[:0]
}

func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, []vg.Point{s.point(x, y)})
	s.closed = append(s.closed, false)
}

func (s *Surface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], s.point(x, y))
}

// Rect adds b as a closed sub-path.
func (s *Surface) Rect(b cartesian.BBox) {
	s.MoveTo(b.Left, b.Top)
	s.LineTo(b.Right, b.Top)
	s.LineTo(b.Right, b.Bottom)
	s.LineTo(b.Left, b.Bottom)
	s.ClosePath()
}

func (s *Surface) ClosePath() {
	if len(s.path) == 0 {
		return
	}
	last := len(s.path) - 1
	s.closed[last] = true
}

func (s *Surface) lineStyle() draw.LineStyle {
	dashes := make([]vg.Length, len(s.dashes))
	for i, d := range s.dashes {
		dashes[i] = vg.Length(d)
	}
	return draw.LineStyle{
		Color:    s.stroke,
		Width:    vg.Length(s.lineWidth),
		Dashes:   dashes,
		DashOffs: vg.Length(s.dashOffset),
	}
}

// Stroke strokes the current path clipped to the clip box.
func (s *Surface) Stroke() {
	if s.stroke == nil || s.lineWidth <= 0 {
		return
	}
	c := s.clipCanvas()
	sty := s.lineStyle()
	for i, pts := range s.path {
		if s.closed[i] && len(pts) > 1 {
			pts = append(pts, pts[0])
		}
		if len(pts) < 2 {
			continue
		}
		c.StrokeLines(sty, c.ClipLinesXY(pts)...)
	}
}

// Fill fills every sub-path of the current path clipped to the clip box.
func (s *Surface) Fill() {
	if s.fill == nil {
		return
	}
	c := s.clipCanvas()
	for _, pts := range s.path {
		if len(pts) < 3 {
			continue
		}
		clipped := c.ClipPolygonXY(pts)
		if len(clipped) < 3 {
			continue
		}
		c.FillPolygon(s.fill, clipped)
	}
}

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetLineWidth(w float64)       { s.lineWidth = w }

func (s *Surface) SetLineDash(dashes []float64) {
	s.dashes = append([]float64(nil), dashes...)
}

func (s *Surface) LineDash() []float64 {
	return append([]float64(nil), s.dashes...)
}

func (s *Surface) SetLineDashOffset(offset float64) { s.dashOffset = offset }
func (s *Surface) LineDashOffset() float64          { return s.dashOffset }

func (s *Surface) SetImageSmoothingEnabled(enabled bool) { s.smoothing = enabled }
func (s *Surface) ImageSmoothingEnabled() bool           { return s.smoothing }

// MeasureText measures text set in font. The ascent is not taken from the
// font but approximated as AscentFactor times the width of "m".
func (s *Surface) MeasureText(font vg.Font, text string) TextMetrics {
	ext := font.Extents()
	return TextMetrics{
		Width:   float64(font.Width(text)),
		Ascent:  float64(font.Width("m")) * AscentFactor,
		Descent: float64(ext.Descent),
		Height:  float64(ext.Height),
	}
}

// FillText draws text at the screen point (x, y) if it lies inside the
// clip box.
func (s *Surface) FillText(sty draw.TextStyle, x, y float64, text string) {
	if !s.clip.Contains(x, y) {
		return
	}
	s.canvas.FillText(sty, s.point(x, y), text)
}

// DrawGlyph draws a glyph centered on (x, y) if the center lies inside
// the clip box.
func (s *Surface) DrawGlyph(sty draw.GlyphStyle, x, y float64) {
	c := s.clipCanvas()
	c.DrawGlyph(sty, s.point(x, y))
}

// DrawImage draws img stretched onto the screen box b. The visible part
// is resampled to the pixel size of the box, with nearest neighbour
// sampling if image smoothing is disabled.
func (s *Surface) DrawImage(img image.Image, b cartesian.BBox) {
	b = b.Canonic()
	vis := b.Intersect(s.clip)
	if vis.Width() <= 0 || vis.Height() <= 0 || b.Width() <= 0 || b.Height() <= 0 {
		return
	}

	// The part of img which ends up in vis.
	ib := img.Bounds()
	fx := float64(ib.Dx()) / b.Width()
	fy := float64(ib.Dy()) / b.Height()
	src := image.Rect(
		ib.Min.X+int(math.Floor((vis.Left-b.Left)*fx)),
		ib.Min.Y+int(math.Floor((vis.Top-b.Top)*fy)),
		ib.Min.X+int(math.Ceil((vis.Right-b.Left)*fx)),
		ib.Min.Y+int(math.Ceil((vis.Bottom-b.Top)*fy)),
	).Intersect(ib)
	if src.Empty() {
		return
	}

	w, h := int(math.Ceil(vis.Width())), int(math.Ceil(vis.Height()))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	if !s.smoothing {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	s.canvas.DrawImage(s.rect(vis), dst)
}
