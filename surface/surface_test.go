package surface

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/vdobler/cartesian"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func newSurface(w, h vg.Length) (*Surface, *vgimg.Canvas) {
	img := NewCanvas(w, h)
	return New(draw.New(img)), img
}

func TestCapabilities(t *testing.T) {
	s, _ := newSurface(200, 100)

	if !s.ImageSmoothingEnabled() {
		t.Errorf("image smoothing disabled by default")
	}
	s.SetImageSmoothingEnabled(false)
	if s.ImageSmoothingEnabled() {
		t.Errorf("image smoothing still enabled")
	}

	s.SetLineDash([]float64{4, 2})
	s.SetLineDashOffset(3)
	if got := s.LineDashOffset(); got != 3 {
		t.Errorf("LineDashOffset() = %g", got)
	}
	sty := s.lineStyle()
	if sty.DashOffs != 3 || len(sty.Dashes) != 2 || sty.Dashes[0] != 4 {
		t.Errorf("line style %+v does not carry dashes", sty)
	}
}

func TestSaveRestore(t *testing.T) {
	s, _ := newSurface(200, 100)
	full := s.ClipBox()
	if full != cartesian.NewBBox(0, 0, 200, 100) {
		t.Fatalf("initial clip %v", full)
	}

	s.Save()
	s.SetLineDashOffset(7)
	s.SetLineDash([]float64{1})
	s.Clip(cartesian.NewBBox(10, 10, 50, 50))
	if got := s.ClipBox(); got != cartesian.NewBBox(10, 10, 50, 50) {
		t.Errorf("clip %v", got)
	}
	s.Restore()

	if s.LineDashOffset() != 0 || len(s.LineDash()) != 0 || s.ClipBox() != full {
		t.Errorf("state not restored: offset=%g dash=%v clip=%v",
			s.LineDashOffset(), s.LineDash(), s.ClipBox())
	}
	s.Restore() // unbalanced, ignored
}

func TestMeasureTextAscent(t *testing.T) {
	s, _ := newSurface(200, 100)
	font, err := vg.MakeFont("Helvetica", 12)
	if err != nil {
		t.Fatal(err)
	}
	m := s.MeasureText(font, "Hello")
	want := float64(font.Width("m")) * AscentFactor
	if math.Abs(m.Ascent-want) > 1e-9 {
		t.Errorf("Ascent = %g, want %g", m.Ascent, want)
	}
	if m.Width <= 0 || m.Width != float64(font.Width("Hello")) {
		t.Errorf("Width = %g", m.Width)
	}
}

func TestFillUsesScreenCoordinates(t *testing.T) {
	s, img := newSurface(100, 100)
	red := color.RGBA{0xff, 0, 0, 0xff}
	s.SetFillColor(red)
	s.BeginPath()
	s.Rect(cartesian.NewBBox(10, 10, 50, 50))
	s.Fill()

	pix := img.Image()
	if got := color.RGBAModel.Convert(pix.At(30, 30)); got != red {
		t.Errorf("pixel inside rect = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(pix.At(30, 80)); got == red {
		t.Errorf("pixel below rect got filled")
	}
}

func TestFillIsClipped(t *testing.T) {
	s, img := newSurface(100, 100)
	red := color.RGBA{0xff, 0, 0, 0xff}
	s.Clip(cartesian.NewBBox(0, 0, 20, 100))
	s.SetFillColor(red)
	s.BeginPath()
	s.Rect(cartesian.NewBBox(10, 10, 50, 50))
	s.Fill()

	pix := img.Image()
	if got := color.RGBAModel.Convert(pix.At(15, 30)); got != red {
		t.Errorf("pixel inside clip = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(pix.At(40, 30)); got == red {
		t.Errorf("pixel outside clip got filled")
	}
}

func TestDrawImageOutsideClip(t *testing.T) {
	s, img := newSurface(100, 100)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	s.Clip(cartesian.NewBBox(0, 0, 10, 10))
	before := color.RGBAModel.Convert(img.Image().At(60, 60))
	s.DrawImage(src, cartesian.NewBBox(50, 50, 90, 90))
	if after := color.RGBAModel.Convert(img.Image().At(60, 60)); after != before {
		t.Errorf("image drawn outside clip box")
	}
}

func TestNewCanvasPixels(t *testing.T) {
	img := NewCanvas(200, 100)
	if got := img.Image().Bounds(); got != image.Rect(0, 0, 200, 100) {
		t.Errorf("image bounds %v, want 200x100 pixels", got)
	}

	s := New(draw.New(img))
	red := color.RGBA{0xff, 0, 0, 0xff}
	s.SetFillColor(red)
	s.BeginPath()
	s.Rect(cartesian.NewBBox(150, 60, 160, 70))
	s.Fill()
	if got := color.RGBAModel.Convert(img.Image().At(155, 65)); got != red {
		t.Errorf("pixel at screen point (155,65) = %v, want red", got)
	}
}

func TestSubCanvasOrigin(t *testing.T) {
	img := NewCanvas(100, 100)
	c := draw.Canvas{Canvas: img, Rectangle: vg.Rectangle{
		Min: vg.Point{X: 20, Y: 30},
		Max: vg.Point{X: 100, Y: 100},
	}}
	s := New(c)
	if got := s.ClipBox(); got != cartesian.NewBBox(0, 0, 80, 70) {
		t.Fatalf("initial clip %v", got)
	}

	red := color.RGBA{0xff, 0, 0, 0xff}
	s.SetFillColor(red)
	s.BeginPath()
	s.Rect(cartesian.NewBBox(0, 0, 10, 10))
	s.Fill()

	pix := img.Image()
	if got := color.RGBAModel.Convert(pix.At(25, 5)); got != red {
		t.Errorf("pixel at (25,5) = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(pix.At(5, 5)); got == red {
		t.Errorf("pixel left of the sub-canvas got filled")
	}
}
