package plotview

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/geom"
	"github.com/vdobler/cartesian/renderer"
	"github.com/vdobler/cartesian/surface"
	"gonum.org/v1/plot/plotter"
)

var red = color.RGBA{0xff, 0, 0, 0xff}

func equal64(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// recorder is a renderer whose views log their painting.
type recorder struct {
	renderer.Model
	log     *[]string
	clips   *[]cartesian.BBox
	panics  bool
	failure error
}

type recorderView struct {
	renderer.Base
	r *recorder
}

func (r *recorder) NewView(p renderer.Parent) (renderer.View, error) {
	v := &recorderView{r: r}
	if err := v.Initialize(v, &r.Model, p); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *recorderView) Render() error {
	*v.r.log = append(*v.r.log, v.r.Name)
	*v.r.clips = append(*v.r.clips, v.Context().(*surface.Surface).ClipBox())
	if v.r.panics {
		panic("boom")
	}
	return v.r.failure
}

type fixture struct {
	log   []string
	clips []cartesian.BBox
}

func (f *fixture) rec(name string, level renderer.Level) *recorder {
	return &recorder{
		Model: renderer.Model{Name: name, Level: level, Visible: true},
		log:   &f.log,
		clips: &f.clips,
	}
}

func newFrame(t *testing.T) *cartesian.Frame {
	t.Helper()
	f, err := cartesian.NewFrame(cartesian.NewLinearScale(), cartesian.NewLinearScale(),
		cartesian.NewRange1d(0, 10), cartesian.NewRange1d(0, 10))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 100
	cfg.Margin = Margin{Left: 10, Top: 5, Right: 20, Bottom: 15}
	return cfg
}

func TestResizeRecomputesFrame(t *testing.T) {
	f := newFrame(t)
	v := New(f, smallConfig())
	if got, want := f.BBox(), cartesian.NewBBox(10, 5, 180, 85); got != want {
		t.Errorf("frame box %v, want %v", got, want)
	}
	if got := f.XScale().Compute(0); got != 10 {
		t.Errorf("x=0 at %g, want 10", got)
	}

	v.Resize(300, 200)
	if got, want := f.BBox(), cartesian.NewBBox(10, 5, 280, 185); got != want {
		t.Errorf("frame box after resize %v, want %v", got, want)
	}
	if got := f.YScale().Compute(0); got != 185 {
		t.Errorf("y=0 at %g, want 185", got)
	}
	if b := v.Image().Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("image size %v", b)
	}
}

func TestPaintOrder(t *testing.T) {
	var fx fixture
	v := New(newFrame(t), smallConfig())
	hidden := fx.rec("hidden", renderer.Glyph)
	hidden.Visible = false
	err := v.Add(
		fx.rec("overlay", renderer.Overlay),
		fx.rec("glyph1", renderer.Glyph),
		fx.rec("image", renderer.Image),
		hidden,
		fx.rec("annotation", renderer.Annotation),
		fx.rec("glyph2", renderer.Glyph),
		fx.rec("guide", renderer.Guide),
		fx.rec("underlay", renderer.Underlay),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	want := []string{"image", "underlay", "glyph1", "glyph2", "guide", "annotation", "overlay"}
	if !reflect.DeepEqual(fx.log, want) {
		t.Errorf("painted %v, want %v", fx.log, want)
	}

	full := cartesian.NewBBox(0, 0, 200, 100)
	for i, name := range fx.log {
		clip := fx.clips[i]
		switch name {
		case "image", "underlay", "glyph1", "glyph2":
			if clip != v.Frame().BBox() {
				t.Errorf("%s clipped to %v", name, clip)
			}
		default:
			if clip != full {
				t.Errorf("%s clipped to %v", name, clip)
			}
		}
	}
}

func TestPaintIsolatesFailures(t *testing.T) {
	var fx fixture
	v := New(newFrame(t), smallConfig())
	bad := fx.rec("bad", renderer.Glyph)
	bad.panics = true
	failing := fx.rec("failing", renderer.Glyph)
	failing.failure = errors.New("no data")
	if err := v.Add(bad, failing, fx.rec("good", renderer.Glyph)); err != nil {
		t.Fatal(err)
	}

	err := v.Paint()
	if err == nil {
		t.Fatal("no error from failing renderers")
	}
	if !strings.Contains(err.Error(), "panicked") || !strings.Contains(err.Error(), "no data") {
		t.Errorf("error %q misses a failure", err)
	}
	if !reflect.DeepEqual(fx.log, []string{"bad", "failing", "good"}) {
		t.Errorf("painted %v", fx.log)
	}

	// The drawing state is restored after a panic.
	if clip := v.surface.ClipBox(); clip != cartesian.NewBBox(0, 0, 200, 100) {
		t.Errorf("clip box left at %v", clip)
	}
}

func TestScheduling(t *testing.T) {
	var fx fixture
	v := New(newFrame(t), smallConfig())
	if err := v.Add(fx.rec("r", renderer.Glyph)); err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	if v.Dirty() {
		t.Fatalf("dirty after paint")
	}

	rv := v.Views()[0]
	rv.RequestRender()
	rv.RequestRender()
	rv.NotifyFinished()
	if !v.Dirty() || v.Finished() != 1 {
		t.Errorf("dirty=%t finished=%d", v.Dirty(), v.Finished())
	}

	v.Close()
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	rv.RequestRender()
	rv.NotifyFinished()
	if v.Dirty() || v.Finished() != 1 {
		t.Errorf("closed view reached: dirty=%t finished=%d", v.Dirty(), v.Finished())
	}
	if rv.Parent() != nil {
		t.Errorf("view not detached")
	}
}

func TestHitTestTopmostFirst(t *testing.T) {
	v := New(newFrame(t), smallConfig())
	lower, upper := geom.NewBoxAnnotation("lower"), geom.NewBoxAnnotation("upper")
	lower.Left, lower.Right = 0, 5
	upper.Left, upper.Right = 2, 8
	hidden := geom.NewBoxAnnotation("hidden")
	hidden.Visible = false
	if err := v.Add(lower, upper, hidden); err != nil {
		t.Fatal(err)
	}

	sx := v.Frame().XScale().Compute(3)
	var names []string
	for _, rv := range v.HitTest(sx, 50) {
		names = append(names, rv.Model().Name)
	}
	if !reflect.DeepEqual(names, []string{"upper", "lower"}) {
		t.Errorf("hits %v", names)
	}
}

func TestFitRanges(t *testing.T) {
	x, y := cartesian.NewDataRange1d(), cartesian.NewDataRange1d()
	right := cartesian.NewDataRange1d()
	f, err := cartesian.NewFrame(cartesian.NewLinearScale(), cartesian.NewLinearScale(), x, y,
		cartesian.ExtraYRange("right", right))
	if err != nil {
		t.Fatal(err)
	}
	v := New(f, smallConfig())

	left := geom.NewScatter("left", plotter.XYs{{X: 0, Y: 0}, {X: 10, Y: 20}})
	other := geom.NewLine("right", plotter.XYs{{X: 5, Y: 100}, {X: 6, Y: 200}})
	other.YRangeName = "right"
	if err := v.Add(left, other); err != nil {
		t.Fatal(err)
	}
	v.FitRanges()

	for i, tc := range []struct {
		r          *cartesian.DataRange1d
		start, end float64
	}{
		{x, -0.5, 10.5},
		{y, -1, 21},
		{right, 95, 205},
	} {
		if !equal64(tc.r.Start, tc.start) || !equal64(tc.r.End, tc.end) {
			t.Errorf("%d: range [%g:%g], want [%g:%g]", i, tc.r.Start, tc.r.End, tc.start, tc.end)
		}
	}

	// Scales see the fitted ranges immediately.
	rs, _ := f.YScaleNamed("right")
	if got := rs.Compute(95); !equal64(got, f.BBox().Bottom) {
		t.Errorf("y=95 on right axis at %g, want %g", got, f.BBox().Bottom)
	}
}

func TestPaintDrawsAndWritesPNG(t *testing.T) {
	v := New(newFrame(t), smallConfig())
	s := geom.NewScatter("points", plotter.XYs{{X: 5, Y: 5}})
	s.Color = red
	if err := v.Add(s, geom.NewAxis("x", geom.Bottom), geom.NewAxis("y", geom.Left)); err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	cx, cy, err := v.Frame().Scope("", "").MapPoint(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(v.Image().At(int(cx), int(cy))); got != red {
		t.Errorf("pixel at point = %v", got)
	}

	var buf bytes.Buffer
	if err := v.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Errorf("png size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestImageRequestsRender(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, red)
	var enc bytes.Buffer
	if err := png.Encode(&enc, src); err != nil {
		t.Fatal(err)
	}

	v := New(newFrame(t), smallConfig())
	img := geom.NewImage("img", enc.Bytes(), 0, 0, 10, 10)
	if err := v.Add(img); err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	if err := v.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v.Finished() != 1 || !v.AllFinished() {
		t.Fatalf("finished=%d all=%t", v.Finished(), v.AllFinished())
	}
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	c := v.Frame().BBox()
	mid := color.RGBAModel.Convert(v.Image().At(int((c.Left+c.Right)/2), int((c.Top+c.Bottom)/2)))
	if mid != red {
		t.Errorf("image not drawn: %v", mid)
	}
}

// stuck never finishes its asynchronous work.
type stuck struct{ recorderView }

func (s *stuck) Done() <-chan struct{} { return nil }

func TestWaitHonorsContext(t *testing.T) {
	var fx fixture
	v := New(newFrame(t), smallConfig())
	if err := v.Add(fx.rec("r", renderer.Glyph)); err != nil {
		t.Fatal(err)
	}
	s := &stuck{}
	s.r = fx.rec("stuck", renderer.Glyph)
	if err := s.Initialize(s, &s.r.Model, v); err != nil {
		t.Fatal(err)
	}
	v.views = append(v.views, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := v.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
}

func TestHitTestAtImagePixels(t *testing.T) {
	v := New(newFrame(t), smallConfig())
	box := geom.NewBoxAnnotation("box")
	box.Left, box.Right, box.Bottom, box.Top = 6, 8, 6, 8
	box.FillColor = red
	if err := v.Add(box); err != nil {
		t.Fatal(err)
	}
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}

	img := v.Image()
	if b := img.Bounds(); b != image.Rect(0, 0, 200, 100) {
		t.Fatalf("image bounds %v, want the configured 200x100", b)
	}
	hits := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != red {
				continue
			}
			hits++
			if got := v.HitTest(float64(x)+0.5, float64(y)+0.5); len(got) != 1 || got[0].Model().Name != "box" {
				t.Fatalf("red pixel (%d,%d) does not hit the box: %v", x, y, got)
			}
		}
	}
	if hits == 0 {
		t.Errorf("box not drawn")
	}
}
