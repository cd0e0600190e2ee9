package renderer

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/surface"
)

// fakeParent counts the scheduling calls of its views.
type fakeParent struct {
	frame    *cartesian.Frame
	requests int
	finished int
}

func (p *fakeParent) Frame() *cartesian.Frame    { return p.frame }
func (p *fakeParent) Context() surface.Context2D { return nil }
func (p *fakeParent) RequestRender()             { p.requests++ }
func (p *fakeParent) NotifyFinished()            { p.finished++ }

func newFakeParent(t *testing.T) *fakeParent {
	t.Helper()
	f, err := cartesian.NewFrame(cartesian.NewLinearScale(), cartesian.NewLinearScale(),
		cartesian.NewRange1d(0, 10), cartesian.NewRange1d(0, 10),
		cartesian.ExtraYRange("right", cartesian.NewRange1d(0, 100)))
	if err != nil {
		t.Fatal(err)
	}
	f.Recompute(cartesian.NewBBox(10, 10, 110, 110))
	return &fakeParent{frame: f}
}

// countingView counts its Render calls.
type countingView struct {
	Base
	renders int
}

func (v *countingView) Render() error {
	v.renders++
	return nil
}

func newCountingView(t *testing.T, m *Model, p Parent) *countingView {
	t.Helper()
	v := &countingView{}
	if err := v.Initialize(v, m, p); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestNeedsClip(t *testing.T) {
	p := newFakeParent(t)
	for i, tc := range []struct {
		level Level
		clip  bool
	}{
		{Image, true},
		{Underlay, true},
		{Glyph, true},
		{Guide, false},
		{Annotation, false},
		{Overlay, false},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			v := newCountingView(t, &Model{Level: tc.level}, p)
			if got := v.NeedsClip(); got != tc.clip {
				t.Errorf("%s: NeedsClip() = %t", tc.level, got)
			}
			box, ok := v.ClipBox()
			if ok != tc.clip {
				t.Errorf("%s: ClipBox() ok = %t", tc.level, ok)
			}
			if ok && box != p.frame.BBox() {
				t.Errorf("%s: ClipBox() = %v, want frame box %v", tc.level, box, p.frame.BBox())
			}
			if !ok && box != (cartesian.BBox{}) {
				t.Errorf("%s: ClipBox() = %v, want none", tc.level, box)
			}
		})
	}
}

func TestLayer(t *testing.T) {
	p := newFakeParent(t)
	if l := newCountingView(t, &Model{Level: Overlay}, p).Layer(); l != OverlayLayer {
		t.Errorf("overlay renderer on %s layer", l)
	}
	if l := newCountingView(t, &Model{Level: Annotation}, p).Layer(); l != PrimaryLayer {
		t.Errorf("annotation renderer on %s layer", l)
	}
}

func TestDefaultScope(t *testing.T) {
	p := newFakeParent(t)
	v := newCountingView(t, &Model{}, p)
	cs := v.Scope()
	if cs.XRangeName() != cartesian.DefaultName || cs.YRangeName() != cartesian.DefaultName {
		t.Errorf("scope names %q, %q", cs.XRangeName(), cs.YRangeName())
	}
	if cs.XScale() != p.frame.XScale() || cs.YScale() != p.frame.YScale() {
		t.Errorf("scope does not resolve to the default scales")
	}
}

func TestSharedScope(t *testing.T) {
	p := newFakeParent(t)
	a := newCountingView(t, &Model{YRangeName: "right"}, p)
	b := newCountingView(t, &Model{YRangeName: "right"}, p)
	if a.Scope().YScale() != b.Scope().YScale() {
		t.Fatalf("renderers sharing a range see different scales")
	}

	p.frame.Recompute(cartesian.NewBBox(0, 0, 50, 50))
	_, ay, _ := a.Scope().MapPoint(0, 0)
	_, by, _ := b.Scope().MapPoint(0, 0)
	if ay != 50 || by != 50 {
		t.Errorf("recompute not visible to both renderers: %g, %g", ay, by)
	}
}

func TestPaintForwardsToRender(t *testing.T) {
	p := newFakeParent(t)
	v := newCountingView(t, &Model{}, p)
	for i := 0; i < 3; i++ {
		if err := v.Paint(); err != nil {
			t.Fatal(err)
		}
	}
	if v.renders != 3 {
		t.Errorf("Render called %d times, want 3", v.renders)
	}

	var u countingView
	if err := u.Paint(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("uninitialized Paint() = %v", err)
	}
}

func TestSchedulingAfterDetach(t *testing.T) {
	p := newFakeParent(t)
	v := newCountingView(t, &Model{}, p)
	v.RequestRender()
	v.NotifyFinished()
	v.Detach()
	v.RequestRender()
	v.NotifyFinished()
	if p.requests != 1 || p.finished != 1 {
		t.Errorf("requests=%d finished=%d, want 1, 1", p.requests, p.finished)
	}
	if v.Parent() != nil {
		t.Errorf("detached view still has a parent")
	}
}

func TestCapabilityDefaults(t *testing.T) {
	p := newFakeParent(t)
	v := newCountingView(t, &Model{}, p)
	if v.HasWebGL() {
		t.Errorf("HasWebGL() = true")
	}
	if !v.HasFinished() {
		t.Errorf("HasFinished() = false")
	}
	if Hit(v, 50, 50) {
		t.Errorf("view without hit testing got hit")
	}
	if _, ok := HitBBox(v, 50, 50); ok {
		t.Errorf("view without hit testing returned a box")
	}
}
