// Package renderer defines the contract between a plot view and the
// renderers drawing into it.
//
// A renderer is described by a Model and drawn by a View. Concrete views
// embed Base, which implements all of View except Render, and call
// Base.Initialize before they are painted:
//
//	type MarkerView struct {
//		renderer.Base
//		...
//	}
//
//	func NewMarkerView(m *renderer.Model, parent renderer.Parent) (*MarkerView, error) {
//		v := &MarkerView{}
//		return v, v.Initialize(v, m, parent)
//	}
//
//	func (v *MarkerView) Render() error { ... }
package renderer

import (
	"errors"
	"sync/atomic"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/surface"
)

// ErrNotInitialized is returned when painting a view which was not
// initialized.
var ErrNotInitialized = errors.New("renderer: view not initialized")

// Parent is the plot view owning renderer views.
type Parent interface {
	Frame() *cartesian.Frame
	Context() surface.Context2D

	// RequestRender asks for another paint pass.
	RequestRender()

	// NotifyFinished signals that asynchronous work of a renderer has
	// completed.
	NotifyFinished()
}

// View is the runtime counterpart of a Model.
type View interface {
	Model() *Model
	Parent() Parent
	Scope() *cartesian.CoordinateSystem
	Visuals() *Visuals

	// Render draws the renderer. It is only called on initialized views.
	Render() error

	// Paint is the entry point used by the plot view.
	Paint() error

	NeedsClip() bool
	ClipBox() (cartesian.BBox, bool)
	Layer() Layer
	HasWebGL() bool
	HasFinished() bool

	RequestRender()
	NotifyFinished()
	Detach()
}

// A Factory creates the view of a renderer for a parent.
type Factory interface {
	NewView(parent Parent) (View, error)
}

// HitTester is implemented by views taking part in hit testing.
type HitTester interface {
	InteractiveHit(sx, sy float64) bool
}

// BBoxer is implemented by views which report the screen box hit at
// (sx, sy).
type BBoxer interface {
	InteractiveBBox(sx, sy float64) (cartesian.BBox, bool)
}

// DataBounder is implemented by views which know the data they draw.
// The bounds are used to fit auto-ranging ranges.
type DataBounder interface {
	DataBounds() (x, y cartesian.Interval)
}

// Hit reports whether v is hit at the screen point (sx, sy). Views not
// implementing HitTester are never hit.
func Hit(v View, sx, sy float64) bool {
	h, ok := v.(HitTester)
	return ok && h.InteractiveHit(sx, sy)
}

// HitBBox returns the box of v hit at (sx, sy), if v implements BBoxer.
func HitBBox(v View, sx, sy float64) (cartesian.BBox, bool) {
	b, ok := v.(BBoxer)
	if !ok {
		return cartesian.BBox{}, false
	}
	return b.InteractiveBBox(sx, sy)
}

// ----------------------------------------------------------------------------
// Base

type parentRef struct{ Parent }

// Base implements View except for Render.
type Base struct {
	this     View
	model    *Model
	parent   atomic.Pointer[parentRef]
	scope    *cartesian.CoordinateSystem
	visuals  Visuals
	finished atomic.Bool
}

// Initialize must be called before the view is painted. this is the
// concrete view embedding b; Paint calls its Render method. The scope is
// resolved from the model's range names against the parent's frame.
func (b *Base) Initialize(this View, model *Model, parent Parent) error {
	if this == nil || model == nil || parent == nil {
		return errors.New("renderer: Initialize needs view, model and parent")
	}
	b.this = this
	b.model = model
	b.parent.Store(&parentRef{parent})
	b.visuals = ResolveVisuals(model)
	b.scope = parent.Frame().Scope(model.XRangeName, model.YRangeName)
	b.finished.Store(true)
	return nil
}

func (b *Base) Model() *Model                      { return b.model }
func (b *Base) Scope() *cartesian.CoordinateSystem { return b.scope }
func (b *Base) Visuals() *Visuals                  { return &b.visuals }

// Parent returns the owning plot view or nil once b is detached.
func (b *Base) Parent() Parent {
	if p := b.parent.Load(); p != nil {
		return p.Parent
	}
	return nil
}

// Context returns the drawing surface of the parent or nil once b is
// detached.
func (b *Base) Context() surface.Context2D {
	if p := b.Parent(); p != nil {
		return p.Context()
	}
	return nil
}

// Paint forwards to Render of the concrete view.
func (b *Base) Paint() error {
	if b.this == nil {
		return ErrNotInitialized
	}
	return b.this.Render()
}

// NeedsClip reports whether drawing is clipped to the frame. Image,
// underlay and glyph renderers are clipped.
func (b *Base) NeedsClip() bool {
	switch b.model.Level {
	case Image, Underlay, Glyph:
		return true
	default:
		return false
	}
}

// ClipBox returns the frame box if the view needs clipping.
func (b *Base) ClipBox() (cartesian.BBox, bool) {
	if !b.NeedsClip() {
		return cartesian.BBox{}, false
	}
	return b.scope.Frame().BBox(), true
}

// Layer returns OverlayLayer for overlay renderers and PrimaryLayer
// for all others.
func (b *Base) Layer() Layer {
	if b.model.Level == Overlay {
		return OverlayLayer
	}
	return PrimaryLayer
}

func (b *Base) HasWebGL() bool { return false }

// HasFinished reports whether all asynchronous work of the view is done.
func (b *Base) HasFinished() bool { return b.finished.Load() }

// SetFinished is used by views doing asynchronous work.
func (b *Base) SetFinished(done bool) { b.finished.Store(done) }

// RequestRender asks the parent for another paint pass. It is a no-op on
// a detached view.
func (b *Base) RequestRender() {
	if p := b.Parent(); p != nil {
		p.RequestRender()
	}
}

// NotifyFinished tells the parent that asynchronous work is done. It is a
// no-op on a detached view, so late completions are ignored.
func (b *Base) NotifyFinished() {
	if p := b.Parent(); p != nil {
		p.NotifyFinished()
	}
}

// Detach cuts the view off its parent.
func (b *Base) Detach() {
	b.parent.Store(nil)
}
