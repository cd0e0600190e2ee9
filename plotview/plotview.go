// Package plotview hosts renderer views: it lays out the frame inside a
// canvas, fits auto-ranging ranges to the data and paints the renderers
// level by level.
package plotview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sort"
	"sync/atomic"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/renderer"
	"github.com/vdobler/cartesian/surface"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Margin is the space between the canvas border and the frame.
type Margin struct {
	Left, Top, Right, Bottom vg.Length
}

// A Config controls the size and appearance of a View.
type Config struct {
	Width, Height vg.Length
	Margin        Margin

	Background      color.Color
	FrameBackground color.Color
}

// DefaultConfig returns a Config which mimics the appearance of ggplot2.
// The margins leave room for axes on all four sides.
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          300,
		Margin:          Margin{Left: 50, Top: 30, Right: 50, Bottom: 40},
		Background:      color.White,
		FrameBackground: color.Gray16{0xeeee},
	}
}

// A View paints renderer views into an in-memory image. It implements
// renderer.Parent.
type View struct {
	frame *cartesian.Frame
	cfg   Config

	canvas  *vgimg.Canvas
	surface *surface.Surface

	views []renderer.View

	dirty    atomic.Bool
	finished atomic.Int64
}

var _ renderer.Parent = (*View)(nil)

// New returns a view of frame sized and styled by cfg.
func New(frame *cartesian.Frame, cfg Config) *View {
	v := &View{frame: frame, cfg: cfg}
	v.Resize(cfg.Width, cfg.Height)
	return v
}

func (v *View) Frame() *cartesian.Frame    { return v.frame }
func (v *View) Context() surface.Context2D { return v.surface }
func (v *View) Config() Config             { return v.cfg }

// RequestRender marks the view dirty. Calls are coalesced until the next
// Paint. It is safe for concurrent use.
func (v *View) RequestRender() { v.dirty.Store(true) }

// NotifyFinished counts the completion of asynchronous renderer work. It
// is safe for concurrent use.
func (v *View) NotifyFinished() { v.finished.Add(1) }

// Dirty reports whether a paint pass was requested since the last Paint.
func (v *View) Dirty() bool { return v.dirty.Load() }

// Finished returns the number of NotifyFinished calls.
func (v *View) Finished() int64 { return v.finished.Load() }

// AllFinished reports whether no renderer has pending asynchronous work.
func (v *View) AllFinished() bool {
	for _, rv := range v.views {
		if !rv.HasFinished() {
			return false
		}
	}
	return true
}

// An Awaiter is a view doing asynchronous work. Done is closed when the
// work has finished.
type Awaiter interface {
	Done() <-chan struct{}
}

// Wait blocks until all views implementing Awaiter are done or ctx is
// cancelled.
func (v *View) Wait(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, rv := range v.views {
		a, ok := rv.(Awaiter)
		if !ok {
			continue
		}
		rv := rv
		g.Go(func() error {
			select {
			case <-a.Done():
				return nil
			case <-ctx.Done():
				return fmt.Errorf("plotview: waiting for %s: %w", rv.Model(), ctx.Err())
			}
		})
	}
	return g.Wait()
}

// Add creates the views of the given renderers. Renderers failing to
// create their view are skipped and reported.
func (v *View) Add(factories ...renderer.Factory) error {
	var errs []error
	for _, f := range factories {
		rv, err := f.NewView(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		v.views = append(v.views, rv)
	}
	v.dirty.Store(true)
	return errors.Join(errs...)
}

// Views returns the renderer views in the order they were added.
func (v *View) Views() []renderer.View {
	return append([]renderer.View(nil), v.views...)
}

// Resize allocates a new canvas of the given size and places the frame
// inside the margins.
func (v *View) Resize(width, height vg.Length) {
	v.cfg.Width, v.cfg.Height = width, height
	v.canvas = surface.NewCanvas(width, height)
	v.surface = surface.New(draw.New(v.canvas))
	m := v.cfg.Margin
	v.frame.Recompute(cartesian.NewBBox(
		float64(m.Left), float64(m.Top),
		float64(width-m.Right), float64(height-m.Bottom)))
	v.dirty.Store(true)
}

// FitRanges fits every DataRange1d of the frame to the data bounds of
// the views drawing in it.
func (v *View) FitRanges() {
	fit := func(ranges map[string]cartesian.Range, bounds func(renderer.View) (cartesian.Range, cartesian.Interval, bool)) {
		learned := make(map[*cartesian.DataRange1d]bool)
		for _, rv := range v.views {
			r, iv, ok := bounds(rv)
			if !ok {
				continue
			}
			dr, ok := r.(*cartesian.DataRange1d)
			if !ok {
				continue
			}
			if !learned[dr] {
				dr.Reset()
				learned[dr] = true
			}
			if iv.IsSet() {
				dr.Update(iv.Min, iv.Max)
			}
		}
		for _, r := range ranges {
			if dr, ok := r.(*cartesian.DataRange1d); ok {
				dr.Compute()
			}
		}
	}
	fit(v.frame.XRanges(), func(rv renderer.View) (cartesian.Range, cartesian.Interval, bool) {
		db, ok := rv.(renderer.DataBounder)
		if !ok || !rv.Model().Visible {
			return nil, cartesian.Interval{}, false
		}
		x, _ := db.DataBounds()
		return rv.Scope().XRange(), x, true
	})
	fit(v.frame.YRanges(), func(rv renderer.View) (cartesian.Range, cartesian.Interval, bool) {
		db, ok := rv.(renderer.DataBounder)
		if !ok || !rv.Model().Visible {
			return nil, cartesian.Interval{}, false
		}
		_, y := db.DataBounds()
		return rv.Scope().YRange(), y, true
	})
	cartesian.Logger().Debug("ranges fitted", "x", v.frame.XRanges(), "y", v.frame.YRanges())
}

// paintOrder returns the views sorted by layer and level. Views on the
// same level keep the order they were added in.
func (v *View) paintOrder() []renderer.View {
	order := v.Views()
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Layer() != b.Layer() {
			return a.Layer() < b.Layer()
		}
		return a.Model().Level < b.Model().Level
	})
	return order
}

// Paint fits the ranges and paints all visible renderers. A failing
// renderer does not stop the others; all failures are returned joined.
func (v *View) Paint() error {
	v.dirty.Store(false)
	v.FitRanges()

	ctx := v.surface
	w, h := ctx.Size()
	v.fill(v.cfg.Background, cartesian.NewBBox(0, 0, w, h))
	v.fill(v.cfg.FrameBackground, v.frame.BBox())

	var errs []error
	for _, rv := range v.paintOrder() {
		if !rv.Model().Visible {
			continue
		}
		if err := v.paint(rv); err != nil {
			cartesian.Logger().Error("renderer failed", "renderer", rv.Model().String(), "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (v *View) fill(c color.Color, b cartesian.BBox) {
	if c == nil {
		return
	}
	v.surface.Save()
	defer v.surface.Restore()
	v.surface.SetFillColor(c)
	v.surface.BeginPath()
	v.surface.Rect(b)
	v.surface.Fill()
}

// paint paints a single renderer inside its own drawing state.
func (v *View) paint(rv renderer.View) (err error) {
	ctx := v.surface
	ctx.Save()
	defer ctx.Restore()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plotview: renderer %s panicked: %v", rv.Model(), r)
		}
	}()
	if box, ok := rv.ClipBox(); ok {
		ctx.Clip(box)
	}
	if err := rv.Paint(); err != nil {
		return fmt.Errorf("plotview: renderer %s: %w", rv.Model(), err)
	}
	return nil
}

// HitTest returns the visible views hit at the screen point (sx, sy),
// topmost first.
func (v *View) HitTest(sx, sy float64) []renderer.View {
	order := v.paintOrder()
	var hits []renderer.View
	for i := len(order) - 1; i >= 0; i-- {
		rv := order[i]
		if rv.Model().Visible && renderer.Hit(rv, sx, sy) {
			hits = append(hits, rv)
		}
	}
	return hits
}

// Close detaches all views. Late asynchronous completions of the views
// are ignored afterwards.
func (v *View) Close() {
	for _, rv := range v.views {
		rv.Detach()
	}
	v.views = nil
}

// Image returns the painted image.
func (v *View) Image() image.Image { return v.canvas.Image() }

// WritePNG writes the painted image as PNG to w.
func (v *View) WritePNG(w io.Writer) error {
	_, err := vgimg.PngCanvas{Canvas: v.canvas}.WriteTo(w)
	return err
}
