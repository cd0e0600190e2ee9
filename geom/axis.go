package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/renderer"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// ErrLogBounds is returned for a log axis whose range is not strictly
// positive.
var ErrLogBounds = errors.New("geom: log axis needs positive range bounds")

// Location is the side of the frame an axis is drawn on.
type Location int

const (
	Bottom Location = iota
	Left
	Top
	Right
)

var locationNames = []string{"bottom", "left", "top", "right"}

func (l Location) String() string {
	if l < 0 || int(l) >= len(locationNames) {
		return fmt.Sprintf("Location(%d)", int(l))
	}
	return locationNames[l]
}

func (l Location) horizontal() bool { return l == Bottom || l == Top }

// ParseLocation parses the case insensitive name of a location.
func ParseLocation(s string) (Location, error) {
	for i, n := range locationNames {
		if strings.EqualFold(s, n) {
			return Location(i), nil
		}
	}
	return 0, fmt.Errorf("geom: unknown axis location %q", s)
}

func (l Location) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Location) UnmarshalText(text []byte) error {
	loc, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

// Axis draws the ticks and tick labels of the scale of its coordinate
// system along one side of the frame. Bottom and top axes use the
// x-scale, left and right axes the y-scale.
type Axis struct {
	renderer.Model
	Location   Location
	Label      string
	TickLength float64
}

// NewAxis returns a visible axis at loc.
func NewAxis(name string, loc Location) *Axis {
	return &Axis{Model: *axisSchema.New(name), Location: loc, TickLength: 5}
}

func (a *Axis) Base() *renderer.Model { return &a.Model }

func (a *Axis) NewView(parent renderer.Parent) (renderer.View, error) {
	v, err := NewAxisView(a, parent)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// AxisView draws an Axis.
type AxisView struct {
	renderer.Base
	a *Axis
}

func NewAxisView(a *Axis, parent renderer.Parent) (*AxisView, error) {
	v := &AxisView{a: a}
	return v, v.Initialize(v, &a.Model, parent)
}

// A Mark is a tick of an axis at a screen position.
type Mark struct {
	Pos   float64
	Label string
	Minor bool
}

func (v *AxisView) scale() (cartesian.Scale, error) {
	if err := v.Scope().Resolve(); err != nil {
		return nil, err
	}
	if v.a.Location.horizontal() {
		return v.Scope().XScale(), nil
	}
	return v.Scope().YScale(), nil
}

// Marks returns the ticks of the axis inside the frame.
func (v *AxisView) Marks() ([]Mark, error) {
	s, err := v.scale()
	if err != nil {
		return nil, err
	}
	src := s.SourceRange().Bounds()
	lo, hi := math.Min(src.Min, src.Max), math.Max(src.Min, src.Max)
	if _, ok := s.Ticker().(plot.LogTicks); ok && lo <= 0 {
		return nil, fmt.Errorf("%w: axis %q over [%g:%g]", ErrLogBounds, v.Model().Name, lo, hi)
	}
	box := v.Scope().Frame().BBox()
	var marks []Mark
	for _, t := range s.Ticker().Ticks(lo, hi) {
		pos := s.Compute(t.Value)
		if math.IsNaN(pos) {
			continue
		}
		if v.a.Location.horizontal() && (pos < box.Left || pos > box.Right) {
			continue
		}
		if !v.a.Location.horizontal() && (pos < box.Top || pos > box.Bottom) {
			continue
		}
		marks = append(marks, Mark{Pos: pos, Label: t.Label, Minor: t.IsMinor()})
	}
	return marks, nil
}

func (v *AxisView) Render() error {
	ctx, err := contextOf(&v.Base)
	if err != nil {
		return err
	}
	marks, err := v.Marks()
	if err != nil {
		return err
	}
	box := v.Scope().Frame().BBox()
	vis := v.Visuals()
	loc, tl := v.a.Location, v.a.TickLength

	// The outward direction of the ticks and the anchor line.
	var dx, dy, x0, y0 float64
	switch loc {
	case Bottom:
		dy, y0 = 1, box.Bottom
	case Top:
		dy, y0 = -1, box.Top
	case Left:
		dx, x0 = -1, box.Left
	case Right:
		dx, x0 = 1, box.Right
	}

	setLineStyle(ctx, vis.Line)
	ctx.BeginPath()
	if loc.horizontal() {
		ctx.MoveTo(box.Left, y0)
		ctx.LineTo(box.Right, y0)
	} else {
		ctx.MoveTo(x0, box.Top)
		ctx.LineTo(x0, box.Bottom)
	}
	for _, m := range marks {
		l := tl
		if m.Minor {
			l /= 2
		}
		if loc.horizontal() {
			ctx.MoveTo(m.Pos, y0)
			ctx.LineTo(m.Pos, y0+dy*l)
		} else {
			ctx.MoveTo(x0, m.Pos)
			ctx.LineTo(x0+dx*l, m.Pos)
		}
	}
	ctx.Stroke()

	sty := vis.Text
	switch loc {
	case Bottom:
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
	case Top:
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
	case Left:
		sty.XAlign, sty.YAlign = draw.XRight, draw.YCenter
	case Right:
		sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
	}
	off := tl + 2
	widest := 0.0
	for _, m := range marks {
		if m.Label == "" {
			continue
		}
		widest = math.Max(widest, ctx.MeasureText(sty.Font, m.Label).Width)
		if loc.horizontal() {
			ctx.FillText(sty, m.Pos, y0+dy*off, m.Label)
		} else {
			ctx.FillText(sty, x0+dx*off, m.Pos, m.Label)
		}
	}

	if v.a.Label == "" {
		return nil
	}
	tm := ctx.MeasureText(sty.Font, v.a.Label)
	if loc.horizontal() {
		ctx.FillText(sty, (box.Left+box.Right)/2, y0+dy*(off+tm.Ascent+4), v.a.Label)
	} else {
		ctx.FillText(sty, x0+dx*(off+widest+4), (box.Top+box.Bottom)/2, v.a.Label)
	}
	return nil
}
