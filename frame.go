package cartesian

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// DefaultName is the name under which a Frame stores its primary ranges.
const DefaultName = "default"

// ----------------------------------------------------------------------------
// Options

// A FrameOption adds extra named ranges to a Frame.
type FrameOption func(*frameConfig)

type namedRange struct {
	name string
	rng  Range
}

type frameConfig struct {
	extraX, extraY []namedRange
}

// ExtraXRange adds the x-range r under name. Extra ranges keep the order
// in which they were added.
func ExtraXRange(name string, r Range) FrameOption {
	return func(c *frameConfig) { c.extraX = append(c.extraX, namedRange{name, r}) }
}

// ExtraYRange adds the y-range r under name.
func ExtraYRange(name string, r Range) FrameOption {
	return func(c *frameConfig) { c.extraY = append(c.extraY, namedRange{name, r}) }
}

// ExtraXRanges adds all ranges of m in lexical order of their names.
func ExtraXRanges(m map[string]Range) FrameOption {
	return func(c *frameConfig) { c.extraX = append(c.extraX, sortedRanges(m)...) }
}

// ExtraYRanges adds all ranges of m in lexical order of their names.
func ExtraYRanges(m map[string]Range) FrameOption {
	return func(c *frameConfig) { c.extraY = append(c.extraY, sortedRanges(m)...) }
}

func sortedRanges(m map[string]Range) []namedRange {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	nr := make([]namedRange, len(names))
	for i, name := range names {
		nr[i] = namedRange{name, m[name]}
	}
	return nr
}

// ----------------------------------------------------------------------------
// axis

// axis holds the name->range and name->scale tables of one axis.
type axis struct {
	label  string // "x" or "y"
	names  []string
	ranges map[string]Range
	scales map[string]Scale
}

func newAxis(label string, primary Range, extra []namedRange) (*axis, error) {
	if primary == nil {
		return nil, fmt.Errorf("cartesian: missing primary %s-range", label)
	}
	a := &axis{
		label:  label,
		ranges: make(map[string]Range, len(extra)+1),
	}
	for _, nr := range extra {
		if nr.name == DefaultName {
			return nil, fmt.Errorf("%w: extra %s-range %q", ErrReservedName, label, nr.name)
		}
		if nr.rng == nil {
			return nil, fmt.Errorf("cartesian: extra %s-range %q is nil", label, nr.name)
		}
		if _, dup := a.ranges[nr.name]; dup {
			return nil, fmt.Errorf("cartesian: duplicate extra %s-range %q", label, nr.name)
		}
		a.names = append(a.names, nr.name)
		a.ranges[nr.name] = nr.rng
	}
	a.names = append(a.names, DefaultName)
	a.ranges[DefaultName] = primary
	return a, nil
}

// validate checks every range of a against the scale prototype.
func (a *axis) validate(proto Scale) error {
	if proto == nil {
		return fmt.Errorf("cartesian: missing %s-scale", a.label)
	}
	for _, name := range a.names {
		r := a.ranges[name]
		if r.Kind() != proto.Kind() {
			return &IncompatibleError{Axis: a.label, Name: name, Range: r, Scale: proto}
		}
	}
	return nil
}

// buildScales clones proto once per named range.
func (a *axis) buildScales(proto Scale, target *Range1d) {
	a.scales = make(map[string]Scale, len(a.names))
	_, isLog := proto.(*LogScale)
	for _, name := range a.names {
		r := a.ranges[name]
		if dr, ok := r.(*DataRange1d); ok && isLog {
			dr.SetScaleHint(LogHint)
		}
		s := proto.Clone()
		s.Configure(r, target)
		a.scales[name] = s
	}
}

func (a *axis) retarget(target *Range1d) {
	for _, name := range a.names {
		a.scales[name].SetTargetRange(target)
	}
}

func (a *axis) rangeTable() map[string]Range {
	m := make(map[string]Range, len(a.ranges))
	for k, v := range a.ranges {
		m[k] = v
	}
	return m
}

func (a *axis) scaleTable() map[string]Scale {
	m := make(map[string]Scale, len(a.scales))
	for k, v := range a.scales {
		m[k] = v
	}
	return m
}

func (a *axis) logValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(a.names))
	for _, name := range a.names {
		attrs = append(attrs, slog.String(name, fmt.Sprint(a.scales[name])))
	}
	return slog.GroupValue(attrs...)
}

// ----------------------------------------------------------------------------
// Frame

// A Frame owns the named ranges and scales of both axes of a plot.
type Frame struct {
	bbox             BBox
	xTarget, yTarget *Range1d
	x, y             *axis
}

// NewFrame builds the range and scale tables of a new Frame. The scales
// xScale and yScale are prototypes: every named range gets its own clone.
// NewFrame fails before any scale is built if a range cannot be mapped by
// its axis' scale (see ErrIncompatible) or if an extra range uses the
// reserved name "default".
func NewFrame(xScale, yScale Scale, xRange, yRange Range, opts ...FrameOption) (*Frame, error) {
	var cfg frameConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	x, err := newAxis("x", xRange, cfg.extraX)
	if err != nil {
		return nil, err
	}
	y, err := newAxis("y", yRange, cfg.extraY)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(x.validate(xScale), y.validate(yScale)); err != nil {
		return nil, err
	}

	f := &Frame{x: x, y: y}
	f.configureTargets()
	f.x.buildScales(xScale, f.xTarget)
	f.y.buildScales(yScale, f.yTarget)
	f.debugTables("configured")
	return f, nil
}

// configureTargets sets up the pixel space targets. The y target runs
// from bottom to top as data y grows upwards while screen y grows
// downwards.
func (f *Frame) configureTargets() {
	f.xTarget = NewRange1d(f.bbox.Left, f.bbox.Right)
	f.yTarget = NewRange1d(f.bbox.Bottom, f.bbox.Top)
}

// Recompute moves the frame to bbox and re-targets all scales. The scale
// and range instances are kept.
func (f *Frame) Recompute(bbox BBox) {
	f.bbox = bbox
	f.configureTargets()
	f.x.retarget(f.xTarget)
	f.y.retarget(f.yTarget)
	f.debugTables("recomputed")
}

func (f *Frame) debugTables(what string) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("frame "+what,
		slog.String("bbox", f.bbox.String()),
		slog.Any("xscales", f.x.logValue()),
		slog.Any("yscales", f.y.logValue()))
}

// BBox returns the current pixel box of f.
func (f *Frame) BBox() BBox { return f.bbox }

// XTarget returns the pixel range [left, right].
func (f *Frame) XTarget() *Range1d { return f.xTarget }

// YTarget returns the pixel range [bottom, top].
func (f *Frame) YTarget() *Range1d { return f.yTarget }

func (f *Frame) XView() ViewTransform { return f.bbox.XView() }
func (f *Frame) YView() ViewTransform { return f.bbox.YView() }

// XRanges returns a copy of the name->range table of the x-axis.
func (f *Frame) XRanges() map[string]Range { return f.x.rangeTable() }

// YRanges returns a copy of the name->range table of the y-axis.
func (f *Frame) YRanges() map[string]Range { return f.y.rangeTable() }

// XScales returns a copy of the name->scale table of the x-axis.
func (f *Frame) XScales() map[string]Scale { return f.x.scaleTable() }

// YScales returns a copy of the name->scale table of the y-axis.
func (f *Frame) YScales() map[string]Scale { return f.y.scaleTable() }

// XRangeNames returns the x-range names: the extra ranges in the order
// they were added followed by "default".
func (f *Frame) XRangeNames() []string { return append([]string(nil), f.x.names...) }

// YRangeNames returns the y-range names.
func (f *Frame) YRangeNames() []string { return append([]string(nil), f.y.names...) }

func (f *Frame) XRange(name string) (Range, bool) { r, ok := f.x.ranges[name]; return r, ok }
func (f *Frame) YRange(name string) (Range, bool) { r, ok := f.y.ranges[name]; return r, ok }

func (f *Frame) XScaleNamed(name string) (Scale, bool) { s, ok := f.x.scales[name]; return s, ok }
func (f *Frame) YScaleNamed(name string) (Scale, bool) { s, ok := f.y.scales[name]; return s, ok }

// XScale returns the scale of the default x-range.
func (f *Frame) XScale() Scale { return f.x.scales[DefaultName] }

// YScale returns the scale of the default y-range.
func (f *Frame) YScale() Scale { return f.y.scales[DefaultName] }

// Scope returns the live coordinate system of the named ranges. Empty
// names select "default". Unknown names are not reported here but on use,
// see CoordinateSystem.Resolve.
func (f *Frame) Scope(xName, yName string) *CoordinateSystem {
	if xName == "" {
		xName = DefaultName
	}
	if yName == "" {
		yName = DefaultName
	}
	return &CoordinateSystem{frame: f, xName: xName, yName: yName}
}
