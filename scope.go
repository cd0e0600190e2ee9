package cartesian

import "fmt"

// ----------------------------------------------------------------------------
// CoordinateSystem

// A CoordinateSystem is the pair of ranges and scales a renderer draws in.
// It keeps a reference to its Frame and the two range names only; ranges
// and scales are looked up on every access and thus always reflect the
// current state of the Frame.
type CoordinateSystem struct {
	frame        *Frame
	xName, yName string
}

func (cs *CoordinateSystem) Frame() *Frame      { return cs.frame }
func (cs *CoordinateSystem) XRangeName() string { return cs.xName }
func (cs *CoordinateSystem) YRangeName() string { return cs.yName }

// XRange returns the current x-range or nil if the name is unknown.
func (cs *CoordinateSystem) XRange() Range { r, _ := cs.frame.XRange(cs.xName); return r }

// YRange returns the current y-range or nil if the name is unknown.
func (cs *CoordinateSystem) YRange() Range { r, _ := cs.frame.YRange(cs.yName); return r }

// XScale returns the current x-scale or nil if the name is unknown.
func (cs *CoordinateSystem) XScale() Scale { s, _ := cs.frame.XScaleNamed(cs.xName); return s }

// YScale returns the current y-scale or nil if the name is unknown.
func (cs *CoordinateSystem) YScale() Scale { s, _ := cs.frame.YScaleNamed(cs.yName); return s }

func (cs *CoordinateSystem) Ranges() (x, y Range) { return cs.XRange(), cs.YRange() }
func (cs *CoordinateSystem) Scales() (x, y Scale) { return cs.XScale(), cs.YScale() }

// Resolve reports a *LookupError if one of the range names is unknown
// to the Frame.
func (cs *CoordinateSystem) Resolve() error {
	if _, ok := cs.frame.XScaleNamed(cs.xName); !ok {
		return &LookupError{Axis: "x", Name: cs.xName}
	}
	if _, ok := cs.frame.YScaleNamed(cs.yName); !ok {
		return &LookupError{Axis: "y", Name: cs.yName}
	}
	return nil
}

// MapToScreen maps the data coordinates xs and ys to screen coordinates.
// The results have the same lengths as the inputs.
func (cs *CoordinateSystem) MapToScreen(xs, ys []float64) (sxs, sys []float64, err error) {
	if err := cs.Resolve(); err != nil {
		return nil, nil, err
	}
	xsc, ysc := cs.Scales()
	return VCompute(xsc, xs), VCompute(ysc, ys), nil
}

// MapFromScreen maps screen coordinates back to data coordinates.
func (cs *CoordinateSystem) MapFromScreen(sxs, sys []float64) (xs, ys []float64, err error) {
	if err := cs.Resolve(); err != nil {
		return nil, nil, err
	}
	xsc, ysc := cs.Scales()
	return VInvert(xsc, sxs), VInvert(ysc, sys), nil
}

// MapPoint maps the single data point (x, y) to the screen.
func (cs *CoordinateSystem) MapPoint(x, y float64) (sx, sy float64, err error) {
	if err := cs.Resolve(); err != nil {
		return 0, 0, err
	}
	xs, ys := cs.Scales()
	return xs.Compute(x), ys.Compute(y), nil
}

func (cs *CoordinateSystem) String() string {
	return fmt.Sprintf("CoordinateSystem{x=%q y=%q}", cs.xName, cs.yName)
}
