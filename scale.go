package cartesian

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale

// A Scale maps values of its source range to values of its target range.
// The target of the scales of a Frame is a pixel interval.
type Scale interface {
	// Type returns the name of the scale type, e.g. "LinearScale".
	Type() string

	// Kind reports which kind of ranges the scale can map.
	Kind() Kind

	// Clone returns an independent copy of the scale.
	Clone() Scale

	// Configure sets source and target range in one step.
	Configure(source Range, target *Range1d)

	SourceRange() Range
	TargetRange() *Range1d
	SetTargetRange(target *Range1d)

	// Compute maps the source value x to the target.
	Compute(x float64) float64

	// Invert maps the target value y back to the source.
	Invert(y float64) float64

	// Ticker generates ticks in source coordinates.
	Ticker() plot.Ticker
}

// VCompute maps all xs with s.
func VCompute(s Scale, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Compute(x)
	}
	return out
}

// VInvert maps all ys back with s.
func VInvert(s Scale, ys []float64) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[i] = s.Invert(y)
	}
	return out
}

// scaleBase implements the range bookkeeping shared by all scales.
type scaleBase struct {
	source Range
	target *Range1d
	trans  Transformation
}

func (s *scaleBase) Configure(source Range, target *Range1d) {
	s.source, s.target = source, target
}

func (s *scaleBase) SourceRange() Range             { return s.source }
func (s *scaleBase) TargetRange() *Range1d          { return s.target }
func (s *scaleBase) SetTargetRange(target *Range1d) { s.target = target }

// Compute returns NaN as long as s is not configured.
func (s *scaleBase) Compute(x float64) float64 {
	if s.source == nil || s.target == nil {
		return math.NaN()
	}
	return s.trans.Trans(s.source.Bounds(), s.target.Bounds(), x)
}

func (s *scaleBase) Invert(y float64) float64 {
	if s.source == nil || s.target == nil {
		return math.NaN()
	}
	return s.trans.Inverse(s.source.Bounds(), s.target.Bounds(), y)
}

func (s *scaleBase) describe(typ string) string {
	return fmt.Sprintf("%s{source=%v target=%v}", typ, s.source, s.target)
}

// ----------------------------------------------------------------------------
// LinearScale

// LinearScale maps a continuous range linearly.
type LinearScale struct {
	scaleBase
}

// NewLinearScale returns an unconfigured linear scale.
func NewLinearScale() *LinearScale {
	return &LinearScale{scaleBase{trans: LinearTrans}}
}

func (s *LinearScale) Type() string        { return "LinearScale" }
func (s *LinearScale) Kind() Kind          { return Continuous }
func (s *LinearScale) Ticker() plot.Ticker { return s.trans.Ticker }
func (s *LinearScale) String() string      { return s.describe(s.Type()) }

func (s *LinearScale) Clone() Scale {
	c := *s
	return &c
}

// ----------------------------------------------------------------------------
// LogScale

// LogScale maps a continuous, strictly positive range logarithmically.
type LogScale struct {
	scaleBase
}

// NewLogScale returns an unconfigured log10 scale.
func NewLogScale() *LogScale {
	return &LogScale{scaleBase{trans: Log10Trans}}
}

func (s *LogScale) Type() string        { return "LogScale" }
func (s *LogScale) Kind() Kind          { return Continuous }
func (s *LogScale) Ticker() plot.Ticker { return s.trans.Ticker }
func (s *LogScale) String() string      { return s.describe(s.Type()) }

func (s *LogScale) Clone() Scale {
	c := *s
	return &c
}

// ----------------------------------------------------------------------------
// CategoricalScale

// CategoricalScale maps the synthetic coordinates of a FactorRange
// linearly.
type CategoricalScale struct {
	scaleBase
}

// NewCategoricalScale returns an unconfigured categorical scale.
func NewCategoricalScale() *CategoricalScale {
	return &CategoricalScale{scaleBase{trans: LinearTrans}}
}

func (s *CategoricalScale) Type() string   { return "CategoricalScale" }
func (s *CategoricalScale) Kind() Kind     { return Categorical }
func (s *CategoricalScale) String() string { return s.describe(s.Type()) }

func (s *CategoricalScale) Clone() Scale {
	c := *s
	return &c
}

// ComputeFactor maps the factor f. It reports false if s is not
// configured with a FactorRange containing f.
func (s *CategoricalScale) ComputeFactor(f string) (float64, bool) {
	fr, ok := s.source.(*FactorRange)
	if !ok {
		return math.NaN(), false
	}
	x, ok := fr.Synthetic(f)
	if !ok {
		return math.NaN(), false
	}
	return s.Compute(x), true
}

// Ticker places one labeled tick at the center of every factor.
func (s *CategoricalScale) Ticker() plot.Ticker {
	fr, ok := s.source.(*FactorRange)
	if !ok {
		return plot.ConstantTicks(nil)
	}
	factors := fr.Factors()
	ticks := make([]plot.Tick, len(factors))
	for i, f := range factors {
		ticks[i] = plot.Tick{Value: float64(i) + 0.5, Label: f}
	}
	return plot.ConstantTicks(ticks)
}
