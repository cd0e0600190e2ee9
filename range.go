package cartesian

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Kind

// Kind is the fundamental nature of a range and of the scales which
// can map it.
type Kind int

const (
	Continuous Kind = iota
	Categorical
)

var kindNames = []string{"continuous", "categorical"}

// String returns the name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ----------------------------------------------------------------------------
// Range

// A Range is the domain one axis varies over.
type Range interface {
	// Type returns the name of the range type, e.g. "Range1d".
	Type() string

	// Kind reports whether the range is continuous or categorical.
	Kind() Kind

	// Bounds returns the directed interval [start, end] covered by the
	// range. Categorical ranges report their synthetic coordinates.
	Bounds() Interval
}

// ----------------------------------------------------------------------------
// Range1d

// Range1d is a fixed interval. It is also used for the pixel space
// targets of a Frame.
type Range1d struct {
	Start, End float64
}

// NewRange1d returns the range [start, end].
func NewRange1d(start, end float64) *Range1d {
	return &Range1d{Start: start, End: end}
}

func (r *Range1d) Type() string     { return "Range1d" }
func (r *Range1d) Kind() Kind       { return Continuous }
func (r *Range1d) Bounds() Interval { return Interval{r.Start, r.End} }

func (r *Range1d) String() string {
	return fmt.Sprintf("Range1d[%g:%g]", r.Start, r.End)
}

// ----------------------------------------------------------------------------
// DataRange1d

// Scale hints for a DataRange1d.
const (
	AutoHint = "auto"
	LogHint  = "log"
)

// DataRange1d is an interval fitted to the data drawn in it.
// Data is learned with Update, the actual bounds are determined by Compute.
type DataRange1d struct {
	// Data is the range covered by the learned data.
	Data Interval

	// Positive is the range covered by the positive learned data.
	Positive Interval

	// Start and End are the computed bounds.
	Start, End float64

	// FixStart and FixEnd pin the respective bound. NaN means the bound
	// is determined from the data.
	FixStart, FixEnd float64

	// Expand determines how much the data range is expandend. For a
	// log hint the expansion is measured in decades.
	Expand struct {
		Absolute float64
		Relative float64
	}

	// Flipped swaps Start and End.
	Flipped bool

	// ScaleHint is AutoHint or LogHint. A LogHint keeps the bounds
	// positive and expands multiplicatively.
	ScaleHint string
}

// NewDataRange1d returns a DataRange1d without data which expands
// the data range by 5% on both sides.
func NewDataRange1d() *DataRange1d {
	r := &DataRange1d{
		Data:      UnsetInterval(),
		Positive:  UnsetInterval(),
		FixStart:  math.NaN(),
		FixEnd:    math.NaN(),
		ScaleHint: AutoHint,
	}
	r.Expand.Relative = 0.05
	r.Compute()
	return r
}

func (r *DataRange1d) Type() string     { return "DataRange1d" }
func (r *DataRange1d) Kind() Kind       { return Continuous }
func (r *DataRange1d) Bounds() Interval { return Interval{r.Start, r.End} }

func (r *DataRange1d) String() string {
	return fmt.Sprintf("DataRange1d[%g:%g] Data=[%g:%g] %s",
		r.Start, r.End, r.Data.Min, r.Data.Max, r.ScaleHint)
}

// SetScaleHint sets the scale hint and recomputes the bounds.
func (r *DataRange1d) SetScaleHint(hint string) {
	r.ScaleHint = hint
	r.Compute()
}

// Update learns the data values x.
func (r *DataRange1d) Update(x ...float64) {
	for _, v := range x {
		r.Data.Update(v)
		if v > 0 {
			r.Positive.Update(v)
		}
	}
}

// Reset forgets all learned data.
func (r *DataRange1d) Reset() {
	r.Data = UnsetInterval()
	r.Positive = UnsetInterval()
}

// Compute turns the learned data range into the bounds Start and End.
func (r *DataRange1d) Compute() {
	var start, end float64
	if r.ScaleHint == LogHint {
		start, end = r.computeLog()
	} else {
		start, end = r.computeLinear()
	}

	// The user has set a fixed bound.
	if !math.IsNaN(r.FixStart) {
		start = r.FixStart
	}
	if !math.IsNaN(r.FixEnd) {
		end = r.FixEnd
	}

	if r.Flipped {
		start, end = end, start
	}
	r.Start, r.End = start, end
}

func (r *DataRange1d) computeLinear() (float64, float64) {
	d := r.Data
	if !d.IsSet() {
		return -1, 1
	}
	ext := r.Expand.Relative*d.Span() + r.Expand.Absolute
	if d.Min == d.Max {
		ext = r.Expand.Relative*math.Abs(d.Min) + r.Expand.Absolute
		if ext == 0 {
			ext = 1
		}
	}
	return d.Min - ext, d.Max + ext
}

func (r *DataRange1d) computeLog() (float64, float64) {
	d := r.Positive
	if !d.IsSet() {
		return 1, 10
	}
	lmin, lmax := math.Log10(d.Min), math.Log10(d.Max)
	ext := r.Expand.Relative*(lmax-lmin) + r.Expand.Absolute
	if lmin == lmax && ext == 0 {
		ext = 0.5
	}
	return math.Pow(10, lmin-ext), math.Pow(10, lmax+ext)
}

// ----------------------------------------------------------------------------
// FactorRange

// FactorRange is a categorical range. The i'th factor is centered on
// the synthetic coordinate i+0.5.
type FactorRange struct {
	// RangePadding is added in synthetic units to both ends.
	RangePadding float64

	factors []string
	index   map[string]int
}

// NewFactorRange returns a categorical range of the given factors.
func NewFactorRange(factors ...string) *FactorRange {
	r := &FactorRange{}
	r.SetFactors(factors)
	return r
}

func (r *FactorRange) Type() string { return "FactorRange" }
func (r *FactorRange) Kind() Kind   { return Categorical }

// Bounds returns the synthetic range [-RangePadding, n+RangePadding].
func (r *FactorRange) Bounds() Interval {
	return Interval{-r.RangePadding, float64(len(r.factors)) + r.RangePadding}
}

// Factors returns the factors of r in order.
func (r *FactorRange) Factors() []string {
	return append([]string(nil), r.factors...)
}

// SetFactors replaces the factors of r.
func (r *FactorRange) SetFactors(factors []string) {
	r.factors = append([]string(nil), factors...)
	r.index = make(map[string]int, len(factors))
	for i, f := range r.factors {
		if _, dup := r.index[f]; !dup {
			r.index[f] = i
		}
	}
}

// Synthetic returns the synthetic coordinate of factor f.
func (r *FactorRange) Synthetic(f string) (float64, bool) {
	i, ok := r.index[f]
	if !ok {
		return math.NaN(), false
	}
	return float64(i) + 0.5, true
}

func (r *FactorRange) String() string {
	return fmt.Sprintf("FactorRange%q", r.factors)
}
