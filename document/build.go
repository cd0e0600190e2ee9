package document

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/data"
	"github.com/vdobler/cartesian/geom"
	"github.com/vdobler/cartesian/renderer"
)

// Renderer describes one renderer. Fields which do not apply to the
// renderer type are ignored.
type Renderer struct {
	Type    string          `toml:"type" yaml:"type"`
	Name    string          `toml:"name" yaml:"name"`
	Level   *renderer.Level `toml:"level" yaml:"level"`
	Visible *bool           `toml:"visible" yaml:"visible"`

	XRange string `toml:"x_range" yaml:"x_range"`
	YRange string `toml:"y_range" yaml:"y_range"`

	Color     string    `toml:"color" yaml:"color"`
	Fill      string    `toml:"fill" yaml:"fill"`
	LineWidth float64   `toml:"line_width" yaml:"line_width"`
	Dashes    []float64 `toml:"dashes" yaml:"dashes"`
	Size      float64   `toml:"size" yaml:"size"`

	X []float64 `toml:"x" yaml:"x"`
	Y []float64 `toml:"y" yaml:"y"`
	U []float64 `toml:"u" yaml:"u"`
	V []float64 `toml:"v" yaml:"v"`

	// XFactors and YFactors replace X and Y by the synthetic
	// coordinates of the factors in the renderer's categorical ranges.
	XFactors []string `toml:"x_factors" yaml:"x_factors"`
	YFactors []string `toml:"y_factors" yaml:"y_factors"`

	Image    string        `toml:"image" yaml:"image"`
	Location geom.Location `toml:"location" yaml:"location"`
	Label    string        `toml:"label" yaml:"label"`
}

// A Plot is a built document.
type Plot struct {
	Title     string
	Frame     *cartesian.Frame
	Renderers []geom.Renderer
}

// Build creates the frame and the renderers of d.
func (d *Document) Build() (*Plot, error) {
	xs, err := newScale(d.X.Scale)
	if err != nil {
		return nil, fmt.Errorf("document: x: %w", err)
	}
	ys, err := newScale(d.Y.Scale)
	if err != nil {
		return nil, fmt.Errorf("document: y: %w", err)
	}
	xr, err := d.X.Range.build()
	if err != nil {
		return nil, fmt.Errorf("document: x range: %w", err)
	}
	yr, err := d.Y.Range.build()
	if err != nil {
		return nil, fmt.Errorf("document: y range: %w", err)
	}
	xe, err := buildExtra(d.X.Extra)
	if err != nil {
		return nil, fmt.Errorf("document: x: %w", err)
	}
	ye, err := buildExtra(d.Y.Extra)
	if err != nil {
		return nil, fmt.Errorf("document: y: %w", err)
	}

	frame, err := cartesian.NewFrame(xs, ys, xr, yr,
		cartesian.ExtraXRanges(xe), cartesian.ExtraYRanges(ye))
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}

	p := &Plot{Title: d.Title, Frame: frame}
	var errs []error
	for i := range d.Renderers {
		r, err := d.buildRenderer(frame, &d.Renderers[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("document: renderer %d: %w", i, err))
			continue
		}
		p.Renderers = append(p.Renderers, r)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return p, nil
}

// Factories returns the renderers of p for plotview.View.Add.
func (p *Plot) Factories() []renderer.Factory {
	fs := make([]renderer.Factory, len(p.Renderers))
	for i, r := range p.Renderers {
		fs[i] = r
	}
	return fs
}

func newScale(kind string) (cartesian.Scale, error) {
	switch strings.ToLower(kind) {
	case "", "linear":
		return cartesian.NewLinearScale(), nil
	case "log":
		return cartesian.NewLogScale(), nil
	case "categorical":
		return cartesian.NewCategoricalScale(), nil
	}
	return nil, fmt.Errorf("unknown scale %q", kind)
}

func (r Range) build() (cartesian.Range, error) {
	switch strings.ToLower(r.Kind) {
	case "", "datarange1d":
		dr := cartesian.NewDataRange1d()
		if r.Start != nil {
			dr.FixStart = *r.Start
		}
		if r.End != nil {
			dr.FixEnd = *r.End
		}
		dr.Flipped = r.Flipped
		dr.Compute()
		return dr, nil
	case "range1d":
		if r.Start == nil || r.End == nil {
			return nil, fmt.Errorf("range1d needs start and end")
		}
		start, end := *r.Start, *r.End
		if r.Flipped {
			start, end = end, start
		}
		return cartesian.NewRange1d(start, end), nil
	case "factor":
		if len(r.Factors) == 0 {
			return nil, fmt.Errorf("factor range without factors")
		}
		fr := cartesian.NewFactorRange(r.Factors...)
		fr.RangePadding = r.Padding
		return fr, nil
	}
	return nil, fmt.Errorf("unknown range kind %q", r.Kind)
}

func buildExtra(descs map[string]Range) (map[string]cartesian.Range, error) {
	extra := make(map[string]cartesian.Range, len(descs))
	for name, desc := range descs {
		r, err := desc.build()
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", name, err)
		}
		extra[name] = r
	}
	return extra, nil
}

func (d *Document) buildRenderer(frame *cartesian.Frame, desc *Renderer) (geom.Renderer, error) {
	schema, ok := renderer.LookupSchema(desc.Type)
	if !ok {
		return nil, fmt.Errorf("unknown renderer type %q", desc.Type)
	}
	m := schema.New(desc.Name)
	if desc.Level != nil {
		m.Level = *desc.Level
	}
	if desc.Visible != nil {
		m.Visible = *desc.Visible
	}
	m.XRangeName, m.YRangeName = desc.XRange, desc.YRange
	m.LineWidth, m.Size = desc.LineWidth, desc.Size
	m.Dashes = desc.Dashes
	var err error
	if m.Color, err = parseColor(desc.Color); err != nil {
		return nil, err
	}
	if m.FillColor, err = parseColor(desc.Fill); err != nil {
		return nil, err
	}

	p := geom.Params{X: desc.X, Y: desc.Y, U: desc.U, V: desc.V,
		Location: desc.Location, Label: desc.Label}
	cs := frame.Scope(m.XRangeName, m.YRangeName)
	if err := cs.Resolve(); err != nil {
		return nil, err
	}
	if len(desc.XFactors) > 0 {
		if p.X, err = synthetic(cs.XRange(), desc.XFactors); err != nil {
			return nil, err
		}
	}
	if len(desc.YFactors) > 0 {
		if p.Y, err = synthetic(cs.YRange(), desc.YFactors); err != nil {
			return nil, err
		}
	}
	if desc.Image != "" {
		name := desc.Image
		if !filepath.IsAbs(name) && d.Dir != "" {
			name = filepath.Join(d.Dir, name)
		}
		if p.Image, err = os.ReadFile(name); err != nil {
			return nil, err
		}
	}
	return geom.FromModel(m, p)
}

func synthetic(r cartesian.Range, factors []string) ([]float64, error) {
	fr, ok := r.(*cartesian.FactorRange)
	if !ok {
		return nil, fmt.Errorf("factors given for non-categorical range %s", r.Type())
	}
	xs := data.Synthetic(fr, factors)
	for i, x := range xs {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("unknown factor %q", factors[i])
		}
	}
	return xs, nil
}

// parseColor parses #rgb, #rrggbb and #rrggbbaa. The empty string is the
// nil color.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex, alpha := s, uint64(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad color %q", s)
		}
		hex, alpha = s[:7], a
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, uint8(alpha)}, nil
}
