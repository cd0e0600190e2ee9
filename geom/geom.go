// Package geom provides renderers drawing data into the frame of a plot.
//
// The overall concept is loosely based on ggplot2's geoms. Each geom has
// some required data, typically (x,y) coordinates, and may provide the
// ability to optionally map other aesthetics like color, shape or size
// per data point through Aesthetic functions.
//
// Every geom is a renderer model (it embeds renderer.Model) and creates
// its view with NewView. Views map their data through the coordinate
// system selected by the model's range names.
package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/vdobler/cartesian/data"
	"github.com/vdobler/cartesian/renderer"
	"gonum.org/v1/plot/plotter"
)

// Type names of the geoms.
const (
	ScatterType       = "Scatter"
	LineType          = "Line"
	QuadType          = "Quad"
	BoxAnnotationType = "BoxAnnotation"
	ImageType         = "Image"
	AxisType          = "Axis"
)

var (
	scatterSchema = renderer.BaseSchema.With(ScatterType, renderer.Glyph)
	lineSchema    = renderer.BaseSchema.With(LineType, renderer.Glyph)
	quadSchema    = renderer.BaseSchema.With(QuadType, renderer.Glyph)
	boxSchema     = renderer.BaseSchema.With(BoxAnnotationType, renderer.Annotation)
	imageSchema   = renderer.BaseSchema.With(ImageType, renderer.Image)
	axisSchema    = renderer.BaseSchema.With(AxisType, renderer.Guide)
)

func init() {
	for _, s := range []renderer.Schema{
		scatterSchema, lineSchema, quadSchema, boxSchema, imageSchema, axisSchema,
	} {
		renderer.MustRegister(s)
	}
}

// errDetached is returned when rendering a view cut off its plot.
var errDetached = errors.New("geom: view is detached")

// A Renderer is a geom model which can create its view.
type Renderer interface {
	renderer.Factory
	Base() *renderer.Model
}

// Params carries the data of a geom built from a bare model.
type Params struct {
	X, Y, U, V []float64
	Image      []byte
	Location   Location
	Label      string
}

// FromModel builds the geom of type m.Type from m and p. The quadruple
// types (Quad, BoxAnnotation, Image) take their corners from X, Y, U
// and V.
func FromModel(m *renderer.Model, p Params) (Renderer, error) {
	switch m.Type {
	case ScatterType:
		xy, err := xys(p)
		if err != nil {
			return nil, err
		}
		return &Scatter{Model: *m, XY: xy}, nil
	case LineType:
		xy, err := xys(p)
		if err != nil {
			return nil, err
		}
		return &Line{Model: *m, XY: xy}, nil
	case QuadType:
		q, err := xyuvs(p)
		if err != nil {
			return nil, err
		}
		return &Quad{Model: *m, XYUV: q}, nil
	case BoxAnnotationType:
		b := &BoxAnnotation{Model: *m, Left: math.NaN(), Bottom: math.NaN(),
			Right: math.NaN(), Top: math.NaN()}
		if len(p.X) > 0 {
			b.Left, b.Bottom, b.Right, b.Top = corner(p.X), corner(p.Y), corner(p.U), corner(p.V)
		}
		return b, nil
	case ImageType:
		if len(p.Image) == 0 {
			return nil, fmt.Errorf("geom: image %q without data", m.Name)
		}
		q, err := xyuvs(p)
		if err != nil || q.Len() != 1 {
			return nil, fmt.Errorf("geom: image %q needs exactly one corner quadruple", m.Name)
		}
		x, y, u, v := q.XYUV(0)
		return &Image{Model: *m, Data: p.Image, Left: x, Bottom: y, Right: u, Top: v}, nil
	case AxisType:
		return &Axis{Model: *m, Location: p.Location, Label: p.Label, TickLength: 5}, nil
	}
	return nil, fmt.Errorf("geom: unknown renderer type %q", m.Type)
}

func corner(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	return v[0]
}

func xys(p Params) (plotter.XYs, error) {
	if len(p.X) != len(p.Y) {
		return nil, fmt.Errorf("geom: %d x values but %d y values", len(p.X), len(p.Y))
	}
	xy := make(plotter.XYs, len(p.X))
	for i := range xy {
		xy[i].X, xy[i].Y = p.X[i], p.Y[i]
	}
	return xy, nil
}

func xyuvs(p Params) (data.XYUVs, error) {
	n := len(p.X)
	if len(p.Y) != n || len(p.U) != n || len(p.V) != n {
		return nil, fmt.Errorf("geom: x, y, u and v differ in length")
	}
	q := make(data.XYUVs, n)
	for i := range q {
		q[i].X, q[i].Y, q[i].U, q[i].V = p.X[i], p.Y[i], p.U[i], p.V[i]
	}
	return q, nil
}
