package renderer

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Visuals are the resolved drawing styles of a renderer.
type Visuals struct {
	Line  draw.LineStyle
	Fill  color.Color
	Glyph draw.GlyphStyle
	Text  draw.TextStyle
}

// DefaultVisuals returns the visuals used when a model does not override
// them. They mimic the appearance of ggplot2 geoms.
func DefaultVisuals() Visuals {
	font, err := vg.MakeFont("Helvetica", 10)
	if err != nil {
		panic(err)
	}

	v := Visuals{}
	v.Line.Color = color.Gray16{0x1111}
	v.Line.Width = vg.Length(1)

	v.Fill = color.NRGBA{0x33, 0x66, 0x99, 0x80}

	v.Glyph.Color = color.Gray16{0x1111}
	v.Glyph.Radius = vg.Length(3)
	v.Glyph.Shape = draw.CircleGlyph{}

	v.Text.Color = color.Black
	v.Text.Font = font
	v.Text.XAlign = draw.XCenter
	v.Text.YAlign = draw.YTop

	return v
}

// ResolveVisuals applies the style overrides of m to the defaults.
func ResolveVisuals(m *Model) Visuals {
	v := DefaultVisuals()
	if m.Color != nil {
		v.Line.Color = m.Color
		v.Glyph.Color = m.Color
		v.Text.Color = m.Color
	}
	if m.FillColor != nil {
		v.Fill = m.FillColor
	}
	if m.LineWidth > 0 {
		v.Line.Width = vg.Length(m.LineWidth)
	}
	if len(m.Dashes) > 0 {
		v.Line.Dashes = make([]vg.Length, len(m.Dashes))
		for i, d := range m.Dashes {
			v.Line.Dashes[i] = vg.Length(d)
		}
	}
	if m.Size > 0 {
		v.Glyph.Radius = vg.Length(m.Size)
	}
	return v
}

// Dashes returns the dash pattern of ls in screen units.
func Dashes(ls draw.LineStyle) []float64 {
	d := make([]float64, len(ls.Dashes))
	for i, l := range ls.Dashes {
		d[i] = float64(l)
	}
	return d
}
