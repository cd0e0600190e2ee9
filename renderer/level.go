package renderer

import "fmt"

// Level determines the order in which renderers are painted and whether
// they are clipped to the frame.
type Level int

const (
	Image Level = iota
	Underlay
	Glyph
	Guide
	Annotation
	Overlay
)

var levelNames = []string{"image", "underlay", "glyph", "guide", "annotation", "overlay"}

// String returns the name of l.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the level named s.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("renderer: unknown level %q", s)
}

func (l Level) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(levelNames) {
		return nil, fmt.Errorf("renderer: invalid level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Layer is the canvas layer a renderer draws on.
type Layer int

const (
	PrimaryLayer Layer = iota
	OverlayLayer
)

var layerNames = []string{"primary", "overlays"}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerNames[l]
}
