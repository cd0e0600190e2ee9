package renderer

import (
	"fmt"
	"image/color"
	"sort"
	"sync"
)

// ----------------------------------------------------------------------------
// Model

// A Model describes one visual element: what kind it is, on which level
// it is drawn and which named ranges of the frame it uses.
type Model struct {
	Type    string
	Name    string
	Level   Level
	Visible bool

	// XRangeName and YRangeName select the ranges of the frame. Empty
	// names select the "default" ranges.
	XRangeName string
	YRangeName string

	// Optional style overrides. Zero values keep the defaults.
	Color     color.Color
	FillColor color.Color
	LineWidth float64
	Dashes    []float64
	Size      float64
}

func (m *Model) String() string {
	x, y := m.XRangeName, m.YRangeName
	if x == "" {
		x = "default"
	}
	if y == "" {
		y = "default"
	}
	return fmt.Sprintf("%s %q level=%s ranges=(%s,%s)", m.Type, m.Name, m.Level, x, y)
}

// ----------------------------------------------------------------------------
// Schema

// A Schema holds the defaults of one renderer type.
type Schema struct {
	Type    string
	Level   Level
	Visible bool
}

// BaseSchema contains the defaults shared by all renderer types.
var BaseSchema = Schema{Level: Glyph, Visible: true}

// With derives the schema of type typ drawn on the given level from s.
func (s Schema) With(typ string, level Level) Schema {
	s.Type = typ
	s.Level = level
	return s
}

// New returns a model of s's type with all defaults applied.
func (s Schema) New(name string) *Model {
	return &Model{
		Type:    s.Type,
		Name:    name,
		Level:   s.Level,
		Visible: s.Visible,
	}
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Schema)
)

// Register makes schema s available under its type name.
func Register(s Schema) error {
	if s.Type == "" {
		return fmt.Errorf("renderer: schema without type")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[s.Type]; dup {
		return fmt.Errorf("renderer: schema %q already registered", s.Type)
	}
	registry[s.Type] = s
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(s Schema) {
	if err := Register(s); err != nil {
		panic(err)
	}
}

// LookupSchema returns the schema registered for typ.
func LookupSchema(typ string) (Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[typ]
	return s, ok
}

// Types returns the names of all registered types in lexical order.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
