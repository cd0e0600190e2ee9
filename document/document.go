// Package document reads declarative plot descriptions from TOML or YAML
// and builds the frame and the renderers they describe.
//
// A minimal TOML document:
//
//	[x]
//	scale = "linear"
//	range = { kind = "datarange1d" }
//
//	[y]
//	scale = "log"
//	range = { kind = "range1d", start = 1, end = 1000 }
//	extra = { right = { kind = "range1d", start = 0, end = 1 } }
//
//	[[renderer]]
//	type = "Scatter"
//	x = [1, 2, 3]
//	y = [10, 100, 1000]
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a document.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf determines the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("document: unknown format of %q", path)
}

// A Document describes a plot.
type Document struct {
	Title  string  `toml:"title" yaml:"title"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	X Axis `toml:"x" yaml:"x"`
	Y Axis `toml:"y" yaml:"y"`

	Renderers []Renderer `toml:"renderer" yaml:"renderers"`

	// Dir is the directory relative file names are resolved against.
	Dir string `toml:"-" yaml:"-"`
}

// Axis describes the scale kind and the ranges of one dimension.
type Axis struct {
	Scale string           `toml:"scale" yaml:"scale"`
	Range Range            `toml:"range" yaml:"range"`
	Extra map[string]Range `toml:"extra" yaml:"extra"`
}

// Range describes a range. Kind is one of range1d, datarange1d and
// factor.
type Range struct {
	Kind    string   `toml:"kind" yaml:"kind"`
	Start   *float64 `toml:"start" yaml:"start"`
	End     *float64 `toml:"end" yaml:"end"`
	Factors []string `toml:"factors" yaml:"factors"`
	Flipped bool     `toml:"flipped" yaml:"flipped"`
	Padding float64  `toml:"padding" yaml:"padding"`
}

// Parse decodes a document. Unknown fields are an error.
func Parse(data []byte, f Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(doc)
	default:
		return nil, fmt.Errorf("document: unknown format %d", int(f))
	}
	if err != nil {
		var sm *toml.StrictMissingError
		if errors.As(err, &sm) {
			return nil, fmt.Errorf("document: %s", sm.String())
		}
		return nil, fmt.Errorf("document: parsing %s: %w", f, err)
	}
	return doc, nil
}

// Load reads the document in path. The format is determined from the
// file extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	doc, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Dir = filepath.Dir(path)
	return doc, nil
}
