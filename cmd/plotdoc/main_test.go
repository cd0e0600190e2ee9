package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const doc = `
width = 120.0
height = 80.0

[[renderer]]
type = "Line"
x = [0.0, 1.0, 2.0]
y = [2.0, 0.0, 1.0]

[[renderer]]
type = "Axis"
location = "bottom"
`

func TestPlotdoc(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "plot.toml"), filepath.Join(dir, "plot.png")
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newCommand()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"-o", out, in})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 120 || cfg.Height != 80 {
		t.Errorf("png size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPlotdocArgs(t *testing.T) {
	cmd := newCommand()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Errorf("no error without document")
	}
}
