//go:build ignore
// +build ignore

package main

import (
	"math"
	"math/rand"
	"os"

	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/geom"
	"github.com/vdobler/cartesian/plotview"
	"gonum.org/v1/plot/plotter"
)

var growth, share plotter.XYs

func init() {
	growth = make(plotter.XYs, 50)
	share = make(plotter.XYs, 50)
	x := 10.0
	for i := range growth {
		growth[i].X = float64(i)
		growth[i].Y = x * (1 + rand.Float64()/5)
		share[i].X = float64(i)
		share[i].Y = 0.5 + 0.4*math.Sin(float64(i)/5)
		x *= 1.2
	}
}

func main() {
	frame, err := cartesian.NewFrame(
		cartesian.NewLinearScale(), cartesian.NewLogScale(),
		cartesian.NewDataRange1d(), cartesian.NewDataRange1d(),
		cartesian.ExtraYRange("share", cartesian.NewRange1d(0.1, 1)))
	if err != nil {
		panic(err)
	}

	points := geom.NewScatter("growth", growth)
	points.Shape = func(i int) int { return i % 3 }
	points.Palette = func(i int) int { return i / 10 }

	line := geom.NewLine("share", share)
	line.YRangeName = "share"
	line.Dashes = []float64{4, 2}

	band := geom.NewBoxAnnotation("window")
	band.Left, band.Right = 20, 30

	left := geom.NewAxis("left", geom.Left)
	left.Label = "growth"
	right := geom.NewAxis("right", geom.Right)
	right.YRangeName = "share"
	right.Label = "share"

	v := plotview.New(frame, plotview.DefaultConfig())
	if err := v.Add(points, line, band, geom.NewAxis("bottom", geom.Bottom), left, right); err != nil {
		panic(err)
	}
	if err := v.Paint(); err != nil {
		panic(err)
	}
	write(v, "twin.png")
}

func write(v *plotview.View, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	if err = v.WritePNG(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
