package cartesian

import (
	"fmt"
	"math"
	"testing"
)

var transformationTests = []struct {
	trans   Transformation
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{LinearTrans, 10, 20, 10, 20, 12, 12},
	{LinearTrans, 10, 20, 100, 200, 12, 120},
	{LinearTrans, 3, 5, 0, 1, 3, 0},
	{LinearTrans, 3, 5, 0, 1, 4, 0.5},
	{LinearTrans, 3, 5, 0, 1, 5, 1},
	{LinearTrans, 0, 10, 200, 0, 0, 200}, // flipped target
	{LinearTrans, 0, 10, 200, 0, 10, 0},

	{Log10Trans, 1, 100, 0, 100, 1, 0},
	{Log10Trans, 1, 100, 0, 100, 10, 50},
	{Log10Trans, 1, 100, 0, 100, 100, 100},
	{Log10Trans, 1, 1000, 300, 0, 10, 200},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(b))
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.Name, i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			got := tc.trans.Trans(from, to, tc.x)
			if !equal64(got, tc.want) {
				t.Errorf("%s.Trans(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, tc.x, got, tc.want)
			}
			back := tc.trans.Inverse(from, to, got)
			if !equal64(back, tc.x) {
				t.Errorf("%s.Inverse(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, got, back, tc.x)
			}
		})
	}
}

func TestLog10TransNonPositive(t *testing.T) {
	from, to := Interval{1, 100}, Interval{0, 100}
	for _, x := range []float64{0, -1} {
		if got := Log10Trans.Trans(from, to, x); !math.IsNaN(got) {
			t.Errorf("Log10Trans.Trans(%g) = %g, want NaN", x, got)
		}
	}
}
