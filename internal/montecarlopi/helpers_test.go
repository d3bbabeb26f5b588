package montecarlopi

import (
	"math"
	"testing"
)

const piTolerance = 0.01

// constSource always returns the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// cycleSource repeats vals forever.
type cycleSource struct {
	vals []float64
	i    int
}

func (c *cycleSource) Float64() float64 {
	v := c.vals[c.i%len(c.vals)]
	c.i++
	return v
}

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// nearPi retries a statistical estimate a few times so a single unlucky
// draw does not fail the test.
func nearPi(t *testing.T, name string, tol float64, estimate func() float64) {
	t.Helper()
	const attempts = 3
	var got float64
	for i := 0; i < attempts; i++ {
		got = estimate()
		if !isFinite(got) {
			t.Fatalf("%s: non finite estimate %v", name, got)
		}
		if math.Abs(got-math.Pi) <= tol {
			return
		}
	}
	t.Fatalf("%s: estimate %.6f not within %.3f of pi after %d attempts", name, got, tol, attempts)
}
