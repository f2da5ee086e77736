package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestActivateZero tests the fixed point σ(0) = 0.5.
func TestActivateZero(t *testing.T) {
	assert.Equal(t, 0.5, Activate(0))
}

// TestActivateKnownValues tests Activate against hand-computed sigmoid values.
func TestActivateKnownValues(t *testing.T) {
	// σ(1)  = 1/(1+e^-1) ≈ 0.7310586
	// σ(-1) ≈ 0.2689414
	// σ(2)  ≈ 0.8807971
	// σ(-2) ≈ 0.1192029
	cases := []struct {
		x, want float64
	}{
		{1, 0.7310586},
		{-1, 0.2689414},
		{2, 0.8807971},
		{-2, 0.1192029},
		{5, 0.9933071},
		{-5, 0.0066929},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Activate(c.x), 1e-6, "Activate(%v)", c.x)
	}
}

// TestActivateRange tests that Activate stays in (0, 1) and never produces
// Inf or NaN, including for large-magnitude inputs where a naive
// 1/(1+exp(-x)) overflows.
func TestActivateRange(t *testing.T) {
	xs := []float64{-1000, -100, -36, -1, -1e-12, 0, 1e-12, 1, 36, 100, 1000}
	for _, x := range xs {
		y := Activate(x)
		require.False(t, math.IsNaN(y), "Activate(%v) is NaN", x)
		require.False(t, math.IsInf(y, 0), "Activate(%v) is Inf", x)
		assert.Greater(t, y, 0.0, "Activate(%v)", x)
		assert.Less(t, y, 1.0, "Activate(%v)", x)
	}
}

// TestActivateMonotonic tests that Activate is strictly increasing.
func TestActivateMonotonic(t *testing.T) {
	xs := []float64{-50, -10, -2, -0.5, 0, 0.5, 2, 10, 50}
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, Activate(xs[i]), Activate(xs[i-1]),
			"Activate not increasing between %v and %v", xs[i-1], xs[i])
	}
}

// TestActivateSymmetry tests the logistic identity σ(x) + σ(-x) = 1.
func TestActivateSymmetry(t *testing.T) {
	for _, x := range []float64{0, 0.1, 1, 3.7, 12, 40} {
		assert.InDelta(t, 1.0, Activate(x)+Activate(-x), 1e-12, "x=%v", x)
	}
}

// TestActivateSlope cross-checks the analytic sigmoid derivative
// σ'(x) = σ(x)(1-σ(x)) against a central finite difference.
func TestActivateSlope(t *testing.T) {
	for _, x := range []float64{-3, -1, 0, 0.5, 2, 4} {
		numeric := fd.Derivative(Activate, x, nil)
		s := Activate(x)
		assert.InDelta(t, s*(1-s), numeric, 1e-6, "x=%v", x)
	}
}

// TestActivateVec tests elementwise application over a vector.
func TestActivateVec(t *testing.T) {
	x := mat.NewVecDense(4, []float64{-2, 0, 1, 30})
	dst := mat.NewVecDense(4, nil)
	ActivateVec(dst, x)

	want := make([]float64, 4)
	for i := range want {
		want[i] = Activate(x.AtVec(i))
	}
	assert.True(t, floats.EqualApprox(want, dst.RawVector().Data, 1e-15))
}

// TestActivateVecInPlace tests that dst and x may alias.
func TestActivateVecInPlace(t *testing.T) {
	x := mat.NewVecDense(3, []float64{-1, 0, 1})
	ActivateVec(x, x)
	assert.InDelta(t, 0.2689414, x.AtVec(0), 1e-6)
	assert.InDelta(t, 0.5, x.AtVec(1), 1e-12)
	assert.InDelta(t, 0.7310586, x.AtVec(2), 1e-6)
}

// TestActivateVecShapeMismatch tests that a length mismatch fails fast.
func TestActivateVecShapeMismatch(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on length mismatch")
		_, ok := r.(*ShapeError)
		require.True(t, ok, "panic value %T is not *ShapeError", r)
	}()
	ActivateVec(mat.NewVecDense(2, nil), mat.NewVecDense(3, nil))
}
