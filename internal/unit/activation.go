package unit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// activationClip bounds the logistic argument. At |x| = 36 the sigmoid is
// within one ulp of its asymptote; clamping there keeps the output strictly
// inside (0, 1) in float64, where the unclamped function saturates to
// exactly 0 or 1 for large |x|.
const activationClip = 36.0

// Activate computes the logistic function: σ(x) = 1 / (1 + exp(-x)).
//
// The argument is clamped to [-36, 36] and the two-branch form keeps exp's
// argument non-positive, so the computation never overflows and the result
// lies strictly in (0, 1) for every finite input, with σ(0) = 0.5 exactly.
//
// Pure function; no state.
func Activate(x float64) float64 {
	switch {
	case x > activationClip:
		x = activationClip
	case x < -activationClip:
		x = -activationClip
	}
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// ActivateVec applies Activate elementwise, writing σ(x[i]) into dst[i].
// dst and x may be the same vector.
//
// Panics with a *ShapeError if dst and x differ in length.
func ActivateVec(dst, x *mat.VecDense) {
	if dst.Len() != x.Len() {
		panic(&ShapeError{
			Op:   "ActivateVec",
			Want: fmt.Sprintf("length-%d destination", x.Len()),
			Got:  fmt.Sprintf("length %d", dst.Len()),
		})
	}
	for i := 0; i < x.Len(); i++ {
		dst.SetVec(i, Activate(x.AtVec(i)))
	}
}
