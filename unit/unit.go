// Copyright 2026 Sigma ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package unit

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/sigma-ml/sigma/internal/unit"
)

// Unit is a single feed-forward neural layer with sigmoid activation.
type Unit = unit.Unit

// Option configures a Unit at construction time.
type Option = unit.Option

// ShapeError reports a dimension mismatch between an operation's argument
// and the unit's configured sizes.
type ShapeError = unit.ShapeError

// New creates a Unit with classCount output neurons, each consuming
// inputCount features. Bias starts at zero; weights are drawn from N(0, 1).
//
// Example:
//
//	u := unit.New(10, 784)
//	a := u.Forward(input)
//	u.Update(dw, db, 0.01, 0.1, 32)
func New(classCount, inputCount int, opts ...Option) *Unit {
	return unit.New(classCount, inputCount, opts...)
}

// WithSource sets the random source used for weight initialization.
// The default source is seeded from the current time.
//
// Example:
//
//	u := unit.New(2, 3, unit.WithSource(rand.New(rand.NewSource(42))))
func WithSource(rng *rand.Rand) Option {
	return unit.WithSource(rng)
}

// Activate computes the logistic function σ(x) = 1 / (1 + exp(-x)) with a
// numerically stable formulation: the result lies strictly in (0, 1) for
// every finite input.
func Activate(x float64) float64 {
	return unit.Activate(x)
}

// ActivateVec applies Activate elementwise, writing σ(x[i]) into dst[i].
// dst and x may be the same vector.
func ActivateVec(dst, x *mat.VecDense) {
	unit.ActivateVec(dst, x)
}
