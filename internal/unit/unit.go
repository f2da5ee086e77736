package unit

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Unit implements a single feed-forward layer with sigmoid activation.
//
// The layer owns a weight matrix with shape [classCount, inputCount] and a
// bias vector with shape [classCount]. Row i of the weight matrix holds the
// weight vector for output neuron i.
//
// Input layout contract: Forward pairs weight row i with COLUMN i of the
// input, so the input matrix must have inputCount rows and classCount
// columns — each output neuron consumes its own input column. Callers that
// want every neuron to see the same feature vector must replicate it across
// the columns themselves.
//
// Weights are initialized from the standard normal distribution N(0, 1).
// Biases are initialized to zeros.
//
// A Unit holds no internal synchronization; concurrent use requires external
// locking.
//
// Example:
//
//	u := unit.New(10, 784)
//
//	a := u.Forward(input)           // [10], entries in (0, 1)
//	u.Update(dw, db, 0.01, 0.1, 32) // L2-regularized gradient step
type Unit struct {
	classCount int
	inputCount int

	weights *mat.Dense    // [classCount, inputCount]
	bias    *mat.VecDense // [classCount]

	// Pre-update snapshots, nil until the first Update call.
	prevWeights *mat.Dense
	prevBias    *mat.VecDense

	activation *mat.VecDense // [classCount], last Forward output
	lastInput  *mat.Dense    // last Forward input, nil until the first call

	rng *rand.Rand
}

// Option configures a Unit at construction time.
type Option func(*Unit)

// WithSource sets the random source used for weight initialization.
//
// The default source is seeded from the current time, so two units built at
// different times start from different weights. Supplying a fixed source
// makes construction deterministic:
//
//	u := unit.New(2, 3, unit.WithSource(rand.New(rand.NewSource(42))))
func WithSource(rng *rand.Rand) Option {
	return func(u *Unit) {
		u.rng = rng
	}
}

// New creates a Unit with classCount output neurons, each consuming
// inputCount features.
//
// The bias vector is zero-initialized. Each weight is an independent draw
// from N(0, 1) using the unit's random source (time-seeded unless
// WithSource is given).
//
// Panics if classCount or inputCount is not positive.
func New(classCount, inputCount int, opts ...Option) *Unit {
	if classCount <= 0 {
		panic(fmt.Sprintf("unit: New: classCount must be positive, got %d", classCount))
	}
	if inputCount <= 0 {
		panic(fmt.Sprintf("unit: New: inputCount must be positive, got %d", inputCount))
	}

	u := &Unit{
		classCount: classCount,
		inputCount: inputCount,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.rng == nil {
		//nolint:gosec // math/rand for weight initialization (not security-critical)
		u.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	data := make([]float64, classCount*inputCount)
	for i := range data {
		data[i] = u.rng.NormFloat64()
	}
	u.weights = mat.NewDense(classCount, inputCount, data)
	u.bias = mat.NewVecDense(classCount, nil)
	u.activation = mat.NewVecDense(classCount, nil)

	return u
}

// Forward computes the layer's activation for the given input.
//
// For each output neuron i: the dot product of weight row i with input
// column i, plus bias[i], is passed through the logistic function and stored
// at activation[i]. The input is retained as LastInput for an external
// backward pass.
//
// The input must have inputCount rows and classCount columns (see the type
// doc for the column-pairing contract). Panics with a *ShapeError otherwise.
//
// Returns the activation vector; every entry is strictly inside (0, 1).
func (u *Unit) Forward(input *mat.Dense) *mat.VecDense {
	r, c := input.Dims()
	if r != u.inputCount || c != u.classCount {
		panic(&ShapeError{
			Op:   "Forward",
			Want: fmt.Sprintf("%dx%d input", u.inputCount, u.classCount),
			Got:  fmt.Sprintf("%dx%d", r, c),
		})
	}

	u.lastInput = input
	for i := 0; i < u.classCount; i++ {
		pre := mat.Dot(u.weights.RowView(i), input.ColView(i)) + u.bias.AtVec(i)
		u.activation.SetVec(i, Activate(pre))
	}

	return u.activation
}

// Update applies one L2-regularized gradient-descent step.
//
// The current bias and weights are first snapshotted into PrevBias and
// PrevWeights (deep copies), then mutated in place:
//
//	bias[i]       = bias[i] - lr*biasGrad[i]
//	weights[i][j] = (1 - reg*lr/batchSize)*weights[i][j] - lr*weightGrad[i][j]
//
// Weight decay is applied multiplicatively before the gradient step.
// Gradients are supplied by the external caller's backward pass.
//
// weightGrad must be classCount x inputCount and biasGrad must have
// classCount entries; panics with a *ShapeError otherwise. Panics if
// batchSize is not positive (it scales the regularization term).
func (u *Unit) Update(weightGrad *mat.Dense, biasGrad *mat.VecDense, lr, reg float64, batchSize int) {
	if batchSize <= 0 {
		panic(fmt.Sprintf("unit: Update: batchSize must be positive, got %d", batchSize))
	}
	r, c := weightGrad.Dims()
	if r != u.classCount || c != u.inputCount {
		panic(&ShapeError{
			Op:   "Update",
			Want: fmt.Sprintf("%dx%d weight gradient", u.classCount, u.inputCount),
			Got:  fmt.Sprintf("%dx%d", r, c),
		})
	}
	if biasGrad.Len() != u.classCount {
		panic(&ShapeError{
			Op:   "Update",
			Want: fmt.Sprintf("length-%d bias gradient", u.classCount),
			Got:  fmt.Sprintf("length %d", biasGrad.Len()),
		})
	}

	u.prevBias = mat.VecDenseCopyOf(u.bias)
	u.prevWeights = mat.DenseCopyOf(u.weights)

	decay := 1 - reg*lr/float64(batchSize)
	for i := 0; i < u.classCount; i++ {
		u.bias.SetVec(i, u.bias.AtVec(i)-lr*biasGrad.AtVec(i))
		for j := 0; j < u.inputCount; j++ {
			u.weights.Set(i, j, decay*u.weights.At(i, j)-lr*weightGrad.At(i, j))
		}
	}
}

// ClassCount returns the number of output neurons.
func (u *Unit) ClassCount() int {
	return u.classCount
}

// InputCount returns the number of input features per neuron.
func (u *Unit) InputCount() int {
	return u.inputCount
}

// Weights returns the weight matrix. The matrix is live layer state, not a
// copy.
func (u *Unit) Weights() *mat.Dense {
	return u.weights
}

// Bias returns the bias vector. The vector is live layer state, not a copy.
func (u *Unit) Bias() *mat.VecDense {
	return u.bias
}

// Activation returns the activation vector produced by the most recent
// Forward call. Zero-valued before the first call.
func (u *Unit) Activation() *mat.VecDense {
	return u.activation
}

// LastInput returns the input matrix passed to the most recent Forward call,
// retained for use by an external backward pass. Nil before the first call.
func (u *Unit) LastInput() *mat.Dense {
	return u.lastInput
}

// PrevWeights returns the snapshot of the weight matrix taken immediately
// before the most recent Update. Nil before the first Update.
func (u *Unit) PrevWeights() *mat.Dense {
	return u.prevWeights
}

// PrevBias returns the snapshot of the bias vector taken immediately before
// the most recent Update. Nil before the first Update.
func (u *Unit) PrevBias() *mat.VecDense {
	return u.prevBias
}
