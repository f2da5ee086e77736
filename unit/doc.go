// Copyright 2026 Sigma ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package unit provides a single feed-forward neural layer with sigmoid
// activation: forward propagation (weighted sum plus bias through a logistic
// squash) and an L2-regularized gradient-descent update.
//
// # Overview
//
// A Unit is a building block, not a network. The external caller wires
// multiple units together, computes losses and per-layer gradients, and
// drives the training loop:
//
//   - construct one Unit per layer
//   - call Forward in sequence across layers
//   - compute gradients externally (Forward retains its input as LastInput
//     for exactly this purpose)
//   - call Update on each Unit with the gradient terms, learning rate,
//     regularization strength, and batch size
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/sigma-ml/sigma/unit"
//	)
//
//	func main() {
//	    u := unit.New(2, 3) // 2 output neurons, 3 features each
//
//	    // Input layout: inputCount rows x classCount columns;
//	    // column i feeds neuron i.
//	    input := mat.NewDense(3, 2, []float64{
//	        1, 0,
//	        0, 1,
//	        0, 0,
//	    })
//	    a := u.Forward(input) // entries strictly in (0, 1)
//
//	    // ... compute dw [2x3] and db [2] externally ...
//	    u.Update(dw, db, 0.01, 0.1, 32)
//	}
//
// # Input Layout
//
// Forward pairs weight row i with input column i: each output neuron
// consumes its own column of the input matrix. This couples the input
// layout to the number of neurons. Callers feeding one shared vector to
// every neuron must replicate it across the columns.
//
// # Update Rule
//
// Update applies weight decay multiplicatively before the gradient step:
//
//	bias[i]       = bias[i] - lr*db[i]
//	weights[i][j] = (1 - reg*lr/batchSize)*weights[i][j] - lr*dw[i][j]
//
// The pre-update weights and bias are snapshotted into PrevWeights and
// PrevBias on every call, for use by momentum-style optimizers or
// diagnostics in the external caller.
//
// # Errors
//
// Dimension mismatches in Forward and Update panic with a *ShapeError.
// A mismatch is a caller programming error and fails fast rather than
// silently truncating.
//
// # Concurrency
//
// A Unit performs no internal synchronization. Concurrent use from multiple
// goroutines requires external locking.
package unit
