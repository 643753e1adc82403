// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/born-ml/forward/internal/dual"
	"github.com/born-ml/forward/internal/parallel"
)

// Number is a dual number (primal, tangent).
// Primal and Tangent are plain exported fields; the zero value is the constant 0.
type Number = dual.Number

// Func is a unary function on dual numbers.
type Func = dual.Func

// Vector is a fixed-length sequence of dual numbers.
type Vector = dual.Vector

// ParallelConfig controls how Vector.ApplyWith splits work across goroutines.
type ParallelConfig = parallel.Config

// New creates a dual number with an explicit tangent.
func New(primal, tangent float32) Number {
	return dual.New(primal, tangent)
}

// Const creates a constant (tangent 0).
func Const(v float32) Number {
	return dual.Const(v)
}

// Var creates the independent variable at v (tangent 1).
func Var(v float32) Number {
	return dual.Var(v)
}

// Add returns a + b.
func Add(a, b Number) Number { return dual.Add(a, b) }

// Sub returns a - b.
func Sub(a, b Number) Number { return dual.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b Number) Number { return dual.Mul(a, b) }

// Div returns a / b.
func Div(a, b Number) Number { return dual.Div(a, b) }

// Sin computes sin(x).
func Sin(x Number) Number { return dual.Sin(x) }

// Cos computes cos(x).
func Cos(x Number) Number { return dual.Cos(x) }

// Exp computes e^x.
func Exp(x Number) Number { return dual.Exp(x) }

// Log computes the natural logarithm.
func Log(x Number) Number { return dual.Log(x) }

// ReLU computes max(0, x) with tangent 0 at x = 0.
func ReLU(x Number) Number { return dual.ReLU(x) }

// Sigmoid computes 1 / (1 + exp(-x)).
func Sigmoid(x Number) Number { return dual.Sigmoid(x) }

// Tanh computes the hyperbolic tangent.
func Tanh(x Number) Number { return dual.Tanh(x) }

// Compose returns the function applying fs left to right.
func Compose(fs ...Func) Func {
	return dual.Compose(fs...)
}

// Derivative evaluates f at the seed x and returns f(x) and f'(x).
//
// Example:
//
//	v, d := dual.Derivative(dual.Tanh, 0.5)
func Derivative(f Func, x float32) (value, derivative float32) {
	return dual.Derivative(f, x)
}

// NewVector creates a vector of n zero duals.
func NewVector(n int) *Vector {
	return dual.NewVector(n)
}

// VectorOf creates a vector holding a copy of xs.
func VectorOf(xs ...Number) *Vector {
	return dual.VectorOf(xs...)
}

// Seeded creates a vector of seeds, one per x.
func Seeded(xs ...float32) *Vector {
	return dual.Seeded(xs...)
}

// DefaultParallelConfig returns the configuration used by Vector.Apply.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a configuration that never spawns goroutines.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
