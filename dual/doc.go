// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation with dual numbers.
//
// # Overview
//
// A Number pairs a primal value with a tangent, the derivative with respect
// to a single independent variable. Arithmetic and elementary functions
// propagate tangents by the chain rule as they compute, so any expression
// built from this package carries its exact first derivative:
//   - No tape and no expression graph (memory is O(1) per live value)
//   - float32 primal and tangent
//   - IEEE-754 NaN/±Inf propagate, no errors are returned
//
// # Basic Usage
//
//	import "github.com/born-ml/forward/dual"
//
//	func main() {
//	    x := dual.Var(1)                    // seed, tangent 1
//	    c := dual.Const(3)                  // constant, tangent 0
//
//	    y := x.Mul(x).Add(dual.Sin(x)).Mul(c)
//	    fmt.Println(y.Primal, y.Tangent)    // 3(1+sin 1), 3(2+cos 1)
//	}
//
// # Elementary Functions
//
//	dual.Sin(x)      dual.Cos(x)
//	dual.Exp(x)      dual.Log(x)
//	dual.ReLU(x)     dual.Sigmoid(x)     dual.Tanh(x)
//
// ReLU takes the inactive branch at exactly 0: its tangent there is 0.
//
// # Vectors
//
// Vector is a fixed-length sequence of independent dual numbers. Apply maps a
// unary function over it and returns a new vector; long vectors are split
// across goroutines.
//
//	v := dual.Seeded(1, 2, 3)
//	out := v.Apply(func(x dual.Number) dual.Number {
//	    return x.Mul(x).Add(dual.Exp(x))
//	})
//	fmt.Println(out.Tangents())          // 2x + e^x for each x
package dual
