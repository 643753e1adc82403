// Package dual implements forward-mode automatic differentiation with dual numbers.
//
// A Number carries a primal value together with its tangent, the derivative of
// the expression with respect to one implicit independent variable. Every
// operation applies the matching differentiation rule locally, so any
// expression built from the supported primitives carries its exact derivative
// without a tape or an expression graph.
//
// Usage:
//
//	x := dual.Var(1)                      // seed: tangent 1
//	y := x.Mul(x).Add(dual.Sin(x))        // y = x² + sin(x)
//	fmt.Println(y.Primal, y.Tangent)      // 1+sin(1), 2+cos(1)
//
// Domain errors are not reported: log of a non-positive number or division by
// zero yields NaN or ±Inf, which then propagates like ordinary float32 values.
package dual

import "fmt"

// Number is a dual number (primal, tangent).
//
// The zero value is the constant 0.
type Number struct {
	Primal  float32 // Function value.
	Tangent float32 // Derivative with respect to the seed variable.
}

// New creates a dual number with an explicit tangent.
func New(primal, tangent float32) Number {
	return Number{Primal: primal, Tangent: tangent}
}

// Const creates a constant: tangent 0.
func Const(v float32) Number {
	return Number{Primal: v}
}

// Var creates the independent variable at v: tangent 1.
func Var(v float32) Number {
	return Number{Primal: v, Tangent: 1}
}

// Value returns the primal.
func (a Number) Value() float32 {
	return a.Primal
}

// Derivative returns the tangent.
func (a Number) Derivative() float32 {
	return a.Tangent
}

// String formats the number as (primal, tangent).
func (a Number) String() string {
	return fmt.Sprintf("(%g, %g)", a.Primal, a.Tangent)
}

// Add returns a + b.
func (a Number) Add(b Number) Number {
	return Number{
		Primal:  a.Primal + b.Primal,
		Tangent: a.Tangent + b.Tangent,
	}
}

// Sub returns a - b.
func (a Number) Sub(b Number) Number {
	return Number{
		Primal:  a.Primal - b.Primal,
		Tangent: a.Tangent - b.Tangent,
	}
}

// Mul returns a * b.
//
// Product rule: d(a*b) = a*db + da*b.
func (a Number) Mul(b Number) Number {
	return Number{
		Primal:  a.Primal * b.Primal,
		Tangent: a.Primal*b.Tangent + a.Tangent*b.Primal,
	}
}

// Div returns a / b.
//
// Quotient rule: d(a/b) = (da*b - a*db) / b².
func (a Number) Div(b Number) Number {
	denom := b.Primal * b.Primal
	return Number{
		Primal:  a.Primal / b.Primal,
		Tangent: (a.Tangent*b.Primal - a.Primal*b.Tangent) / denom,
	}
}

// Neg returns -a.
func (a Number) Neg() Number {
	return Number{Primal: -a.Primal, Tangent: -a.Tangent}
}

// Scale multiplies a by the constant k.
func (a Number) Scale(k float32) Number {
	return Number{Primal: k * a.Primal, Tangent: k * a.Tangent}
}

// Add returns a + b.
func Add(a, b Number) Number { return a.Add(b) }

// Sub returns a - b.
func Sub(a, b Number) Number { return a.Sub(b) }

// Mul returns a * b.
func Mul(a, b Number) Number { return a.Mul(b) }

// Div returns a / b.
func Div(a, b Number) Number { return a.Div(b) }
