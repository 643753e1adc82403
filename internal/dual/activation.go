package dual

import "math"

// ReLU computes max(0, x).
//
// The derivative is 1 for x > 0 and 0 otherwise. At exactly x = 0 the
// inactive branch is taken, so the tangent is 0 whatever the input tangent.
func ReLU(x Number) Number {
	if x.Primal > 0 {
		return x
	}
	return Number{}
}

// Sigmoid computes σ(x) = 1 / (1 + exp(-x)).
//
// dσ/dx = σ(x) * (1 - σ(x)).
func Sigmoid(x Number) Number {
	s := float32(1 / (1 + math.Exp(-float64(x.Primal))))
	return Number{
		Primal:  s,
		Tangent: s * (1 - s) * x.Tangent,
	}
}

// Tanh computes the hyperbolic tangent.
//
// d(tanh(x))/dx = 1 - tanh²(x).
func Tanh(x Number) Number {
	t := float32(math.Tanh(float64(x.Primal)))
	return Number{
		Primal:  t,
		Tangent: (1 - t*t) * x.Tangent,
	}
}
