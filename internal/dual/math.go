package dual

import "math"

// Sin computes sin(x).
//
// d(sin(x))/dx = cos(x).
func Sin(x Number) Number {
	s, c := math.Sincos(float64(x.Primal))
	return Number{
		Primal:  float32(s),
		Tangent: float32(c) * x.Tangent,
	}
}

// Cos computes cos(x).
//
// d(cos(x))/dx = -sin(x).
func Cos(x Number) Number {
	s, c := math.Sincos(float64(x.Primal))
	return Number{
		Primal:  float32(c),
		Tangent: -float32(s) * x.Tangent,
	}
}

// Exp computes e^x.
//
// d(e^x)/dx = e^x, so the forward result is reused for the tangent.
func Exp(x Number) Number {
	e := float32(math.Exp(float64(x.Primal)))
	return Number{
		Primal:  e,
		Tangent: e * x.Tangent,
	}
}

// Log computes the natural logarithm ln(x).
//
// d(ln(x))/dx = 1/x. Non-positive inputs give NaN or -Inf.
func Log(x Number) Number {
	return Number{
		Primal:  float32(math.Log(float64(x.Primal))),
		Tangent: x.Tangent / x.Primal,
	}
}
