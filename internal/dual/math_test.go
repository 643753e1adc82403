package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// numericalDerivative estimates f'(x) with a central difference over the
// primal of f.
func numericalDerivative(f Func, x, h float32) float32 {
	return (f(Const(x+h)).Primal - f(Const(x-h)).Primal) / (2 * h)
}

func TestUnary_AgainstFormula(t *testing.T) {
	sig := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

	tests := []struct {
		name  string
		f     Func
		x     float64
		value float64
		deriv float64
	}{
		{"sin", Sin, 0.7, math.Sin(0.7), math.Cos(0.7)},
		{"cos", Cos, 0.7, math.Cos(0.7), -math.Sin(0.7)},
		{"exp", Exp, 1.3, math.Exp(1.3), math.Exp(1.3)},
		{"log", Log, 2.5, math.Log(2.5), 1 / 2.5},
		{"relu positive", ReLU, 1.5, 1.5, 1},
		{"relu negative", ReLU, -1.5, 0, 0},
		{"sigmoid", Sigmoid, 0.4, sig(0.4), sig(0.4) * (1 - sig(0.4))},
		{"tanh", Tanh, -0.6, math.Tanh(-0.6), 1 - math.Tanh(-0.6)*math.Tanh(-0.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := tt.f(Var(float32(tt.x)))
			assert.InDelta(t, tt.value, y.Primal, tol)
			assert.InDelta(t, tt.deriv, y.Tangent, tol)
		})
	}
}

func TestUnary_ChainRuleScalesTangent(t *testing.T) {
	// Tangent of the input is g'(x); the output tangent must be f'(g(x)) * g'(x).
	fns := map[string]Func{
		"sin": Sin, "cos": Cos, "exp": Exp, "log": Log,
		"relu": ReLU, "sigmoid": Sigmoid, "tanh": Tanh,
	}

	for name, f := range fns {
		t.Run(name, func(t *testing.T) {
			unit := f(New(0.8, 1))
			scaled := f(New(0.8, -2.5))
			assert.Equal(t, unit.Primal, scaled.Primal)
			assert.InDelta(t, -2.5*unit.Tangent, scaled.Tangent, tol)
		})
	}
}

func TestUnary_NumericalGradient(t *testing.T) {
	const h = 1e-2

	fns := map[string]Func{
		"sin": Sin, "cos": Cos, "exp": Exp, "log": Log,
		"relu": ReLU, "sigmoid": Sigmoid, "tanh": Tanh,
		"square-sin": func(x Number) Number { return x.Mul(x).Add(Sin(x)) },
		"log-quot":   func(x Number) Number { return Log(x).Div(x) },
	}
	points := []float32{0.6, 1.1, 2.4}

	for name, f := range fns {
		for _, x := range points {
			analytical := f(Var(x)).Tangent
			numerical := numericalDerivative(f, x, h)
			assert.InDelta(t, analytical, numerical, 5e-3, "%s at %v", name, x)
		}
	}
}

func TestReLU_Boundary(t *testing.T) {
	for _, tangent := range []float32{1, -3, 0.5, 0} {
		y := ReLU(New(0, tangent))
		assert.Equal(t, float32(0), y.Primal)
		assert.Equal(t, float32(0), y.Tangent, "input tangent %v", tangent)
	}
}

func TestSigmoid_Composition(t *testing.T) {
	x := New(0.3, 1.7)
	y := Sigmoid(Sigmoid(x))

	s0 := 1 / (1 + math.Exp(-0.3))
	s1 := 1 / (1 + math.Exp(-s0))
	want := s1 * (1 - s1) * s0 * (1 - s0) * 1.7

	assert.InDelta(t, s1, y.Primal, tol)
	assert.InDelta(t, want, y.Tangent, tol)
}

func TestLog_DomainEdges(t *testing.T) {
	zero := Log(Var(0))
	assert.True(t, math.IsInf(float64(zero.Primal), -1))
	assert.True(t, math.IsInf(float64(zero.Tangent), 1))

	neg := Log(Var(-2))
	assert.True(t, math.IsNaN(float64(neg.Primal)))
	assert.Equal(t, float32(-0.5), neg.Tangent)
}

func TestExp_Overflow(t *testing.T) {
	y := Exp(Var(200))
	assert.True(t, math.IsInf(float64(y.Primal), 1))
	assert.True(t, math.IsInf(float64(y.Tangent), 1))
}

func TestCompose(t *testing.T) {
	f := Compose(Sin, Exp)
	got := f(Var(0.5))
	want := Exp(Sin(Var(0.5)))
	assert.Equal(t, want, got)

	id := Compose()
	assert.Equal(t, New(2, 3), id(New(2, 3)))
}

func TestDerivative(t *testing.T) {
	value, deriv := Derivative(func(x Number) Number {
		return x.Mul(x).Add(Exp(x))
	}, 2)

	assert.InDelta(t, 4+math.Exp(2), value, tol)
	assert.InDelta(t, 4+math.Exp(2), deriv, tol)
}
