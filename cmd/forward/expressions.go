package main

import (
	"sort"

	"github.com/born-ml/forward/dual"
)

// expression is a named single-variable function from the built-in catalog.
type expression struct {
	formula string
	f       dual.Func
}

var catalog = map[string]expression{
	"square-sin": {
		formula: "x*x + sin(x)",
		f: func(x dual.Number) dual.Number {
			return x.Mul(x).Add(dual.Sin(x))
		},
	},
	"square-exp": {
		formula: "x*x + exp(x)",
		f: func(x dual.Number) dual.Number {
			return x.Mul(x).Add(dual.Exp(x))
		},
	},
	"sigmoid2": {
		formula: "sigmoid(sigmoid(x))",
		f:       dual.Compose(dual.Sigmoid, dual.Sigmoid),
	},
	"tanh-relu": {
		formula: "tanh(relu(x))",
		f:       dual.Compose(dual.ReLU, dual.Tanh),
	},
	"log-quot": {
		formula: "ln(x) / x",
		f: func(x dual.Number) dual.Number {
			return dual.Log(x).Div(x)
		},
	},
	"cos-scaled": {
		formula: "3*cos(x) - x",
		f: func(x dual.Number) dual.Number {
			return dual.Cos(x).Scale(3).Sub(x)
		},
	},
}

func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// twoVar computes f(x1, x2) = ln(x1) + x1*x2 - sin(x2).
// Seeding one argument and passing the other as a constant yields the
// partial derivative with respect to the seeded argument.
func twoVar(x1, x2 dual.Number) dual.Number {
	return dual.Log(x1).Add(x1.Mul(x2)).Sub(dual.Sin(x2))
}
