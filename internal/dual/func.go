package dual

// Func is a unary function on dual numbers.
// Sin, Cos, Exp, Log, ReLU, Sigmoid and Tanh all satisfy it.
type Func func(Number) Number

// Compose returns the function applying fs left to right.
// Compose(Sin, Exp)(x) == Exp(Sin(x)). With no arguments it is the identity.
func Compose(fs ...Func) Func {
	return func(x Number) Number {
		for _, f := range fs {
			x = f(x)
		}
		return x
	}
}

// Derivative evaluates f at x seeded as the independent variable and
// returns f(x) and f'(x).
func Derivative(f Func, x float32) (value, derivative float32) {
	y := f(Var(x))
	return y.Primal, y.Tangent
}
