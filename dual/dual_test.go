// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/forward/dual"
)

// TestFuncSignatures verifies the elementary functions satisfy Func.
func TestFuncSignatures(_ *testing.T) {
	_ = []dual.Func{
		dual.Sin, dual.Cos, dual.Exp, dual.Log,
		dual.ReLU, dual.Sigmoid, dual.Tanh,
	}
}

func TestPublicAPI_SquarePlusSin(t *testing.T) {
	x := dual.New(1, 1)
	y := dual.Add(dual.Mul(x, x), dual.Sin(x))

	assert.InDelta(t, 1+math.Sin(1), y.Value(), 1e-5)
	assert.InDelta(t, 2+math.Cos(1), y.Derivative(), 1e-5)
}

func TestPublicAPI_VectorApply(t *testing.T) {
	vec := dual.Seeded(1, 2, 3)
	out := vec.ApplyWith(func(x dual.Number) dual.Number {
		return x.Mul(x).Add(dual.Exp(x))
	}, dual.SequentialConfig())

	for i, x := range vec.Primals() {
		xf := float64(x)
		assert.InDelta(t, 2*xf+math.Exp(xf), out.At(i).Tangent, 1e-5)
	}
}

func TestPublicAPI_Derivative(t *testing.T) {
	v, d := dual.Derivative(dual.Compose(dual.Cos, dual.Tanh), 0.25)

	c := math.Cos(0.25)
	th := math.Tanh(c)
	assert.InDelta(t, th, v, 1e-5)
	assert.InDelta(t, (1-th*th)*-math.Sin(0.25), d, 1e-5)
}

func TestPublicAPI_DefaultParallelConfig(t *testing.T) {
	cfg := dual.DefaultParallelConfig()
	assert.Positive(t, cfg.NumWorkers)
	assert.False(t, dual.SequentialConfig().Enabled)
}
