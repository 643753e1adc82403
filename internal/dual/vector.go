package dual

import (
	"fmt"
	"strings"

	"github.com/born-ml/forward/internal/parallel"
)

// Vector is a fixed-length sequence of dual numbers.
//
// Elements are independent: the tangent of one element never depends on
// another, which is what lets Apply run elements in parallel.
type Vector struct {
	data []Number
}

// NewVector creates a vector of n zero duals.
func NewVector(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("dual: negative vector length %d", n))
	}
	return &Vector{data: make([]Number, n)}
}

// VectorOf creates a vector holding a copy of xs.
func VectorOf(xs ...Number) *Vector {
	data := make([]Number, len(xs))
	copy(data, xs)
	return &Vector{data: data}
}

// Seeded creates a vector whose elements are seeds Var(x) for each x.
func Seeded(xs ...float32) *Vector {
	data := make([]Number, len(xs))
	for i, x := range xs {
		data[i] = Var(x)
	}
	return &Vector{data: data}
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// At returns element i. It panics if i is outside [0, Len()).
func (v *Vector) At(i int) Number {
	v.checkIndex(i)
	return v.data[i]
}

// Set stores x at element i. It panics if i is outside [0, Len()).
func (v *Vector) Set(i int, x Number) {
	v.checkIndex(i)
	v.data[i] = x
}

func (v *Vector) checkIndex(i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("dual: index %d out of range for vector of length %d", i, len(v.data)))
	}
}

// Apply returns a new vector with f applied to every element.
// The receiver is not modified.
//
// Large vectors are split across goroutines using parallel.DefaultConfig;
// vectors shorter than its MinChunkSize are processed sequentially.
func (v *Vector) Apply(f Func) *Vector {
	return v.ApplyWith(f, parallel.DefaultConfig())
}

// ApplyWith is Apply with an explicit parallel configuration.
func (v *Vector) ApplyWith(f Func, cfg parallel.Config) *Vector {
	src := v.data
	out := make([]Number, len(src))

	// Each index writes only its own slot of out.
	parallel.For(len(src), func(i int) {
		out[i] = f(src[i])
	}, cfg)

	return &Vector{data: out}
}

// Primals returns a copy of the primal values.
func (v *Vector) Primals() []float32 {
	out := make([]float32, len(v.data))
	for i, x := range v.data {
		out[i] = x.Primal
	}
	return out
}

// Tangents returns a copy of the tangent values.
func (v *Vector) Tangents() []float32 {
	out := make([]float32, len(v.data))
	for i, x := range v.data {
		out[i] = x.Tangent
	}
	return out
}

// String formats the vector as [(p0, t0) (p1, t1) ...].
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
