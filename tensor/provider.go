package tensor

import "math"

// Matrix and Vector are opaque handles owned by a Provider. The tensor
// evaluator never inspects their contents directly; it only passes
// them back through the same Provider.
type Matrix interface{}
type Vector interface{}

// Provider is the swappable tensor-provider contract of spec §6: the
// minimal set of operations the tensor evaluator needs, so a caller
// can substitute a BLAS- or GPU-backed implementation without
// touching Network. No numeric/tensor/BLAS library is exercised
// anywhere in the retrieved corpus (see DESIGN.md), so the only
// implementation shipped here, NaiveProvider, is standard-library
// only; it is a default, not a statement that no better provider
// exists.
type Provider interface {
	NewMatrix(rows, cols int, data []float32) Matrix
	NewVector(data []float32) Vector
	Matmul(m Matrix, v Vector) Vector
	PowElementwise(v Vector, exponents []int32) Vector
	ToHost(v Vector) []float32
}

// NaiveProvider implements Provider over flat []float32 buffers with
// plain loops. Errors are not possible in this implementation; it
// exists to give Network something to drive by default.
type NaiveProvider struct{}

type naiveMatrix struct {
	data       []float32
	rows, cols int
}

type naiveVector struct {
	data []float32
}

func (NaiveProvider) NewMatrix(rows, cols int, data []float32) Matrix {
	buf := make([]float32, rows*cols)
	copy(buf, data)
	return naiveMatrix{data: buf, rows: rows, cols: cols}
}

func (NaiveProvider) NewVector(data []float32) Vector {
	buf := make([]float32, len(data))
	copy(buf, data)
	return naiveVector{data: buf}
}

func (NaiveProvider) Matmul(m Matrix, v Vector) Vector {
	mat := m.(naiveMatrix)
	vec := v.(naiveVector)
	out := make([]float32, mat.rows)
	for r := 0; r < mat.rows; r++ {
		var sum float32
		for c := 0; c < mat.cols; c++ {
			sum += mat.data[r*mat.cols+c] * vec.data[c]
		}
		out[r] = sum
	}
	return naiveVector{data: out}
}

func (NaiveProvider) PowElementwise(v Vector, exponents []int32) Vector {
	vec := v.(naiveVector)
	out := make([]float32, len(vec.data))
	for i, x := range vec.data {
		out[i] = float32(math.Pow(float64(x), float64(exponents[i])))
	}
	return naiveVector{data: out}
}

func (NaiveProvider) ToHost(v Vector) []float32 {
	vec := v.(naiveVector)
	out := make([]float32, len(vec.data))
	copy(out, vec.data)
	return out
}
