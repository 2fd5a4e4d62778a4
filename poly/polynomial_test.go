package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baldhumanity/polyneat/poly"
)

func termCoeffs(p poly.Polynomial) map[string]float32 {
	out := make(map[string]float32, len(p.Terms))
	for _, t := range p.Terms {
		out[t.Key()] += t.Coefficient
	}
	return out
}

// Property 7: addition is commutative and associative up to
// canonicalization.
func TestAddCommutativeAssociative(t *testing.T) {
	p := poly.Add(poly.Scale(3, poly.Variable(0)), poly.Constant(2))
	q := poly.Multiply(poly.Variable(0), poly.Variable(1))
	r := poly.Scale(-1, poly.Variable(1))

	pq := poly.Add(p, q)
	qp := poly.Add(q, p)
	assert.Equal(t, termCoeffs(pq), termCoeffs(qp))

	left := poly.Add(poly.Add(p, q), r)
	right := poly.Add(p, poly.Add(q, r))
	assert.Equal(t, termCoeffs(left), termCoeffs(right))
}

// Property 8: multiplication distributes over addition.
func TestMultiplyDistributesOverAdd(t *testing.T) {
	p := poly.Add(poly.Variable(0), poly.Constant(1))
	q := poly.Variable(1)
	r := poly.Scale(2, poly.Variable(0))

	left := poly.Multiply(p, poly.Add(q, r))
	right := poly.Add(poly.Multiply(p, q), poly.Multiply(p, r))
	assert.Equal(t, termCoeffs(left), termCoeffs(right))
}

// Property 9: P^0 == 1 for every nonempty P.
func TestPowZeroIsOne(t *testing.T) {
	for _, p := range []poly.Polynomial{
		poly.Variable(0),
		poly.Add(poly.Variable(0), poly.Variable(1)),
		poly.Scale(5, poly.Variable(2)),
	} {
		result := poly.Pow(p, 0)
		assert.Len(t, result.Terms, 1)
		assert.Equal(t, float32(1), result.Terms[0].Coefficient)
		assert.Empty(t, result.Terms[0].Variables())
	}
}

// Property 10: for single-term P, P * P^-1 == 1.
func TestSingleTermInverseIdentity(t *testing.T) {
	p := poly.Scale(4, poly.Variable(0))
	inv := poly.Pow(p, -1)
	product := poly.Multiply(p, inv)

	assert.Len(t, product.Terms, 1)
	assert.InDelta(t, 1.0, float64(product.Terms[0].Coefficient), 1e-5)
	assert.Empty(t, product.Terms[0].Variables())
}

func TestMergeDropsZeroCoefficients(t *testing.T) {
	p := poly.Add(poly.Variable(0), poly.Scale(-1, poly.Variable(0)))
	assert.Empty(t, p.Terms)
}

func TestMultiplyAddsExponents(t *testing.T) {
	p := poly.Multiply(poly.Variable(0), poly.Variable(0))
	assert.Len(t, p.Terms, 1)
	assert.Equal(t, int32(2), p.Terms[0].ExponentOf(0))
}
