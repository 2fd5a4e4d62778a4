package tensor

import "github.com/baldhumanity/polyneat/poly"

// Coefficients is a dense, row-major [len(polys) x len(basis)] matrix:
// Coefficients[o*m+j] is the coefficient output o assigns to basis
// entry j, or 0 if output o does not use that monomial. Grounded on
// src/candle_net/coeff.rs's Coefficients::new.
type Coefficients struct {
	Data []float32
	Rows int
	Cols int
}

// BuildCoefficients fills the dense coefficient matrix for polys
// against basis.
func BuildCoefficients(polys []poly.Polynomial, basis Basis) Coefficients {
	rows, cols := len(polys), len(basis)
	data := make([]float32, rows*cols)
	for o, p := range polys {
		for _, term := range p.Terms {
			j := basis.IndexOf(term)
			if j < 0 {
				continue // should not occur: basis was built from these same polynomials
			}
			data[o*cols+j] = term.Coefficient
		}
	}
	return Coefficients{Data: data, Rows: rows, Cols: cols}
}
