package tensor

import "github.com/baldhumanity/polyneat/poly"

// Basis is the ordered list of distinct monomial exponent-vectors
// appearing across a set of output polynomials (spec §4.7). Each
// entry's Coefficient is meaningless; only its exponent vector matters.
type Basis []poly.Term

// CollectBasis walks every term of every polynomial in order and
// records each distinct exponent vector the first time it is seen.
// Order is insertion order across the polynomials; ties within a
// polynomial are broken by the term's position inside it. Grounded on
// src/candle_net/basis_prime.rs's basis_from_poly_list.
func CollectBasis(polys []poly.Polynomial) Basis {
	seen := make(map[string]bool)
	var basis Basis
	for _, p := range polys {
		for _, term := range p.Terms {
			k := term.Key()
			if seen[k] {
				continue
			}
			seen[k] = true
			basis = append(basis, term)
		}
	}
	return basis
}

// IndexOf returns the position of a term's exponent vector within the
// basis, or -1 if the basis does not contain it.
func (b Basis) IndexOf(term poly.Term) int {
	k := term.Key()
	for i, e := range b {
		if e.Key() == k {
			return i
		}
	}
	return -1
}
