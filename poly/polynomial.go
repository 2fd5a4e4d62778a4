// Package poly implements the multivariate polynomial algebra used by
// the symbolic/tensor back-end: a sum of Terms, each a coefficient
// times a sorted, zero-free exponent vector over small integer
// variable ids. Ported from the device-free Polynomial<T>/PolyComponent<T>
// pair in the source this engine was distilled from (see DESIGN.md);
// no third-party computer-algebra library is exercised anywhere in the
// retrieved corpus, so this package is standard-library only by
// necessity, not by default.
package poly

// Polynomial is a canonical sum of Terms: no two terms share an
// exponent vector, and no term has a zero coefficient.
type Polynomial struct {
	Terms []Term
}

// Zero is the empty polynomial (the additive identity).
func Zero() Polynomial { return Polynomial{} }

// Constant returns the polynomial c. Returns the empty polynomial when
// c == 0, matching the canonical-form rule that zero-coefficient terms
// are dropped.
func Constant(c float32) Polynomial {
	if c == 0 {
		return Zero()
	}
	return Polynomial{Terms: []Term{NewConstantTerm(c)}}
}

// Variable returns the monomial 1 * x_v^1.
func Variable(v int) Polynomial {
	return Polynomial{Terms: []Term{NewVariableTerm(v)}}
}

// merge combines a flat list of terms, summing coefficients of terms
// that share an exponent vector and dropping any whose sum is zero.
// Preserves first-seen order of distinct exponent vectors.
func merge(terms []Term) []Term {
	index := make(map[string]int, len(terms))
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		k := t.Key()
		if i, ok := index[k]; ok {
			out[i].Coefficient += t.Coefficient
			continue
		}
		index[k] = len(out)
		out = append(out, t)
	}
	filtered := out[:0:0]
	for _, t := range out {
		if t.Coefficient != 0 {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Add returns p + q.
func Add(p, q Polynomial) Polynomial {
	combined := make([]Term, 0, len(p.Terms)+len(q.Terms))
	combined = append(combined, p.Terms...)
	combined = append(combined, q.Terms...)
	return Polynomial{Terms: merge(combined)}
}

// Scale returns c * p. Returns the empty polynomial when c == 0.
func Scale(c float32, p Polynomial) Polynomial {
	if c == 0 {
		return Zero()
	}
	out := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = Term{Coefficient: t.Coefficient * c, exponents: t.exponents}
	}
	return Polynomial{Terms: out}
}

// Multiply returns p * q via pairwise (FOIL) term multiplication
// followed by a merge.
func Multiply(p, q Polynomial) Polynomial {
	out := make([]Term, 0, len(p.Terms)*len(q.Terms))
	for _, a := range p.Terms {
		for _, b := range q.Terms {
			out = append(out, mulTerms(a, b))
		}
	}
	return Polynomial{Terms: merge(out)}
}

// Invert multiplies every exponent in every term by -1 and replaces
// each term's coefficient with its reciprocal. Per spec §9
// this only preserves p * Invert(p) == 1 when p is a single term;
// applying it to a true multi-term polynomial is the caller's
// responsibility to use correctly (the symbolic back-end needs it only
// for single-term, negative-exponent edges).
func Invert(p Polynomial) Polynomial {
	out := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = invertTerm(t)
	}
	return Polynomial{Terms: out}
}

// Pow raises p to an integer power n. n == 0 yields the constant
// polynomial 1, regardless of p (including p == Zero()). n > 0 folds
// Multiply n-1 times. n < 0 computes Pow(p, |n|) then Invert's it
// (monomial-level exponent negation, meaningful only for single-term p
// per spec §4.3/§9).
func Pow(p Polynomial, n int32) Polynomial {
	if n == 0 {
		return Constant(1)
	}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	result := p
	for i := int32(1); i < abs; i++ {
		result = Multiply(result, p)
	}
	if n < 0 {
		result = Invert(result)
	}
	return result
}
