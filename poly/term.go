package poly

import (
	"sort"
	"strconv"
	"strings"
)

// exponentPair is one (variable id, exponent) entry inside a Term's
// canonical exponent vector. Variables are the canonical column
// indices described in spec §3/§4.3.
type exponentPair struct {
	Var int
	Exp int32
}

// Term is a single monomial: a coefficient times a sorted, zero-free
// exponent vector.
type Term struct {
	Coefficient float32
	exponents   []exponentPair
}

// NewConstantTerm returns the term c (an empty exponent vector).
func NewConstantTerm(c float32) Term {
	return Term{Coefficient: c}
}

// NewVariableTerm returns the monomial 1 * x_v^1.
func NewVariableTerm(v int) Term {
	return Term{Coefficient: 1, exponents: []exponentPair{{Var: v, Exp: 1}}}
}

// canonicalize sorts by variable id and drops zero-exponent entries.
// Returns a fresh slice; does not mutate the receiver's storage.
func canonicalize(pairs []exponentPair) []exponentPair {
	out := make([]exponentPair, 0, len(pairs))
	for _, p := range pairs {
		if p.Exp != 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var < out[j].Var })
	return out
}

// Key returns a string uniquely identifying this term's canonical
// exponent vector. Two terms with the same Key always have the same
// Variables()/ExponentOf() values; used both to merge like terms
// within a Polynomial and to match terms against a basis.
func (t Term) Key() string {
	var b strings.Builder
	for _, p := range t.exponents {
		b.WriteString(strconv.Itoa(p.Var))
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(int64(p.Exp), 10))
		b.WriteByte(',')
	}
	return b.String()
}

// mulTerms multiplies two terms: coefficients multiply, exponent
// vectors add per shared variable.
func mulTerms(a, b Term) Term {
	merged := make(map[int]int32, len(a.exponents)+len(b.exponents))
	order := make([]int, 0, len(a.exponents)+len(b.exponents))
	for _, p := range a.exponents {
		if _, seen := merged[p.Var]; !seen {
			order = append(order, p.Var)
		}
		merged[p.Var] += p.Exp
	}
	for _, p := range b.exponents {
		if _, seen := merged[p.Var]; !seen {
			order = append(order, p.Var)
		}
		merged[p.Var] += p.Exp
	}
	pairs := make([]exponentPair, 0, len(order))
	for _, v := range order {
		pairs = append(pairs, exponentPair{Var: v, Exp: merged[v]})
	}
	return Term{Coefficient: a.Coefficient * b.Coefficient, exponents: canonicalize(pairs)}
}

// invertTerm returns the multiplicative inverse of the monomial: every
// exponent is multiplied by -1 and the coefficient is replaced by its
// reciprocal.
func invertTerm(t Term) Term {
	out := make([]exponentPair, len(t.exponents))
	for i, p := range t.exponents {
		out[i] = exponentPair{Var: p.Var, Exp: -p.Exp}
	}
	return Term{Coefficient: 1 / t.Coefficient, exponents: out}
}

// ExponentOf returns the exponent of variable v within this term (0 if
// v does not appear).
func (t Term) ExponentOf(v int) int32 {
	for _, p := range t.exponents {
		if p.Var == v {
			return p.Exp
		}
	}
	return 0
}

// Variables returns the distinct variable ids appearing in this term,
// in canonical (sorted) order.
func (t Term) Variables() []int {
	out := make([]int, len(t.exponents))
	for i, p := range t.exponents {
		out[i] = p.Var
	}
	return out
}
