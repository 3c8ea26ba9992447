// Package factorization implements a generic multiset of items raised to
// nonzero integer exponents — the algebraic backbone both a unit's
// dimension (Factorization[*units.Property]) and a derived unit's
// definition (Factorization[*units.Unit]) are built from. Every operation
// returns a new immutable value and maintains the invariant that no entry
// has exponent zero.
package factorization

// Factorization is an immutable multiset mapping items of type T to
// nonzero integer exponents. The empty Factorization is the multiplicative
// identity. Item insertion order is preserved (for deterministic string
// rendering) but carries no algebraic meaning.
type Factorization[T comparable] struct {
	order []T
	exp   map[T]int
}

// Empty returns the multiplicative identity, the empty factorization.
func Empty[T comparable]() Factorization[T] {
	return Factorization[T]{exp: map[T]int{}}
}

// Single returns the one-item factorization item^exp. If exp is zero the
// result is the empty factorization.
func Single[T comparable](item T, exp int) Factorization[T] {
	f := Empty[T]()
	return f.MulItem(item, exp)
}

// MulItem returns f with item's exponent increased by exp (an entry whose
// accumulated exponent reaches zero is removed).
func (f Factorization[T]) MulItem(item T, exp int) Factorization[T] {
	if exp == 0 {
		return f.clone()
	}
	g := f.clone()
	cur, existed := g.exp[item]
	next := cur + exp
	if next == 0 {
		if existed {
			delete(g.exp, item)
			g.order = removeItem(g.order, item)
		}
		return g
	}
	if !existed {
		g.order = append(g.order, item)
	}
	g.exp[item] = next
	return g
}

// Mul returns f * other.
func (f Factorization[T]) Mul(other Factorization[T]) Factorization[T] {
	g := f.clone()
	for _, item := range other.order {
		g = g.MulItem(item, other.exp[item])
	}
	return g
}

// Div returns f / other.
func (f Factorization[T]) Div(other Factorization[T]) Factorization[T] {
	return f.Mul(other.Inverse())
}

// Pow returns f raised to the integer power n.
func (f Factorization[T]) Pow(n int) Factorization[T] {
	if n == 0 {
		return Empty[T]()
	}
	g := Empty[T]()
	for _, item := range f.order {
		g = g.MulItem(item, f.exp[item]*n)
	}
	return g
}

// Inverse returns f with every exponent negated.
func (f Factorization[T]) Inverse() Factorization[T] {
	return f.Pow(-1)
}

// Numerator returns the sub-factorization of entries with a positive exponent.
func (f Factorization[T]) Numerator() Factorization[T] {
	g := Empty[T]()
	for _, item := range f.order {
		if e := f.exp[item]; e > 0 {
			g = g.MulItem(item, e)
		}
	}
	return g
}

// Denominator returns the sub-factorization of entries with a negative
// exponent, inverted so every exponent is positive.
func (f Factorization[T]) Denominator() Factorization[T] {
	g := Empty[T]()
	for _, item := range f.order {
		if e := f.exp[item]; e < 0 {
			g = g.MulItem(item, -e)
		}
	}
	return g
}

// IsEmpty reports whether f is the multiplicative identity.
func (f Factorization[T]) IsEmpty() bool {
	return len(f.order) == 0
}

// Len reports the number of distinct items in f.
func (f Factorization[T]) Len() int {
	return len(f.order)
}

// Exponent returns the exponent of item in f (zero if absent).
func (f Factorization[T]) Exponent(item T) int {
	return f.exp[item]
}

// Keys returns the items of f in insertion order. The returned slice must
// not be mutated by callers.
func (f Factorization[T]) Keys() []T {
	return f.order
}

// SingleItem reports whether f has exactly one item, returning it and its
// exponent.
func (f Factorization[T]) SingleItem() (item T, exp int, ok bool) {
	if len(f.order) != 1 {
		var zero T
		return zero, 0, false
	}
	item = f.order[0]
	return item, f.exp[item], true
}

// Equal reports whether f and other have the same item-to-exponent mapping.
func (f Factorization[T]) Equal(other Factorization[T]) bool {
	if len(f.order) != len(other.order) {
		return false
	}
	for item, e := range f.exp {
		if other.exp[item] != e {
			return false
		}
	}
	return true
}

func (f Factorization[T]) clone() Factorization[T] {
	g := Factorization[T]{
		order: append([]T(nil), f.order...),
		exp:   make(map[T]int, len(f.exp)),
	}
	for k, v := range f.exp {
		g.exp[k] = v
	}
	return g
}

func removeItem[T comparable](order []T, item T) []T {
	out := make([]T, 0, len(order))
	for _, o := range order {
		if o != item {
			out = append(out, o)
		}
	}
	return out
}

// Transform maps every item of f through fn, returning a new factorization
// over U. Items that fn maps to equal values are collapsed by summing their
// exponents; an item whose accumulated exponent reaches zero is dropped.
func Transform[T comparable, U comparable](f Factorization[T], fn func(T) U) Factorization[U] {
	g := Empty[U]()
	for _, item := range f.order {
		g = g.MulItem(fn(item), f.exp[item])
	}
	return g
}

// ItemFormatter renders a single item^exponent term, given the item and
// its (always positive, by the time ItemFormatter is called) exponent.
type ItemFormatter[T comparable] func(item T, exp int) string

// ToFractionString renders "num_terms / den_terms", omitting "/ 1" when
// the denominator is empty.
func (f Factorization[T]) ToFractionString(fmtItem ItemFormatter[T]) string {
	num := f.Numerator()
	den := f.Denominator()
	numStr := joinTerms(num, fmtItem)
	if den.IsEmpty() {
		return numStr
	}
	return numStr + " / " + joinTerms(den, fmtItem)
}

// ToCanonicalString renders "num_terms den_terms" using all-positive
// exponents (negative exponents from the denominator are rendered using
// the item's own positive exponent magnitude, juxtaposed with the numerator).
func (f Factorization[T]) ToCanonicalString(fmtItem ItemFormatter[T]) string {
	num := f.Numerator()
	den := f.Denominator()
	switch {
	case num.IsEmpty() && den.IsEmpty():
		return "1"
	case num.IsEmpty():
		return joinTerms(den, fmtItem)
	case den.IsEmpty():
		return joinTerms(num, fmtItem)
	default:
		return joinTerms(num, fmtItem) + " " + joinTerms(den, fmtItem)
	}
}

func joinTerms[T comparable](f Factorization[T], fmtItem ItemFormatter[T]) string {
	if f.IsEmpty() {
		return "1"
	}
	out := ""
	for i, item := range f.order {
		if i > 0 {
			out += " "
		}
		out += fmtItem(item, f.exp[item])
	}
	return out
}
