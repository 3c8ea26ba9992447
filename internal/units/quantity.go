package units

import "github.com/unitconv/unitconv/internal/rational"

// Quantity is an immutable (value, unit) pair (spec.md §3 "Quantity").
type Quantity struct {
	Value *rational.Rational
	Unit  *Unit
}

// NewQuantity builds a Quantity.
func NewQuantity(value *rational.Rational, unit *Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// ConvertTo returns q expressed in terms of unit.
func (q Quantity) ConvertTo(unit *Unit) (Quantity, error) {
	v, err := q.Unit.ConvertTo(unit, q.Value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: unit}, nil
}

// Equal reports whether q and other represent the same value. Per the
// redesign note in spec.md §9 ("Equality of Quantity attempts a unit
// conversion and silently treats a failure as 'not equal'... restrict
// equality to same-dimension quantities"), Equal compares only
// dimensionally compatible quantities; for incompatible units it returns
// false without attempting a conversion, the same result as for unequal
// values, so IsCompatibleWith is what tells the two cases apart.
func (q Quantity) Equal(other Quantity) bool {
	if !q.Unit.IsCompatibleWith(other.Unit) {
		return false
	}
	converted, err := other.ConvertTo(q.Unit)
	if err != nil {
		return false
	}
	return q.Value.Equal(converted.Value)
}

// Compare converts other to q's unit and delegates to rational ordering
// (spec.md §4.9).
func (q Quantity) Compare(other Quantity) (int, error) {
	converted, err := other.ConvertTo(q.Unit)
	if err != nil {
		return 0, err
	}
	return q.Value.Cmp(converted.Value), nil
}

// SumQuantities implements spec.md §4.9 "Quantity.sum": an empty list
// converts to zero at destination; a single quantity just converts;
// two or more fail with NonAdditiveQuantities if any has an offsetted
// unit, otherwise each is converted and accumulated.
func SumQuantities(destination *Unit, qs []Quantity) (Quantity, error) {
	switch len(qs) {
	case 0:
		return Quantity{Value: rational.Zero(), Unit: destination}, nil
	case 1:
		return qs[0].ConvertTo(destination)
	}

	for _, q := range qs {
		if q.Unit.Offset().Sign() != 0 {
			return Quantity{}, nonAdditiveQuantities()
		}
	}

	total := rational.Zero()
	for _, q := range qs {
		converted, err := q.ConvertTo(destination)
		if err != nil {
			return Quantity{}, err
		}
		total = total.Add(converted.Value)
	}
	return Quantity{Value: total, Unit: destination}, nil
}
