package units

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/unitconv/unitconv/internal/factorization"
	"github.com/unitconv/unitconv/internal/format"
	"github.com/unitconv/unitconv/internal/rational"
)

// Universe is the owning registry built once by the parser (spec.md §3
// "Universe"): properties, atomic units, and a memoized derived-unit
// cache, all considered frozen once construction returns. Modeled on the
// teacher's symbol-table construction: one writer during load, many
// concurrent readers afterward — the one place mutation survives
// construction is the derived-unit memoization cache, guarded by mu.
type Universe struct {
	properties    []*Property
	propertyByName map[string]*Property
	propertyByDim  map[string]*Property

	atomicUnits []*Unit
	unitByName  map[string]*Unit

	mu             sync.Mutex
	derivedByKey   map[string]*Unit

	NumberFormatter func(*rational.Rational) string
}

// NewUniverse creates an empty registry ready for property and unit
// registration.
func NewUniverse() *Universe {
	return &Universe{
		propertyByName:  map[string]*Property{},
		propertyByDim:   map[string]*Property{},
		unitByName:      map[string]*Unit{},
		derivedByKey:    map[string]*Unit{},
		NumberFormatter: format.Default,
	}
}

// HasProperty reports whether name resolves to a registered property.
func (u *Universe) HasProperty(name string) bool {
	_, ok := u.propertyByName[name]
	return ok
}

// GetProperty looks up a property by any of its registered names.
func (u *Universe) GetProperty(name string) (*Property, bool) {
	p, ok := u.propertyByName[name]
	return p, ok
}

// HasUnit reports whether name resolves to a registered atomic unit.
func (u *Universe) HasUnit(name string) bool {
	_, ok := u.unitByName[name]
	return ok
}

// GetUnit looks up an atomic unit by any of its registered names.
func (u *Universe) GetUnit(name string) (*Unit, bool) {
	v, ok := u.unitByName[name]
	return v, ok
}

// Properties returns every registered property in registration order.
func (u *Universe) Properties() []*Property { return u.properties }

// AtomicUnits returns every atomic unit registered across all
// properties, in registration order.
func (u *Universe) AtomicUnits() []*Unit { return u.atomicUnits }

// RegisterProperty adds p to the registry, indexing every one of its
// names and its dimension. It fails if any name collides with an
// already-registered property name, or if another property with the
// exact same dimensions is already registered (spec.md names this
// DuplicateDerivedProperty for the derived case).
func (u *Universe) RegisterProperty(p *Property) error {
	for _, n := range p.Names() {
		if _, exists := u.propertyByName[n]; exists {
			return duplicatePropertyName(n)
		}
	}
	dimKey := canonicalPropertyDimKey(p.Dimensions())
	if _, exists := u.propertyByDim[dimKey]; exists {
		return duplicateDerivedProperty(p.PrimaryName())
	}
	for _, n := range p.Names() {
		u.propertyByName[n] = p
	}
	u.propertyByDim[dimKey] = p
	u.properties = append(u.properties, p)
	return nil
}

// RegisterUnit registers u with property p under every one of u's names
// (spec.md §4.6 step 1-3): every name must be unique among the
// property's existing unit names and the universe's atomic-unit name
// index. If p has no units yet, u becomes its base unit.
func (u *Universe) RegisterUnit(p *Property, unit *Unit) error {
	names := unit.AllNames()
	for _, n := range names {
		if _, exists := u.unitByName[n]; exists {
			return duplicateUnitName(n)
		}
		if _, exists := p.unitNamed(n); exists {
			return duplicateUnitName(n)
		}
	}
	unit.property = p
	for _, n := range names {
		u.unitByName[n] = unit
	}
	p.addUnit(unit, names)
	u.atomicUnits = append(u.atomicUnits, unit)
	return nil
}

// UnitFactorsFor resolves a Factorization of unit name strings into a
// Factorization of Units (spec.md §4.7), failing with UnknownUnitName on
// the first unresolved name.
func (u *Universe) UnitFactorsFor(names factorization.Factorization[string]) (factorization.Factorization[*Unit], error) {
	result := factorization.Empty[*Unit]()
	for _, name := range names.Keys() {
		unit, ok := u.GetUnit(name)
		if !ok {
			return factorization.Factorization[*Unit]{}, unknownUnitName(name)
		}
		result = result.MulItem(unit, names.Exponent(name))
	}
	return result, nil
}

// UnitForFactors resolves a Factorization of Units to a single Unit
// (spec.md §4.7): a one-item factorization with exponent 1 returns that
// unit directly; otherwise the derived unit is built (unrolling any
// nested derived factors first) and memoized so identical factor sets
// return the identical *Unit instance.
func (u *Universe) UnitForFactors(factors factorization.Factorization[*Unit]) (*Unit, error) {
	if item, exp, ok := factors.SingleItem(); ok && exp == 1 {
		return item, nil
	}

	flattened := flattenUnitFactors(factors)
	key := canonicalUnitFactorsKey(flattened)

	u.mu.Lock()
	defer u.mu.Unlock()
	if existing, ok := u.derivedByKey[key]; ok {
		return existing, nil
	}

	for _, f := range flattened.Keys() {
		if f.Offset().Sign() != 0 {
			return nil, incompatibleBaseUnit(f.PrimaryLongName())
		}
	}

	multiplier := rational.One()
	for _, f := range flattened.Keys() {
		pow, err := f.Multiplier().Pow(flattened.Exponent(f))
		if err != nil {
			return nil, err
		}
		multiplier = multiplier.Mul(pow)
	}

	dim, err := reduceUnitDimension(flattened)
	var property *Property
	if err == nil {
		property = u.propertyByDim[canonicalPropertyDimKey(dim)]
	}

	derived := newDerivedUnit(property, flattened, multiplier)
	u.derivedByKey[key] = derived
	return derived, nil
}

// flattenUnitFactors unrolls any derived unit appearing as a factor into
// its own factorization, so "m/s * kg" is always represented internally
// as "m*kg/s" (spec.md §4.7 "Reduction rule for derived-unit lookup").
func flattenUnitFactors(f factorization.Factorization[*Unit]) factorization.Factorization[*Unit] {
	result := factorization.Empty[*Unit]()
	for _, unit := range f.Keys() {
		exp := f.Exponent(unit)
		if unit.IsDerived() {
			inner := flattenUnitFactors(unit.Factors())
			for _, innerUnit := range inner.Keys() {
				result = result.MulItem(innerUnit, inner.Exponent(innerUnit)*exp)
			}
			continue
		}
		result = result.MulItem(unit, exp)
	}
	return result
}

func reduceUnitDimension(f factorization.Factorization[*Unit]) (factorization.Factorization[*Property], error) {
	result := factorization.Empty[*Property]()
	for _, unit := range f.Keys() {
		if !unit.IsValid() {
			return factorization.Factorization[*Property]{}, unknownPropertyName(unit.PrimaryLongName())
		}
		exp := f.Exponent(unit)
		result = result.Mul(unit.Property().Dimensions().Pow(exp))
	}
	return result, nil
}

func canonicalPropertyDimKey(f factorization.Factorization[*Property]) string {
	type entry struct {
		name string
		exp  int
	}
	entries := make([]entry, 0, f.Len())
	for _, p := range f.Keys() {
		entries = append(entries, entry{p.PrimaryName(), f.Exponent(p)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.name)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(e.exp))
		sb.WriteByte('|')
	}
	return sb.String()
}

func canonicalUnitFactorsKey(f factorization.Factorization[*Unit]) string {
	type entry struct {
		name string
		exp  int
	}
	entries := make([]entry, 0, f.Len())
	for _, unit := range f.Keys() {
		entries = append(entries, entry{unit.PrimaryLongName(), f.Exponent(unit)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.name)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(e.exp))
		sb.WriteByte('|')
	}
	return sb.String()
}
