package units

import (
	"github.com/unitconv/unitconv/internal/factorization"
)

// Property is a physical dimension within a Universe: mass, length,
// time, or a derived combination such as speed (spec.md §3 "Property").
// A Property's units are open for registration until Freeze is called.
type Property struct {
	names      []string
	nameSet    map[string]bool
	dimensions factorization.Factorization[*Property]
	baseUnit   *Unit
	unitList   []*Unit
	unitByName map[string]*Unit
	frozen     bool
}

// NewFundamentalProperty creates a Property whose dimensions are itself
// to the first power (spec.md §3: "A property is fundamental when
// dimensions is the single-item factorization self^1").
func NewFundamentalProperty(names []string) *Property {
	p := newProperty(names)
	p.dimensions = factorization.Single(p, 1)
	return p
}

// NewDerivedProperty creates a Property whose dimensions are given by an
// already-reduced factorization over other properties.
func NewDerivedProperty(names []string, dimensions factorization.Factorization[*Property]) *Property {
	p := newProperty(names)
	p.dimensions = dimensions
	return p
}

func newProperty(names []string) *Property {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return &Property{
		names:      append([]string(nil), names...),
		nameSet:    set,
		unitByName: map[string]*Unit{},
	}
}

// Names returns the property's registered names in declaration order.
func (p *Property) Names() []string { return p.names }

// PrimaryName returns the first declared name, used as the property's
// canonical identifier in diagnostics and derived-unit naming.
func (p *Property) PrimaryName() string {
	if len(p.names) == 0 {
		return ""
	}
	return p.names[0]
}

// HasName reports whether name is one of the property's registered names.
func (p *Property) HasName(name string) bool { return p.nameSet[name] }

// Dimensions returns the property's reduced dimensional factorization.
func (p *Property) Dimensions() factorization.Factorization[*Property] {
	return p.dimensions
}

// IsFundamental reports whether the property is its own sole dimension.
func (p *Property) IsFundamental() bool {
	item, exp, ok := p.dimensions.SingleItem()
	return ok && exp == 1 && item == p
}

// BaseUnit returns the property's base unit (the first one registered),
// or nil if none has been registered yet.
func (p *Property) BaseUnit() *Unit { return p.baseUnit }

// Units returns the property's registered units in registration order.
func (p *Property) Units() []*Unit { return p.unitList }

// Frozen reports whether the property accepts no further unit registrations.
func (p *Property) Frozen() bool { return p.frozen }

// unitNamed looks up a unit registered directly on this property by one
// of its names (not delegated to the owning Universe).
func (p *Property) unitNamed(name string) (*Unit, bool) {
	u, ok := p.unitByName[name]
	return u, ok
}

// addUnit records u under each of names, making u the base unit if this
// is the property's first unit. Callers (the Universe registry) are
// responsible for the cross-property/universe uniqueness check of
// spec.md §4.6 step 1 before calling addUnit.
func (p *Property) addUnit(u *Unit, names []string) {
	for _, n := range names {
		p.unitByName[n] = u
	}
	p.unitList = append(p.unitList, u)
	if p.baseUnit == nil {
		p.baseUnit = u
	}
}

// Freeze closes the property to further registration. It fails when a
// fundamental property has no atomic units (spec.md §4.6: "freeze() on
// a property: reject when a fundamental property has zero atomic units").
func (p *Property) Freeze() error {
	if p.IsFundamental() && len(p.unitList) == 0 {
		return invalidEmptyProperty(p.PrimaryName())
	}
	p.frozen = true
	return nil
}
