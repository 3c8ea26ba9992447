package units

import "github.com/unitconv/unitconv/internal/errors"

func invalidEmptyProperty(name string) error {
	return errors.New(errors.InvalidEmptyProperty, "property %q has no atomic units", name)
}

func duplicateUnitName(name string) error {
	return errors.New(errors.DuplicateUnitName, "unit name %q is already registered", name)
}

func duplicatePropertyName(name string) error {
	return errors.New(errors.DuplicatePropertyName, "property name %q is already registered", name)
}

func duplicateDerivedProperty(name string) error {
	return errors.New(errors.DuplicateDerivedProperty, "a property with dimensions equal to %q is already registered", name)
}

func unknownUnitName(name string) error {
	return errors.New(errors.UnknownUnitName, "unknown unit %q", name)
}

func unknownPropertyName(name string) error {
	return errors.New(errors.UnknownPropertyName, "unknown property %q", name)
}

func incompatibleUnits(from, to string) error {
	return errors.New(errors.IncompatibleUnits, "cannot convert %q to %q: incompatible dimensions", from, to)
}

func incompatibleBaseUnit(name string) error {
	return errors.New(errors.IncompatibleBaseUnit, "derived unit %q: a factor unit has a nonzero offset and cannot participate in a derived unit", name)
}

func nonAdditiveQuantities() error {
	return errors.New(errors.NonAdditiveQuantities, "quantities whose unit has a nonzero offset cannot be summed")
}
