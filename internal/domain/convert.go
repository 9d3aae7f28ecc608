package domain

import "fmt"

// WeightUnit is a unit weights can be entered or displayed in. Weights are
// always stored in kilograms.
type WeightUnit string

// Supported weight units.
const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

const kgToLb = 2.2046226218

// ParseWeightUnit validates u. An empty string means kilograms.
func ParseWeightUnit(u string) (WeightUnit, error) {
	switch WeightUnit(u) {
	case "", Kilograms:
		return Kilograms, nil
	case Pounds:
		return Pounds, nil
	}
	return "", fmt.Errorf("%w: unit %q must be kg or lb", ErrInvalid, u)
}

// ToKg converts v, given in u, to kilograms.
func (u WeightUnit) ToKg(v float64) float64 {
	if u == Pounds {
		return v / kgToLb
	}
	return v
}

// FromKg converts v kilograms to u.
func (u WeightUnit) FromKg(v float64) float64 {
	if u == Pounds {
		return v * kgToLb
	}
	return v
}
