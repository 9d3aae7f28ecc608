package domain_test

import (
	"errors"
	"math"
	"testing"

	"caltrack/internal/domain"
)

func TestWeightUnitConversion(t *testing.T) {
	tests := []struct {
		name   string
		unit   domain.WeightUnit
		kg     float64
		inUnit float64
	}{
		{"kg", domain.Kilograms, 80, 80},
		{"lb", domain.Pounds, 100, 220.46226218},
		{"zero", domain.Pounds, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.unit.FromKg(tc.kg); math.Abs(got-tc.inUnit) > 0.001 {
				t.Errorf("FromKg(%v) = %v; want %v", tc.kg, got, tc.inUnit)
			}
			if got := tc.unit.ToKg(tc.inUnit); math.Abs(got-tc.kg) > 0.001 {
				t.Errorf("ToKg(%v) = %v; want %v", tc.inUnit, got, tc.kg)
			}
		})
	}
}

func TestParseWeightUnit(t *testing.T) {
	for in, want := range map[string]domain.WeightUnit{"": domain.Kilograms, "kg": domain.Kilograms, "lb": domain.Pounds} {
		got, err := domain.ParseWeightUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseWeightUnit(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := domain.ParseWeightUnit("stones"); !errors.Is(err, domain.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
