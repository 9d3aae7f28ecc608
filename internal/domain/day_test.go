package domain_test

import (
	"errors"
	"testing"
	"time"

	"caltrack/internal/domain"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2026-01-15", "2026-01-15", false},
		{"2024-02-29", "2024-02-29", false},
		{"2025-02-29", "", true},
		{"15.01.2026", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseDay(tc.in)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalid) {
					t.Fatalf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseDay(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		day  string
		n    int
		want string
	}{
		{"2026-01-12", 6, "2026-01-18"},
		{"2026-12-28", 6, "2027-01-03"},
		{"2024-02-26", 3, "2024-02-29"},
		{"2026-03-01", -1, "2026-02-28"},
	}
	for _, tc := range tests {
		if got := domain.AddDays(tc.day, tc.n); got != tc.want {
			t.Errorf("AddDays(%q, %d) = %q; want %q", tc.day, tc.n, got, tc.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"monday", time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC), "2026-01-12"},
		{"wednesday", time.Date(2026, 1, 14, 23, 59, 0, 0, time.UTC), "2026-01-12"},
		{"sunday", time.Date(2026, 1, 18, 12, 0, 0, 0, time.UTC), "2026-01-12"},
		{"across year", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2026-12-28"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.WeekStart(tc.t); got != tc.want {
				t.Errorf("WeekStart(%v) = %q; want %q", tc.t, got, tc.want)
			}
		})
	}
}
