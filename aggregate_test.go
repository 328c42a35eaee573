package money

import (
	"errors"
	"testing"

	"github.com/exactvalues/money/decimal"
)

func parseAll(t *testing.T, ss ...string) []Amount {
	t.Helper()
	amounts := make([]Amount, len(ss))
	for i, s := range ss {
		amounts[i] = MustParseMoney(s)
	}
	return amounts
}

func TestSum(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amounts []string
			want    string
		}{
			{[]string{"USD 10.00"}, "USD 10.00"},
			{[]string{"USD 10.00", "USD 5.50", "USD -15.50"}, "USD 0.00"},
			{[]string{"USD 0.01", "USD 0.02", "USD 0.03"}, "USD 0.06"},
			{[]string{"JPY 1", "JPY 2"}, "JPY 3"},
		}
		for _, tt := range tests {
			got, err := Sum(parseAll(t, tt.amounts...))
			if err != nil {
				t.Errorf("Sum(%v) failed: %v", tt.amounts, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Sum(%v) = %q, want %q", tt.amounts, got, tt.want)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := Sum(nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Sum(nil) = %v, want %v", err, ErrEmptyInput)
		}
		def := MustParseMoney("USD 0.00")
		got, err := SumOr(def, nil)
		if err != nil || !got.Equal(def) {
			t.Errorf("SumOr(USD 0.00, nil) = (%q, %v), want the default", got, err)
		}
	})

	t.Run("currency mismatch", func(t *testing.T) {
		// The mismatch must surface even when the offender comes last.
		_, err := Sum(parseAll(t, "USD 1.00", "USD 2.00", "EUR 3.00"))
		if !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("Sum with a trailing EUR = %v, want %v", err, ErrCurrencyMismatch)
		}
	})
}

func TestAvg(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		// 1.00 + 2.00 = 3.00, divided by 2 terminates; no mode is needed.
		got, err := Avg(parseAll(t, "USD 1.00", "USD 2.00"), decimal.ModeNone)
		if err != nil {
			t.Fatalf("Avg failed: %v", err)
		}
		if want := "USD 1.50"; got.String() != want {
			t.Errorf("Avg = %q, want %q", got, want)
		}
	})

	t.Run("rounded", func(t *testing.T) {
		got, err := Avg(parseAll(t, "USD 1.00", "USD 1.00", "USD 1.01"), decimal.ModeHalfUp)
		if err != nil {
			t.Fatalf("Avg failed: %v", err)
		}
		if want := "USD 1.00"; got.String() != want {
			t.Errorf("Avg = %q, want %q", got, want)
		}
	})

	t.Run("none mode loss", func(t *testing.T) {
		_, err := Avg(parseAll(t, "USD 1.00", "USD 1.00", "USD 1.01"), decimal.ModeNone)
		if !errors.Is(err, decimal.ErrPrecisionLoss) {
			t.Errorf("inexact Avg with none = %v, want %v", err, decimal.ErrPrecisionLoss)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := Avg(nil, decimal.ModeHalfUp); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Avg(nil) = %v, want %v", err, ErrEmptyInput)
		}
		def := MustParseMoney("USD 0.00")
		got, err := AvgOr(def, nil, decimal.ModeHalfUp)
		if err != nil || !got.Equal(def) {
			t.Errorf("AvgOr(USD 0.00, nil) = (%q, %v), want the default", got, err)
		}
	})
}

func TestMinMax(t *testing.T) {
	amounts := parseAll(t, "USD 10.00", "USD -5.00", "USD 7.77")

	got, err := Min(amounts)
	if err != nil || got.String() != "USD -5.00" {
		t.Errorf("Min = (%q, %v), want USD -5.00", got, err)
	}
	got, err = Max(amounts)
	if err != nil || got.String() != "USD 10.00" {
		t.Errorf("Max = (%q, %v), want USD 10.00", got, err)
	}

	t.Run("empty", func(t *testing.T) {
		if _, err := Min(nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Min(nil) = %v, want %v", err, ErrEmptyInput)
		}
		if _, err := Max(nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Max(nil) = %v, want %v", err, ErrEmptyInput)
		}
		def := MustParseMoney("USD 0.00")
		if got, err := MinOr(def, nil); err != nil || !got.Equal(def) {
			t.Errorf("MinOr(USD 0.00, nil) = (%q, %v), want the default", got, err)
		}
		if got, err := MaxOr(def, nil); err != nil || !got.Equal(def) {
			t.Errorf("MaxOr(USD 0.00, nil) = (%q, %v), want the default", got, err)
		}
	})

	t.Run("currency mismatch", func(t *testing.T) {
		mixed := parseAll(t, "USD 1.00", "EUR 2.00")
		if _, err := Min(mixed); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("Min(mixed) = %v, want %v", err, ErrCurrencyMismatch)
		}
		if _, err := Max(mixed); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("Max(mixed) = %v, want %v", err, ErrCurrencyMismatch)
		}
	})
}
