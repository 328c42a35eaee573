package money

import (
	"errors"
	"testing"

	"github.com/exactvalues/money/decimal"
)

func TestParsePercent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{"8.25%", "0.0825"},
			{"21%", "0.21"},
			{"20 %", "0.2"},
			{"100%", "1"},
			{"0%", "0"},
			{"-5 PERCENT", "-0.05"},
			{"12.5 percent", "0.125"},
			{" 3% ", "0.03"},
		}
		for _, tt := range tests {
			got, err := ParsePercent(tt.input)
			if err != nil {
				t.Errorf("ParsePercent(%q) failed: %v", tt.input, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParsePercent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"no suffix":     "8.25",
			"empty":         "",
			"suffix only":   "%",
			"double suffix": "5%%",
			"money":         "USD 10.00",
			"letters":       "five percent",
		}
		for name, input := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParsePercent(input)
				if err == nil {
					t.Errorf("ParsePercent(%q) did not fail", input)
					return
				}
				var pe *ParseError
				if !errors.As(err, &pe) || pe.Kind != "percent" {
					t.Errorf("ParsePercent(%q) = %v, want a percent ParseError", input, err)
				}
			})
		}
	})
}

func TestAmount_AddPercent(t *testing.T) {
	tests := []struct {
		a, pct string
		mode   decimal.Mode
		want   string
	}{
		{"USD 100.00", "8.25%", decimal.ModeHalfUp, "USD 108.25"},
		{"USD 100.00", "8.25%", decimal.ModeNone, "USD 108.25"},
		{"USD 10.00", "21%", decimal.ModeHalfUp, "USD 12.10"},
		{"USD 0.10", "3%", decimal.ModeHalfUp, "USD 0.10"},
		{"USD 0.10", "3%", decimal.ModeCeiling, "USD 0.11"},
		{"JPY 100", "10%", decimal.ModeHalfUp, "JPY 110"},
	}
	for _, tt := range tests {
		a := MustParseMoney(tt.a)
		got, err := a.AddPercent(tt.pct, tt.mode)
		if err != nil {
			t.Errorf("%q.AddPercent(%q, %v) failed: %v", a, tt.pct, tt.mode, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.AddPercent(%q, %v) = %q, want %q", a, tt.pct, tt.mode, got, tt.want)
		}
	}

	t.Run("none mode loss", func(t *testing.T) {
		_, err := MustParseMoney("USD 0.10").AddPercent("3%", decimal.ModeNone)
		if !errors.Is(err, decimal.ErrPrecisionLoss) {
			t.Errorf("USD 0.10 + 3%% with none = %v, want %v", err, decimal.ErrPrecisionLoss)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		a := MustParseMoney("USD 0.10")
		_, err := a.AddPercent("3%", decimal.Mode(99))
		if !errors.Is(err, decimal.ErrInvalidMode) {
			t.Errorf("USD 0.10 + 3%% with mode(99) = %v, want %v", err, decimal.ErrInvalidMode)
		}
		var perr *PrecisionLossError
		if errors.As(err, &perr) {
			t.Errorf("USD 0.10 + 3%% with mode(99) reported as precision loss: %v", err)
		}
		if _, err := a.MulPercent("3%", decimal.Mode(99)); !errors.Is(err, decimal.ErrInvalidMode) {
			t.Errorf("USD 0.10 * 3%% with mode(99) = %v, want %v", err, decimal.ErrInvalidMode)
		}
		if _, err := a.RemovePercent("3%", decimal.Mode(99)); !errors.Is(err, decimal.ErrInvalidMode) {
			t.Errorf("USD 0.10 / (1 + 3%%) with mode(99) = %v, want %v", err, decimal.ErrInvalidMode)
		}
	})
}

func TestAmount_SubPercent(t *testing.T) {
	a := MustParseMoney("USD 100.00")
	got, err := a.SubPercent("25%", decimal.ModeHalfUp)
	if err != nil {
		t.Fatalf("%q.SubPercent(25%%) failed: %v", a, err)
	}
	if want := "USD 75.00"; got.String() != want {
		t.Errorf("%q.SubPercent(25%%) = %q, want %q", a, got, want)
	}
}

func TestAmount_MulPercent(t *testing.T) {
	tests := []struct {
		a, pct string
		mode   decimal.Mode
		want   string
	}{
		{"USD 200.00", "8.25%", decimal.ModeHalfUp, "USD 16.50"},
		{"USD 100.00", "100%", decimal.ModeNone, "USD 100.00"},
		{"USD 0.99", "33%", decimal.ModeHalfUp, "USD 0.33"},
	}
	for _, tt := range tests {
		a := MustParseMoney(tt.a)
		got, err := a.MulPercent(tt.pct, tt.mode)
		if err != nil {
			t.Errorf("%q.MulPercent(%q, %v) failed: %v", a, tt.pct, tt.mode, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.MulPercent(%q, %v) = %q, want %q", a, tt.pct, tt.mode, got, tt.want)
		}
	}
}

func TestAmount_RemovePercent(t *testing.T) {
	tests := []struct {
		a, pct string
		mode   decimal.Mode
		want   string
	}{
		{"USD 121.00", "21%", decimal.ModeHalfUp, "USD 100.00"},
		{"USD 108.25", "8.25%", decimal.ModeHalfUp, "USD 100.00"},
		{"USD 100.00", "3%", decimal.ModeHalfUp, "USD 97.09"},
		{"USD 100.00", "3%", decimal.ModeFloor, "USD 97.08"},
		{"JPY 110", "10%", decimal.ModeHalfUp, "JPY 100"},
	}
	for _, tt := range tests {
		a := MustParseMoney(tt.a)
		got, err := a.RemovePercent(tt.pct, tt.mode)
		if err != nil {
			t.Errorf("%q.RemovePercent(%q, %v) failed: %v", a, tt.pct, tt.mode, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.RemovePercent(%q, %v) = %q, want %q", a, tt.pct, tt.mode, got, tt.want)
		}
	}

	t.Run("divisor of zero", func(t *testing.T) {
		_, err := MustParseMoney("USD 10.00").RemovePercent("-100%", decimal.ModeHalfUp)
		if !errors.Is(err, decimal.ErrDivisionByZero) {
			t.Errorf("removing -100%% = %v, want %v", err, decimal.ErrDivisionByZero)
		}
	})
}

func TestAmount_ExtractPercent(t *testing.T) {
	a := MustParseMoney("USD 121.00")
	got, err := a.ExtractPercent("21%", decimal.ModeHalfUp)
	if err != nil {
		t.Fatalf("%q.ExtractPercent(21%%) failed: %v", a, err)
	}
	if want := "USD 21.00"; got.String() != want {
		t.Errorf("%q.ExtractPercent(21%%) = %q, want %q", a, got, want)
	}
}

// TestAmount_PercentIdentity verifies that removing and extracting an
// embedded proportion always reassemble into the original total, even when
// the base itself had to be rounded.
func TestAmount_PercentIdentity(t *testing.T) {
	totals := []string{"USD 121.00", "USD 100.00", "USD 0.01", "USD 99.99", "USD -50.00", "USD 1234567.89"}
	pcts := []string{"21%", "8.25%", "3%", "100%", "0.5%"}
	modes := []decimal.Mode{decimal.ModeHalfUp, decimal.ModeHalfEven, decimal.ModeDown, decimal.ModeUp, decimal.ModeCeiling, decimal.ModeFloor}
	for _, ts := range totals {
		for _, pct := range pcts {
			for _, mode := range modes {
				total := MustParseMoney(ts)
				base, err := total.RemovePercent(pct, mode)
				if err != nil {
					t.Fatalf("%q.RemovePercent(%q, %v) failed: %v", total, pct, mode, err)
				}
				part, err := total.ExtractPercent(pct, mode)
				if err != nil {
					t.Fatalf("%q.ExtractPercent(%q, %v) failed: %v", total, pct, mode, err)
				}
				sum, err := base.Add(part)
				if err != nil {
					t.Fatalf("%q.Add(%q) failed: %v", base, part, err)
				}
				if !sum.Equal(total) {
					t.Errorf("%q + %q = %q, want %q (pct %q, mode %v)", base, part, sum, total, pct, mode)
				}
			}
		}
	}
}
