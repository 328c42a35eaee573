package decimal

import (
	"errors"
	"math/big"
	"testing"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNone, "none"},
		{ModeUp, "up"},
		{ModeDown, "down"},
		{ModeCeiling, "ceiling"},
		{ModeFloor, "floor"},
		{ModeHalfUp, "half-up"},
		{ModeHalfDown, "half-down"},
		{ModeHalfEven, "half-even"},
		{Mode(99), "mode(99)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := map[string]Mode{
			"none":      ModeNone,
			"up":        ModeUp,
			"DOWN":      ModeDown,
			"Ceiling":   ModeCeiling,
			"floor":     ModeFloor,
			"half-up":   ModeHalfUp,
			"HALF_UP":   ModeHalfUp,
			"halfdown":  ModeHalfDown,
			"Half_Even": ModeHalfEven,
			"HALF-EVEN": ModeHalfEven,
		}
		for input, want := range tests {
			got, err := ParseMode(input)
			if err != nil {
				t.Errorf("ParseMode(%q) failed: %v", input, err)
				continue
			}
			if got != want {
				t.Errorf("ParseMode(%q) = %v, want %v", input, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, input := range []string{"", "nearest", "half", "bankers"} {
			_, err := ParseMode(input)
			if !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ParseMode(%q) = %v, want %v", input, err, ErrInvalidMode)
			}
		}
	})
}

func TestMode_Text(t *testing.T) {
	for _, mode := range []Mode{ModeNone, ModeUp, ModeDown, ModeCeiling, ModeFloor, ModeHalfUp, ModeHalfDown, ModeHalfEven} {
		text, err := mode.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", mode, err)
			continue
		}
		var got Mode
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if got != mode {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, mode)
		}
	}
}

// TestRoundRatio drives every mode through the same set of quotients,
// including the exact midpoints that separate the half modes.
func TestRoundRatio(t *testing.T) {
	tests := []struct {
		num, den int64
		mode     Mode
		want     int64
	}{
		// 23/10 = 2.3
		{23, 10, ModeUp, 3},
		{23, 10, ModeDown, 2},
		{23, 10, ModeCeiling, 3},
		{23, 10, ModeFloor, 2},
		{23, 10, ModeHalfUp, 2},
		{23, 10, ModeHalfDown, 2},
		{23, 10, ModeHalfEven, 2},
		// -23/10 = -2.3
		{-23, 10, ModeUp, -3},
		{-23, 10, ModeDown, -2},
		{-23, 10, ModeCeiling, -2},
		{-23, 10, ModeFloor, -3},
		{-23, 10, ModeHalfUp, -2},
		// 25/10 = 2.5, an exact tie above an even digit
		{25, 10, ModeUp, 3},
		{25, 10, ModeDown, 2},
		{25, 10, ModeCeiling, 3},
		{25, 10, ModeFloor, 2},
		{25, 10, ModeHalfUp, 3},
		{25, 10, ModeHalfDown, 2},
		{25, 10, ModeHalfEven, 2},
		// 35/10 = 3.5, an exact tie above an odd digit
		{35, 10, ModeHalfUp, 4},
		{35, 10, ModeHalfDown, 3},
		{35, 10, ModeHalfEven, 4},
		// -25/10 and -35/10 mirror the ties
		{-25, 10, ModeHalfUp, -3},
		{-25, 10, ModeHalfDown, -2},
		{-25, 10, ModeHalfEven, -2},
		{-35, 10, ModeHalfEven, -4},
		// 27/10 = 2.7, above the midpoint
		{27, 10, ModeHalfUp, 3},
		{27, 10, ModeHalfDown, 3},
		{27, 10, ModeHalfEven, 3},
		// exact quotients never move, whatever the mode
		{30, 10, ModeUp, 3},
		{30, 10, ModeHalfEven, 3},
		{30, 10, ModeNone, 3},
		{-40, 10, ModeUp, -4},
		// negative divisor is normalized
		{23, -10, ModeFloor, -3},
		{-23, -10, ModeCeiling, 3},
	}
	for _, tt := range tests {
		got, err := RoundRatio(big.NewInt(tt.num), big.NewInt(tt.den), tt.mode)
		if err != nil {
			t.Errorf("RoundRatio(%v, %v, %v) failed: %v", tt.num, tt.den, tt.mode, err)
			continue
		}
		if got.Int64() != tt.want {
			t.Errorf("RoundRatio(%v, %v, %v) = %v, want %v", tt.num, tt.den, tt.mode, got, tt.want)
		}
	}

	t.Run("none mode", func(t *testing.T) {
		_, err := RoundRatio(big.NewInt(23), big.NewInt(10), ModeNone)
		if !errors.Is(err, ErrPrecisionLoss) {
			t.Errorf("RoundRatio(23, 10, none) = %v, want %v", err, ErrPrecisionLoss)
		}
	})

	t.Run("zero divisor", func(t *testing.T) {
		_, err := RoundRatio(big.NewInt(1), big.NewInt(0), ModeHalfUp)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("RoundRatio(1, 0, half-up) = %v, want %v", err, ErrDivisionByZero)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := RoundRatio(big.NewInt(23), big.NewInt(10), Mode(99))
		if !errors.Is(err, ErrInvalidMode) {
			t.Errorf("RoundRatio(23, 10, 99) = %v, want %v", err, ErrInvalidMode)
		}
	})
}

func TestDecimal_Round(t *testing.T) {
	tests := []struct {
		d     string
		scale int
		mode  Mode
		want  string
	}{
		{"2.345", 2, ModeHalfUp, "2.35"},
		{"2.344", 2, ModeHalfUp, "2.34"},
		{"2.5", 0, ModeHalfEven, "2"},
		{"3.5", 0, ModeHalfEven, "4"},
		{"-2.5", 0, ModeHalfEven, "-2"},
		{"1.005", 2, ModeHalfUp, "1.01"},
		{"1.005", 2, ModeHalfEven, "1.00"},
		{"-1.1", 0, ModeCeiling, "-1"},
		{"-1.1", 0, ModeFloor, "-2"},
		{"1.1", 0, ModeUp, "2"},
		{"1.9", 0, ModeDown, "1"},
		{"1.2", 4, ModeNone, "1.2000"},
		{"1.20", 1, ModeNone, "1.2"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		got, err := d.Round(tt.scale, tt.mode)
		if err != nil {
			t.Errorf("%q.Round(%v, %v) failed: %v", d, tt.scale, tt.mode, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.Round(%v, %v) = %q, want %q", d, tt.scale, tt.mode, got, tt.want)
		}
	}

	t.Run("trunc ceil floor", func(t *testing.T) {
		d := MustParse("-2.567")
		if got := d.Trunc(1).String(); got != "-2.5" {
			t.Errorf("%q.Trunc(1) = %q, want %q", d, got, "-2.5")
		}
		if got := d.Ceil(1).String(); got != "-2.5" {
			t.Errorf("%q.Ceil(1) = %q, want %q", d, got, "-2.5")
		}
		if got := d.Floor(1).String(); got != "-2.6" {
			t.Errorf("%q.Floor(1) = %q, want %q", d, got, "-2.6")
		}
	})
}
