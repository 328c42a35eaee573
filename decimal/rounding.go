package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrInvalidMode = errors.New("invalid rounding mode")

// Mode determines the direction in which the exact sub-unit remainder of a
// precision-reducing operation is resolved.
// The zero value is [ModeNone], under which any information loss is an error,
// so an omitted mode can never round silently.
type Mode int

const (
	ModeNone     Mode = iota // rounding disallowed, any nonzero remainder fails
	ModeUp                   // away from zero on any nonzero remainder
	ModeDown                 // toward zero (truncate)
	ModeCeiling              // toward positive infinity
	ModeFloor                // toward negative infinity
	ModeHalfUp               // to nearest, ties away from zero
	ModeHalfDown             // to nearest, ties toward zero
	ModeHalfEven             // to nearest, ties to the even retained digit
)

var modeNames = map[Mode]string{
	ModeNone:     "none",
	ModeUp:       "up",
	ModeDown:     "down",
	ModeCeiling:  "ceiling",
	ModeFloor:    "floor",
	ModeHalfUp:   "half-up",
	ModeHalfDown: "half-down",
	ModeHalfEven: "half-even",
}

// ParseMode converts a string to a rounding mode.
// The match is case-insensitive and accepts both dashes and underscores,
// so "HALF_UP", "half-up", and "halfup" all parse to [ModeHalfUp].
//
// ParseMode returns an error if the string does not name a mode.
func ParseMode(s string) (Mode, error) {
	k := strings.ToLower(s)
	k = strings.ReplaceAll(k, "_", "")
	k = strings.ReplaceAll(k, "-", "")
	for m, name := range modeNames {
		if strings.ReplaceAll(name, "-", "") == k {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("parsing rounding mode %q: %w", s, ErrInvalidMode)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Valid returns true if the mode is one of the defined variants.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("marshaling %T: %w", m, ErrInvalidMode)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// RoundRatio rounds the exact ratio num / den to the nearest integer in the
// direction given by the mode.
// It is the rounding kernel shared by all precision-reducing operations:
// the decision is made on the exact big-integer remainder, never on a
// floating-point approximation, and ties are detected by doubling the
// remainder and comparing it against the divisor.
// For [ModeHalfEven] the parity of the retained digit is taken from the
// truncated quotient itself.
//
// RoundRatio returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the mode is [ModeNone] and the remainder is nonzero ([ErrPrecisionLoss]);
//   - the mode is not one of the defined variants ([ErrInvalidMode]).
func RoundRatio(num, den *big.Int, mode Mode) (*big.Int, error) {
	if den.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() == 0 {
		return quo, nil
	}

	neg := num.Sign() < 0
	var away bool // increment the magnitude of the truncated quotient
	switch mode {
	case ModeNone:
		return nil, ErrPrecisionLoss
	case ModeUp:
		away = true
	case ModeDown:
		away = false
	case ModeCeiling:
		away = !neg
	case ModeFloor:
		away = neg
	case ModeHalfUp, ModeHalfDown, ModeHalfEven:
		double := new(big.Int).Lsh(new(big.Int).Abs(rem), 1)
		switch double.Cmp(den) {
		case 1:
			away = true
		case -1:
			away = false
		default:
			switch mode {
			case ModeHalfUp:
				away = true
			case ModeHalfDown:
				away = false
			case ModeHalfEven:
				away = new(big.Int).Abs(quo).Bit(0) == 1
			}
		}
	default:
		return nil, ErrInvalidMode
	}

	if away {
		if neg {
			quo.Sub(quo, intOne)
		} else {
			quo.Add(quo, intOne)
		}
	}
	return quo, nil
}
