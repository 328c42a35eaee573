package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/exactvalues/money/decimal"
	"github.com/exactvalues/money/rational"
)

// wrapRoundErr reports a rounding failure as precision loss; any other
// failure, such as an invalid mode, passes through untouched.
func wrapRoundErr(op string, err error) error {
	if errors.Is(err, decimal.ErrPrecisionLoss) {
		return &PrecisionLossError{Op: op, Err: err}
	}
	return err
}

// isPercent reports whether the token carries a percent suffix.
// Such a token is parsed by the percentage grammar only and is never
// interpreted as a money literal.
func isPercent(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	return strings.HasSuffix(t, "%") || strings.HasSuffix(t, "percent")
}

// ParsePercent converts a percentage string to the exact decimal fraction
// it denotes. The grammar is locale-agnostic: an optional sign, decimal
// digits, and a "%" or "percent" suffix, case-insensitive, with optional
// surrounding whitespace:
//
//	8.25%      -> 0.0825
//	20 %       -> 0.2
//	-5 PERCENT -> -0.05
//
// ParsePercent returns an error if the string does not represent a
// percentage.
func ParsePercent(s string) (decimal.Decimal, error) {
	f, err := parsePercent(s)
	if err != nil {
		return decimal.Decimal{}, &ParseError{Kind: "percent", Input: s, Err: err}
	}
	return f, nil
}

func parsePercent(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	lower := strings.ToLower(t)
	switch {
	case strings.HasSuffix(lower, "percent"):
		t = t[:len(t)-len("percent")]
	case strings.HasSuffix(t, "%"):
		t = t[:len(t)-1]
	default:
		return decimal.Decimal{}, ErrInvalidInput
	}
	d, err := decimal.Parse(strings.TrimSpace(t))
	if err != nil {
		return decimal.Decimal{}, err
	}
	// Dividing by 100 is exact: the scale simply grows by two.
	hundred := decimal.MustNew(100, 0)
	f, err := d.Quo(hundred)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return f, nil
}

// AddPercent returns the amount increased by the given fraction of itself,
// rounded to the currency's scale using the given mode:
//
//	USD 100.00 + "8.25%" = USD 108.25
//
// The intermediate product is exact; the mode only resolves digits below
// the currency's minor unit, and [decimal.ModeNone] demands exactness.
//
// AddPercent returns an error if the percentage cannot be parsed or the
// mode forbids the precision loss.
func (a Amount) AddPercent(pct string, mode decimal.Mode) (Amount, error) {
	f, err := ParsePercent(pct)
	if err != nil {
		return Amount{}, err
	}
	sum := a.value.Add(a.value.Mul(f))
	d, err := sum.Round(a.curr.Scale(), mode)
	if err != nil {
		return Amount{}, wrapRoundErr(fmt.Sprintf("computing [%v + %s]", a, pct), err)
	}
	return newAmount(a.curr, d), nil
}

// SubPercent returns the amount decreased by the given fraction of itself,
// rounded to the currency's scale using the given mode.
// See also method [Amount.AddPercent].
func (a Amount) SubPercent(pct string, mode decimal.Mode) (Amount, error) {
	f, err := ParsePercent(pct)
	if err != nil {
		return Amount{}, err
	}
	diff := a.value.Sub(a.value.Mul(f))
	d, err := diff.Round(a.curr.Scale(), mode)
	if err != nil {
		return Amount{}, wrapRoundErr(fmt.Sprintf("computing [%v - %s]", a, pct), err)
	}
	return newAmount(a.curr, d), nil
}

// MulPercent returns the given fraction of the amount, rounded to the
// currency's scale using the given mode:
//
//	USD 200.00 * "8.25%" = USD 16.50
func (a Amount) MulPercent(pct string, mode decimal.Mode) (Amount, error) {
	f, err := ParsePercent(pct)
	if err != nil {
		return Amount{}, err
	}
	d, err := a.value.Mul(f).Round(a.curr.Scale(), mode)
	if err != nil {
		return Amount{}, wrapRoundErr(fmt.Sprintf("computing [%v * %s]", a, pct), err)
	}
	return newAmount(a.curr, d), nil
}

// RemovePercent recovers the base amount from a total understood to
// already include the given proportion: B = T / (1 + p).
// The division is carried out on exact rationals and rounded once, at the
// currency's scale, using the given mode:
//
//	(USD 121.00).RemovePercent("21%") = USD 100.00
//
// See also method [Amount.ExtractPercent].
func (a Amount) RemovePercent(pct string, mode decimal.Mode) (Amount, error) {
	b, err := a.removePercent(pct, mode)
	if err != nil {
		return Amount{}, err
	}
	return b, nil
}

func (a Amount) removePercent(pct string, mode decimal.Mode) (Amount, error) {
	f, err := ParsePercent(pct)
	if err != nil {
		return Amount{}, err
	}
	one := rational.MustNew(1, 1)
	divisor := one.Add(rational.FromDecimal(f))
	if divisor.IsZero() {
		return Amount{}, &DivisionError{Op: fmt.Sprintf("computing [%v / (1 + %s)]", a, pct), Reason: decimal.ErrDivisionByZero}
	}
	base, err := rational.FromDecimal(a.value).Quo(divisor)
	if err != nil {
		return Amount{}, &DivisionError{Op: fmt.Sprintf("computing [%v / (1 + %s)]", a, pct), Reason: err}
	}
	d, err := base.RoundDecimal(a.curr.Scale(), mode)
	if err != nil {
		return Amount{}, wrapRoundErr(fmt.Sprintf("computing [%v / (1 + %s)]", a, pct), err)
	}
	return newAmount(a.curr, d), nil
}

// ExtractPercent recovers the portion of a total that the given embedded
// proportion accounts for: T - T / (1 + p).
// Because the base is rounded exactly as in [Amount.RemovePercent] and the
// portion is the exact difference from the total, the identity
//
//	a.RemovePercent(p, mode) + a.ExtractPercent(p, mode) == a
//
// holds exactly for every total, percentage, and mode:
//
//	(USD 121.00).ExtractPercent("21%") = USD 21.00
func (a Amount) ExtractPercent(pct string, mode decimal.Mode) (Amount, error) {
	base, err := a.removePercent(pct, mode)
	if err != nil {
		return Amount{}, err
	}
	return a.Sub(base)
}
