package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/exactvalues/money/decimal"
	"github.com/exactvalues/money/rational"
)

// ExchangeRate represents an exchange rate between two currencies observed
// at a point in time.
// The rate is held as an exact rational, so conversion in both directions
// works on exact arithmetic: amounts in the base currency multiply by the
// rate, amounts in the quote currency divide by it.
// The zero value corresponds to "XXX/XXX 0", which cannot convert anything.
// ExchangeRate is immutable and safe for concurrent use by multiple
// goroutines.
type ExchangeRate struct {
	base       Currency          // currency being exchanged
	quote      Currency          // currency being obtained for the base currency
	rate       rational.Rational // units of quote currency per unit of base currency
	observedAt time.Time         // when the rate was observed
}

// NewExchRate returns a new exchange rate between the base and quote
// currencies, observed at the given time.
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - the currencies are equal but the rate is not 1.
func NewExchRate(base, quote Currency, rate rational.Rational, observedAt time.Time) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, &ValidationError{Field: "rate", Reason: "must be positive"}
	}
	if base.SameCurr(quote) && !rate.Equal(rational.MustNew(1, 1)) {
		return ExchangeRate{}, &ValidationError{Field: "rate", Reason: "must be 1 when both currencies are equal"}
	}
	return ExchangeRate{base: base, quote: quote, rate: rate, observedAt: observedAt}, nil
}

// NewExchRateFromDecimal is like [NewExchRate] but accepts the rate as an
// exact decimal.
func NewExchRateFromDecimal(base, quote Currency, rate decimal.Decimal, observedAt time.Time) (ExchangeRate, error) {
	return NewExchRate(base, quote, rational.FromDecimal(rate), observedAt)
}

// ParseExchRate converts currency and rate strings to an exchange rate
// observed at the given time.
// The rate may be a decimal string or a fraction string:
//
//	ParseExchRate("USD", "EUR", "0.9097", observed)
//	ParseExchRate("USD", "EUR", "9097/10000", observed)
//
// See also constructors [ParseCurr], [rational.Parse], and
// [rational.ParseDecimal].
func ParseExchRate(base, quote, rate string, observedAt time.Time) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, err
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, err
	}
	var v rational.Rational
	if v, err = rational.Parse(rate); err != nil {
		if v, err = rational.ParseDecimal(rate); err != nil {
			return ExchangeRate{}, &ParseError{Kind: "fraction", Input: rate, Err: err}
		}
	}
	return NewExchRate(b, q, v, observedAt)
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the
// strings cannot be parsed.
// It simplifies safe initialization of global variables holding rates.
func MustParseExchRate(base, quote, rate string, observedAt time.Time) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate, observedAt)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base
// currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Rate returns the exact rational value of the rate.
func (r ExchangeRate) Rate() rational.Rational {
	return r.rate
}

// ObservedAt returns the time the rate was observed.
func (r ExchangeRate) ObservedAt() time.Time {
	return r.observedAt
}

// IsStale returns true if more than the given threshold has passed between
// the observation of the rate and the given current time.
// It is a pure predicate: the rate itself never changes.
func (r ExchangeRate) IsStale(threshold time.Duration, now time.Time) bool {
	return now.Sub(r.observedAt) > threshold
}

// CanConv returns true if [ExchangeRate.Conv] can convert the given amount,
// that is, if the amount is denominated in either the base or the quote
// currency of a usable rate.
func (r ExchangeRate) CanConv(a Amount) bool {
	return (a.Curr().SameCurr(r.base) || a.Curr().SameCurr(r.quote)) &&
		!r.base.SameCurr(XXX) &&
		!r.quote.SameCurr(XXX) &&
		r.rate.IsPos()
}

// Conv converts the given amount to the other side of the rate: amounts in
// the base currency are multiplied by the rate, amounts in the quote
// currency are divided by it (the implicit inverse).
// The result is returned at the target currency's native scale; when the
// exact result carries digits below that scale they are resolved with the
// given mode, and [decimal.ModeNone] falls back to the configured default
// rounding mode before failing.
//
// Conv returns an error if:
//   - the amount is denominated in neither currency of the rate
//     ([ExchangeRateError]);
//   - the conversion is inexact and no usable mode is in effect.
func (r ExchangeRate) Conv(a Amount, mode decimal.Mode) (Amount, error) {
	if !r.CanConv(a) {
		return Amount{}, &ExchangeRateError{Curr: a.Curr().Code(), Base: r.base.Code(), Quote: r.quote.Code()}
	}

	var target Currency
	var exact rational.Rational
	if a.Curr().SameCurr(r.base) {
		target = r.quote
		exact = rational.FromDecimal(a.Decimal()).Mul(r.rate)
	} else {
		target = r.base
		inv, err := r.rate.Inv()
		if err != nil {
			return Amount{}, &DivisionError{Op: fmt.Sprintf("converting %v with %v", a, r), Reason: err}
		}
		exact = rational.FromDecimal(a.Decimal()).Mul(inv)
	}

	if mode == decimal.ModeNone {
		// Prefer the exact result, then the configured fallback.
		if d, err := exact.Decimal(); err == nil && d.Scale() <= target.Scale() {
			return newAmount(target, d), nil
		}
		mode = defaultMode()
	}
	d, err := exact.RoundDecimal(target.Scale(), mode)
	if err != nil {
		if errors.Is(err, decimal.ErrPrecisionLoss) {
			return Amount{}, &PrecisionLossError{Op: fmt.Sprintf("converting %v with %v", a, r), Err: err}
		}
		return Amount{}, fmt.Errorf("converting %v with %v: %w", a, r, err)
	}
	return newAmount(target, d), nil
}

// Inv returns the inverse of the exchange rate, keeping the observation
// time.
//
// Inv returns an error if the rate is zero.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	inv, err := r.rate.Inv()
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.quote, r.base, inv, r.observedAt)
}

// Mul returns an exchange rate with the same currency pair and observation
// time, but with the rate multiplied by a positive factor e.
//
// Mul returns an error if the factor is not positive.
func (r ExchangeRate) Mul(e rational.Rational) (ExchangeRate, error) {
	if !e.IsPos() {
		return ExchangeRate{}, &ValidationError{Field: "factor", Reason: "must be positive"}
	}
	return NewExchRate(r.base, r.quote, r.rate.Mul(e), r.observedAt)
}

// String implements the [fmt.Stringer] interface and returns the currency
// pair and the rate; the rate renders as a terminating decimal when it has
// one and as a reduced fraction otherwise:
//
//	USD/EUR 0.9097
//	USD/EUR 1/3
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	rate := r.rate.String()
	if s, err := r.rate.DecimalString(); err == nil {
		rate = s
	}
	return r.base.Code() + "/" + r.quote.Code() + " " + rate
}

// Format implements the [fmt.Formatter] interface.
// The following format verbs are available:
//
//	| Verb   | Example          | Description            |
//	| ------ | ---------------- | ---------------------- |
//	| %s, %v | USD/EUR 0.9097   | Currency pair and rate |
//	| %q     | "USD/EUR 0.9097" | Quoted pair and rate   |
//	| %f     | 0.9097           | Rate                   |
//	| %c     | USD/EUR          | Currency pair          |
//
// The '-' format flag and a width are supported by all verbs.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = r.String()
	case 'q', 'Q':
		s = strconv.Quote(r.String())
	case 'f', 'F':
		s = r.rate.String()
		if ds, err := r.rate.DecimalString(); err == nil {
			s = ds
		}
	case 'c', 'C':
		s = r.base.Code() + "/" + r.quote.Code()
	default:
		fmt.Fprintf(state, "%%!%c(money.ExchangeRate=%s)", verb, r.String())
		return
	}

	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	//nolint:errcheck
	state.Write([]byte(s))
}
