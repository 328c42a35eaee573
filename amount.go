package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/exactvalues/money/decimal"
)

// Amount type represents a monetary amount: a currency descriptor paired
// with an exact fixed-point decimal value.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown
// currency.
// Amount is immutable and safe for concurrent use by multiple goroutines.
//
// Every binary operation between two amounts requires identical currency
// codes; a violation fails with a [CurrencyMismatchError] rather than
// silently coercing one side.
type Amount struct {
	curr  Currency        // currency descriptor, shared reference data
	value decimal.Decimal // monetary value, owned exclusively
}

// newAmount creates an amount, zero-padding the value to the scale of the
// currency so that the value always carries at least the currency's native
// precision.
func newAmount(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d.Pad(c.Scale())}
}

// NewAmount returns an amount with the given currency and value.
// If the scale of the value is less than the scale of the currency,
// the result is zero-padded to the right.
func NewAmount(curr Currency, value decimal.Decimal) Amount {
	return newAmount(curr, value)
}

// Zero returns the additive identity of the given currency at the
// currency's native scale.
func Zero(curr Currency) Amount {
	return newAmount(curr, decimal.Decimal{})
}

// ParseAmount converts currency and decimal strings to an amount.
// See also constructors [ParseCurr], [decimal.Parse], and [ParseMoney].
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, &ParseError{Kind: "decimal", Input: amount, Err: err}
	}
	return newAmount(c, d), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings
// cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// ParseMoney converts a currency-tagged money string to an amount.
// The currency may be a registered code or symbol, placed before or after
// the decimal value:
//
//	$99.99
//	-$5.00
//	USD 10.00
//	1.5 BTC
//
// A percentage token is never a money literal; inputs carrying a percent
// suffix are rejected.
//
// ParseMoney returns an error if the string does not represent a tagged
// monetary value.
func ParseMoney(s string) (Amount, error) {
	a, err := parseMoney(s)
	if err != nil {
		return Amount{}, &ParseError{Kind: "money", Input: s, Err: err}
	}
	return a, nil
}

func parseMoney(s string) (Amount, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Amount{}, ErrInvalidInput
	}
	if isPercent(t) {
		return Amount{}, fmt.Errorf("percentage is not a monetary value: %w", ErrInvalidInput)
	}

	neg := false
	if t[0] == '-' && len(t) > 1 && !isNumeric(t[1]) {
		// Sign ahead of a prefixed currency, as in "-$5.00".
		neg = true
		t = t[1:]
	}

	var currToken, numToken string
	if isNumeric(t[0]) {
		// Number first, currency suffix: "10.00 USD", "1.5 BTC".
		i := numericSpan(t)
		numToken, currToken = t[:i], strings.TrimSpace(t[i:])
	} else {
		// Currency prefix: "$99.99", "USD 10.00".
		i := 0
		for i < len(t) && !isNumeric(t[i]) {
			i++
		}
		currToken, numToken = strings.TrimSpace(t[:i]), t[i:]
	}
	if currToken == "" || numToken == "" {
		return Amount{}, ErrInvalidInput
	}

	c, err := ParseCurr(currToken)
	if err != nil {
		var ok bool
		if c, ok = lookupSymbol(currToken); !ok {
			return Amount{}, fmt.Errorf("unknown currency token %q: %w", currToken, ErrInvalidInput)
		}
	}
	d, err := decimal.Parse(numToken)
	if err != nil {
		return Amount{}, err
	}
	if neg {
		d = d.Neg()
	}
	return newAmount(c, d), nil
}

func isNumeric(b byte) bool {
	return b == '-' || b == '+' || b == '.' || (b >= '0' && b <= '9')
}

// numericSpan returns the length of the leading run of sign, digit, and
// point characters.
func numericSpan(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	return i
}

// MustParseMoney is like [ParseMoney] but panics if the string cannot be
// parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseMoney(s string) Amount {
	a, err := ParseMoney(s)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q) failed: %v", s, err))
	}
	return a
}

// NewAmountFromMinorUnits converts an integer count of minor units of the
// currency (cents, satoshis, baisa) to an amount, using the currency's
// scale as the exponent.
// See also method [Amount.MinorUnits].
func NewAmountFromMinorUnits(curr Currency, units int64) Amount {
	return newAmount(curr, decimal.MustNew(units, curr.Scale()))
}

// NewAmountFromBigMinorUnits is like [NewAmountFromMinorUnits] but accepts
// an arbitrary-precision count of minor units.
func NewAmountFromBigMinorUnits(curr Currency, units *big.Int) (Amount, error) {
	d, err := decimal.NewFromBigInt(units, curr.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmount(curr, d), nil
}

// NewAmountFromInt64 converts a pair of integers, representing the whole and
// fractional parts, to an amount equal to whole + frac / 10^scale.
// NewAmountFromInt64 removes trailing zeros up to the currency's scale from
// the fractional part.
//
// NewAmountFromInt64 returns an error if:
//   - the whole and fractional parts have different signs;
//   - the scale is negative;
//   - frac / 10^scale is not within the range (-1, 1).
func NewAmountFromInt64(curr Currency, whole, frac int64, scale int) (Amount, error) {
	w, err := decimal.New(whole, 0)
	if err != nil {
		return Amount{}, fmt.Errorf("converting integers: %w", err)
	}
	f, err := decimal.New(frac, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting integers: %w", err)
	}
	if !f.IsZero() {
		if !w.IsZero() && w.Sign() != f.Sign() {
			return Amount{}, fmt.Errorf("converting integers: %w", &ValidationError{Field: "frac", Reason: "inconsistent signs"})
		}
		if !f.WithinOne() {
			return Amount{}, fmt.Errorf("converting integers: %w", &ValidationError{Field: "frac", Reason: "inconsistent fraction"})
		}
		w = w.Add(f.Trim(curr.Scale()))
	}
	return newAmount(curr, w), nil
}

// NewAmountFromFloat64 converts a binary floating-point number to an amount.
// Native numeric input is an explicit, bounded escape hatch from the
// string-based full-precision path; whether it is accepted at all is
// governed by the configured [NumberInputMode].
//
// NewAmountFromFloat64 returns an error if:
//   - the configuration rejects native numeric input;
//   - the float is NaN ([ErrNaN]) or infinite ([ErrInfinity]).
func NewAmountFromFloat64(curr Currency, f float64) (Amount, error) {
	if err := checkNumberInput(f); err != nil {
		return Amount{}, fmt.Errorf("converting float %v: %w", f, err)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return Amount{}, fmt.Errorf("converting float %v: %w", f, err)
	}
	return newAmount(curr, d), nil
}

func checkNumberInput(f float64) error {
	switch {
	case math.IsNaN(f):
		return ErrNaN
	case math.IsInf(f, 0):
		return ErrInfinity
	}
	cfg := Settings()
	switch cfg.NumberInputMode {
	case NumberInputNever:
		return fmt.Errorf("native numeric input is disabled: %w", ErrInvalidInput)
	case NumberInputWarn:
		if cfg.StrictPrecision {
			return &PrecisionLossError{Op: "accepting native numeric input", Err: decimal.ErrPrecisionLoss}
		}
	}
	return nil
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal value of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Scale returns the number of digits after the decimal point.
// It is never less than the scale of the currency.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{curr: a.curr, value: a.value.Abs()}
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{curr: a.curr, value: a.value.Neg()}
}

// CopySign returns an amount with the same sign as amount b.
// The currency of amount b is ignored.
// CopySign treats 0 as positive.
func (a Amount) CopySign(b Amount) Amount {
	return Amount{curr: a.curr, value: a.value.CopySign(b.value)}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// amount at the same scale as amount a.
func (a Amount) ULP() Amount {
	return Amount{curr: a.curr, value: a.value.ULP()}
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr.SameCurr(b.curr)
}

// SameScale returns true if amounts have the same scale.
// See also method [Amount.Scale].
func (a Amount) SameScale(b Amount) bool {
	return a.value.Scale() == b.value.Scale()
}

func (a Amount) checkCurr(op string, b Amount) error {
	if !a.SameCurr(b) {
		return &CurrencyMismatchError{Op: op, A: a.curr.Code(), B: b.curr.Code()}
	}
	return nil
}

// Add returns the exact sum of amounts a and b.
//
// Add returns an error if the amounts are denominated in different currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.checkCurr(fmt.Sprintf("computing [%v + %v]", a, b), b); err != nil {
		return Amount{}, err
	}
	return newAmount(a.curr, a.value.Add(b.value)), nil
}

// Sub returns the exact difference between amounts a and b.
//
// Sub returns an error if the amounts are denominated in different currencies.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.checkCurr(fmt.Sprintf("computing [%v - %v]", a, b), b); err != nil {
		return Amount{}, err
	}
	return newAmount(a.curr, a.value.Sub(b.value)), nil
}

// SubAbs returns the exact absolute difference between amounts a and b.
//
// SubAbs returns an error if the amounts are denominated in different currencies.
func (a Amount) SubAbs(b Amount) (Amount, error) {
	c, err := a.Sub(b)
	if err != nil {
		return Amount{}, err
	}
	return c.Abs(), nil
}

// Mul returns the exact product of amount a and factor e.
// Coefficients multiply and scales add, so the product always has an exact
// representation and multiplication never needs a rounding mode.
// Use [Amount.Round] to bring the result back to the currency's scale.
func (a Amount) Mul(e decimal.Decimal) Amount {
	return newAmount(a.curr, a.value.Mul(e))
}

// MulBigInt returns the exact product of amount a and an
// arbitrary-precision integer factor.
func (a Amount) MulBigInt(e *big.Int) Amount {
	d, err := decimal.NewFromBigInt(e, 0)
	if err != nil {
		panic(fmt.Sprintf("MulBigInt(%v) failed: %v", e, err)) // unreachable
	}
	return a.Mul(d)
}

// FMA returns the exact fused multiply-addition of amounts a, b, and
// factor e. It computes a * e + b without any intermediate rounding.
//
// FMA returns an error if the amounts are denominated in different currencies.
func (a Amount) FMA(e decimal.Decimal, b Amount) (Amount, error) {
	if err := a.checkCurr(fmt.Sprintf("computing [%v * %v + %v]", a, e, b), b); err != nil {
		return Amount{}, err
	}
	return newAmount(a.curr, a.value.FMA(e, b.value)), nil
}

// Quo returns the exact quotient of amount a and divisor e.
// The division succeeds without a rounding mode only if the quotient
// terminates in base 10; any other division must go through
// [Amount.QuoRound] with an explicit mode.
//
// Quo returns an error if:
//   - the divisor is 0 (wrapping [decimal.ErrDivisionByZero]);
//   - the quotient does not terminate (wrapping [decimal.ErrModeRequired]).
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	d, err := a.value.Quo(e)
	if err != nil {
		return Amount{}, &DivisionError{Op: fmt.Sprintf("computing [%v / %v]", a, e), Reason: err}
	}
	return newAmount(a.curr, d), nil
}

// QuoRound returns the quotient of amount a and divisor e rounded to the
// currency's scale using the given mode.
// With [decimal.ModeNone] the division succeeds only if it is exact at the
// currency's scale.
//
// QuoRound returns an error if the divisor is 0 or the mode forbids the loss.
func (a Amount) QuoRound(e decimal.Decimal, mode decimal.Mode) (Amount, error) {
	d, err := a.value.QuoRound(e, a.curr.Scale(), mode)
	if err != nil {
		return Amount{}, &DivisionError{Op: fmt.Sprintf("computing [%v / %v]", a, e), Reason: err}
	}
	return newAmount(a.curr, d), nil
}

// QuoFloat64 divides the amount by a native floating-point divisor,
// subject to the configured [NumberInputMode].
// Zero, NaN, and infinite divisors are three distinct failure conditions.
func (a Amount) QuoFloat64(f float64, mode decimal.Mode) (Amount, error) {
	op := fmt.Sprintf("computing [%v / %v]", a, f)
	if err := checkNumberInput(f); err != nil {
		return Amount{}, &DivisionError{Op: op, Reason: err}
	}
	e, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return Amount{}, &DivisionError{Op: op, Reason: err}
	}
	return a.QuoRound(e, mode)
}

// Rat returns the exact ratio between amounts a and b as a decimal, if it
// terminates. It is useful for determining proportions within a single
// currency.
//
// Rat returns an error if b is zero, the currencies differ, or the ratio
// does not terminate.
func (a Amount) Rat(b Amount) (decimal.Decimal, error) {
	if err := a.checkCurr(fmt.Sprintf("computing [%v / %v]", a, b), b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.value.Quo(b.value)
}

// Round returns the amount rounded to the currency's native scale using
// the configured default rounding mode (HALF_UP unless configured
// otherwise). Under strict precision any loss is an error instead.
// See also methods [Amount.RoundWith] and [Amount.RoundTo].
func (a Amount) Round() (Amount, error) {
	return a.RoundWith(defaultMode())
}

// RoundWith returns the amount rounded to the currency's native scale
// using the given mode.
func (a Amount) RoundWith(mode decimal.Mode) (Amount, error) {
	return a.RoundTo(a.curr.Scale(), mode)
}

// RoundTo returns the amount rounded to the given scale using the given
// mode. The result still carries at least the currency's native scale.
//
// RoundTo returns an error if:
//   - the scale is negative;
//   - the mode forbids the precision loss.
func (a Amount) RoundTo(scale int, mode decimal.Mode) (Amount, error) {
	if scale < 0 {
		return Amount{}, &ValidationError{Field: "scale", Reason: "must not be negative"}
	}
	d, err := a.value.Round(scale, mode)
	if err != nil {
		return Amount{}, wrapRoundErr(fmt.Sprintf("rounding %v to %v decimal place(s)", a, scale), err)
	}
	return newAmount(a.curr, d), nil
}

// TruncToCurr returns the amount truncated toward zero to the scale of its
// currency.
func (a Amount) TruncToCurr() Amount {
	return newAmount(a.curr, a.value.Trunc(a.curr.Scale()))
}

// Trim returns the amount with trailing zeros removed, but never below the
// scale of its currency.
func (a Amount) Trim() Amount {
	return newAmount(a.curr, a.value.Trim(a.curr.Scale()))
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if the amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := a.checkCurr(fmt.Sprintf("comparing [%v] and [%v]", a, b), b); err != nil {
		return 0, err
	}
	return a.value.Cmp(b.value), nil
}

// Equal returns true if the amounts are denominated in the same currency
// and are numerically equal after aligning scales.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.value.Equal(b.value)
}

// Less returns true if a < b.
//
// Less returns an error if the amounts are denominated in different currencies.
func (a Amount) Less(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// Greater returns true if a > b.
//
// Greater returns an error if the amounts are denominated in different currencies.
func (a Amount) Greater(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// Clamp compares amounts and returns:
//
//	min if a < min
//	max if a > max
//	  a otherwise
//
// Clamp returns an error if:
//   - the amounts are denominated in different currencies;
//   - min is greater than max numerically.
func (a Amount) Clamp(min, max Amount) (Amount, error) {
	switch c, err := min.Cmp(max); {
	case err != nil:
		return Amount{}, err
	case c > 0:
		return Amount{}, fmt.Errorf("clamping %v: %w", a, &ValidationError{Field: "min", Reason: "must not be greater than max"})
	}
	if err := a.checkCurr(fmt.Sprintf("clamping %v", a), min); err != nil {
		return Amount{}, err
	}
	if min.value.CmpTotal(max.value) > 0 {
		// Numerically equal bounds with different scales are swapped to
		// keep the result within [min, max] in the total order too.
		min, max = max, min
	}
	if a.value.CmpTotal(min.value) < 0 {
		return min, nil
	}
	if a.value.CmpTotal(max.value) > 0 {
		return max, nil
	}
	return a, nil
}

// MinorUnits returns the exact count of the currency's minor units (cents,
// satoshis, baisa) as an arbitrary-precision integer.
// The count is exact only while the amount carries no nonzero digits below
// the minor unit; in that case the loss is reported, never rounded away.
// See also methods [Amount.MinorUnitsRounded] and constructor
// [NewAmountFromBigMinorUnits].
func (a Amount) MinorUnits() (*big.Int, error) {
	return a.MinorUnitsRounded(decimal.ModeNone)
}

// MinorUnitsRounded is like [Amount.MinorUnits] but resolves digits below
// the minor unit using the given mode.
func (a Amount) MinorUnitsRounded(mode decimal.Mode) (*big.Int, error) {
	d, err := a.value.Round(a.curr.Scale(), mode)
	if err != nil {
		return nil, wrapRoundErr(fmt.Sprintf("converting %v to minor units", a), err)
	}
	return d.Pad(a.curr.Scale()).Coef(), nil
}

// Int64MinorUnits returns the count of minor units as an int64.
// This is a bounded view: it returns false if the amount carries digits
// below the minor unit or the count does not fit an int64.
func (a Amount) Int64MinorUnits() (int64, bool) {
	u, err := a.MinorUnits()
	if err != nil || !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// Float64 returns the nearest binary floating-point representation of the
// amount's value.
// This is an explicitly bounded view and may lose precision.
func (a Amount) Float64() (f float64, ok bool) {
	return a.value.Float64()
}

// String implements the [fmt.Stringer] interface and returns the currency
// code and the exact decimal value separated by a space:
//
//	USD 10.00
//
// The result round-trips through [ParseMoney] without precision loss.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following format verbs are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.67    | Currency and amount        |
//	| %q     | "USD 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %d     | 567         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag and a width are supported by all verbs.
// The %d verb resolves digits below the minor unit with half-even rounding.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = a.String()
	case 'q', 'Q':
		s = strconv.Quote(a.String())
	case 'f', 'F':
		s = a.value.String()
	case 'd', 'D':
		u, err := a.MinorUnitsRounded(decimal.ModeHalfEven)
		if err != nil {
			u = new(big.Int)
		}
		s = u.String()
	case 'c', 'C':
		s = a.curr.Code()
	default:
		fmt.Fprintf(state, "%%!%c(money.Amount=%s)", verb, a.String())
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

// jsonAmount is the structured interchange encoding of an amount: the full
// currency descriptor plus the string-based decimal encoding.
type jsonAmount struct {
	Currency Currency        `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// MarshalJSON implements the [json.Marshaler] interface:
//
//	{"currency":{"code":"USD",...},"amount":{"amount":"1000","decimals":"2"}}
//
// All numeric leaves are strings, so the encoding never routes the value
// through a host language's native number type.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonAmount{Currency: a.curr, Amount: a.value})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	var enc jsonAmount
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = newAmount(enc.Currency, enc.Amount)
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseMoney].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	v, err := ParseMoney(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = v
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Only string and byte-slice columns holding the "USD 10.00" text form are
// supported.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = ParseMoney(value)
	case []byte:
		*a, err = ParseMoney(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}
