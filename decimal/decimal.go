package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	ErrInvalidDecimal = errors.New("invalid decimal")
	ErrScaleRange     = errors.New("scale out of range")
	ErrDivisionByZero = errors.New("division by zero")
	ErrModeRequired   = errors.New("inexact division requires a rounding mode")
	ErrPrecisionLoss  = errors.New("precision loss")
)

// Decimal type is a representation of an exact fixed-point decimal number.
// The value of a decimal equals coef / 10^scale, where the coefficient is
// an arbitrary-precision signed integer and the scale is never negative.
// The zero value is the numeric value of 0 with scale 0.
//
// A decimal is immutable: every operation returns a new value and the
// coefficient is never modified in place, which makes Decimal safe for
// concurrent use by multiple goroutines.
//
// Decimal does not support special values such as NaN or Infinity, and no
// operation ever routes through a binary floating-point intermediate.
type Decimal struct {
	coef  *big.Int // the coefficient of the decimal, nil means 0
	scale int      // the position of the decimal point, always >= 0
}

var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
	intTwo  = big.NewInt(2)
	intFive = big.NewInt(5)
	intTen  = big.NewInt(10)
)

// pow10 caches small powers of ten; the returned values are shared and
// must be treated as read-only.
var pow10cache = func() [40]*big.Int {
	var c [40]*big.Int
	p := big.NewInt(1)
	for i := range c {
		c[i] = new(big.Int).Set(p)
		p.Mul(p, intTen)
	}
	return c
}()

func pow10(n int) *big.Int {
	if n < len(pow10cache) {
		return pow10cache[n]
	}
	return new(big.Int).Exp(intTen, big.NewInt(int64(n)), nil)
}

func newUnsafe(coef *big.Int, scale int) Decimal {
	return Decimal{coef: coef, scale: scale}
}

func newSafe(coef *big.Int, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrScaleRange
	}
	return newUnsafe(coef, scale), nil
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if the scale is negative.
func New(coef int64, scale int) (Decimal, error) {
	return newSafe(big.NewInt(coef), scale)
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
// The coefficient is copied, so later changes to it do not affect the result.
//
// NewFromBigInt returns an error if the scale is negative.
func NewFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	if coef == nil {
		coef = intZero
	}
	return newSafe(new(big.Int).Set(coef), scale)
}

// Parse converts a string to a (fully exact) decimal.
// The input must match the grammar: an optional sign, decimal digits,
// and an optional point followed by decimal digits.
//
//	-123
//	12.50
//	.5
//
// Parse returns an error if the string does not represent a valid decimal.
func Parse(s string) (Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	return d, nil
}

func parse(s string) (Decimal, error) {
	if s == "" {
		return Decimal{}, ErrInvalidDecimal
	}
	pos := 0
	neg := false

	// Sign
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	// Integer part
	var intDigits, fracDigits strings.Builder
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		intDigits.WriteByte(s[pos])
		pos++
	}

	// Fractional part
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			fracDigits.WriteByte(s[pos])
			pos++
		}
	}

	if pos != len(s) {
		return Decimal{}, ErrInvalidDecimal
	}
	if intDigits.Len() == 0 && fracDigits.Len() == 0 {
		return Decimal{}, ErrInvalidDecimal
	}

	digits := intDigits.String() + fracDigits.String()
	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, ErrInvalidDecimal
	}
	if neg {
		coef.Neg(coef)
	}
	return newSafe(coef, fracDigits.Len())
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// coefVal returns the coefficient for reading.
// The result must never be mutated.
func (d Decimal) coefVal() *big.Int {
	if d.coef == nil {
		return intZero
	}
	return d.coef
}

// Coef returns a copy of the decimal's coefficient.
func (d Decimal) Coef() *big.Int {
	return new(big.Int).Set(d.coefVal())
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// Prec returns the number of digits in the coefficient.
func (d Decimal) Prec() int {
	if d.IsZero() {
		return 0
	}
	return len(new(big.Int).Abs(d.coefVal()).String())
}

// MinScale returns the smallest scale that the decimal can be rescaled to
// without rounding.
// See also method [Decimal.Trim].
func (d Decimal) MinScale() int {
	coef := new(big.Int).Abs(d.coefVal())
	scale := d.scale
	rem := new(big.Int)
	for scale > 0 {
		q, r := new(big.Int).QuoRem(coef, intTen, rem)
		if r.Sign() != 0 {
			break
		}
		coef = q
		scale--
	}
	return scale
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.coefVal().Sign()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// IsInt returns true if there are no significant digits after the decimal point.
func (d Decimal) IsInt() bool {
	return d.MinScale() == 0
}

// IsOne returns:
//
//	true  if d = -1 or d = 1
//	false otherwise
func (d Decimal) IsOne() bool {
	return new(big.Int).Abs(d.coefVal()).Cmp(pow10(d.scale)) == 0
}

// WithinOne returns:
//
//	true  if -1 < d < 1
//	false otherwise
func (d Decimal) WithinOne() bool {
	return new(big.Int).Abs(d.coefVal()).Cmp(pow10(d.scale)) < 0
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return newUnsafe(new(big.Int).Neg(d.coefVal()), d.scale)
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return newUnsafe(new(big.Int).Abs(d.coefVal()), d.scale)
}

// CopySign returns a decimal with the same sign as decimal e.
// CopySign treats 0 as positive.
// See also method [Decimal.Sign].
func (d Decimal) CopySign(e Decimal) Decimal {
	if e.IsNeg() != d.IsNeg() {
		return d.Neg()
	}
	return d
}

// Zero returns a decimal with a value of 0, having the same scale as decimal d.
// See also methods [Decimal.One], [Decimal.ULP].
func (d Decimal) Zero() Decimal {
	return newUnsafe(intZero, d.scale)
}

// One returns a decimal with a value of 1, having the same scale as decimal d.
// See also methods [Decimal.Zero], [Decimal.ULP].
func (d Decimal) One() Decimal {
	return newUnsafe(pow10(d.scale), d.scale)
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two decimals with the same scale as decimal d.
// It is useful for implementing remainder distribution algorithms.
// See also methods [Decimal.Zero], [Decimal.One].
func (d Decimal) ULP() Decimal {
	return newUnsafe(intOne, d.scale)
}

// align brings both coefficients to scale = max(d.scale, e.scale).
func align(d, e Decimal) (dcoef, ecoef *big.Int, scale int) {
	dcoef, ecoef = d.coefVal(), e.coefVal()
	switch {
	case d.scale < e.scale:
		dcoef = new(big.Int).Mul(dcoef, pow10(e.scale-d.scale))
		return dcoef, ecoef, e.scale
	case d.scale > e.scale:
		ecoef = new(big.Int).Mul(ecoef, pow10(d.scale-e.scale))
		return dcoef, ecoef, d.scale
	}
	return dcoef, ecoef, d.scale
}

// Add returns the exact sum of decimals d and e.
// The scale of the result is the larger of the scales of the operands,
// so addition never loses information.
func (d Decimal) Add(e Decimal) Decimal {
	dcoef, ecoef, scale := align(d, e)
	return newUnsafe(new(big.Int).Add(dcoef, ecoef), scale)
}

// Sub returns the exact difference between decimals d and e.
// The scale of the result is the larger of the scales of the operands,
// so subtraction never loses information.
func (d Decimal) Sub(e Decimal) Decimal {
	dcoef, ecoef, scale := align(d, e)
	return newUnsafe(new(big.Int).Sub(dcoef, ecoef), scale)
}

// SubAbs returns the exact absolute difference between decimals d and e.
func (d Decimal) SubAbs(e Decimal) Decimal {
	return d.Sub(e).Abs()
}

// Mul returns the exact product of decimals d and e.
// The coefficients multiply and the scales add, so multiplication never
// loses information and never needs a rounding mode.
func (d Decimal) Mul(e Decimal) Decimal {
	coef := new(big.Int).Mul(d.coefVal(), e.coefVal())
	return newUnsafe(coef, d.scale+e.scale)
}

// FMA returns the exact fused multiply-addition of decimals d, e, and f.
// It computes d * e + f without any intermediate rounding.
func (d Decimal) FMA(e, f Decimal) Decimal {
	return d.Mul(e).Add(f)
}

// Pow returns the decimal raised to the given non-negative integer power.
//
// Pow returns an error if the exponent is negative.
func (d Decimal) Pow(exp int) (Decimal, error) {
	if exp < 0 {
		return Decimal{}, fmt.Errorf("computing [%v^%v]: negative exponent", d, exp)
	}
	coef := new(big.Int).Exp(d.coefVal(), big.NewInt(int64(exp)), nil)
	return newUnsafe(coef, d.scale*exp), nil
}

// Quo returns the exact quotient of decimals d and e.
// A quotient is exact if and only if it terminates in base 10, that is,
// if the denominator of the reduced fraction e/d's divisor contains only
// the prime factors 2 and 5.
// The result is returned at the minimal sufficient scale.
// See also method [Decimal.QuoRound].
//
// Quo returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the quotient does not terminate ([ErrModeRequired]).
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	q, err := d.quo(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return q, nil
}

func (d Decimal) quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	num, den := quoFraction(d, e)

	// Strip the factors of 2 and 5; the quotient terminates in base 10
	// if and only if nothing else remains.
	twos, fives := 0, 0
	rem := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(den, intTwo, rem)
		if r.Sign() != 0 {
			break
		}
		den = q
		twos++
	}
	for {
		q, r := new(big.Int).QuoRem(den, intFive, rem)
		if r.Sign() != 0 {
			break
		}
		den = q
		fives++
	}
	if den.Cmp(intOne) != 0 {
		return Decimal{}, ErrModeRequired
	}

	scale := max(twos, fives)
	coef := new(big.Int).Mul(num, pow10(scale))
	coef.Quo(coef, new(big.Int).Lsh(intOne, uint(twos)))
	coef.Quo(coef, new(big.Int).Exp(intFive, big.NewInt(int64(fives)), nil))
	return newUnsafe(coef, scale), nil
}

// quoFraction returns the reduced fraction num/den equal to d / e.
// The sign is carried on the numerator and den is strictly positive.
func quoFraction(d, e Decimal) (num, den *big.Int) {
	num = new(big.Int).Mul(d.coefVal(), pow10(e.scale))
	den = new(big.Int).Mul(e.coefVal(), pow10(d.scale))
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if gcd.Cmp(intOne) > 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	return num, den
}

// QuoRound returns the quotient of decimals d and e rounded to the given
// scale using the given rounding mode.
// With [ModeNone] the division succeeds only if it is exact at the given scale.
// See also method [Decimal.Quo].
//
// QuoRound returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the scale is negative ([ErrScaleRange]);
//   - the mode is [ModeNone] and the quotient does not fit the scale
//     ([ErrPrecisionLoss]).
func (d Decimal) QuoRound(e Decimal, scale int, mode Mode) (Decimal, error) {
	q, err := d.quoRound(e, scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return q, nil
}

func (d Decimal) quoRound(e Decimal, scale int, mode Mode) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrScaleRange
	}
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	// coef = round(d.coef * 10^(e.scale + scale) / (e.coef * 10^d.scale))
	num := new(big.Int).Mul(d.coefVal(), pow10(e.scale+scale))
	den := new(big.Int).Mul(e.coefVal(), pow10(d.scale))
	coef, err := RoundRatio(num, den, mode)
	if err != nil {
		return Decimal{}, err
	}
	return newUnsafe(coef, scale), nil
}

// QuoRem returns the integer quotient q and remainder r of decimals d and e
// such that d = e * q + r, where the sign of the remainder r is the same
// as the sign of the dividend d.
//
// QuoRem returns an error if the divisor is 0.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	if e.IsZero() {
		return Decimal{}, Decimal{}, fmt.Errorf("computing [%v div %v]: %w", d, e, ErrDivisionByZero)
	}
	dcoef, ecoef, scale := align(d, e)
	quo, rem := new(big.Int).QuoRem(dcoef, ecoef, new(big.Int))
	return newUnsafe(quo, 0), newUnsafe(rem, scale), nil
}

// Round returns the decimal rounded to the given scale using the given mode.
// Increasing the scale pads with zero digits and is always lossless;
// decreasing the scale discards digits under the control of the mode.
// With [ModeNone] any nonzero discarded remainder is an error.
//
// Round returns an error if:
//   - the scale is negative ([ErrScaleRange]);
//   - the mode is [ModeNone] and rounding would discard a nonzero remainder
//     ([ErrPrecisionLoss]).
func (d Decimal) Round(scale int, mode Mode) (Decimal, error) {
	q, err := d.round(scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("rounding %v to %v decimal place(s): %w", d, scale, err)
	}
	return q, nil
}

func (d Decimal) round(scale int, mode Mode) (Decimal, error) {
	switch {
	case scale < 0:
		return Decimal{}, ErrScaleRange
	case scale >= d.scale:
		return d.Pad(scale), nil
	}
	coef, err := RoundRatio(d.coefVal(), pow10(d.scale-scale), mode)
	if err != nil {
		return Decimal{}, err
	}
	return newUnsafe(coef, scale), nil
}

// Trunc returns the decimal truncated to the given scale using
// rounding toward zero.
// A negative scale is treated as zero.
func (d Decimal) Trunc(scale int) Decimal {
	q, err := d.round(max(scale, 0), ModeDown)
	if err != nil {
		panic(fmt.Sprintf("Trunc(%v) failed: %v", scale, err)) // unreachable
	}
	return q
}

// Ceil returns the decimal rounded up to the given scale using
// rounding toward positive infinity.
// A negative scale is treated as zero.
func (d Decimal) Ceil(scale int) Decimal {
	q, err := d.round(max(scale, 0), ModeCeiling)
	if err != nil {
		panic(fmt.Sprintf("Ceil(%v) failed: %v", scale, err)) // unreachable
	}
	return q
}

// Floor returns the decimal rounded down to the given scale using
// rounding toward negative infinity.
// A negative scale is treated as zero.
func (d Decimal) Floor(scale int) Decimal {
	q, err := d.round(max(scale, 0), ModeFloor)
	if err != nil {
		panic(fmt.Sprintf("Floor(%v) failed: %v", scale, err)) // unreachable
	}
	return q
}

// Pad returns the decimal zero-padded to the given scale.
// Padding is always lossless.
// The result is unchanged if the given scale does not exceed the current one.
// See also method [Decimal.Trim].
func (d Decimal) Pad(scale int) Decimal {
	if scale <= d.scale {
		return d
	}
	coef := new(big.Int).Mul(d.coefVal(), pow10(scale-d.scale))
	return newUnsafe(coef, scale)
}

// Trim returns the decimal with trailing zeros removed down to the given scale.
// See also method [Decimal.Pad].
func (d Decimal) Trim(scale int) Decimal {
	minScale := max(d.MinScale(), scale, 0)
	if minScale >= d.scale {
		return d
	}
	coef := new(big.Int).Quo(d.coefVal(), pow10(d.scale-minScale))
	return newUnsafe(coef, minScale)
}

// Rescale returns the decimal rounded or zero-padded to the given scale
// using the given mode.
// It is a shorthand for [Decimal.Round] followed by [Decimal.Pad].
func (d Decimal) Rescale(scale int, mode Mode) (Decimal, error) {
	q, err := d.Round(scale, mode)
	if err != nil {
		return Decimal{}, err
	}
	return q.Pad(scale), nil
}

// Cmp numerically compares decimals after aligning their scales and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// See also method [Decimal.CmpTotal].
func (d Decimal) Cmp(e Decimal) int {
	dcoef, ecoef, _ := align(d, e)
	return dcoef.Cmp(ecoef)
}

// CmpAbs compares the absolute values of decimals and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| = |e|
//	+1 if |d| > |e|
func (d Decimal) CmpAbs(e Decimal) int {
	dcoef, ecoef, _ := align(d, e)
	return new(big.Int).Abs(dcoef).Cmp(new(big.Int).Abs(ecoef))
}

// CmpTotal compares the representations of decimals and returns:
//
//	-1 if d < e
//	-1 if d = e and d.scale > e.scale
//	 0 if d = e and d.scale = e.scale
//	+1 if d = e and d.scale < e.scale
//	+1 if d > e
//
// See also method [Decimal.Cmp].
func (d Decimal) CmpTotal(e Decimal) int {
	switch c := d.Cmp(e); {
	case c != 0:
		return c
	case d.scale > e.scale:
		return -1
	case d.scale < e.scale:
		return 1
	}
	return 0
}

// Equal returns true if the decimals are numerically equal after aligning
// to the larger scale.
// Decimals with different scales can therefore be equal, for example,
// 1.5 and 1.50.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Min returns the numerically smaller decimal.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the numerically larger decimal.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// String implements the [fmt.Stringer] interface and returns the exact
// decimal rendering of the value, built directly from the coefficient digits
// without a floating-point intermediate.
// The scale determines the count of digits after the decimal point,
// including trailing zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	digits := new(big.Int).Abs(d.coefVal()).String()
	var b strings.Builder
	b.Grow(len(digits) + d.scale + 3)
	if d.IsNeg() {
		b.WriteByte('-')
	}
	if d.scale == 0 {
		b.WriteString(digits)
		return b.String()
	}
	if len(digits) <= d.scale {
		b.WriteString("0.")
		for i := len(digits); i < d.scale; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
		return b.String()
	}
	b.WriteString(digits[:len(digits)-d.scale])
	b.WriteByte('.')
	b.WriteString(digits[len(digits)-d.scale:])
	return b.String()
}

// Int64 returns a pair of integers representing the whole and (possibly
// rounded) fractional parts of the decimal at the given scale.
// The relationship between the decimal and the returned values can be
// expressed as d = whole + frac / 10^scale.
//
// Int64 returns false if the result cannot be represented as a pair of
// int64 values.
func (d Decimal) Int64(scale int, mode Mode) (whole, frac int64, ok bool) {
	if scale < 0 {
		return 0, 0, false
	}
	q, err := d.Rescale(scale, mode)
	if err != nil {
		return 0, 0, false
	}
	w, f := new(big.Int).QuoRem(q.coefVal(), pow10(scale), new(big.Int))
	if !w.IsInt64() || !f.IsInt64() {
		return 0, 0, false
	}
	return w.Int64(), f.Int64(), true
}

// Float64 returns the nearest binary floating-point number.
// This is an explicitly bounded view: the conversion may lose precision,
// as float64 carries at most 53 bits of mantissa.
//
// Float64 returns false if the value does not fit a float64.
func (d Decimal) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
