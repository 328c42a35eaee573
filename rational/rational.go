package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/exactvalues/money/decimal"
)

var (
	ErrInvalidRational = errors.New("invalid rational")
	ErrZeroDenominator = errors.New("zero denominator")
	ErrDivisionByZero  = errors.New("division by zero")
)

// Rational type is a representation of an exact rational number.
// It is always stored in lowest terms: the sign is carried on the numerator,
// the denominator is strictly positive, and gcd(|num|, den) = 1.
// The zero value is the numeric value of 0 (that is, 0/1).
//
// A rational is immutable: every operation returns a new value, which makes
// Rational safe for concurrent use by multiple goroutines.
type Rational struct {
	num *big.Int // the numerator, carries the sign, nil means 0
	den *big.Int // the denominator, always positive, nil means 1
}

var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
	intTwo  = big.NewInt(2)
	intFive = big.NewInt(5)
	intTen  = big.NewInt(10)
)

// normalize reduces the fraction to lowest terms. It takes ownership of
// the arguments and may modify them.
func normalize(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{}, nil
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if gcd.Cmp(intOne) > 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	return Rational{num: num, den: den}, nil
}

// New returns a rational equal to num / den, reduced to lowest terms.
// Both arguments are copied.
//
// New returns an error if the denominator is 0.
func New(num, den *big.Int) (Rational, error) {
	if num == nil {
		num = intZero
	}
	if den == nil {
		return Rational{}, fmt.Errorf("constructing rational: %w", ErrZeroDenominator)
	}
	r, err := normalize(new(big.Int).Set(num), new(big.Int).Set(den))
	if err != nil {
		return Rational{}, fmt.Errorf("constructing rational: %w", err)
	}
	return r, nil
}

// NewInt64 returns a rational equal to num / den, reduced to lowest terms.
//
// NewInt64 returns an error if the denominator is 0.
func NewInt64(num, den int64) (Rational, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// MustNew is like [NewInt64] but panics if the rational cannot be constructed.
// It simplifies safe initialization of global variables holding rationals.
func MustNew(num, den int64) Rational {
	r, err := NewInt64(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewInt64(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// Parse converts a fraction string to a rational.
// The input must match the grammar: an optional sign, decimal digits,
// a slash, and decimal digits, with arbitrary surrounding whitespace:
//
//	1/3
//	-7/20
//	 617/48664
//
// Parse returns an error if the string does not represent a valid fraction
// or if the denominator is 0.
func Parse(s string) (Rational, error) {
	r, err := parse(s)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing rational %q: %w", s, err)
	}
	return r, nil
}

func parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		return Rational{}, ErrInvalidRational
	}
	num, ok := parseInt(strings.TrimSpace(numStr), true)
	if !ok {
		return Rational{}, ErrInvalidRational
	}
	den, ok := parseInt(strings.TrimSpace(denStr), false)
	if !ok {
		return Rational{}, ErrInvalidRational
	}
	return normalize(num, den)
}

// parseInt parses a plain decimal integer, rejecting anything SetString
// would otherwise tolerate, such as underscores or a second separator.
func parseInt(s string, signed bool) (*big.Int, bool) {
	digits := s
	if signed && len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		digits = s[1:]
	}
	if digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return r
}

// ParseDecimal converts a decimal string to an exact rational, first as
// digits / 10^scale and then reduced to lowest terms.
//
//	0.25  ->  1/4
//	-1.5  -> -3/2
func ParseDecimal(s string) (Rational, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Rational{}, err
	}
	return FromDecimal(d), nil
}

// FromDecimal converts a decimal to an exact rational.
// The conversion never loses information.
// See also method [Rational.Decimal].
func FromDecimal(d decimal.Decimal) Rational {
	num := d.Coef()
	den := new(big.Int).Exp(intTen, big.NewInt(int64(d.Scale())), nil)
	r, err := normalize(num, den)
	if err != nil {
		panic(fmt.Sprintf("FromDecimal(%v) failed: %v", d, err)) // unreachable
	}
	return r
}

// numVal returns the numerator for reading. The result must never be mutated.
func (r Rational) numVal() *big.Int {
	if r.num == nil {
		return intZero
	}
	return r.num
}

// denVal returns the denominator for reading. The result must never be mutated.
func (r Rational) denVal() *big.Int {
	if r.den == nil {
		return intOne
	}
	return r.den
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.numVal())
}

// Den returns a copy of the denominator.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.denVal())
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rational) Sign() int {
	return r.numVal().Sign()
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsNeg returns:
//
//	true  if r < 0
//	false otherwise
func (r Rational) IsNeg() bool {
	return r.Sign() < 0
}

// IsPos returns:
//
//	true  if r > 0
//	false otherwise
func (r Rational) IsPos() bool {
	return r.Sign() > 0
}

// IsInt returns true if the reduced denominator is 1.
func (r Rational) IsInt() bool {
	return r.denVal().Cmp(intOne) == 0
}

// Neg returns a rational with the opposite sign.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.numVal()), den: r.denVal()}
}

// Abs returns the absolute value of the rational.
func (r Rational) Abs() Rational {
	return Rational{num: new(big.Int).Abs(r.numVal()), den: r.denVal()}
}

// Inv returns the multiplicative inverse of the rational.
//
// Inv returns an error if the rational is 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("inverting %v: %w", r, ErrDivisionByZero)
	}
	q, err := normalize(r.Den(), r.Num())
	if err != nil {
		return Rational{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return q, nil
}

// Add returns the exact sum of rationals r and q, reduced to lowest terms.
func (r Rational) Add(q Rational) Rational {
	num := new(big.Int).Mul(r.numVal(), q.denVal())
	num.Add(num, new(big.Int).Mul(q.numVal(), r.denVal()))
	den := new(big.Int).Mul(r.denVal(), q.denVal())
	s, err := normalize(num, den)
	if err != nil {
		panic(fmt.Sprintf("computing [%v + %v] failed: %v", r, q, err)) // unreachable
	}
	return s
}

// Sub returns the exact difference between rationals r and q,
// reduced to lowest terms.
func (r Rational) Sub(q Rational) Rational {
	return r.Add(q.Neg())
}

// Mul returns the exact product of rationals r and q, reduced to lowest terms.
func (r Rational) Mul(q Rational) Rational {
	num := new(big.Int).Mul(r.numVal(), q.numVal())
	den := new(big.Int).Mul(r.denVal(), q.denVal())
	s, err := normalize(num, den)
	if err != nil {
		panic(fmt.Sprintf("computing [%v * %v] failed: %v", r, q, err)) // unreachable
	}
	return s
}

// Quo returns the exact quotient of rationals r and q, reduced to lowest terms.
//
// Quo returns an error if q is 0.
func (r Rational) Quo(q Rational) (Rational, error) {
	inv, err := q.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r, q, ErrDivisionByZero)
	}
	return r.Mul(inv), nil
}

// Cmp compares rationals by cross-multiplication and returns:
//
//	-1 if r < q
//	 0 if r = q
//	+1 if r > q
func (r Rational) Cmp(q Rational) int {
	left := new(big.Int).Mul(r.numVal(), q.denVal())
	right := new(big.Int).Mul(q.numVal(), r.denVal())
	return left.Cmp(right)
}

// Equal returns true if the rationals are numerically equal.
// Since rationals are always reduced, equality of values coincides with
// equality of representations.
func (r Rational) Equal(q Rational) bool {
	return r.Cmp(q) == 0
}

// IsTerminating returns true if the rational has a terminating decimal
// representation, that is, if its reduced denominator contains only the
// prime factors 2 and 5.
// See also method [Rational.Decimal].
func (r Rational) IsTerminating() bool {
	_, _, rest := factorPow10(r.denVal())
	return rest.Cmp(intOne) == 0
}

// factorPow10 splits den into 2^twos * 5^fives * rest.
func factorPow10(den *big.Int) (twos, fives int, rest *big.Int) {
	rest = new(big.Int).Set(den)
	rem := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(rest, intTwo, rem)
		if r.Sign() != 0 {
			break
		}
		rest = q
		twos++
	}
	for {
		q, r := new(big.Int).QuoRem(rest, intFive, rem)
		if r.Sign() != 0 {
			break
		}
		rest = q
		fives++
	}
	return twos, fives, rest
}

// Decimal returns the exact terminating decimal representation of the
// rational at the minimal sufficient scale.
// See also methods [Rational.RoundDecimal] and [Rational.IsTerminating].
//
// Decimal returns an error if the reduced denominator has prime factors
// other than 2 and 5, as the representation would not terminate.
func (r Rational) Decimal() (decimal.Decimal, error) {
	twos, fives, rest := factorPow10(r.denVal())
	if rest.Cmp(intOne) != 0 {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, decimal.ErrPrecisionLoss)
	}
	scale := max(twos, fives)
	coef := new(big.Int).Mul(r.numVal(), new(big.Int).Exp(intTen, big.NewInt(int64(scale)), nil))
	coef.Quo(coef, r.denVal())
	d, err := decimal.NewFromBigInt(coef, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, err)
	}
	return d, nil
}

// RoundDecimal returns the decimal representation of the rational at the
// given scale, rounding the exact remainder using the given mode.
// With [decimal.ModeNone] the conversion succeeds only if it is exact at
// the given scale.
// See also method [Rational.Decimal].
func (r Rational) RoundDecimal(scale int, mode decimal.Mode) (decimal.Decimal, error) {
	if scale < 0 {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, decimal.ErrScaleRange)
	}
	num := new(big.Int).Mul(r.numVal(), new(big.Int).Exp(intTen, big.NewInt(int64(scale)), nil))
	coef, err := decimal.RoundRatio(num, r.denVal(), mode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, err)
	}
	d, err := decimal.NewFromBigInt(coef, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, err)
	}
	return d, nil
}

// DecimalString returns the exact terminating decimal rendering of the
// rational.
//
// DecimalString returns an error if the representation would not terminate.
// See also method [Rational.Decimal].
func (r Rational) DecimalString() (string, error) {
	d, err := r.Decimal()
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// String implements the [fmt.Stringer] interface and returns the reduced
// fraction in "p/q" form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	return r.numVal().String() + "/" + r.denVal().String()
}
