package money

import (
	"fmt"
	"sort"

	"github.com/exactvalues/money/decimal"
	"github.com/exactvalues/money/rational"
)

// Distribute splits the amount into n equal shares whose sum equals the
// original amount exactly.
// Each share is the quotient truncated toward zero at the amount's scale;
// the remaining minimal units are then handed out one per share in index
// order, so shares differ by at most one unit in the last place.
// The method is deterministic and order-sensitive by construction.
//
//	(USD 127.43).Distribute(4) = [USD 31.86, USD 31.86, USD 31.86, USD 31.85]
//
// Distribute returns an error if n is not positive.
func (a Amount) Distribute(n int) ([]Amount, error) {
	r, err := a.distribute(n)
	if err != nil {
		return nil, fmt.Errorf("distributing %v into %v share(s): %w", a, n, err)
	}
	return r, nil
}

func (a Amount) distribute(n int) ([]Amount, error) {
	if n <= 0 {
		return nil, &ValidationError{Field: "shares", Reason: "must be positive"}
	}
	parts := decimal.MustNew(int64(n), 0)

	// Base share, truncated toward zero at the amount's scale.
	quo, err := a.value.QuoRound(parts, a.Scale(), decimal.ModeDown)
	if err != nil {
		return nil, err
	}
	base := newAmount(a.curr, quo)

	// Exact leftover, a whole number of units in the last place.
	rem := a.value.Sub(quo.Mul(parts))
	ulp := a.value.ULP().CopySign(rem)

	res := make([]Amount, n)
	for i := range res {
		res[i] = base
		if !rem.IsZero() {
			rem = rem.Sub(ulp)
			res[i] = newAmount(a.curr, res[i].value.Add(ulp))
		}
	}
	return res, nil
}

// Allocate splits the amount into shares proportional to the given weights,
// preserving the exact sum.
// Each share's unrounded ideal is amount * weight / total, truncated toward
// zero at the amount's scale; the leftover minimal units then go to the
// shares with the largest fractional remainders first, ties broken by
// original index (the largest-remainder method).
//
// Allocate returns an error if:
//   - no weights are given;
//   - any weight is negative;
//   - all weights are zero.
func (a Amount) Allocate(weights ...decimal.Decimal) ([]Amount, error) {
	r, err := a.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v across %v weight(s): %w", a, len(weights), err)
	}
	return r, nil
}

func (a Amount) allocate(weights []decimal.Decimal) ([]Amount, error) {
	if len(weights) == 0 {
		return nil, &EmptyArrayError{Op: "allocate"}
	}
	total := rational.Rational{}
	for _, w := range weights {
		if w.IsNeg() {
			return nil, &ValidationError{Field: "weight", Reason: "must not be negative"}
		}
		total = total.Add(rational.FromDecimal(w))
	}
	if total.IsZero() {
		return nil, &ValidationError{Field: "weights", Reason: "must not all be zero"}
	}

	value := rational.FromDecimal(a.value)
	shares := make([]Amount, len(weights))
	fracs := make([]rational.Rational, len(weights))
	sum := Zero(a.curr)
	for i, w := range weights {
		ideal, err := value.Mul(rational.FromDecimal(w)).Quo(total)
		if err != nil {
			return nil, err
		}
		floored, err := ideal.RoundDecimal(a.Scale(), decimal.ModeDown)
		if err != nil {
			return nil, err
		}
		shares[i] = newAmount(a.curr, floored)
		fracs[i] = ideal.Sub(rational.FromDecimal(floored))
		sum, err = sum.Add(shares[i])
		if err != nil {
			return nil, err
		}
	}

	// Leftover minimal units go to the largest remainders first,
	// ties broken by original index.
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return fracs[order[i]].Abs().Cmp(fracs[order[j]].Abs()) > 0
	})

	rem := a.value.Sub(sum.value)
	ulp := a.value.ULP().CopySign(rem)
	for _, i := range order {
		if rem.IsZero() {
			break
		}
		rem = rem.Sub(ulp)
		shares[i] = newAmount(a.curr, shares[i].value.Add(ulp))
	}
	return shares, nil
}
