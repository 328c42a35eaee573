package money

import (
	"fmt"

	"github.com/exactvalues/money/decimal"
)

// checkSeries verifies that the sequence is non-empty and uniformly
// denominated before any arithmetic is performed.
func checkSeries(op string, amounts []Amount) error {
	if len(amounts) == 0 {
		return &EmptyArrayError{Op: op}
	}
	first := amounts[0]
	for _, a := range amounts[1:] {
		if !first.SameCurr(a) {
			return &CurrencyMismatchError{Op: op, A: first.curr.Code(), B: a.curr.Code()}
		}
	}
	return nil
}

// Sum returns the exact sum of a non-empty sequence of same-currency
// amounts.
//
// Sum returns an error if the sequence is empty or mixes currencies.
// See also function [SumOr].
func Sum(amounts []Amount) (Amount, error) {
	if err := checkSeries("sum", amounts); err != nil {
		return Amount{}, err
	}
	total := amounts[0]
	var err error
	for _, a := range amounts[1:] {
		total, err = total.Add(a)
		if err != nil {
			return Amount{}, err
		}
	}
	return total, nil
}

// SumOr is like [Sum] but returns the given default when the sequence is
// empty.
func SumOr(def Amount, amounts []Amount) (Amount, error) {
	if len(amounts) == 0 {
		return def, nil
	}
	return Sum(amounts)
}

// Avg returns the arithmetic mean of a non-empty sequence of same-currency
// amounts.
// The division follows the exactness gate: when the mean terminates it is
// returned exactly, otherwise it is rounded to the currency's scale using
// the given mode, and [decimal.ModeNone] fails rather than round.
//
// Avg returns an error if the sequence is empty, mixes currencies, or the
// division is inexact and the mode forbids rounding.
// See also function [AvgOr].
func Avg(amounts []Amount, mode decimal.Mode) (Amount, error) {
	total, err := Sum(amounts)
	if err != nil {
		return Amount{}, err
	}
	n := decimal.MustNew(int64(len(amounts)), 0)
	if q, err := total.Quo(n); err == nil {
		return q, nil
	}
	q, err := total.QuoRound(n, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("averaging %v amount(s): %w", len(amounts), err)
	}
	return q, nil
}

// AvgOr is like [Avg] but returns the given default when the sequence is
// empty.
func AvgOr(def Amount, amounts []Amount, mode decimal.Mode) (Amount, error) {
	if len(amounts) == 0 {
		return def, nil
	}
	return Avg(amounts, mode)
}

// Min returns the smallest amount of a non-empty sequence of same-currency
// amounts.
//
// Min returns an error if the sequence is empty or mixes currencies.
// See also function [MinOr].
func Min(amounts []Amount) (Amount, error) {
	if err := checkSeries("min", amounts); err != nil {
		return Amount{}, err
	}
	m := amounts[0]
	for _, a := range amounts[1:] {
		if a.value.Cmp(m.value) < 0 {
			m = a
		}
	}
	return m, nil
}

// MinOr is like [Min] but returns the given default when the sequence is
// empty.
func MinOr(def Amount, amounts []Amount) (Amount, error) {
	if len(amounts) == 0 {
		return def, nil
	}
	return Min(amounts)
}

// Max returns the largest amount of a non-empty sequence of same-currency
// amounts.
//
// Max returns an error if the sequence is empty or mixes currencies.
// See also function [MaxOr].
func Max(amounts []Amount) (Amount, error) {
	if err := checkSeries("max", amounts); err != nil {
		return Amount{}, err
	}
	m := amounts[0]
	for _, a := range amounts[1:] {
		if a.value.Cmp(m.value) > 0 {
			m = a
		}
	}
	return m, nil
}

// MaxOr is like [Max] but returns the given default when the sequence is
// empty.
func MaxOr(def Amount, amounts []Amount) (Amount, error) {
	if len(amounts) == 0 {
		return def, nil
	}
	return Max(amounts)
}
