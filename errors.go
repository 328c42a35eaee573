package money

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the package. Operation-level failures wrap
// these, so callers can branch with [errors.Is] without inspecting the
// typed error structs.
var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidInput     = errors.New("invalid input")
	ErrRateMismatch     = errors.New("currency matches neither side of the rate")
)

// ParseError indicates a malformed decimal, fraction, percentage, currency,
// or money string. It keeps the offending input so the caller does not need
// to re-derive it.
type ParseError struct {
	Kind  string // "decimal", "fraction", "percent", "currency", "money"
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("parsing %s %q: invalid syntax", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CurrencyMismatchError indicates a binary operation between amounts
// denominated in different currencies. Both codes are carried.
type CurrencyMismatchError struct {
	Op   string
	A, B string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %s vs %s", e.Op, ErrCurrencyMismatch, e.A, e.B)
}

func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

// DivisionError indicates a failed division: by zero, by a non-finite
// quantity, or an inexact division attempted without a rounding mode.
// The three causes remain distinguishable through the wrapped reason.
type DivisionError struct {
	Op     string
	Reason error
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Reason)
}

func (e *DivisionError) Unwrap() error {
	return e.Reason
}

// ErrNaN and ErrInfinity mark native numeric input that is not a finite
// number. Each is distinct from the other and from division by zero.
var (
	ErrNaN      = errors.New("not-a-number value")
	ErrInfinity = errors.New("infinite value")
)

// PrecisionLossError indicates that an operation would discard significant
// digits while the mode in effect forbids it.
type PrecisionLossError struct {
	Op  string
	Err error
}

func (e *PrecisionLossError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PrecisionLossError) Unwrap() error {
	return e.Err
}

// EmptyArrayError indicates an aggregation over zero elements with no
// default supplied.
type EmptyArrayError struct {
	Op string
}

func (e *EmptyArrayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrEmptyInput)
}

func (e *EmptyArrayError) Is(target error) bool {
	return target == ErrEmptyInput
}

// ExchangeRateError indicates a conversion attempted with an amount whose
// currency matches neither side of the rate.
type ExchangeRateError struct {
	Curr  string // currency of the amount being converted
	Base  string
	Quote string
}

func (e *ExchangeRateError) Error() string {
	return fmt.Sprintf("converting %s: %v (%s/%s)", e.Curr, ErrRateMismatch, e.Base, e.Quote)
}

func (e *ExchangeRateError) Is(target error) bool {
	return target == ErrRateMismatch
}

// ValidationError indicates structured input that fails a shape check,
// such as a negative scale or an unregistered currency field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validating %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
