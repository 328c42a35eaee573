/*
Package money implements exact monetary values in various currencies.
It pairs a [Currency] descriptor with an arbitrary-precision fixed-point
value from the [decimal] package, falling back to exact rationals from the
[rational] package wherever an intermediate result would not terminate.

# Features

  - Immutable monetary values, safe for concurrent use across goroutines
  - Currency-consistency enforced on every binary operation
  - Exact addition, subtraction, and multiplication; division that rounds
    only under an explicit, auditable rounding mode
  - Percentage arithmetic, including exact recovery of a pre-tax base
  - Sum-preserving distribution into equal shares and weighted allocation
  - Aggregation over sequences: sum, average, minimum, maximum
  - Conversion between currencies through timestamped exchange rates with
    a staleness predicate

# Representation

An [Amount] consists of a Currency and a decimal.Decimal value. The
currency is shared, read-only reference data served by a process-wide
registry; the decimal value is owned by the amount and never mutated.
Values parse from and render to plain strings, and the structured
interchange encoding keeps every numeric field a string, so a value never
passes through a native floating-point number.

# Rounding

Nothing in this package rounds implicitly. Operations that can lose
precision either take a [decimal.Mode] or consult the process-wide
configuration installed with [Configure]; when the mode in effect forbids
the loss, the operation fails instead of approximating.

# Errors

Failures are typed and carry the offending operands: parsing problems,
currency mismatches, division faults (by zero, by a non-finite value, or
inexact without a mode), forbidden precision loss, empty aggregations, and
conversions against the wrong rate each have their own error type,
matchable with [errors.Is] and [errors.As].
*/
package money
