/*
Package decimal implements exact fixed-point decimal numbers with an
arbitrary-precision coefficient.

# Representation

A decimal is a struct with two fields:

  - Coefficient: an arbitrary-precision signed integer holding all
    significant digits of the value.
  - Scale: a non-negative integer indicating the position of the decimal
    point, so the value of a decimal equals coefficient / 10^scale.

This representation admits multiple encodings of the same numeric value;
for example 1, 1.0, and 1.00 carry different scales but compare as equal.
No operation converts through a binary floating-point number, so values
round-trip through their string form without precision loss.

# Operations

Addition, subtraction, and multiplication are always exact: operands are
aligned to the larger scale and the result carries enough digits to hold
the exact answer. Division is exact whenever the quotient terminates in
base 10, which holds if and only if the reduced divisor contains only the
prime factors 2 and 5; any other division requires an explicit rounding
mode, and omitting one is an error rather than a silent approximation.

# Rounding

Every precision-reducing step is governed by a [Mode]. The eight variants
cover directed rounding (up, down, ceiling, floor), the three half-way
rules (half-up, half-down, half-even), and [ModeNone], under which any
information loss fails. Rounding decisions are computed from the exact
big-integer remainder, never from a floating midpoint test.

# Errors

Parsing, division, and rounding return errors for malformed input,
division by zero, inexact division without a mode, and forbidden
precision loss, each distinguishable with [errors.Is].
*/
package decimal
