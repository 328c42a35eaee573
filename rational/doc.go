/*
Package rational implements exact rational numbers with arbitrary-precision
numerators and denominators.

A rational is always held in lowest terms, with the sign on the numerator
and a strictly positive denominator; a zero denominator is rejected at
construction time. Arithmetic renormalizes every result, comparison works
by cross-multiplication, and conversion to decimal form is exact whenever
the reduced denominator contains only the prime factors 2 and 5; in every
other case the conversion either reports the loss or rounds under an
explicit [decimal.Mode].
*/
package rational
