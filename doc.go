/*
Package money implements monetary values stored as an integer number of minor
units (cents, pennies, fils) of a currency.
It combines an int64 amount with a [Currency] and uses the [decimal] package
whenever an operation can produce a value that is not a whole number of
minor units.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - A built-in ISO 4217 table with codes, scales, names and symbols
  - Addition and subtraction that refuse to mix currencies
  - Multiplication, division and percentages rounded half to even
  - Exact tie detection, without binary floating-point drift

# Representation

A [Money] value is a pair of an int64 number of minor units and a [Currency].
The Currency type is an integer index into in-memory arrays generated from
the ISO 4217 table, so comparing two currencies is comparing two integers.
Two amounts can take part in the same addition or subtraction only if they
have the same currency; currencies that happen to share a scale are still
different currencies.

The number of minor units is limited to the range
[-math.MaxInt64, math.MaxInt64].

# Rounding

Multiplication, division and percentages round their results to the scale of
the currency using rounding half to even, also known as banker's rounding.
Halfway values go to the nearest even digit, so repeated roundings do not
drift in one direction:

	0.125 → 0.12
	0.135 → 0.14

Factors given as float64 are first converted to the shortest decimal that
represents them, so 0.25 is exactly one quarter and 2.135 is exactly 2.135.
The same rounding is available directly through [RoundHalfEven] and
[RoundHalfEvenFloat64].

# Errors

Constructors and operations return an error when a precondition is violated:
an amount that is not a whole number of minor units, currencies that do not
match, division by zero, an argument out of range, or a result that does not
fit into int64.
Each error wraps an [*Error] whose [ErrorKind] identifies the violation, and
matches one of the sentinel errors such as [ErrIncompatibleCurrencies] with
[errors.Is].
None of these errors is transient, so retrying the same call does not help.

Locale-aware formatting lives in the display subpackage.
*/
package money
