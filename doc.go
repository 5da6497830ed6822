/*
Package bigint implements immutable fixed-capacity signed decimal integers.
It provides exact addition, subtraction, multiplication, and division with
remainder for integers of up to [MaxDigits] decimal digits.

# Representation

[Int] is a struct with three fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Digits: a fixed-length array of decimal digits, right-aligned within
    the array, most significant digit first.
  - Size: the count of significant digits currently in use.

The numerical value of an integer is the value of its significant digits,
negated if the sign is set. The representation is always canonical: there
are no leading zero digits, zero is a single zero digit, and zero is never
negative. Because of this, two [Int] values are equal with == exactly when
they represent the same number.

# Capacity

The capacity is a package-level constant rather than a per-value parameter.
Integers of up to 18 digits fit native fixed-width arithmetic, so capacities
that small are rejected at compile time.

All arithmetic works in fixed-size buffers sized at the capacity. Apart
from rendering, which allocates the returned string or byte slice, no
operation allocates.

# Operations

Arithmetic results are exact. If an exact result would need more than
[MaxDigits] digits, the operation returns an error rather than a truncated
or rounded value. Division with remainder truncates the quotient towards
zero, so the remainder carries the sign of the dividend and
d = e * q + r holds for every nonzero divisor.

# Errors

All methods are panic-free and pure: computational errors, including
division by zero and results exceeding the capacity, are returned as error
values. The Must variants ([Int.MustAdd], [MustParse], and so on) panic
instead of returning errors and simplify initialization of package-level
variables. Internal invariant violations, which indicate a defect in this
package rather than bad input, panic.

# Evaluation contexts

Some languages can evaluate this kind of arithmetic during compilation.
Go cannot, so constants that would be computed at compile time elsewhere
are either computed once at package initialization or written as literal
decimal strings and verified against runtime results in the tests.
*/
package bigint
