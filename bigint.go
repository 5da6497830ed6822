package bigint

import (
	"errors"
	"fmt"
)

// Int type is a representation of a signed decimal integer with a fixed
// maximum capacity of [MaxDigits] digits.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An Int is a struct with three fields:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Size: the count of significant digits currently in use.
//   - Digits: a fixed-length array of decimal digits, right-aligned so that
//     the least significant digit always occupies the last slot.
//
// The canonical form has no leading zero digits, and zero is always
// non-negative. All constructors and operations produce canonical values,
// so two Ints are equal with == exactly when they represent the same number.
type Int struct {
	neg    bool            // indicates whether the integer is negative
	size   int16           // count of significant digits, minus one
	digits [MaxDigits]byte // digits 0-9, right-aligned, most significant first
}

const (
	// MaxDigits is the maximum number of decimal digits in an [Int].
	MaxDigits = 200

	// minDigits is the smallest capacity worth the array representation.
	// Anything up to 18 digits fits a native 64-bit or 128-bit integer.
	minDigits = 19
)

// MaxDigits must be at least minDigits.
const _ = uint(MaxDigits - minDigits)

var (
	errCapacityExceeded = errors.New("capacity exceeded")
	errInvalidNumber    = errors.New("invalid number")
	errDivisionByZero   = errors.New("division by zero")
)

var (
	Zero = MustParse("0")
	One  = MustParse("1")
	Two  = MustParse("2")
)

// Parse converts a string to an integer.
// The input string must be an optional leading minus sign followed by one or
// more ASCII decimal digits:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros, so the result is always in canonical form.
//
// Parse returns an error:
//   - if the string does not represent a valid integer;
//   - if the string has more than [MaxDigits] significant digits.
func Parse(num string) (Int, error) {
	var (
		d     Int
		pos   int
		width int
	)

	width = len(num)

	// Sign
	if pos < width && num[pos] == '-' {
		d.neg = true
		pos++
	}
	if pos == width {
		return Int{}, fmt.Errorf("no digits: %w", errInvalidNumber)
	}

	// Leading zeros
	for pos < width-1 && num[pos] == '0' {
		pos++
	}

	// Digits
	size := width - pos
	if size > MaxDigits {
		return Int{}, fmt.Errorf("the integer can have at most %v digit(s), but it has %v digit(s): %w", MaxDigits, size, errCapacityExceeded)
	}
	for i := MaxDigits - size; pos < width; pos++ {
		if num[pos] < '0' || num[pos] > '9' {
			return Int{}, fmt.Errorf("invalid character %q: %w", num[pos], errInvalidNumber)
		}
		d.digits[i] = num[pos] - '0'
		i++
	}
	d.size = int16(size - 1)

	// Negative zero
	if d.IsZero() {
		d.neg = false
	}
	return d, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(num string) Int {
	d, err := Parse(num)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", num, err))
	}
	return d
}

// NewFromInt64 converts an int64 to an (exactly equal) integer.
func NewFromInt64(num int64) Int {
	var d Int
	if num < 0 {
		d.neg = true
	}
	// Digits are peeled from the least significant end, negating each
	// remainder instead of the whole number, so math.MinInt64 is safe.
	pos := MaxDigits
	for {
		r := num % 10
		if r < 0 {
			r = -r
		}
		pos--
		d.digits[pos] = byte(r)
		num /= 10
		if num == 0 {
			break
		}
	}
	d.size = int16(MaxDigits - pos - 1)
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the integer: a minus sign only if the integer
// is negative, followed by exactly [Int.Prec] digits, most significant
// first. Zero renders as "0".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Int) String() string {
	var buf [MaxDigits + 1]byte
	pos := 0
	if d.neg {
		buf[pos] = '-'
		pos++
	}
	for i := MaxDigits - d.Prec(); i < MaxDigits; i++ {
		buf[pos] = d.digits[i] + '0'
		pos++
	}
	return string(buf[:pos])
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Int) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Int) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Prec returns the number of digits in the integer.
// Prec assumes that 0 has one digit.
func (d Int) Prec() int {
	return int(d.size) + 1
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Int) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Int) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsNeg returns true if d < 0.
func (d Int) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Int) IsZero() bool {
	return d.size == 0 && d.digits[MaxDigits-1] == 0
}

// IsOdd returns true if the least significant digit of d is odd.
func (d Int) IsOdd() bool {
	return d.digits[MaxDigits-1]%2 != 0
}

// IsEven returns true if the least significant digit of d is even.
func (d Int) IsEven() bool {
	return !d.IsOdd()
}

// Neg returns d with the opposite sign.
// The sign of zero remains non-negative.
func (d Int) Neg() Int {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns the absolute value of d.
func (d Int) Abs() Int {
	d.neg = false
	return d
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (d Int) CopySign(e Int) Int {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Int) Cmp(e Int) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case: for negative numbers the larger magnitude
	// is the smaller value.
	switch {
	case d.absLess(e):
		if d.neg {
			return 1
		}
		return -1
	case e.absLess(d):
		if d.neg {
			return -1
		}
		return 1
	}
	return 0
}

// CmpAbs compares the absolute values of d and e, ignoring signs,
// and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| == |e|
//	+1 if |d| > |e|
func (d Int) CmpAbs(e Int) int {
	switch {
	case d.absLess(e):
		return -1
	case e.absLess(d):
		return 1
	}
	return 0
}

// Equal returns true if d and e represent the same numeric value.
// Also see method [Int.Cmp].
func (d Int) Equal(e Int) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
// Also see method [Int.Cmp].
func (d Int) Less(e Int) bool {
	return d.Cmp(e) < 0
}

// Greater returns true if d > e.
// Also see method [Int.Cmp].
func (d Int) Greater(e Int) bool {
	return d.Cmp(e) > 0
}

// Max returns the maximum of d and e.
// Also see method [Int.Cmp].
func (d Int) Max(e Int) Int {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the minimum of d and e.
// Also see method [Int.Cmp].
func (d Int) Min(e Int) Int {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Add returns the exact sum of d and e.
//
// Add returns an error if the sum has more than [MaxDigits] digits.
func (d Int) Add(e Int) (Int, error) {
	var z Int
	if d.neg == e.neg {
		var ok bool
		z, ok = d.addAbs(e)
		if !ok {
			return Int{}, fmt.Errorf("computing [%v + %v]: %w", d, e, errCapacityExceeded)
		}
		z.neg = d.neg
	} else {
		z = d.subAbs(e)
		if d.absLess(e) {
			z.neg = e.neg
		} else {
			z.neg = d.neg
		}
	}
	if z.IsZero() {
		z.neg = false
	}
	return z, nil
}

// Sub returns the exact difference of d and e.
//
// Sub returns an error if the difference has more than [MaxDigits] digits.
func (d Int) Sub(e Int) (Int, error) {
	var z Int
	if d.neg == e.neg {
		z = d.subAbs(e)
		z.neg = d.Cmp(e) < 0
	} else {
		var ok bool
		z, ok = d.addAbs(e)
		if !ok {
			return Int{}, fmt.Errorf("computing [%v - %v]: %w", d, e, errCapacityExceeded)
		}
		z.neg = d.neg
	}
	if z.IsZero() {
		z.neg = false
	}
	return z, nil
}

// Mul returns the exact product of d and e.
// The result is negative if exactly one of the operands is negative.
//
// Mul returns an error if the product has more than [MaxDigits] digits.
func (d Int) Mul(e Int) (Int, error) {
	// Special case: zero operand
	if d.IsZero() || e.IsZero() {
		return Int{}, nil
	}

	// General case
	z, ok := d.mulAbs(e)
	if !ok {
		return Int{}, fmt.Errorf("computing [%v * %v]: %w", d, e, errCapacityExceeded)
	}
	z.neg = d.neg != e.neg
	return z, nil
}

// QuoRem returns the quotient q and remainder r of d and e such that
// q = d div e truncated towards zero and d = e * q + r.
// The sign of the quotient is negative if exactly one of the operands is
// negative, the sign of a nonzero remainder is the sign of the dividend,
// and |r| < |e|.
//
// QuoRem returns an error if e is 0.
func (d Int) QuoRem(e Int) (q, r Int, err error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: %w", d, e, errDivisionByZero)
	}

	// Special case: zero dividend
	if d.IsZero() {
		return Int{}, Int{}, nil
	}

	// General case
	q, r = d.divAbs(e)
	if !q.IsZero() {
		q.neg = d.neg != e.neg
	}
	if !r.IsZero() {
		r.neg = d.neg
	}
	return q, r, nil
}

// Quo returns the quotient of d and e truncated towards zero.
// Also see method [Int.QuoRem].
//
// Quo returns an error if e is 0.
func (d Int) Quo(e Int) (Int, error) {
	q, _, err := d.QuoRem(e)
	return q, err
}

// Rem returns the remainder of d and e.
// Also see method [Int.QuoRem].
//
// Rem returns an error if e is 0.
func (d Int) Rem(e Int) (Int, error) {
	_, r, err := d.QuoRem(e)
	return r, err
}
