package bigint

// This file implements the unsigned digit-array arithmetic underlying all
// public operations. Magnitudes are right-aligned in [MaxDigits]byte arrays
// with zeroed padding above the significant range, so every helper can read
// full-width aligned slots without consulting the size of the shorter
// operand.

// norm returns the canonical non-negative integer over the given magnitude,
// with leading zeros trimmed. The size is at least 1.
func norm(digits [MaxDigits]byte) Int {
	size := 1
	for i := 0; i < MaxDigits; i++ {
		if digits[i] != 0 {
			size = MaxDigits - i
			break
		}
	}
	return Int{size: int16(size - 1), digits: digits}
}

// absLess reports whether |d| < |e|.
// The magnitude with fewer digits is smaller; at equal digit counts the
// first differing digit, most significant first, decides.
func (d Int) absLess(e Int) bool {
	if d.Prec() != e.Prec() {
		return d.Prec() < e.Prec()
	}
	for i := MaxDigits - d.Prec(); i < MaxDigits; i++ {
		if d.digits[i] != e.digits[i] {
			return d.digits[i] < e.digits[i]
		}
	}
	return false
}

// addAbs calculates |d| + |e| and checks overflow.
func (d Int) addAbs(e Int) (z Int, ok bool) {
	size := max(d.Prec(), e.Prec())
	carry := byte(0)
	for i := MaxDigits - 1; i >= MaxDigits-size; i-- {
		sum := d.digits[i] + e.digits[i] + carry
		z.digits[i] = sum % 10
		carry = sum / 10
	}
	if carry > 0 {
		if size == MaxDigits {
			return Int{}, false
		}
		z.digits[MaxDigits-size-1] = carry
		size++
	}
	z.size = int16(size - 1)
	return z, true
}

// subAbs calculates the absolute difference of the magnitudes of d and e,
// that is abs(|d| - |e|). Cancellation of the most significant digits is
// trimmed, so the result is canonical.
func (d Int) subAbs(e Int) Int {
	greater, smaller := d, e
	if d.absLess(e) {
		greater, smaller = e, d
	}

	var z Int
	size := 1
	borrow := byte(0)
	for i := MaxDigits - 1; i >= MaxDigits-greater.Prec(); i-- {
		s := smaller.digits[i] + borrow
		if greater.digits[i] < s {
			z.digits[i] = greater.digits[i] + 10 - s
			borrow = 1
		} else {
			z.digits[i] = greater.digits[i] - s
			borrow = 0
		}
		if z.digits[i] != 0 {
			size = MaxDigits - i
		}
	}
	if borrow != 0 {
		panic("subAbs: borrow out of the smaller magnitude") // unexpected by design
	}
	z.size = int16(size - 1)
	return z
}

// mulAbs calculates |d| * |e| using schoolbook digit-pair accumulation
// and checks overflow. Neither operand may be zero.
func (d Int) mulAbs(e Int) (z Int, ok bool) {
	dsize, esize := d.Prec(), e.Prec()

	// Even the shortest possible product has dsize+esize-1 digits.
	if dsize+esize-1 > MaxDigits {
		return Int{}, false
	}

	// Positions count from the least significant end: the product of
	// digits at positions i and j accumulates into position i+j.
	for i := 0; i < esize; i++ {
		y := e.digits[MaxDigits-1-i]
		carry := byte(0)
		for j := 0; j < dsize; j++ {
			pos := MaxDigits - 1 - (i + j)
			m := d.digits[MaxDigits-1-j]*y + carry + z.digits[pos]
			z.digits[pos] = m % 10
			carry = m / 10
		}
		if carry > 0 {
			if i+dsize >= MaxDigits {
				return Int{}, false
			}
			z.digits[MaxDigits-1-(i+dsize)] += carry
		}
	}

	// The true size is either dsize+esize or one less.
	size := dsize + esize - 1
	if size < MaxDigits && z.digits[MaxDigits-size-1] != 0 {
		size++
	}
	z.size = int16(size - 1)
	return z, true
}

// divAbs calculates the quotient and remainder of |d| / |e| using
// digit-by-digit long division. e must not be zero.
//
// For every quotient digit position, most significant first, the divisor is
// repeatedly subtracted from the window of the working dividend aligned at
// that position while the remaining dividend is still at least as large as
// the divisor; the subtraction count is the quotient digit.
func (d Int) divAbs(e Int) (q, r Int) {
	dsize, esize := d.Prec(), e.Prec()
	if dsize < esize {
		return Int{}, norm(d.digits)
	}

	w := d.digits            // working copy of the dividend magnitude
	top := MaxDigits - dsize // index of the dividend's most significant digit
	var quo [MaxDigits]byte  // quotient digits, most significant first

	steps := dsize - esize + 1
	for s := 0; s < steps; s++ {
		lo := top + esize - 1 + s // least significant index of the window
		for divisorFits(&w, top, lo, &e.digits, esize) {
			subtractDivisor(&w, top, lo, &e.digits, esize)
			quo[s]++
		}
	}

	for s := 0; s < steps; s++ {
		q.digits[MaxDigits-steps+s] = quo[s]
	}
	return norm(q.digits), norm(w)
}

// divisorFits reports whether the remaining working dividend down to
// index lo is at least as large as the divisor magnitude.
func divisorFits(w *[MaxDigits]byte, top, lo int, div *[MaxDigits]byte, esize int) bool {
	// Any nonzero digit above the window makes the remaining dividend
	// longer than the divisor.
	for i := top; i <= lo-esize; i++ {
		if w[i] != 0 {
			return true
		}
	}
	for k := 0; k < esize; k++ {
		x, y := w[lo-esize+1+k], div[MaxDigits-esize+k]
		if x != y {
			return x > y
		}
	}
	return true
}

// subtractDivisor subtracts the divisor magnitude from the working dividend
// aligned at index lo, propagating the borrow past the window if needed.
func subtractDivisor(w *[MaxDigits]byte, top, lo int, div *[MaxDigits]byte, esize int) {
	borrow := byte(0)
	for k := 0; k < esize; k++ {
		i := lo - k
		s := div[MaxDigits-1-k] + borrow
		if w[i] < s {
			w[i] += 10 - s
			borrow = 1
		} else {
			w[i] -= s
			borrow = 0
		}
	}
	for i := lo - esize; borrow > 0; i-- {
		if i < top {
			panic("subtractDivisor: borrow out of the working dividend") // unexpected by design
		}
		if w[i] == 0 {
			w[i] = 9
		} else {
			w[i]--
			borrow = 0
		}
	}
}
