package bigint

import "fmt"

// MustAdd is like [Int.Add] but panics if the sum cannot be computed.
func (d Int) MustAdd(e Int) Int {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Int.Sub] but panics if the difference cannot be computed.
func (d Int) MustSub(e Int) Int {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Int.Mul] but panics if the product cannot be computed.
func (d Int) MustMul(e Int) Int {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Int.Quo] but panics if the quotient cannot be computed.
func (d Int) MustQuo(e Int) Int {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustRem is like [Int.Rem] but panics if the remainder cannot be computed.
func (d Int) MustRem(e Int) Int {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", d, err))
	}
	return f
}

// MustQuoRem is like [Int.QuoRem] but panics if the quotient and remainder
// cannot be computed.
func (d Int) MustQuoRem(e Int) (Int, Int) {
	q, r, err := d.QuoRem(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", d, err))
	}
	return q, r
}
