// Package felt implements arithmetic in the 64-bit prime field
// F_p with p = 2^64 - 2^32 + 1, the field native to the target
// verifier VM. Every Element holds the canonical representative
// of its residue class, so values can be compared directly and
// exported as plain uint64 without further reduction.
package felt

import "math/bits"

// Modulus is the field prime p = 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

// epsilon = 2^64 mod p = 2^32 - 1.
const epsilon uint64 = 0xFFFFFFFF

// Element is a field element in canonical form (value < Modulus).
type Element uint64

// New maps an arbitrary uint64 to its canonical field representative.
// This is the single conversion point between raw machine integers
// (e.g. unreduced convolution accumulators) and field elements.
func New(v uint64) Element {
	if v >= Modulus {
		v -= Modulus
	}
	return Element(v)
}

// Zero returns the additive identity.
func Zero() Element { return 0 }

// One returns the multiplicative identity.
func One() Element { return 1 }

// Uint64 returns the canonical integer representative.
func (e Element) Uint64() uint64 { return uint64(e) }

// Add returns a + b mod p.
func Add(a, b Element) Element {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		// a+b = 2^64 + s and 2^64 ≡ epsilon (mod p), so the true
		// residue is s + epsilon, which cannot overflow again.
		s += epsilon
	}
	if s >= Modulus {
		s -= Modulus
	}
	return Element(s)
}

// Sub returns a - b mod p.
func Sub(a, b Element) Element {
	d, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		d -= epsilon
	}
	return Element(d)
}

// Neg returns -a mod p.
func Neg(a Element) Element {
	if a == 0 {
		return 0
	}
	return Element(Modulus - uint64(a))
}

// Mul returns a * b mod p using the 96-bit folding reduction:
// with x = hiHi*2^96 + hiLo*2^64 + lo, 2^96 ≡ -1 and 2^64 ≡ epsilon,
// so x ≡ lo - hiHi + hiLo*epsilon (mod p).
func Mul(a, b Element) Element {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	hiHi := hi >> 32
	hiLo := hi & epsilon

	t0, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow != 0 {
		t0 -= epsilon
	}
	t1 := hiLo * epsilon
	r, carry := bits.Add64(t0, t1, 0)
	if carry != 0 {
		r += epsilon
	}
	if r >= Modulus {
		r -= Modulus
	}
	return Element(r)
}

// Pow returns a^exp mod p by square-and-multiply.
func Pow(a Element, exp uint64) Element {
	res := One()
	base := a
	for exp > 0 {
		if exp&1 == 1 {
			res = Mul(res, base)
		}
		base = Mul(base, base)
		exp >>= 1
	}
	return res
}

// Inv returns a^-1 mod p via Fermat's little theorem. Inv(0) is 0.
func Inv(a Element) Element {
	return Pow(a, Modulus-2)
}
