// Package poly defines the fixed-degree signature polynomials handled
// by the advice generator and their unreduced ring product.
//
// A Polynomial is a value of exactly N field elements; the length
// contract is enforced by the array type, so there is no runtime
// degree check anywhere downstream. The convolution output is kept in
// a distinct raw-integer type: its entries are plain uint64
// accumulator sums that have deliberately NOT been reduced into the
// field. Reduction happens only at the single felt.New conversion
// point when the caller reinterprets entries as field elements.
package poly

import (
	"fmt"

	"github.com/partylikeits1983/miden-client-tools/felt"
)

// N is the fixed polynomial length (Falcon-512 degree).
const N = 512

// Polynomial is a degree-(N-1) polynomial over the field, coefficient
// i holding the x^i term.
type Polynomial [N]felt.Element

// Product holds the unreduced coefficient-wise convolution of two
// Polynomials: entry i is the plain uint64 sum over j+k=i of
// a[j]*b[k]. For signature polynomials (coefficients below the Falcon
// modulus 12289) every entry stays below N*(12288)^2 < 2^47, so the
// uint64 accumulator never wraps.
type Product [2 * N]uint64

// FromUint64 builds a Polynomial from exactly N canonical coefficient
// values. It is the only fallible entry point into the fixed-size
// contract.
func FromUint64(coeffs []uint64) (Polynomial, error) {
	var p Polynomial
	if len(coeffs) != N {
		return p, fmt.Errorf("poly: invalid polynomial length %d, want %d", len(coeffs), N)
	}
	for i, c := range coeffs {
		p[i] = felt.New(c)
	}
	return p, nil
}

// Uint64 returns the canonical integer representatives of the
// coefficients, in order.
func (p *Polynomial) Uint64() []uint64 {
	out := make([]uint64, N)
	for i, c := range p {
		out[i] = c.Uint64()
	}
	return out
}

// Convolve computes the unreduced polynomial product of a and b.
// Pure and deterministic; O(N^2) time.
func Convolve(a, b *Polynomial) Product {
	var c Product
	for i := 0; i < N; i++ {
		ai := a[i].Uint64()
		for j := 0; j < N; j++ {
			c[i+j] += ai * b[j].Uint64()
		}
	}
	return c
}
