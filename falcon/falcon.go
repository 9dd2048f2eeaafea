// Package falcon provides unconstrained reference checks for the
// Falcon-512 signatures the advice generator serves: hash-to-point,
// the negacyclic ring equation s1 = c - s2*h over Z_q[x]/(x^N+1) with
// q = 12289, and the aggregate norm bound. It exists so the advice
// tape can be validated outside the constrained verifier; signing and
// key generation are out of scope.
package falcon

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"

	"github.com/partylikeits1983/miden-client-tools/poly"
)

const (
	// Q is the Falcon coefficient modulus.
	Q = 12289
	// N is the polynomial degree, re-exported for callers.
	N = poly.N
	// NormBound is the Falcon-512 aggregate bound on
	// ||s1||^2 + ||s2||^2.
	NormBound = 34034726
)

// newRingQ builds the negacyclic ring Z_q[x]/(x^N+1). q = 1 + 12*2^10
// is NTT-friendly for N = 512.
func newRingQ() (*ring.Ring, error) {
	return ring.NewRing(N, []uint64{Q})
}

// checkRange rejects polynomials with coefficients outside [0, Q).
func checkRange(name string, p *poly.Polynomial) error {
	for i, c := range p {
		if c.Uint64() >= Q {
			return fmt.Errorf("falcon: %s[%d] = %d outside modulus %d", name, i, c.Uint64(), uint64(Q))
		}
	}
	return nil
}

// MulModQ computes s2*h in Z_q[x]/(x^N+1). Both inputs must carry
// Falcon-range coefficients.
func MulModQ(h, s2 *poly.Polynomial) ([N]uint64, error) {
	var out [N]uint64
	if err := checkRange("h", h); err != nil {
		return out, err
	}
	if err := checkRange("s2", s2); err != nil {
		return out, err
	}
	r, err := newRingQ()
	if err != nil {
		return out, err
	}
	a := r.NewPoly()
	b := r.NewPoly()
	for i := 0; i < N; i++ {
		a.Coeffs[0][i] = h[i].Uint64()
		b.Coeffs[0][i] = s2[i].Uint64()
	}
	r.MForm(a, a)
	r.MForm(b, b)
	r.NTT(a, a)
	r.NTT(b, b)
	res := r.NewPoly()
	r.MulCoeffsMontgomery(a, b, res)
	r.InvNTT(res, res)
	r.InvMForm(res, res)
	copy(out[:], res.Coeffs[0])
	return out, nil
}

// ReduceProduct folds an unreduced convolution down to the negacyclic
// product mod q: coefficient i of x^(i+N) wraps to -x^i in
// Z_q[x]/(x^N+1).
func ReduceProduct(pi *poly.Product) [N]uint64 {
	var out [N]uint64
	for i := 0; i < N; i++ {
		lo := pi[i] % Q
		hi := pi[i+N] % Q
		out[i] = (lo + Q - hi) % Q
	}
	return out
}

// center maps a canonical mod-q value into [-q/2, q/2].
func center(v uint64) int64 {
	if v > Q/2 {
		return int64(v) - Q
	}
	return int64(v)
}

// Verify checks that (s2, nonce) is a valid signature on msg under the
// public key polynomial h: it recomputes c = HashToPoint(msg, nonce),
// derives s1 = c - s2*h in the ring, and enforces the aggregate norm
// bound.
func Verify(h, s2 *poly.Polynomial, msg, nonce []byte) error {
	prod, err := MulModQ(h, s2)
	if err != nil {
		return err
	}
	c := HashToPoint(msg, nonce)

	var normSq uint64
	for i := 0; i < N; i++ {
		s1 := center((c[i].Uint64() + Q - prod[i]) % Q)
		v2 := center(s2[i].Uint64())
		normSq += uint64(s1*s1) + uint64(v2*v2)
	}
	if normSq > NormBound {
		return fmt.Errorf("falcon: signature norm %d exceeds bound %d", normSq, uint64(NormBound))
	}
	return nil
}
