package falcon

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/partylikeits1983/miden-client-tools/felt"
	"github.com/partylikeits1983/miden-client-tools/poly"
)

func randomFalconPoly(rng *rand.Rand) poly.Polynomial {
	var p poly.Polynomial
	for i := range p {
		p[i] = felt.New(rng.Uint64() % Q)
	}
	return p
}

// The negacyclic fold of the unreduced advice product must agree with
// the ring product computed independently through the NTT.
func TestReduceProductMatchesRing(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for trial := 0; trial < 3; trial++ {
		h := randomFalconPoly(rng)
		s2 := randomFalconPoly(rng)
		pi := poly.Convolve(&h, &s2)
		folded := ReduceProduct(&pi)
		want, err := MulModQ(&h, &s2)
		if err != nil {
			t.Fatalf("MulModQ: %v", err)
		}
		for i := 0; i < N; i++ {
			if folded[i] != want[i] {
				t.Fatalf("trial %d: coefficient %d: fold %d, ntt %d", trial, i, folded[i], want[i])
			}
		}
	}
}

func TestMulModQRejectsOutOfRange(t *testing.T) {
	var h, s2 poly.Polynomial
	h[17] = felt.New(Q) // one past the Falcon modulus
	_, err := MulModQ(&h, &s2)
	if err == nil {
		t.Fatalf("out-of-range coefficient accepted")
	}
	if !strings.Contains(err.Error(), "h[17]") {
		t.Fatalf("error does not locate the bad coefficient: %v", err)
	}
}

func TestHashToPoint(t *testing.T) {
	msg := []byte("advice tape binding")
	nonce := []byte("0123456789abcdef0123456789abcdef0123456789")
	c1 := HashToPoint(msg, nonce)
	c2 := HashToPoint(msg, nonce)
	if c1 != c2 {
		t.Fatalf("hash-to-point not deterministic")
	}
	for i, v := range c1 {
		if v.Uint64() >= Q {
			t.Fatalf("c[%d] = %d outside modulus", i, v.Uint64())
		}
	}
	c3 := HashToPoint(append([]byte(nil), msg[:len(msg)-1]...), nonce)
	if c1 == c3 {
		t.Fatalf("distinct messages hashed to the same point")
	}
}

// Build a signature that satisfies the verification equation by
// construction: fix s2 = 1 (the delta polynomial), sample a small s1,
// and set h = c - s1 mod q. Then s2*h = h and s1 = c - h as required,
// with a norm far below the bound.
func TestVerifyConstructedSignature(t *testing.T) {
	msg := []byte("transfer 100 tokens")
	nonce := []byte("nonce-for-verify-test")
	c := HashToPoint(msg, nonce)

	rng := rand.New(rand.NewSource(21))
	var h, s2 poly.Polynomial
	s2[0] = felt.One()
	for i := 0; i < N; i++ {
		s1 := rng.Int63n(5) - 2 // coefficients in [-2, 2]
		v := (int64(c[i].Uint64()) - s1 + Q) % Q
		h[i] = felt.New(uint64(v))
	}

	if err := Verify(&h, &s2, msg, nonce); err != nil {
		t.Fatalf("constructed signature rejected: %v", err)
	}

	// Any other message must blow the norm with overwhelming
	// probability.
	if err := Verify(&h, &s2, []byte("transfer 999 tokens"), nonce); err == nil {
		t.Fatalf("forged message accepted")
	}
}

func TestVerifyRejectsLargeNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	h := randomFalconPoly(rng)
	var s2 poly.Polynomial
	for i := range s2 {
		s2[i] = felt.New(6000) // centered value 6000, norm >> bound
	}
	err := Verify(&h, &s2, []byte("msg"), []byte("nonce"))
	if err == nil {
		t.Fatalf("norm-violating signature accepted")
	}
	if !strings.Contains(err.Error(), "norm") {
		t.Fatalf("unexpected error: %v", err)
	}
}
