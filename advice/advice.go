// Package advice assembles the auxiliary input tape a constrained
// verifier consumes to check a Falcon-512 signature without
// recomputing the polynomial arithmetic in-circuit.
//
// The tape layout is a bit-exact contract shared with the external
// verifier and must never change on its own:
//
//	[challenge0, challenge1] ++ h ++ s2 ++ (h * s2)
//
// where h * s2 is the unreduced ring product and the challenge pair
// is the first two digest elements of hashing the 4N-element sequence
// h ++ s2 ++ (h * s2).
package advice

import (
	"github.com/partylikeits1983/miden-client-tools/felt"
	"github.com/partylikeits1983/miden-client-tools/poly"
	"github.com/partylikeits1983/miden-client-tools/rpo"
)

// StackLen is the advice stack length: 2 challenge entries plus the
// 4N-element payload.
const StackLen = 2 + 4*poly.N

// GenerateAdviceStack builds the advice stack for the signature
// components h and s2. Pure and deterministic; identical inputs yield
// identical tapes.
func GenerateAdviceStack(h, s2 *poly.Polynomial) []uint64 {
	pi := poly.Convolve(h, s2)

	// Lay the polynomials out in order h, then s2, then pi = h * s2.
	elements := make([]felt.Element, 0, 4*poly.N)
	elements = append(elements, h[:]...)
	elements = append(elements, s2[:]...)
	for _, raw := range pi {
		elements = append(elements, felt.New(raw))
	}

	// The challenge point binds the tape to its payload.
	digest := rpo.HashElements(elements)

	stack := make([]uint64, 0, StackLen)
	stack = append(stack, digest[0].Uint64(), digest[1].Uint64())
	for _, e := range elements {
		stack = append(stack, e.Uint64())
	}
	return stack
}

// Challenge returns just the challenge pair for h and s2. It performs
// the same convolution and hash as GenerateAdviceStack.
func Challenge(h, s2 *poly.Polynomial) (felt.Element, felt.Element) {
	pi := poly.Convolve(h, s2)
	elements := make([]felt.Element, 0, 4*poly.N)
	elements = append(elements, h[:]...)
	elements = append(elements, s2[:]...)
	for _, raw := range pi {
		elements = append(elements, felt.New(raw))
	}
	digest := rpo.HashElements(elements)
	return digest[0], digest[1]
}
