// Package rpo implements the Rescue-Prime Optimized arithmetic sponge
// over the 64-bit field used by the target verifier VM. The
// permutation operates on a width-12 state (4 capacity + 8 rate
// elements) and runs 7 rounds, each applying the MDS layer and round
// constants around a forward S-box x^7 and an inverse S-box
// x^(7^-1 mod p-1).
//
// Round constants are expanded once at package init from a fixed
// SHAKE-256 seed string following the Rescue-Prime derivation
// procedure, so digests are deterministic across builds.
package rpo

import (
	"encoding/binary"

	"github.com/partylikeits1983/miden-client-tools/felt"
	"github.com/partylikeits1983/miden-client-tools/internal/xof"
)

const (
	// StateWidth is the permutation width in field elements.
	StateWidth = 12
	// RateWidth is the number of elements absorbed per permutation.
	RateWidth = 8
	// CapacityWidth is the number of capacity elements.
	CapacityWidth = 4
	// DigestSize is the number of digest elements squeezed.
	DigestSize = 4
	// NumRounds is the number of permutation rounds.
	NumRounds = 7

	// alpha is the forward S-box exponent.
	alpha = 7
	// invAlpha = alpha^-1 mod (p-1); the inverse S-box exponent.
	invAlpha = 10540996611094048183
)

// mdsRow is the first row of the circulant MDS matrix from the
// Rescue-Prime Optimized specification. Row i of the full matrix is
// this row rotated right by i positions.
var mdsRow = [StateWidth]felt.Element{7, 23, 8, 26, 13, 10, 9, 7, 6, 22, 21, 8}

// Per-round constants injected after each of the two half-rounds.
var (
	ark1 [NumRounds][StateWidth]felt.Element
	ark2 [NumRounds][StateWidth]felt.Element
)

const constantsSeed = "RPO(18446744069414584321,12,4,128)"

func init() {
	h := xof.Stream(constantsSeed)
	var buf [8]byte
	next := func() felt.Element {
		// Rejection sampling keeps the constants canonical and
		// uniform; the reject probability is about 2^-32.
		for {
			if _, err := h.Read(buf[:]); err != nil {
				panic(err)
			}
			v := binary.LittleEndian.Uint64(buf[:])
			if v < felt.Modulus {
				return felt.Element(v)
			}
		}
	}
	for r := 0; r < NumRounds; r++ {
		for i := 0; i < StateWidth; i++ {
			ark1[r][i] = next()
		}
		for i := 0; i < StateWidth; i++ {
			ark2[r][i] = next()
		}
	}
}

// applyMDS multiplies the state by the circulant MDS matrix.
func applyMDS(state *[StateWidth]felt.Element) {
	var out [StateWidth]felt.Element
	for i := 0; i < StateWidth; i++ {
		var acc felt.Element
		for j := 0; j < StateWidth; j++ {
			acc = felt.Add(acc, felt.Mul(mdsRow[(j-i+StateWidth)%StateWidth], state[j]))
		}
		out[i] = acc
	}
	*state = out
}

func addConstants(state *[StateWidth]felt.Element, c *[StateWidth]felt.Element) {
	for i := range state {
		state[i] = felt.Add(state[i], c[i])
	}
}

func applySBox(state *[StateWidth]felt.Element) {
	for i := range state {
		x := state[i]
		x2 := felt.Mul(x, x)
		x4 := felt.Mul(x2, x2)
		state[i] = felt.Mul(felt.Mul(x4, x2), x)
	}
}

func applyInvSBox(state *[StateWidth]felt.Element) {
	for i := range state {
		state[i] = felt.Pow(state[i], invAlpha)
	}
}

// Permute applies the full permutation to state in place.
func Permute(state *[StateWidth]felt.Element) {
	for r := 0; r < NumRounds; r++ {
		applyMDS(state)
		addConstants(state, &ark1[r])
		applySBox(state)
		applyMDS(state)
		addConstants(state, &ark2[r])
		applyInvSBox(state)
	}
}

// HashElements absorbs the given elements and returns the 4-element
// digest. The element count is bound into the first capacity register
// before absorbing, so sequences that differ only by trailing zero
// padding hash differently. The final partial rate block is
// zero-padded.
func HashElements(elements []felt.Element) [DigestSize]felt.Element {
	var state [StateWidth]felt.Element
	state[0] = felt.New(uint64(len(elements)))

	if len(elements) == 0 {
		Permute(&state)
	}
	for len(elements) > 0 {
		n := len(elements)
		if n > RateWidth {
			n = RateWidth
		}
		for i := 0; i < n; i++ {
			state[CapacityWidth+i] = felt.Add(state[CapacityWidth+i], elements[i])
		}
		Permute(&state)
		elements = elements[n:]
	}

	var digest [DigestSize]felt.Element
	copy(digest[:], state[CapacityWidth:CapacityWidth+DigestSize])
	return digest
}
