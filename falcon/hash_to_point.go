package falcon

import (
	"golang.org/x/crypto/sha3"

	"github.com/partylikeits1983/miden-client-tools/felt"
	"github.com/partylikeits1983/miden-client-tools/poly"
)

// rejectBound = 5*Q; 16-bit draws below it are uniform mod Q.
const rejectBound = 61445

// HashToPoint maps (msg, nonce) to the Falcon challenge polynomial c:
// SHAKE-256 over nonce || msg squeezed as big-endian 16-bit values,
// rejecting draws >= 5*Q and reducing the rest mod Q until N
// coefficients are accepted.
func HashToPoint(msg, nonce []byte) poly.Polynomial {
	h := sha3.NewShake256()
	if _, err := h.Write(nonce); err != nil {
		panic(err)
	}
	if _, err := h.Write(msg); err != nil {
		panic(err)
	}

	var c poly.Polynomial
	var buf [2]byte
	for i := 0; i < poly.N; {
		if _, err := h.Read(buf[:]); err != nil {
			panic(err)
		}
		t := uint64(buf[0])<<8 | uint64(buf[1])
		if t < rejectBound {
			c[i] = felt.New(t % Q)
			i++
		}
	}
	return c
}
