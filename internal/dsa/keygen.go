package dsa

import (
	"fmt"
	"io"
	"math/big"
)

// GenerateKey derives a keypair from params: a uniformly random private
// scalar x in [1, q-1] and the public value y = g^x mod p.
func GenerateKey(rng io.Reader, params *Parameters) (*PrivateKey, error) {
	if params == nil || params.P == nil || params.Q == nil || params.G == nil {
		return nil, fmt.Errorf("incomplete parameter set")
	}

	qm1 := new(big.Int).Sub(params.Q, one)
	bits := params.Q.BitLen()
	x := new(big.Int)

	// Rejection sampling keeps x uniform over [1, q-1].
	for {
		if err := randScalar(rng, x, bits); err != nil {
			return nil, err
		}
		if x.Sign() > 0 && x.Cmp(qm1) < 0 {
			break
		}
	}

	return &PrivateKey{
		Parameters: *params,
		X:          x,
		Y:          new(big.Int).Exp(params.G, x, params.P),
	}, nil
}

// randScalar fills x with a random integer of at most bits bits.
func randScalar(rng io.Reader, x *big.Int, bits int) error {
	b := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rng, b); err != nil {
		return fmt.Errorf("reading randomness: %w", err)
	}
	if excess := len(b)*8 - bits; excess > 0 {
		b[0] &= 0xff >> excess
	}
	x.SetBytes(b)
	return nil
}
