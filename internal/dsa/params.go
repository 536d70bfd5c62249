package dsa

import (
	"errors"
	"fmt"
	"math/big"
)

// Primality test rounds. 64 rounds for the modulus matches the strength the
// generation loop demands; 20 is enough for the subgroup order, which is
// re-checked far more often.
const (
	modulusPrimeRounds  = 64
	subgroupPrimeRounds = 20
)

var one = big.NewInt(1)

// Parameters is a DSA domain-parameter triple: a prime modulus P, a prime Q
// dividing P-1, and a generator G of the order-Q subgroup of Z*_P.
type Parameters struct {
	P *big.Int
	Q *big.Int
	G *big.Int
}

// PrivateKey is a DSA keypair bound to the parameters it was derived from.
// X is the private scalar, Y = G^X mod P the public value.
type PrivateKey struct {
	Parameters
	X *big.Int
	Y *big.Int
}

// Validate checks the structural invariants: P and Q prime, Q | P-1,
// G^Q = 1 mod P and G != 1.
func (p *Parameters) Validate() error {
	if p.P == nil || p.Q == nil || p.G == nil {
		return errors.New("incomplete parameter set")
	}
	if !p.P.ProbablyPrime(modulusPrimeRounds) {
		return errors.New("p is not prime")
	}
	if !p.Q.ProbablyPrime(subgroupPrimeRounds) {
		return errors.New("q is not prime")
	}

	pm1 := new(big.Int).Sub(p.P, one)
	if new(big.Int).Mod(pm1, p.Q).Sign() != 0 {
		return errors.New("q does not divide p-1")
	}

	if p.G.Cmp(one) <= 0 || p.G.Cmp(p.P) >= 0 {
		return fmt.Errorf("generator out of range (1 < g < p)")
	}
	if new(big.Int).Exp(p.G, p.Q, p.P).Cmp(one) != 0 {
		return errors.New("generator has wrong subgroup order (g^q mod p != 1)")
	}
	return nil
}
