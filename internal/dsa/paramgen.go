package dsa

import (
	"fmt"
	"io"
	"math/big"
)

const (
	// RecommendedMaxBits is the advisory ceiling on the modulus size.
	// Larger parameters are permitted but generation and use get very slow.
	RecommendedMaxBits = 10000

	minModulusBits = 512
)

// subgroupBits picks the order size for a given modulus size, following the
// usual convention: 256-bit q for 2048-bit and larger moduli, 160-bit below.
func subgroupBits(pBits int) int {
	if pBits >= 2048 {
		return 256
	}
	return 160
}

// GenerateParameters searches for a DSA parameter set with a modulus of the
// given bit length, reading randomness from rng. Each candidate outcome is
// reported to obs; pass Discard (or nil) when progress is not wanted.
func GenerateParameters(rng io.Reader, bits int, obs Observer) (*Parameters, error) {
	if obs == nil {
		obs = Discard
	}
	if bits < minModulusBits {
		return nil, fmt.Errorf("modulus size %d too small (minimum %d bits)", bits, minModulusBits)
	}
	qBits := subgroupBits(bits)

	for {
		q, err := searchSubgroupOrder(rng, qBits, obs)
		if err != nil {
			return nil, err
		}
		obs.Observe(ProgressPassedOnce)

		p, err := searchModulus(rng, bits, q, obs)
		if err != nil {
			return nil, err
		}
		if p == nil {
			// Exhausted the attempt budget for this q; start over.
			continue
		}
		obs.Observe(ProgressPassedFinal)

		return &Parameters{P: p, Q: q, G: findGenerator(p, q)}, nil
	}
}

// searchSubgroupOrder finds a random prime of exactly bits bits.
func searchSubgroupOrder(rng io.Reader, bits int, obs Observer) (*big.Int, error) {
	q := new(big.Int)
	for {
		if err := randCandidate(rng, q, bits); err != nil {
			return nil, err
		}
		q.SetBit(q, 0, 1) // odd
		if !q.ProbablyPrime(subgroupPrimeRounds) {
			obs.Observe(ProgressRejected)
			continue
		}
		return q, nil
	}
}

// searchModulus looks for a prime p of exactly bits bits with p = 1 (mod 2q),
// so q divides p-1 by construction. Returns nil (no error) when the attempt
// budget for this q is exhausted and the caller should pick a fresh q.
func searchModulus(rng io.Reader, bits int, q *big.Int, obs Observer) (*big.Int, error) {
	twoQ := new(big.Int).Lsh(q, 1)
	x := new(big.Int)
	rem := new(big.Int)
	p := new(big.Int)

	for i := 0; i < 4*bits; i++ {
		if err := randCandidate(rng, x, bits); err != nil {
			return nil, err
		}
		// p = x - (x mod 2q) + 1
		rem.Mod(x, twoQ)
		p.Sub(x, rem)
		p.Add(p, one)

		if p.BitLen() != bits {
			continue
		}
		if !p.ProbablyPrime(modulusPrimeRounds) {
			obs.Observe(ProgressRejected)
			continue
		}
		return new(big.Int).Set(p), nil
	}
	return nil, nil
}

// findGenerator returns h^((p-1)/q) mod p for the smallest h >= 2 that
// yields a value other than 1. The result generates the order-q subgroup.
func findGenerator(p, q *big.Int) *big.Int {
	e := new(big.Int).Sub(p, one)
	e.Div(e, q)

	h := big.NewInt(2)
	g := new(big.Int)
	for {
		g.Exp(h, e, p)
		if g.Cmp(one) != 0 {
			return new(big.Int).Set(g)
		}
		h.Add(h, one)
	}
}

// randCandidate fills n with a uniformly random integer of exactly bits bits.
func randCandidate(rng io.Reader, n *big.Int, bits int) error {
	b := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rng, b); err != nil {
		return fmt.Errorf("reading randomness: %w", err)
	}
	// Clear excess high bits, then force the top bit for exact length.
	if excess := len(b)*8 - bits; excess > 0 {
		b[0] &= 0xff >> excess
	}
	b[0] |= 1 << ((bits - 1) % 8)
	n.SetBytes(b)
	return nil
}
