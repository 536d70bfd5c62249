package codec

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"dsaparam/internal/dsa"
)

// Dss-Parms ::= SEQUENCE { p, q, g INTEGER }
//
// DSAPrivateKey ::= SEQUENCE { version INTEGER (0), p, q, g, y, x INTEGER }

// MarshalParameters returns the DER encoding of params.
func MarshalParameters(params *dsa.Parameters) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(params.P)
		b.AddASN1BigInt(params.Q)
		b.AddASN1BigInt(params.G)
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding parameters: %w", err)
	}
	return out, nil
}

// ParseParameters decodes a DER-encoded parameter triple.
func ParseParameters(der []byte) (*dsa.Parameters, error) {
	params := &dsa.Parameters{
		P: new(big.Int),
		Q: new(big.Int),
		G: new(big.Int),
	}

	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, casn1.SEQUENCE) || !input.Empty() {
		return nil, errors.New("malformed DSA parameter encoding")
	}
	if !seq.ReadASN1Integer(params.P) ||
		!seq.ReadASN1Integer(params.Q) ||
		!seq.ReadASN1Integer(params.G) ||
		!seq.Empty() {
		return nil, errors.New("malformed DSA parameter encoding")
	}

	if params.P.Sign() <= 0 || params.Q.Sign() <= 0 || params.G.Sign() <= 0 {
		return nil, errors.New("DSA parameters must be positive")
	}
	return params, nil
}

// MarshalPrivateKey returns the traditional DER encoding of key, carrying
// the parameters, the public value and the private scalar.
func MarshalPrivateKey(key *dsa.PrivateKey) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0) // version
		b.AddASN1BigInt(key.P)
		b.AddASN1BigInt(key.Q)
		b.AddASN1BigInt(key.G)
		b.AddASN1BigInt(key.Y)
		b.AddASN1BigInt(key.X)
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding private key: %w", err)
	}
	return out, nil
}

// ParsePrivateKey decodes a traditional DER-encoded DSA private key.
func ParsePrivateKey(der []byte) (*dsa.PrivateKey, error) {
	key := &dsa.PrivateKey{
		Parameters: dsa.Parameters{
			P: new(big.Int),
			Q: new(big.Int),
			G: new(big.Int),
		},
		X: new(big.Int),
		Y: new(big.Int),
	}

	input := cryptobyte.String(der)
	var seq cryptobyte.String
	var version int64
	if !input.ReadASN1(&seq, casn1.SEQUENCE) || !input.Empty() {
		return nil, errors.New("malformed DSA private key encoding")
	}
	if !seq.ReadASN1Integer(&version) ||
		!seq.ReadASN1Integer(key.P) ||
		!seq.ReadASN1Integer(key.Q) ||
		!seq.ReadASN1Integer(key.G) ||
		!seq.ReadASN1Integer(key.Y) ||
		!seq.ReadASN1Integer(key.X) ||
		!seq.Empty() {
		return nil, errors.New("malformed DSA private key encoding")
	}
	if version != 0 {
		return nil, fmt.Errorf("unsupported DSA private key version %d", version)
	}
	return key, nil
}
