package render

import (
	"fmt"
	"io"
	"math/big"

	"dsaparam/internal/dsa"
)

const sourceBytesPerLine = 12

// Source writes a self-contained Go fragment to w that rebuilds params from
// byte literals. The function name carries the modulus bit length, so
// fragments for different sizes can live in one file without colliding. The
// output is deterministic for a given parameter set.
func Source(w io.Writer, params *dsa.Parameters) error {
	bits := params.P.BitLen()
	if _, err := fmt.Fprintf(w, "// dsaParameters%d rebuilds a fixed %d-bit DSA parameter set.\n", bits, bits); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "func dsaParameters%d() (p, q, g *big.Int) {\n", bits); err != nil {
		return err
	}
	for _, field := range []struct {
		name  string
		value *big.Int
	}{
		{"pRaw", params.P},
		{"qRaw", params.Q},
		{"gRaw", params.G},
	} {
		if err := writeByteLiteral(w, field.name, field.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\treturn new(big.Int).SetBytes(pRaw),\n"+
		"\t\tnew(big.Int).SetBytes(qRaw),\n"+
		"\t\tnew(big.Int).SetBytes(gRaw)\n"+
		"}\n")
	return err
}

// writeByteLiteral emits name := []byte{...} holding the minimal big-endian
// encoding of n.
func writeByteLiteral(w io.Writer, name string, n *big.Int) error {
	raw := n.Bytes()
	if _, err := fmt.Fprintf(w, "\t%s := []byte{\n", name); err != nil {
		return err
	}
	for i := 0; i < len(raw); i += sourceBytesPerLine {
		end := i + sourceBytesPerLine
		if end > len(raw) {
			end = len(raw)
		}
		if _, err := io.WriteString(w, "\t\t"); err != nil {
			return err
		}
		for j := i; j < end; j++ {
			if _, err := fmt.Fprintf(w, "0x%02x,", raw[j]); err != nil {
				return err
			}
			if j != end-1 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\t}\n")
	return err
}
