package render

import (
	"fmt"
	"io"
	"math/big"

	"dsaparam/internal/dsa"
)

// hexBytesPerLine matches the conventional openssl-style dump width.
const hexBytesPerLine = 15

// Text writes a structured human-readable dump of params to w.
func Text(w io.Writer, params *dsa.Parameters) error {
	if _, err := fmt.Fprintf(w, "DSA-Parameters: (%d bit)\n", params.P.BitLen()); err != nil {
		return err
	}
	for _, field := range []struct {
		label string
		value *big.Int
	}{
		{"P", params.P},
		{"Q", params.Q},
		{"G", params.G},
	} {
		if _, err := fmt.Fprintf(w, "%s:\n", field.label); err != nil {
			return err
		}
		if err := writeHex(w, field.value); err != nil {
			return err
		}
	}
	return nil
}

// writeHex prints n as colon-separated hex bytes, with a leading 00 when the
// top bit is set, the way DER renders positive integers.
func writeHex(w io.Writer, n *big.Int) error {
	raw := n.Bytes()
	if len(raw) == 0 || raw[0]&0x80 != 0 {
		raw = append([]byte{0x00}, raw...)
	}

	for i := 0; i < len(raw); i += hexBytesPerLine {
		end := i + hexBytesPerLine
		if end > len(raw) {
			end = len(raw)
		}
		if _, err := io.WriteString(w, "    "); err != nil {
			return err
		}
		for j := i; j < end; j++ {
			sep := ":"
			if j == len(raw)-1 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%02x%s", raw[j], sep); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
