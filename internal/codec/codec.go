package codec

import (
	"encoding/pem"
	"fmt"
	"io"

	"dsaparam/internal/dsa"
)

// PEM block types, matching the conventional labels for DSA material.
const (
	ParametersBlockType = "DSA PARAMETERS"
	PrivateKeyBlockType = "DSA PRIVATE KEY"
)

// EncodeParameters writes params to w in the given format.
func EncodeParameters(w io.Writer, params *dsa.Parameters, format Format) error {
	der, err := MarshalParameters(params)
	if err != nil {
		return err
	}
	return writeEncoded(w, ParametersBlockType, der, format)
}

// DecodeParameters reads a parameter set from r in the given format.
func DecodeParameters(r io.Reader, format Format) (*dsa.Parameters, error) {
	der, err := readEncoded(r, ParametersBlockType, format)
	if err != nil {
		return nil, err
	}
	return ParseParameters(der)
}

// EncodePrivateKey writes key to w in the given format.
func EncodePrivateKey(w io.Writer, key *dsa.PrivateKey, format Format) error {
	der, err := MarshalPrivateKey(key)
	if err != nil {
		return err
	}
	return writeEncoded(w, PrivateKeyBlockType, der, format)
}

// DecodePrivateKey reads a private key from r in the given format.
func DecodePrivateKey(r io.Reader, format Format) (*dsa.PrivateKey, error) {
	der, err := readEncoded(r, PrivateKeyBlockType, format)
	if err != nil {
		return nil, err
	}
	return ParsePrivateKey(der)
}

func writeEncoded(w io.Writer, blockType string, der []byte, format Format) error {
	if format == DER {
		_, err := w.Write(der)
		return err
	}
	return pem.Encode(w, &pem.Block{Type: blockType, Bytes: der})
}

// readEncoded returns the DER payload from r. For PEM input it walks the
// stream's blocks until one of the wanted type turns up.
func readEncoded(r io.Reader, blockType string, format Format) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if format == DER {
		if len(data) == 0 {
			return nil, fmt.Errorf("empty input")
		}
		return data, nil
	}

	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type == blockType {
			return block.Bytes, nil
		}
		data = rest
	}
	return nil, fmt.Errorf("no %s block found in input", blockType)
}
