package codec

import (
	"fmt"
	"strings"
)

// Format selects a serialization representation.
type Format int

const (
	// PEM is the line-oriented armored representation.
	PEM Format = iota
	// DER is the raw binary representation.
	DER
)

func (f Format) String() string {
	switch f {
	case PEM:
		return "PEM"
	case DER:
		return "DER"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(s) {
	case "PEM":
		return PEM, nil
	case "DER":
		return DER, nil
	default:
		return 0, fmt.Errorf("unknown format %q (expected PEM or DER)", s)
	}
}
