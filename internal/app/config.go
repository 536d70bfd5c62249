package app

import (
	"errors"
	"io"

	"dsaparam/internal/codec"
)

// Options is the raw flag surface as parsed by the CLI.
type Options struct {
	InFile    string
	OutFile   string
	InFormat  string
	OutFormat string

	Bits int // positive: generate instead of loading

	Text    bool
	Code    bool
	NoOut   bool
	GenKey  bool
	Verbose bool
}

// Config is a resolved, immutable run configuration. Streams are attached by
// the caller after Resolve; Resolve itself performs no I/O.
type Config struct {
	Bits int

	InFormat  codec.Format
	OutFormat codec.Format

	Text    bool
	Code    bool
	NoOut   bool
	GenKey  bool
	Verbose bool

	In   io.Reader
	Out  io.Writer
	Diag io.Writer
}

// Resolve validates o and produces the run configuration. Flag conflicts are
// reported here, so a bad invocation never reaches the run stages.
func (o Options) Resolve() (Config, error) {
	inFormat, err := codec.ParseFormat(o.InFormat)
	if err != nil {
		return Config{}, stageErr(KindOption, "parsing input format", err)
	}
	outFormat, err := codec.ParseFormat(o.OutFormat)
	if err != nil {
		return Config{}, stageErr(KindOption, "parsing output format", err)
	}
	if o.Bits < 0 {
		return Config{}, stageErrf(KindOption, "parsing options", "bit length must be positive, got %d", o.Bits)
	}
	if o.Bits > 0 && o.InFile != "" {
		return Config{}, stageErr(KindOption, "parsing options",
			errors.New("a bit length and an input file are mutually exclusive"))
	}

	noOut := o.NoOut
	if o.GenKey && outFormat == codec.DER {
		// The raw binary output slot carries the private key alone; two
		// concatenated DER records in one stream would be ambiguous.
		noOut = true
	}

	return Config{
		Bits:      o.Bits,
		InFormat:  inFormat,
		OutFormat: outFormat,
		Text:      o.Text,
		Code:      o.Code,
		NoOut:     noOut,
		GenKey:    o.GenKey,
		Verbose:   o.Verbose,
	}, nil
}
