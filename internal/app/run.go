package app

import (
	"crypto/rand"
	"fmt"

	"dsaparam/internal/codec"
	"dsaparam/internal/dsa"
	"dsaparam/internal/render"
)

// Run executes one invocation against cfg: resolve a parameter set, render
// the requested representations in fixed order (text, source fragment,
// serialized form), then optionally derive and write a private key. The
// first failing stage aborts the rest.
func Run(cfg Config) error {
	params, err := resolveParameters(cfg)
	if err != nil {
		return err
	}

	if cfg.Text {
		if err := render.Text(cfg.Out, params); err != nil {
			return stageErr(KindEncoding, "writing text dump", err)
		}
	}
	if cfg.Code {
		if err := render.Source(cfg.Out, params); err != nil {
			return stageErr(KindEncoding, "writing source fragment", err)
		}
	}
	if !cfg.NoOut {
		if err := codec.EncodeParameters(cfg.Out, params, cfg.OutFormat); err != nil {
			return stageErr(KindEncoding, "writing parameters", err)
		}
	}

	if cfg.GenKey {
		key, err := dsa.GenerateKey(rand.Reader, params)
		if err != nil {
			return stageErr(KindKeyDerivation, "deriving keypair", err)
		}
		if err := codec.EncodePrivateKey(cfg.Out, key, cfg.OutFormat); err != nil {
			return stageErr(KindKeyDerivation, "writing private key", err)
		}
	}
	return nil
}

// resolveParameters generates a fresh parameter set when a bit length was
// requested, and decodes one from the input stream otherwise.
func resolveParameters(cfg Config) (*dsa.Parameters, error) {
	if cfg.Bits > 0 {
		if cfg.Bits > dsa.RecommendedMaxBits {
			fmt.Fprintf(cfg.Diag,
				"Warning: it is not recommended to use more than %d bits for DSA parameters.\n"+
					"         Requested size is %d; expect very long generation times.\n",
				dsa.RecommendedMaxBits, cfg.Bits)
		}

		obs := dsa.Discard
		if cfg.Verbose {
			fmt.Fprintf(cfg.Diag, "Generating DSA parameters, %d bit long prime\nThis could take some time\n", cfg.Bits)
			obs = dsa.NewTickWriter(cfg.Diag)
		}
		params, err := dsa.GenerateParameters(rand.Reader, cfg.Bits, obs)
		if err != nil {
			return nil, stageErr(KindGeneration, "generating parameters", err)
		}
		if cfg.Verbose {
			fmt.Fprintln(cfg.Diag)
		}
		return params, nil
	}

	params, err := codec.DecodeParameters(cfg.In, cfg.InFormat)
	if err != nil {
		return nil, stageErr(KindSource, "loading parameters", err)
	}
	return params, nil
}
