package app_test

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"dsaparam/internal/app"
	"dsaparam/internal/codec"
	"dsaparam/internal/dsa"
)

func testParameters() *dsa.Parameters {
	return &dsa.Parameters{
		P: big.NewInt(23),
		Q: big.NewInt(11),
		G: big.NewInt(4),
	}
}

// paramPEM returns a PEM-armored encoding of the fixture parameters.
func paramPEM(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := codec.EncodeParameters(&buf, testParameters(), codec.PEM); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return &buf
}

func baseOptions() app.Options {
	return app.Options{InFormat: "PEM", OutFormat: "PEM"}
}

func TestResolve_RejectsConflictingSources(t *testing.T) {
	opts := baseOptions()
	opts.Bits = 512
	opts.InFile = "params.pem"

	_, err := opts.Resolve()
	if err == nil {
		t.Fatal("expected error for bits together with an input file")
	}
	if app.ErrorKind(err) != app.KindOption {
		t.Fatalf("error kind %v, want KindOption", app.ErrorKind(err))
	}
}

func TestResolve_RejectsUnknownFormat(t *testing.T) {
	opts := baseOptions()
	opts.OutFormat = "XML"

	if _, err := opts.Resolve(); app.ErrorKind(err) != app.KindOption {
		t.Fatalf("error kind %v, want KindOption", app.ErrorKind(err))
	}
}

func TestResolve_GenKeyWithDERSuppressesParameterOutput(t *testing.T) {
	opts := baseOptions()
	opts.OutFormat = "DER"
	opts.GenKey = true

	cfg, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !cfg.NoOut {
		t.Fatal("parameter output not suppressed for genkey with DER output")
	}
}

func TestRun_LoadAndReserialize(t *testing.T) {
	cfg, err := baseOptions().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var out, diag bytes.Buffer
	cfg.In, cfg.Out, cfg.Diag = paramPEM(t), &out, &diag

	if err := app.Run(cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := codec.DecodeParameters(&out, codec.PEM)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := testParameters()
	if got.P.Cmp(want.P) != 0 || got.Q.Cmp(want.Q) != 0 || got.G.Cmp(want.G) != 0 {
		t.Fatal("reserialized parameters differ from input")
	}
}

func TestRun_TextAndCodeBeforeSerialized(t *testing.T) {
	opts := baseOptions()
	opts.Text = true
	opts.Code = true
	cfg, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var out, diag bytes.Buffer
	cfg.In, cfg.Out, cfg.Diag = paramPEM(t), &out, &diag

	if err := app.Run(cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	s := out.String()
	text := strings.Index(s, "DSA-Parameters:")
	code := strings.Index(s, "func dsaParameters")
	armor := strings.Index(s, "-----BEGIN DSA PARAMETERS-----")
	if text < 0 || code < 0 || armor < 0 {
		t.Fatalf("missing renderings in output:\n%s", s)
	}
	if !(text < code && code < armor) {
		t.Fatalf("renderings out of order (text=%d code=%d armor=%d)", text, code, armor)
	}
}

func TestRun_MalformedInput(t *testing.T) {
	cfg, err := baseOptions().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var out, diag bytes.Buffer
	cfg.In = bytes.NewBufferString("this is not a parameter file")
	cfg.Out, cfg.Diag = &out, &diag

	err = app.Run(cfg)
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	if app.ErrorKind(err) != app.KindSource {
		t.Fatalf("error kind %v, want KindSource", app.ErrorKind(err))
	}
	if out.Len() != 0 {
		t.Fatalf("output written despite failure: %q", out.String())
	}
}

func TestRun_GenKeyDERWritesSinglePrivateKeyRecord(t *testing.T) {
	opts := baseOptions()
	opts.OutFormat = "DER"
	opts.GenKey = true
	cfg, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var out, diag bytes.Buffer
	cfg.In, cfg.Out, cfg.Diag = paramPEM(t), &out, &diag

	if err := app.Run(cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// ParsePrivateKey rejects trailing bytes, so success here proves the
	// stream holds exactly one record.
	key, err := codec.ParsePrivateKey(out.Bytes())
	if err != nil {
		t.Fatalf("output is not a single private key record: %v", err)
	}
	wantY := new(big.Int).Exp(key.G, key.X, key.P)
	if key.Y.Cmp(wantY) != 0 {
		t.Fatal("derived key is inconsistent (y != g^x mod p)")
	}
}

func TestRun_VerboseGenerationShowsProgress(t *testing.T) {
	opts := baseOptions()
	opts.Bits = 512
	opts.Verbose = true
	cfg, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var out, diag bytes.Buffer
	cfg.Out, cfg.Diag = &out, &diag

	if err := app.Run(cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.ContainsAny(diag.String(), ".+*") {
		t.Fatalf("no progress characters on diagnostic stream: %q", diag.String())
	}
	params, err := codec.DecodeParameters(&out, codec.PEM)
	if err != nil {
		t.Fatalf("decode generated output: %v", err)
	}
	if err := params.Validate(); err != nil {
		t.Fatalf("generated parameters invalid: %v", err)
	}
}
