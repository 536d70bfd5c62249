package app

import (
	"io"
	"os"
)

// OpenInput opens path for reading; an empty path means stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// OpenOutput opens path for writing, truncating any existing file; an empty
// path means stdout. When private is set the file is created owner-only,
// since it will carry key material.
func OpenOutput(path string, private bool) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	mode := os.FileMode(0o644)
	if private {
		mode = 0o600
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
}

// nopWriteCloser keeps callers from closing process-owned streams.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
