package app

import (
	"errors"
	"fmt"
)

// Kind identifies the stage at which a run failed.
type Kind int

const (
	// KindOption covers invalid or conflicting flags.
	KindOption Kind = iota + 1
	// KindSource covers failures loading parameters from input.
	KindSource
	// KindGeneration covers parameter generation failures.
	KindGeneration
	// KindEncoding covers serialization and output-write failures.
	KindEncoding
	// KindKeyDerivation covers keypair derivation failures.
	KindKeyDerivation
)

// Error is a failure tagged with the stage it happened in.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// ErrorKind reports the stage kind of err, or 0 when err carries none.
func ErrorKind(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

func stageErr(kind Kind, stage string, err error) error {
	return &Error{Kind: kind, Stage: stage, Err: err}
}

func stageErrf(kind Kind, stage, format string, args ...any) error {
	return &Error{Kind: kind, Stage: stage, Err: fmt.Errorf(format, args...)}
}
