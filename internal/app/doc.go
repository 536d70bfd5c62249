// Package app holds the run configuration and the orchestrator for a single
// dsaparam invocation.
//
// A raw Options value (straight from the flag parser) is resolved into an
// immutable Config up front; conflicting flag combinations are rejected there,
// before any stream is touched. Run then drives the stages in order — resolve
// parameters, render, derive a key — stopping at the first failure. Errors
// carry a Kind identifying the failing stage.
package app
