// Package commands defines the dsaparam CLI.
//
// The tool is a single command: it either generates a DSA parameter set of a
// requested bit length or loads one from an input stream, then renders it as
// a text dump, an embeddable Go fragment and/or a serialized PEM/DER record,
// optionally chaining a keypair derivation whose private key takes over the
// output stream. All flag validation happens up front in internal/app; this
// package only parses flags and owns the streams for the run.
package commands
