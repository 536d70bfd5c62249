// Package codec serializes DSA parameters and private keys.
//
// Two representations are supported: raw DER and PEM armor around the same
// DER payload. Parameters use the bare SEQUENCE {p, q, g} layout; private
// keys use the traditional SEQUENCE {version, p, q, g, y, x} layout. The
// representation is always selected by the caller, never sniffed.
package codec
