// Package render turns DSA parameters into human- or compiler-readable text:
// a structured hex dump (Text) and an embeddable Go fragment that rebuilds
// the same values from byte literals (Source).
package render
