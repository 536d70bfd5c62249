// Package dsa implements the DSA domain-parameter primitives used by dsaparam.
//
// Contents
//
//   - Parameters and PrivateKey value types with invariant checks (Validate)
//   - Probabilistic parameter generation by target modulus size
//     (GenerateParameters)
//   - Keypair derivation from existing parameters (GenerateKey)
//   - An Observer interface for live generation progress (TickWriter, Discard)
//
// # Notes
//
// Generation is a blocking candidate search; for large modulus sizes it can
// run for a long time. Callers that want liveness attach an Observer, which is
// invoked synchronously from inside the search loop.
package dsa
