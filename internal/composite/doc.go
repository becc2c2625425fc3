// Package composite provides the concurrently marked composite-flag table
// backing the sieve.
//
// Architecture:
//   - Flat bitmap: one bit per candidate, packed into atomic.Uint64 words
//   - Lock-free: marking is an atomic OR, probing an atomic load
//   - Fixed size: allocated once per sieve, never grown
//
// Several markers may target the same word, or even the same bit. The
// atomic OR turns every such overlap into a defined read-modify-write,
// so concurrent marking needs no lock and is clean under the race
// detector.
package composite
