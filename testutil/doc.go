// Package testutil provides ground-truth helpers for verifying sieve
// results.
//
// The trial-division oracle is deliberately slow and obvious: it shares
// no code path with the sieve, so agreement between the two is real
// evidence of correctness rather than a tautology.
package testutil
