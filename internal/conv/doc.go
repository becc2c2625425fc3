// Package conv provides bound parsing and safe integer conversions for
// the sieve boundary.
//
// The clamp-and-warn policy for oversized bounds lives here, at the
// input boundary, so the engine itself only ever sees representable
// bounds. For conversions that are provably safe by domain constraints
// (loop indices, chunk offsets), use direct casts instead.
package conv
