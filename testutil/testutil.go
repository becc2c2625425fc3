package testutil

// IsPrime reports the primality of n by trial division.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns all primes <= n in ascending order, computed by
// trial division. Intended as a reference oracle for small bounds.
func PrimesUpTo(n uint64) []uint64 {
	var primes []uint64
	for v := uint64(2); v <= n; v++ {
		if IsPrime(v) {
			primes = append(primes, v)
		}
	}
	return primes
}
