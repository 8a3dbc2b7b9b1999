package primes

// IsPrime reports whether n is prime.
//
// Candidates are tested with the 6k±1 wheel: after removing multiples of 2
// and 3, only d and d+2 for d = 5, 11, 17, ... can divide n. The loop bound
// d*d <= n is evaluated as d <= n/d so it cannot overflow for n close to
// math.MaxInt64.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for d := int64(5); d <= n/d; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}
