package slotfilter

import "fmt"

// PrimeCapacities returns the first count primes that are >= start, in
// ascending order. Distinct primes keep the slots from sharing factors, so a
// fingerprint collision modulo one capacity says little about another.
func PrimeCapacities(count, start int) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: prime count %d is not positive", ErrInvalidConfiguration, count)
	}
	if start < 2 {
		start = 2
	}
	primes := make([]int, 0, count)
	for n := start; len(primes) < count; n++ {
		if isPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes, nil
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
