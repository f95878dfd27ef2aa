package slotfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeCapacities(t *testing.T) {
	primes, err := PrimeCapacities(8, 11)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 13, 17, 19, 23, 29, 31, 37}, primes)

	primes, err = PrimeCapacities(5, -3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11}, primes)

	primes, err = PrimeCapacities(3, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{1009, 1013, 1019}, primes)

	filter, err := New(primes)
	require.NoError(t, err)
	assert.Equal(t, primes, filter.Capacities())
}

func TestPrimeCapacitiesRejectsCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		primes, err := PrimeCapacities(count, 11)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Nil(t, primes)
	}
}

func TestIsPrime(t *testing.T) {
	var got []int
	for n := -2; n < 30; n++ {
		if isPrime(n) {
			got = append(got, n)
		}
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
	assert.False(t, isPrime(1009*1013))
}
