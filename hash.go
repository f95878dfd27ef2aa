package slotfilter

import (
	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

const (
	PolyBase    = 53
	PolyModulus = 1_000_000_009
)

// Fingerprint is the default Hasher: a polynomial rolling hash over the
// bytes of key, with 'a'..'z' taking the digits 1..26. Other bytes use the
// same arithmetic and may yield negative digits; the running value is kept
// in [0, PolyModulus).
func Fingerprint(key string) uint64 {
	var hashcode int64
	power := int64(1)
	for i := 0; i < len(key); i++ {
		digit := int64(key[i]) - 'a' + 1
		// |digit*power| < 256*PolyModulus, no overflow
		hashcode = (hashcode + digit*power) % PolyModulus
		if hashcode < 0 {
			hashcode += PolyModulus
		}
		power = (power * PolyBase) % PolyModulus
	}
	return uint64(hashcode)
}

// XXHash is a Hasher backed by the 64-bit xxHash digest of key.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Murmur3 is a Hasher backed by the 64-bit MurmurHash3 digest of key.
func Murmur3(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}
