package slotfilter

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var ErrInvalidConfiguration = errors.New("slotfilter: invalid configuration")

// Hasher maps a key to the fingerprint shared by every slot of a Filter.
type Hasher func(key string) uint64

// Filter is an approximate-membership set made of several boolean tables
// (slots) of independent, preferably prime, capacities. A key marks one
// position per slot: its fingerprint modulo the slot capacity.
//
// A Filter is not safe for concurrent use. Add must be serialized by the
// caller, and Contains is only safe for concurrent readers while no Add is
// in flight.
type Filter struct {
	slots  []slot
	hasher Hasher
}

type slot struct {
	capacity uint64
	bits     *bitset.BitSet
}
