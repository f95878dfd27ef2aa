package slotfilter

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// New creates a filter with one slot per capacity, in the given order, using
// the Fingerprint hasher.
//
// The function returns an error wrapping ErrInvalidConfiguration if the list
// is empty or holds a capacity that is not positive.
func New(capacities []int) (*Filter, error) {
	return NewWithHasher(Fingerprint, capacities)
}

// NewWithHasher is like New but derives fingerprints with the provided hasher.
func NewWithHasher(hasher Hasher, capacities []int) (*Filter, error) {
	if hasher == nil {
		return nil, fmt.Errorf("%w: nil hasher", ErrInvalidConfiguration)
	}
	if len(capacities) == 0 {
		return nil, fmt.Errorf("%w: no capacities", ErrInvalidConfiguration)
	}
	slots := make([]slot, len(capacities))
	for i, c := range capacities {
		if c <= 0 {
			return nil, fmt.Errorf("%w: capacity %d of slot %d is not positive", ErrInvalidConfiguration, c, i)
		}
		slots[i] = slot{capacity: uint64(c), bits: bitset.New(uint(c))}
	}
	return &Filter{slots: slots, hasher: hasher}, nil
}

// Add marks key in every slot.
func (filter *Filter) Add(key string) {
	f := filter.hasher(key)
	for _, s := range filter.slots {
		s.bits.Set(uint(f % s.capacity))
	}
}

// Contains tells you whether the key is likely part of the set. A false
// answer is always exact.
func (filter *Filter) Contains(key string) bool {
	f := filter.hasher(key)
	for _, s := range filter.slots {
		if !s.bits.Test(uint(f % s.capacity)) {
			return false
		}
	}
	return true
}

// Len returns the number of slots.
func (filter *Filter) Len() int {
	return len(filter.slots)
}

// Capacities returns the slot capacities in construction order.
func (filter *Filter) Capacities() []int {
	capacities := make([]int, len(filter.slots))
	for i, s := range filter.slots {
		capacities[i] = int(s.capacity)
	}
	return capacities
}

// Count returns the number of set bits over all slots.
func (filter *Filter) Count() uint {
	var n uint
	for _, s := range filter.slots {
		n += s.bits.Count()
	}
	return n
}

// Equal reports whether both filters have the same capacities, in the same
// order, and the same bits set. Hashers are not compared.
func (filter *Filter) Equal(other *Filter) bool {
	if len(filter.slots) != len(other.slots) {
		return false
	}
	for i, s := range filter.slots {
		o := other.slots[i]
		if s.capacity != o.capacity || !s.bits.Equal(o.bits) {
			return false
		}
	}
	return true
}

// EstimateFalsePositiveRate returns the probability that a uniformly
// distributed fingerprint hits a set bit in every slot, given the current
// fill of each slot.
func (filter *Filter) EstimateFalsePositiveRate() float64 {
	rate := 1.0
	for _, s := range filter.slots {
		rate *= float64(s.bits.Count()) / float64(s.capacity)
	}
	return rate
}
