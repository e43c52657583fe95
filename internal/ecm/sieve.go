package ecm

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// PrimesUpTo returns every prime p < limit in ascending order.
func PrimesUpTo(limit int) []uint64 {
	if limit < 3 {
		return nil
	}
	// capacity hint only: 1 + limit/ln(limit) bounds pi(limit) from above
	est := 1 + int(float64(limit)/math.Log(float64(limit)))
	primes := make([]uint64, 0, est)

	n := uint(limit)
	composite := bitset.New(n)
	composite.Set(0).Set(1)
	for i := uint(2); i*i < n; i++ {
		if composite.Test(i) {
			continue
		}
		for j := i * i; j < n; j += i {
			composite.Set(j)
		}
	}
	for i, ok := composite.NextClear(2); ok && i < n; i, ok = composite.NextClear(i + 1) {
		primes = append(primes, uint64(i))
	}
	return primes
}
