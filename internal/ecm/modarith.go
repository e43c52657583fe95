package ecm

import "math/bits"

// MaxModulus is the exclusive upper bound on n. Residues stay below 2^63 so
// they convert to int64 for the signed extended-Euclid helpers, and every
// product is reduced through a 128-bit intermediate.
const MaxModulus = uint64(1) << 63

// GCD returns the greatest common divisor of m and n. The result is never
// negative: GCD(a, 0) == |a| and GCD(0, 0) == 0.
func GCD(m, n int64) int64 {
	for m != 0 {
		m, n = n%m, m
	}
	if n < 0 {
		return -n
	}
	return n
}

// ModularInverse runs the extended Euclidean algorithm on (a, b) and returns
// x, y, g with a*x + b*y == g and |g| == gcd(a, b). When b is a modulus, x is
// the inverse of a only if g == 1; any g > 1 is a divisor of the modulus.
func ModularInverse(a, b int64) (x, y, g int64) {
	// (x0, y0) pairs with r0, (x1, y1) with r1; the last non-zero remainder
	// is g, matching the recursive form's base case (1, 0, a).
	x0, y0, r0 := int64(1), int64(0), a
	x1, y1, r1 := int64(0), int64(1), b
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	return x0, y0, r0
}

// ------------------- uint64 residues mod n (n < 2^63) -------------------

type modN struct{ n uint64 }

func (m modN) reduce(a uint64) uint64 { return a % m.n }

func (m modN) add(a, b uint64) uint64 {
	c := a + b
	if c >= m.n || c < a {
		c -= m.n
	}
	return c
}

func (m modN) sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + m.n - b
}

func (m modN) neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return m.n - a
}

func (m modN) mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// hi < n holds because a, b < n, so Div64 cannot panic.
	_, r := bits.Div64(hi, lo, m.n)
	return r
}

// small multiplies a residue by a small constant.
func (m modN) small(k, a uint64) uint64 { return m.mul(m.reduce(k), a) }

func (m modN) gcd(a uint64) uint64 {
	return uint64(GCD(int64(a), int64(m.n)))
}

// inverse returns a^-1 mod n and 1, or (0, g) when g = gcd(a, n) > 1.
func (m modN) inverse(a uint64) (inv, g uint64) {
	x, _, d := ModularInverse(int64(a), int64(m.n))
	if d < 0 {
		d, x = -d, -x
	}
	if d != 1 {
		return 0, uint64(d)
	}
	if x < 0 {
		x += int64(m.n)
	}
	return uint64(x), 1
}
