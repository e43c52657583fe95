package ecm

import "github.com/pkg/errors"

// Curve is y^2 = x^3 + A x + B over Z/nZ. n need not be prime, which is the
// point: a slope denominator that shares a factor with n exposes it.
type Curve struct {
	A, B uint64
	m    modN
}

// NewCurve returns the curve (a, b) mod n with a and b reduced into [0, n).
func NewCurve(a, b, n uint64) (Curve, error) {
	if n < 2 {
		return Curve{}, errors.Wrapf(ErrModulusTooSmall, "n=%d", n)
	}
	if n >= MaxModulus {
		return Curve{}, errors.Wrapf(ErrModulusTooLarge, "n=%d", n)
	}
	m := modN{n}
	return Curve{A: m.reduce(a), B: m.reduce(b), m: m}, nil
}

// N returns the curve modulus.
func (c Curve) N() uint64 { return c.m.n }

// Discriminant returns 4A^3 + 27B^2 mod n. The curve is singular modulo every
// prime dividing this value.
func (c Curve) Discriminant() uint64 {
	m := c.m
	a3 := m.mul(m.mul(c.A, c.A), c.A)
	b2 := m.mul(c.B, c.B)
	return m.add(m.small(4, a3), m.small(27, b2))
}

// Contains reports whether P satisfies the curve equation. Infinity is on
// every curve; a FactorFound marker is on none.
func (c Curve) Contains(P Point) bool {
	switch P.kind {
	case Infinity:
		return true
	case FactorFound:
		return false
	}
	m := c.m
	x3 := m.mul(P.x, m.mul(P.x, P.x))
	rhs := m.add(m.add(x3, m.mul(c.A, P.x)), c.B)
	return m.mul(P.y, P.y) == rhs
}

// Neg returns -P.
func (c Curve) Neg(P Point) Point {
	if P.kind != Affine {
		return P
	}
	return NewPoint(P.x, c.m.neg(P.y))
}

// Add returns P + Q. A FactorFound operand is returned untouched. When the
// slope denominator is not invertible mod n the result is FactorFound
// carrying gcd(denominator, n).
func (c Curve) Add(P, Q Point) Point {
	if P.kind == FactorFound {
		return P
	}
	if Q.kind == FactorFound {
		return Q
	}
	if P.kind == Infinity {
		return Q
	}
	if Q.kind == Infinity {
		return P
	}

	m := c.m
	var num, den uint64
	if P.x == Q.x {
		if m.add(P.y, Q.y) == 0 {
			return Inf()
		}
		if P.y != Q.y {
			// Same x, y not ±: y_P^2 ≡ y_Q^2 splits n when both are on the curve.
			if g := m.gcd(m.sub(P.y, Q.y)); g > 1 && g < m.n {
				return factorFound(g)
			}
		}
		// tangent: (3x^2 + A) / 2y
		num = m.add(m.small(3, m.mul(P.x, P.x)), c.A)
		den = m.add(P.y, P.y)
	} else {
		// secant: (yQ - yP) / (xQ - xP)
		num = m.sub(Q.y, P.y)
		den = m.sub(Q.x, P.x)
	}

	inv, g := m.inverse(den)
	if g > 1 {
		if g == m.n {
			// den ≡ 0: the line through P and Q is vertical.
			return Inf()
		}
		return factorFound(g)
	}

	lam := m.mul(num, inv)
	xr := m.sub(m.sub(m.mul(lam, lam), P.x), Q.x)
	yr := m.sub(m.mul(lam, m.sub(P.x, xr)), P.y)
	return NewPoint(xr, yr)
}

// Double returns 2P.
func (c Curve) Double(P Point) Point { return c.Add(P, P) }

// Mul returns k*P by binary double-and-add. It stops at the first FactorFound
// produced by either the accumulator or the doubling chain, so the divisor it
// carries is never overwritten.
func (c Curve) Mul(k uint64, P Point) Point {
	if P.kind == FactorFound {
		return P
	}
	R := Inf()
	for k > 0 {
		if P.kind == FactorFound {
			return P
		}
		if k&1 == 1 {
			R = c.Add(P, R)
			if R.kind == FactorFound {
				return R
			}
		}
		k >>= 1
		if k > 0 {
			P = c.Double(P)
		}
	}
	return R
}
