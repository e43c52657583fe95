package ecm

import "github.com/pkg/errors"

// DefaultMaxCurveSamples caps the discriminant search in SampleCurve.
const DefaultMaxCurveSamples = 1000

// SampleCurve draws a random point (x, y) and coefficient a in [0, n), then
// fixes b = y^2 - x^3 - a x so the point lies on the curve. Draws repeat while
// gcd(4a^3 + 27b^2, n) == n. If that gcd lands strictly between 1 and n it is
// already a factor and is returned with no curve; otherwise factor is 0.
//
// After maxTries draws that were all singular modulo n the sampler gives up
// with ErrSingularModulus.
func SampleCurve(src Source, n uint64, maxTries int) (c Curve, P Point, factor uint64, err error) {
	if n >= MaxModulus {
		return Curve{}, Point{}, 0, errors.Wrapf(ErrModulusTooLarge, "n=%d", n)
	}
	if n == 0 {
		return Curve{}, Point{}, 0, errors.Wrapf(ErrModulusTooSmall, "n=%d", n)
	}
	m := modN{n}
	for try := 0; try < maxTries; try++ {
		x, y, a := src.Uint64N(n), src.Uint64N(n), src.Uint64N(n)
		b := m.sub(m.sub(m.mul(y, y), m.mul(x, m.mul(x, x))), m.mul(a, x))

		cand := Curve{A: a, B: b, m: m}
		g := m.gcd(cand.Discriminant())
		if g == n {
			continue
		}
		if g > 1 {
			return Curve{}, Point{}, g, nil
		}
		return cand, NewPoint(x, y), 0, nil
	}
	return Curve{}, Point{}, 0, errors.Wrapf(ErrSingularModulus, "n=%d after %d draws", n, maxTries)
}
