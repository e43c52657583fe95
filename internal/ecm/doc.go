// Package ecm implements Lenstra's elliptic-curve factorization.
//
// Idea
//
//	Pick a random curve y^2 = x^3 + a x + b over Z/nZ together with a point P
//	on it, then multiply P by every prime power below a smoothness bound.
//	Over each prime p | n the point has some order; once the multiplier is a
//	multiple of that order modulo p (but not modulo every prime of n) one
//	slope denominator becomes divisible by p and is not invertible mod n.
//	gcd(denominator, n) is then a non-trivial factor.
//
// Layout
//
//	modarith.go  gcd, extended Euclid, uint64 residues with 128-bit products
//	point.go     Point: Infinity | Affine(x, y) | FactorFound(d)
//	curve.go     chord/tangent addition and double-and-add
//	sieve.go     primes below the bound
//	sampler.go   random (curve, point) pairs with a capped singularity search
//	factor.go    single attempt, bounded retries, factor-set accumulation
//
// Notes
//   - n must satisfy 2 <= n < 2^63. Every coordinate product goes through
//     bits.Mul64/bits.Div64, so there is no overflow anywhere below that bound.
//   - All randomness comes from a caller-supplied Source; a fixed seed gives a
//     reproducible run.
//   - FactorAll is best effort. With a small bound or attempt budget some prime
//     factors may be missing from the result.
//   - The *Context drivers check the context once per sieve prime and return
//     ctx.Err() with no partial result.
package ecm
