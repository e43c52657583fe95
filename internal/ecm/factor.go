package ecm

import (
	"context"
	"math/bits"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Budgets used by New and the command line defaults.
const (
	DefaultLimit    = 1000
	DefaultRetries  = 10
	DefaultAttempts = 500
)

// Factorizer runs Lenstra's method against one modulus at a time. It owns a
// random source and is therefore not safe for concurrent use; independent
// requests should use independent Factorizers.
type Factorizer struct {
	// Limit is the smoothness bound: primes p < Limit are applied, each
	// repeatedly while p^e < Limit.
	Limit int
	// Retries bounds FactorOnce.
	Retries int
	// Attempts bounds FactorAll.
	Attempts int
	// MaxCurveSamples caps the discriminant search of each attempt.
	MaxCurveSamples int

	Rand Source
	Log  zerolog.Logger

	primes []uint64
	primeL int
}

// New returns a Factorizer with default budgets for the given bound. A nil
// src is replaced by a time-seeded source.
func New(limit int, src Source) *Factorizer {
	f := &Factorizer{
		Limit:    limit,
		Retries:  DefaultRetries,
		Attempts: DefaultAttempts,
		Rand:     src,
		Log:      zerolog.Nop(),
	}
	f.setDefaults()
	return f
}

// setDefaults fills a missing source and sampling cap, for Factorizers
// built as struct literals.
func (f *Factorizer) setDefaults() {
	if f.Rand == nil {
		f.Rand = NewTimeSource()
	}
	if f.MaxCurveSamples <= 0 {
		f.MaxCurveSamples = DefaultMaxCurveSamples
	}
}

func (f *Factorizer) validate(n uint64) error {
	if n < 2 {
		return errors.Wrapf(ErrModulusTooSmall, "n=%d", n)
	}
	if n >= MaxModulus {
		return errors.Wrapf(ErrModulusTooLarge, "n=%d", n)
	}
	if f.Limit < 2 {
		return errors.Wrapf(ErrInvalidLimit, "limit=%d", f.Limit)
	}
	return nil
}

func (f *Factorizer) sieve() []uint64 {
	if f.primes == nil || f.primeL != f.Limit {
		f.primes = PrimesUpTo(f.Limit)
		f.primeL = f.Limit
	}
	return f.primes
}

// Attempt runs one randomized trial on a fresh curve. It returns a divisor d
// of n with 1 < d < n and true, or false when this curve did not split n
// within the smoothness bound. A miss is the normal outcome of a single trial.
func (f *Factorizer) Attempt(n uint64) (uint64, bool, error) {
	f.setDefaults()
	if err := f.validate(n); err != nil {
		return 0, false, err
	}
	return f.attempt(context.Background(), n)
}

// attempt checks ctx before sampling and once per sieve prime, so a cancelled
// run stops within one scalar multiplication.
func (f *Factorizer) attempt(ctx context.Context, n uint64) (uint64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	c, P, g, err := SampleCurve(f.Rand, n, f.MaxCurveSamples)
	if err != nil {
		return 0, false, err
	}
	if g > 1 {
		f.Log.Debug().Uint64("n", n).Uint64("factor", g).Msg("discriminant shares a factor with n")
		return g, true, nil
	}

	limit := uint64(f.Limit)
	for _, p := range f.sieve() {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}
		for pp := p; pp < limit; pp = nextPower(pp, p, limit) {
			P = c.Mul(p, P)
			if d, ok := P.Factor(); ok {
				d = uint64(GCD(int64(d), int64(n)))
				if d <= 1 || d >= n {
					return 0, false, nil
				}
				f.Log.Debug().Uint64("n", n).Uint64("factor", d).Uint64("prime", p).
					Uint64("a", c.A).Uint64("b", c.B).Msg("non-invertible denominator")
				return d, true, nil
			}
			if P.IsInfinity() {
				// identity modulo every prime of n: this curve is spent
				return 0, false, nil
			}
		}
	}
	return 0, false, nil
}

// nextPower returns pp*p, or limit when the product would overflow.
func nextPower(pp, p, limit uint64) uint64 {
	hi, lo := bits.Mul64(pp, p)
	if hi != 0 {
		return limit
	}
	return lo
}

// FactorOnce repeats Attempt up to Retries times and returns the first
// factor found. ok is false when every retry missed.
func (f *Factorizer) FactorOnce(n uint64) (uint64, bool, error) {
	return f.FactorOnceContext(context.Background(), n)
}

// FactorOnceContext is FactorOnce that stops with ctx.Err() once ctx is done.
func (f *Factorizer) FactorOnceContext(ctx context.Context, n uint64) (uint64, bool, error) {
	f.setDefaults()
	if err := f.validate(n); err != nil {
		return 0, false, err
	}
	for i := 0; i < f.Retries; i++ {
		d, ok, err := f.attempt(ctx, n)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return d, true, nil
		}
	}
	f.Log.Debug().Uint64("n", n).Int("retries", f.Retries).Msg("no factor found")
	return 0, false, nil
}

// FactorAll accumulates divisors of n over Attempts independent trials. The
// result is ascending, duplicate-free and always contains 1 and n. It is best
// effort: a prime factor may be missing if the attempt budget runs out.
func (f *Factorizer) FactorAll(n uint64) ([]uint64, error) {
	return f.FactorAllContext(context.Background(), n)
}

// FactorAllContext is FactorAll that abandons the run with ctx.Err() once ctx
// is done; no partial factor set is returned.
func (f *Factorizer) FactorAllContext(ctx context.Context, n uint64) ([]uint64, error) {
	f.setDefaults()
	if err := f.validate(n); err != nil {
		return nil, err
	}
	found := map[uint64]struct{}{1: {}, n: {}}
	misses := 0
	for i := 0; i < f.Attempts; i++ {
		d, ok, err := f.attempt(ctx, n)
		if errors.Is(err, ErrSingularModulus) {
			// no usable curve this round, same as a miss
			misses++
			continue
		}
		if err != nil {
			return nil, err
		}
		if !ok {
			misses++
			continue
		}
		if _, seen := found[d]; !seen {
			found[d] = struct{}{}
			f.Log.Debug().Uint64("n", n).Uint64("factor", d).Int("attempt", i).Msg("new factor")
		}
	}

	out := make([]uint64, 0, len(found))
	for d := range found {
		out = append(out, d)
	}
	slices.Sort(out)
	f.Log.Info().Uint64("n", n).Int("limit", f.Limit).Int("attempts", f.Attempts).
		Int("misses", misses).Uints64("factors", out).Msg("factorization finished")
	return out, nil
}

// FactorAll factors n with default budgets and a time-seeded source.
func FactorAll(n uint64, limit int) ([]uint64, error) {
	return New(limit, NewTimeSource()).FactorAll(n)
}
