package factorscan

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"lenstra/internal/ecm"
)

// Run factors every configured modulus and writes the results to cfg.OutPath
// ("-" writes to stdout).
func Run(ctx context.Context, cfg *Config, log zerolog.Logger, stdout io.Writer) error {
	results, err := FactorAll(ctx, cfg, log)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(cfg.OutPath, stdout)
	if err != nil {
		return err
	}
	if err := WriteResults(w, cfg.Format, results); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

// FactorAll factors the configured moduli concurrently, at most cfg.Workers at
// a time. Each input gets its own Factorizer and random source seeded
// seed+index, so a fixed seed reproduces the whole batch regardless of
// scheduling. Results keep input order.
func FactorAll(ctx context.Context, cfg *Config, log zerolog.Logger) ([]Result, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Int("inputs", len(cfg.Moduli)).Int("workers", cfg.Workers).
		Int("limit", cfg.Limit).Msg("starting batch")

	results := make([]Result, len(cfg.Moduli))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i, n := range cfg.Moduli {
		g.Go(func() error {
			f := ecm.New(cfg.Limit, ecm.NewSource(seed+uint64(i)))
			f.Retries = cfg.Retries
			f.Attempts = cfg.Attempts
			f.MaxCurveSamples = cfg.MaxCurveSamples
			f.Log = log.With().Int("input", i).Logger()

			start := time.Now()
			factors, err := f.FactorAllContext(ctx, n)
			if err != nil {
				return errors.WithMessagef(err, "factoring %d", n)
			}
			results[i] = Result{
				N:        n,
				Limit:    cfg.Limit,
				Factors:  factors,
				Complete: IsComplete(n, factors),
				Elapsed:  time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("batch stopped")
		return nil, err
	}
	return results, nil
}

// IsComplete reports whether the smallest discovered divisors (members not
// divisible by a smaller non-trivial member) divide n down to 1. factors must
// be ascending. A set holding only 1 and n is never complete.
func IsComplete(n uint64, factors []uint64) bool {
	var minimal []uint64
	for _, d := range factors {
		if d <= 1 || d >= n {
			continue
		}
		reducible := false
		for _, m := range minimal {
			if d%m == 0 {
				reducible = true
				break
			}
		}
		if !reducible {
			minimal = append(minimal, d)
		}
	}
	if len(minimal) == 0 {
		return false
	}
	r := n
	for _, m := range minimal {
		for r%m == 0 {
			r /= m
		}
	}
	return r == 1
}
