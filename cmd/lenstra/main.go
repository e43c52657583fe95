// lenstra: factor integers with Lenstra's elliptic-curve method.
//
// Run (examples)
//
//	lenstra                          # demo: Factors of 1271: [1 31 41 1271]
//	lenstra 1271 961 0x3f1           # several inputs, decimal or 0x-hex
//	lenstra --limit 20000 1000036000099
//	lenstra --format json --out factors.json 1271
//	LENSTRA_SEED=7 lenstra 1271      # reproducible run
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"lenstra/internal/factorscan"
	"lenstra/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lenstra [n ...]",
		Short:        "Factor integers with Lenstra's elliptic-curve method",
		Long:         `Accumulates the divisors of each n (2 <= n < 2^63) found over repeated ECM attempts and prints them in ascending order, always including 1 and n.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}
	factorscan.BindFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := factorscan.NewViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := factorscan.LoadConfig(v, args)
		if err != nil {
			return err
		}
		log := logging.New(logging.Config{
			Level:  cfg.LogLevel,
			Pretty: cfg.LogPretty,
			Output: cmd.ErrOrStderr(),
		})
		return factorscan.Run(cmd.Context(), cfg, log, cmd.OutOrStdout())
	}
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
