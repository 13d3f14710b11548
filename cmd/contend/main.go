// Command contend runs the exchange harness against one or all account
// variants and prints the balance observed after each round.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NetPo4ki/go-contend/account"
	"github.com/NetPo4ki/go-contend/harness"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		variant    string
		rounds     int
		workers    int
		amount     int64
		iterations int
	)
	cmd := &cobra.Command{
		Use:   "contend",
		Short: "Stress a shared balance under three synchronization disciplines",
		Long: `contend runs rounds of paired deposit and withdraw workers against a
shared account. A balanced round nets to zero, so a safe variant
(locked, atomic) reports the same balance after every round; the unsafe
variant loses updates under contention and drifts.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := account.Kinds()
			if variant != "all" {
				kinds = []string{variant}
			}
			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				acct, err := account.New(kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "== %s ==\n", kind)
				report, err := harness.Run(cmd.Context(), acct,
					harness.WithRounds(rounds),
					harness.WithWorkersPerSide(workers),
					harness.WithAmount(amount),
					harness.WithIterations(iterations),
				)
				if report != nil {
					for i, balance := range report.Balances {
						fmt.Fprintf(out, "round %d: balance=%d\n", i+1, balance)
					}
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "all", "account variant: unsafe, locked, atomic, or all")
	cmd.Flags().IntVar(&rounds, "rounds", 10, "rounds per run")
	cmd.Flags().IntVar(&workers, "workers", 10, "deposit workers and withdraw workers per round (each side)")
	cmd.Flags().Int64Var(&amount, "amount", 100, "amount per operation")
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "operations per worker")
	return cmd
}
