package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/beacon/internal/app"
)

const defaultCheckTimeout = 30 * time.Second

func newCheckCmd(opts *app.Options) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe every configured service once",
		Long: `Probe every configured service once and print the result. No state is kept
and no notification is sent. Exits non-zero if any probe failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			results, err := app.CheckOnce(ctx, *opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderCheckTable(results))

			if failed := countFailed(results); failed > 0 {
				return fmt.Errorf("%d of %d services failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultCheckTimeout, "Overall deadline for the check")

	return cmd
}

func countFailed(results []app.CheckResult) int {
	n := 0
	for _, r := range results {
		if !r.Outcome.Success {
			n++
		}
	}
	return n
}
