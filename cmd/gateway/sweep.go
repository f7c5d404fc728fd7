package main

import (
	"fmt"

	"github.com/DanielPopoola/paygate/internal/worker"
	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Verify stale pending transactions once and exit",
		Long: `Loads transactions that have been pending longer than worker.stale_after and asks
their gateway for the current status, applying the answer like a webhook.

Examples:
  gateway sweep
  gateway sweep --batch-size 200`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			cfg := a.cfg.Worker
			if batchSize > 0 {
				cfg.BatchSize = batchSize
			}

			stats := worker.NewPendingSweeper(a.repo, a.engine, cfg, a.logger).RunOnce(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "checked=%d resolved=%d failed=%d\n", stats.Checked, stats.Resolved, stats.Failed)
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "override worker.batch_size")
	return cmd
}
