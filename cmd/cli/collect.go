package main

import (
	"fmt"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/spf13/cobra"
)

func (c *cli) collectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Fetch one live quote and store it",
		Long: `collect fetches the live quote, retrying with exponential backoff, and
appends it to the rate store. It is meant to run from a scheduler; the exit
status is non-zero when nothing was stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := c.app.Collector.Run(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = okColor.Fprintln(c.out, "Rate sample stored")
			fmt.Fprintf(c.out, "  Minimum price: %s\n", formatBOB(sample.MinPrice))
			fmt.Fprintf(c.out, "  Average price: %s\n", formatBOB(sample.AvgPrice))
			fmt.Fprintf(c.out, "  Recorded at: %s\n", domain.FormatTimestamp(sample.RecordedAt))
			return nil
		},
	}
}
