package main

import "github.com/spf13/cobra"

func (c *cli) ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show the current minimum and average USDT price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := c.app.Resolver.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			writeQuote(c.out, q)
			return nil
		},
	}
}
