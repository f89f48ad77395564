package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/spf13/cobra"
)

const prompt = "BOB → USDT: "

func (c *cli) convertCmd() *cobra.Command {
	var (
		useMin      bool
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "convert [amount]",
		Short: "Convert an amount of bolivianos to USDT",
		Example: `  usdtbob convert 1000
  usdtbob convert 1,500.50 --min
  usdtbob convert -i`,
		Args: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return c.interactive(cmd.Context())
			}
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			policy := domain.PolicyAvg
			if useMin {
				policy = domain.PolicyMin
			}
			res, err := c.app.Converter.Convert(cmd.Context(), amount, policy)
			if err != nil {
				return err
			}
			writeConversion(c.out, res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useMin, "min", false, "use the minimum price instead of the average")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read amounts from stdin until quit")
	return cmd
}

// interactive reads commands line by line. Failures are reported and the
// loop continues; only quit or end of input stop it.
func (c *cli) interactive(ctx context.Context) error {
	tty := c.isTTY()
	if tty {
		_, _ = headColor.Fprintln(c.out, "USDT/BOB converter")
		fmt.Fprintln(c.out, "Enter an amount in bolivianos, '<amount> min' for the minimum price,")
		fmt.Fprintln(c.out, "'rates' for current prices or 'quit' to exit.")
	}

	scanner := bufio.NewScanner(c.in)
	for {
		if tty {
			fmt.Fprint(c.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit", "q":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		case "rates":
			q, err := c.app.Resolver.Resolve(ctx)
			if err != nil {
				c.printError(err)
				continue
			}
			writeQuote(c.out, q)
			continue
		}

		amount, err := parseAmount(fields[0])
		if err != nil {
			c.printError(err)
			continue
		}
		policy := domain.PolicyAvg
		if len(fields) > 1 {
			policy = domain.PolicyFromRateType(fields[1])
		}
		res, err := c.app.Converter.Convert(ctx, amount, policy)
		if err != nil {
			c.printError(err)
			continue
		}
		writeConversion(c.out, res)
	}
	return scanner.Err()
}
