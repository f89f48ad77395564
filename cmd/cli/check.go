package main

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const recentSamples = 5

// demoSamples are inserted by check --seed into an empty store.
var demoSamples = [][2]string{
	{"6.85", "6.95"},
	{"6.87", "6.97"},
	{"6.83", "6.93"},
}

type storeReport struct {
	status domain.StoreStatus
	seeded int
	recent []domain.RateSample
	err    error
}

type providerReport struct {
	name  string
	quote domain.RateQuote
	err   error
}

func (c *cli) checkCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the rate store and the live provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				store storeReport
				prov  providerReport
				g     errgroup.Group
			)
			// Plain group: one failing check must not cancel the other.
			g.Go(func() error {
				store = c.checkStore(ctx, seed)
				return store.err
			})
			g.Go(func() error {
				prov = c.checkProvider(ctx)
				return prov.err
			})
			err := g.Wait()

			c.writeStoreReport(store)
			c.writeProviderReport(prov)
			return err
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert demo samples when the store is empty")
	return cmd
}

func (c *cli) checkStore(ctx context.Context, seed bool) storeReport {
	store := c.app.Deps.RateRepository
	var rep storeReport

	if rep.err = store.EnsureSchema(ctx); rep.err != nil {
		rep.status.Driver = c.app.Config.DB.Driver
		return rep
	}
	if rep.status, rep.err = store.Status(ctx); rep.err != nil {
		return rep
	}
	if seed && rep.status.RecordCount == 0 {
		now := time.Now().UTC()
		for i, p := range demoSamples {
			s := domain.RateSample{
				RecordedAt: now.Add(time.Duration(i-len(demoSamples)+1) * time.Second),
				MinPrice:   decimal.RequireFromString(p[0]),
				AvgPrice:   decimal.RequireFromString(p[1]),
			}
			if rep.err = store.Append(ctx, s); rep.err != nil {
				return rep
			}
			rep.seeded++
		}
		rep.status.RecordCount += int64(rep.seeded)
	}

	rep.recent, rep.err = store.Recent(ctx, recentSamples)
	return rep
}

func (c *cli) checkProvider(ctx context.Context) providerReport {
	f := c.app.Deps.Fetcher
	rep := providerReport{name: f.Name()}
	rep.quote, rep.err = f.FetchLiveQuote(ctx)
	return rep
}

func (c *cli) writeStoreReport(rep storeReport) {
	_, _ = headColor.Fprintf(c.out, "Rate store (%s)\n", rep.status.Driver)
	if rep.err != nil {
		_, _ = errColor.Fprintf(c.out, "  ✗ %v\n", rep.err)
		return
	}
	_, _ = okColor.Fprintln(c.out, "  ✓ connected")
	if rep.status.Version != "" {
		fmt.Fprintf(c.out, "  Version: %s\n", rep.status.Version)
	}
	fmt.Fprintf(c.out, "  Records: %d\n", rep.status.RecordCount)
	if rep.seeded > 0 {
		_, _ = warnColor.Fprintf(c.out, "  Inserted %d demo samples\n", rep.seeded)
	}
	if len(rep.recent) == 0 {
		return
	}
	fmt.Fprintln(c.out, "  Recent samples (newest first):")
	for _, s := range rep.recent {
		fmt.Fprintf(c.out, "    %s  min %s  avg %s\n",
			domain.FormatTimestamp(s.RecordedAt), formatBOB(s.MinPrice), formatBOB(s.AvgPrice))
	}
}

func (c *cli) writeProviderReport(rep providerReport) {
	_, _ = headColor.Fprintf(c.out, "Live provider (%s)\n", rep.name)
	if rep.err != nil {
		_, _ = errColor.Fprintf(c.out, "  ✗ %v\n", rep.err)
		return
	}
	_, _ = okColor.Fprintln(c.out, "  ✓ reachable")
	fmt.Fprintf(c.out, "  Minimum price: %s\n", formatBOB(rep.quote.MinPrice))
	fmt.Fprintf(c.out, "  Average price: %s\n", formatBOB(rep.quote.AvgPrice))
}
