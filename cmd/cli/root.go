package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/usdtbob/infra/initializer"
	"github.com/amirasaad/usdtbob/pkg/app"
	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// bootFunc builds the application. Logs go to logOut.
type bootFunc func(logOut io.Writer, verbose bool) (*app.App, error)

type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	isTTY  func() bool
	boot   bootFunc

	app *app.App
}

func newCLI() *cli {
	return &cli{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		isTTY:  func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		boot:   bootFromEnv,
	}
}

func bootFromEnv(logOut io.Writer, verbose bool) (*app.App, error) {
	if !verbose {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load application configuration: %w", err)
	}
	// Keep stderr quiet unless asked; command output goes to stdout.
	if verbose {
		cfg.Log.Level = int(log.DebugLevel)
	} else if cfg.Log.Level < int(log.WarnLevel) {
		cfg.Log.Level = int(log.WarnLevel)
	}
	deps, err := initializer.InitializeDependencies(cfg, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return app.New(deps, cfg), nil
}

func (c *cli) rootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "usdtbob",
		Short: "USDT/BOB rate tracker and converter",
		Long: `usdtbob converts bolivianos to USDT using the cheapest and average
P2P advertisement prices, falling back to the last collected sample.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.app != nil {
				return nil
			}
			a, err := c.boot(c.errOut, verbose)
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(c.convertCmd())
	root.AddCommand(c.ratesCmd())
	root.AddCommand(c.collectCmd())
	root.AddCommand(c.checkCmd())
	return root
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, c *cli, args []string) int {
	root := c.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if c.app != nil {
		if cerr := c.app.Deps.Close(); cerr != nil {
			c.app.Deps.Logger.Warn("Failed to release resources", "error", cerr)
		}
	}
	if err != nil {
		c.printError(err)
		return 1
	}
	return 0
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	headColor = color.New(color.FgCyan, color.Bold)
)

func (c *cli) printError(err error) {
	_, _ = errColor.Fprintf(c.errOut, "Error: %v\n", err)
}
