package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	internalcli "github.com/themizzi/shopcheck/internal/cli"
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/randomdata"
	"github.com/themizzi/shopcheck/internal/runner"
	"github.com/themizzi/shopcheck/internal/scenarios"
	"github.com/themizzi/shopcheck/internal/services"
)

var version = "0.1.0"

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the demo shop the scenarios run against",
		Action: func(c *cli.Context) error {
			serverConfig, err := config.LoadServerConfig(os.Getenv)
			if err != nil {
				return err
			}

			store, err := internalcli.OpenStore(serverConfig, os.Getenv)
			if err != nil {
				return err
			}
			defer store.Close()

			demo := internalcli.DemoAccount{
				Email:    os.Getenv("SHOP_EMAIL"),
				Password: os.Getenv("SHOP_PASSWORD"),
			}
			deps, err := internalcli.BuildServerDependencies(serverConfig, store, services.NewAccountService(store.Customers), demo)
			if err != nil {
				return err
			}

			log.Printf("Starting demo shop with %s backend", serverConfig.Backend)
			return internalcli.RunServe(deps)
		},
	}
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	var mustMatch, mustNotMatch scenarios.PatternList

	return &cli.Command{
		Name:  "run",
		Usage: "Run the UI scenarios against APP_URL",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "tag", Usage: "run only scenarios carrying one of these tags, e.g. sanity or @master"},
			&cli.GenericFlag{Name: "run", Value: &mustMatch, Usage: "regex of scenario names to run (repeatable)"},
			&cli.GenericFlag{Name: "skip", Value: &mustNotMatch, Usage: "regex of scenario names to skip (repeatable)"},
			&cli.IntFlag{Name: "workers", Value: 1, Usage: "scenarios to run at once"},
			&cli.StringFlag{Name: "checkout-mode", EnvVars: []string{"CHECKOUT_MODE"}, Usage: "skip, fill or assert"},
			&cli.BoolFlag{Name: "headed", Usage: "show the browser window"},
			&cli.BoolFlag{Name: "verbose", Usage: "print step output for passing scenarios too"},
		},
		Action: func(c *cli.Context) error {
			filter := scenarios.Filter{
				Tags:         c.StringSlice("tag"),
				MustMatch:    mustMatch,
				MustNotMatch: mustNotMatch,
			}
			plan, err := internalcli.PlanRun(os.Getenv, internalcli.RunOptions{
				Filter:   filter,
				Workers:  c.Int("workers"),
				Checkout: c.String("checkout-mode"),
				Headed:   c.Bool("headed"),
			}, scenarios.All())
			if err != nil {
				return err
			}

			for _, line := range filter.Describe() {
				log.Println(line)
			}
			log.Printf("Running %d scenarios against %s (checkout: %s)", len(plan.Selected), plan.Config.AppURL, plan.Config.Checkout)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			reporter := &runner.ConsoleReporter{OutputOnFailure: true, OutputOnSuccess: c.Bool("verbose")}
			results, err := internalcli.RunScenarios(ctx, plan, reporter)
			if err != nil {
				return err
			}
			if !results.OK() {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// generatedFixture is what the identity command prints
type generatedFixture struct {
	Identity randomdata.GeneratedIdentity `json:"identity" yaml:"identity"`
	Billing  randomdata.Address           `json:"billing" yaml:"billing"`
}

// IdentityCommand returns the identity command
func IdentityCommand() *cli.Command {
	return &cli.Command{
		Name:  "identity",
		Usage: "Print a generated registrant and billing address",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "json", Usage: "json or yaml"},
		},
		Action: func(c *cli.Context) error {
			g := randomdata.New()
			fixture := generatedFixture{Identity: g.Identity(), Billing: g.BillingAddress()}
			return writeFixture(c.App.Writer, c.String("format"), fixture)
		},
	}
}

func writeFixture(w io.Writer, format string, fixture generatedFixture) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fixture)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fixture); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q, want json or yaml", format)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "shopcheck",
		Usage:   "UI scenarios for an OpenCart-style shop, and a demo shop to run them against",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			RunCommand(),
			IdentityCommand(),
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
