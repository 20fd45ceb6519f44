package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/runner"
	"github.com/themizzi/shopcheck/internal/scenarios"
)

// SkipFiltered is the reason reported for scenarios the filter excluded
const SkipFiltered = "filtered out"

// ErrNoScenarios is returned when the filter leaves nothing to run
var ErrNoScenarios = errors.New("no scenarios match the filter")

// RunOptions are the run command's flags. Zero values leave the environment's settings alone.
type RunOptions struct {
	Filter   scenarios.Filter
	Workers  int
	Checkout string
	Headed   bool
}

// RunPlan is a fully configured run that has not launched a browser yet
type RunPlan struct {
	Config   *config.TestConfig
	Waits    config.WaitConfig
	Browser  config.BrowserConfig
	Workers  int
	Selected []scenarios.Scenario
	Filtered []scenarios.Scenario
}

// PlanRun loads configuration from getenv, applies opts and selects scenarios from all
func PlanRun(getenv func(string) string, opts RunOptions, all []scenarios.Scenario) (*RunPlan, error) {
	cfg, err := config.LoadTestConfig(getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid test configuration: %w", err)
	}
	if opts.Checkout != "" {
		mode, err := config.ParseCheckoutMode(opts.Checkout)
		if err != nil {
			return nil, err
		}
		cfg.Checkout = mode
	}

	waits, err := config.LoadWaitConfig(getenv)
	if err != nil {
		return nil, err
	}
	browser, err := config.LoadBrowserConfig(getenv)
	if err != nil {
		return nil, err
	}
	if opts.Headed {
		browser.Headless = false
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	selected, filtered := opts.Filter.Apply(all)
	if len(selected) == 0 {
		return nil, ErrNoScenarios
	}

	return &RunPlan{
		Config:   cfg,
		Waits:    waits,
		Browser:  browser,
		Workers:  workers,
		Selected: selected,
		Filtered: filtered,
	}, nil
}

// Execute runs the selected scenarios on browser. Filtered scenarios are reported
// as skipped and appended to the results after the ones that ran.
func (p *RunPlan) Execute(ctx context.Context, browser runner.Browser, logger runner.TestLogger) runner.Results {
	r := &runner.Runner{
		Browser: browser,
		Config:  p.Config,
		Waits:   p.Waits,
		Workers: p.Workers,
		Logger:  logger,
	}
	results := r.Run(ctx, p.Selected)

	for _, s := range p.Filtered {
		if logger != nil {
			logger.TestSkipped(s.Name, SkipFiltered)
		}
		skipped := runner.Result{Name: s.Name, Skipped: true, SkipReason: SkipFiltered}
		results.Tests = append(results.Tests, skipped)
		results.Skipped = append(results.Skipped, skipped)
	}
	return results
}

// RunScenarios launches the planned browser, runs the plan and prints the summary
func RunScenarios(ctx context.Context, plan *RunPlan, logger runner.TestLogger) (runner.Results, error) {
	browser, err := runner.Launch(plan.Browser)
	if err != nil {
		return runner.Results{}, err
	}
	defer func() {
		if err := browser.Close(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	results := plan.Execute(ctx, browser, logger)
	runner.PrintResults(results)
	return results, nil
}
