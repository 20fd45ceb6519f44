// Package runner executes scenarios against a live shop, each in its own browser context.
package runner

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/pages"
	"github.com/themizzi/shopcheck/internal/randomdata"
	"github.com/themizzi/shopcheck/internal/scenarios"
)

// SkipCancelled is the reason given for scenarios that never started because the run was cancelled
const SkipCancelled = "run cancelled"

// Runner runs scenarios on up to Workers goroutines. Scenarios share nothing: each
// gets its own tab, config copy, generator and step log.
type Runner struct {
	Browser Browser
	Config  *config.TestConfig
	Waits   config.WaitConfig
	Workers int
	Logger  TestLogger
}

// Run executes the scenarios and returns their results in the order given.
// A failing scenario does not stop the others. Once ctx is done, scenarios that
// have not started are reported as skipped.
func (r *Runner) Run(ctx context.Context, all []scenarios.Scenario) Results {
	logger := r.Logger
	if logger == nil {
		logger = nullTestLogger{}
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(all))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, s := range all {
		i, s := i, s
		g.Go(func() error {
			if ctx.Err() != nil {
				logger.TestSkipped(s.Name, SkipCancelled)
				results[i] = Result{Name: s.Name, Skipped: true, SkipReason: SkipCancelled}
				return nil
			}
			results[i] = r.runOne(s, logger)
			return nil
		})
	}
	_ = g.Wait()

	return collect(results)
}

func (r *Runner) runOne(s scenarios.Scenario, logger TestLogger) Result {
	logger.TestStarted(s.Name)
	start := time.Now()
	steps := &CapturingLogger{}

	err := r.execute(s, steps)

	result := Result{Name: s.Name, Err: err, Duration: time.Since(start), Output: steps.Output()}
	if err != nil {
		logger.TestError(s.Name, err)
	}
	logger.TestFinished(s.Name, err != nil, result.Output)
	return result
}

func (r *Runner) execute(s scenarios.Scenario, steps *CapturingLogger) (err error) {
	page, closePage, err := r.Browser.NewPage()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closePage(); closeErr != nil {
			log.Printf("Failed to close browser context for %q: %v", s.Name, closeErr)
		}
	}()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("unexpected panic in scenario: %+v\n%s", p, string(debug.Stack()))
		}
	}()

	env := &scenarios.Env{
		Session: pages.NewSession(page, r.Waits),
		Config:  r.Config.Clone(),
		Data:    randomdata.New(),
		Log:     steps,
	}
	return s.Run(env)
}
