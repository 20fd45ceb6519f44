// Package scenarios holds the user journeys the suite runs against the shop.
//
// Each scenario is a straight-line script over the page objects: it opens the shop,
// drives pages through a sequence of actions and checks the observed state after key
// steps. The first failing step ends the scenario with its error.
package scenarios

import (
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/pages"
	"github.com/themizzi/shopcheck/internal/randomdata"
)

// Logger receives step-by-step progress. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Env is the state one scenario run owns. Nothing in it is shared between runs.
type Env struct {
	Session *pages.Session
	Config  *config.TestConfig
	Data    *randomdata.Generator
	Log     Logger
}

// Open navigates to the shop's base URL
func (e *Env) Open() (*pages.HomePage, error) {
	e.Log.Printf("open %s", e.Config.AppURL)
	return e.Session.Open(e.Config.AppURL)
}

// Scenario is one named user journey. Tags are written into the name as @markers.
type Scenario struct {
	Name string
	Run  func(env *Env) error
}

// Tags returns the @markers in the scenario name
func (s Scenario) Tags() []string {
	return Tags(s.Name)
}
