package runner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var consoleTestErrorColor = color.New(color.FgYellow)              //nolint:gochecknoglobals
var consoleTestFailedColor = color.New(color.FgRed)                //nolint:gochecknoglobals
var consoleTestSkippedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)               //nolint:gochecknoglobals
var allTestsPassedColor = color.New(color.FgGreen)                 //nolint:gochecknoglobals

// TestLogger is told about every scenario as the run progresses. Calls may come
// from several workers at once.
type TestLogger interface {
	TestStarted(name string)
	TestError(name string, err error)
	TestFinished(name string, failed bool, output CapturedOutput)
	TestSkipped(name string, reason string)
}

type nullTestLogger struct{}

func (nullTestLogger) TestStarted(string)                        {}
func (nullTestLogger) TestError(string, error)                   {}
func (nullTestLogger) TestFinished(string, bool, CapturedOutput) {}
func (nullTestLogger) TestSkipped(string, string)                {}

// ConsoleReporter prints progress to stdout in colour. Step output is shown for
// failed scenarios, and for passing ones too when OutputOnSuccess is set.
type ConsoleReporter struct {
	OutputOnFailure bool
	OutputOnSuccess bool

	lock sync.Mutex
}

func (c *ConsoleReporter) TestStarted(name string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Printf("[%s]\n", name)
}

func (c *ConsoleReporter) TestError(name string, err error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = consoleTestErrorColor.Printf("  %s\n", line)
	}
}

func (c *ConsoleReporter) TestFinished(name string, failed bool, output CapturedOutput) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if failed {
		_, _ = consoleTestFailedColor.Printf("  FAILED: %s\n", name)
	}
	if len(output) > 0 &&
		((failed && c.OutputOnFailure) || (!failed && c.OutputOnSuccess)) {
		_, _ = consoleDebugOutputColor.Println(output.ToString("    STEP "))
	}
}

func (c *ConsoleReporter) TestSkipped(name string, reason string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if reason == "" {
		_, _ = consoleTestSkippedColor.Printf("  SKIPPED: %s\n", name)
	} else {
		_, _ = consoleTestSkippedColor.Printf("  SKIPPED: %s (%s)\n", name, reason)
	}
}

// PrintResults writes the run summary, listing failures on stderr
func PrintResults(results Results) {
	printResults(os.Stdout, os.Stderr, results)
}

func printResults(stdout, stderr io.Writer, results Results) {
	ran := len(results.Tests) - len(results.Skipped)
	if results.OK() {
		_, _ = allTestsPassedColor.Fprintf(stdout, "All %d scenarios passed (%d skipped)\n", ran, len(results.Skipped))
		return
	}
	_, _ = consoleTestFailedColor.Fprintf(stderr, "FAILED SCENARIOS (%d of %d):\n", len(results.Failures), ran)
	for _, f := range results.Failures {
		_, _ = consoleTestFailedColor.Fprintf(stderr, "  * %s\n", f.Name)
	}
}
