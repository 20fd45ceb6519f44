package runner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Result is the outcome of one scenario
type Result struct {
	Name       string
	Err        error
	Skipped    bool
	SkipReason string
	Duration   time.Duration
	Output     CapturedOutput
}

// Failed reports whether the scenario ran and failed
func (r Result) Failed() bool {
	return !r.Skipped && r.Err != nil
}

// Results aggregates a run. Tests holds every result in scenario order.
type Results struct {
	Tests    []Result
	Failures []Result
	Skipped  []Result
}

// OK is true when no scenario failed
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func collect(all []Result) Results {
	results := Results{Tests: all}
	for _, r := range all {
		switch {
		case r.Skipped:
			results.Skipped = append(results.Skipped, r)
		case r.Err != nil:
			results.Failures = append(results.Failures, r)
		}
	}
	return results
}

// CapturedMessage is one step log line
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the step log of one scenario
type CapturedOutput []CapturedMessage

// ToString renders the output with each line prefixed
func (o CapturedOutput) ToString(prefix string) string {
	var sb strings.Builder
	for i, m := range o {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s[%s] %s", prefix, m.Time.Format("15:04:05.000"), m.Message))
	}
	return sb.String()
}

// Dump writes the output to w, one line per message
func (o CapturedOutput) Dump(w io.Writer, prefix string) {
	if len(o) > 0 {
		_, _ = fmt.Fprintln(w, o.ToString(prefix))
	}
}

// CapturingLogger buffers step logs so they can be shown next to a failure
type CapturingLogger struct {
	output CapturedOutput
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

// Output returns a copy of everything logged so far
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append(CapturedOutput(nil), l.output...)
	l.lock.Unlock()
	return ret
}
