package scenarios

import (
	"fmt"
	"strings"
)

// AssertionError reports observed state that did not match what a step expected
type AssertionError struct {
	Step     string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Step, e.Expected, e.Actual)
}

func expectContains(step, actual, want string) error {
	if !strings.Contains(actual, want) {
		return &AssertionError{Step: step, Expected: fmt.Sprintf("text containing %q", want), Actual: fmt.Sprintf("%q", actual)}
	}
	return nil
}

// expectState checks the result of a boolean page query
func expectState(step string, want bool, got bool, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	if got != want {
		return &AssertionError{Step: step, Expected: fmt.Sprint(want), Actual: fmt.Sprint(got)}
	}
	return nil
}
