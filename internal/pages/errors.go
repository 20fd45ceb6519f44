package pages

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Lookup errors
var (
	ErrUnknownPage     = errors.New("no known page is rendered")
	ErrProductNotFound = errors.New("product not found in search results")
)

// ElementError reports an interaction the browser could not complete
type ElementError struct {
	Page     Kind
	Action   string
	Selector string
	Err      error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s page: %s %s: %v", e.Page, e.Action, e.Selector, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// IsTimeout reports whether err comes from an element that never became available
func IsTimeout(err error) bool {
	return errors.Is(err, playwright.ErrTimeout)
}
