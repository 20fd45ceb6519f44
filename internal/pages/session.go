package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/shopcheck/internal/config"
)

// Session is one browser tab plus the wait contract applied to it
type Session struct {
	page  playwright.Page
	waits config.WaitConfig
}

// NewSession applies the wait timeout as the tab's default action and navigation timeout
func NewSession(page playwright.Page, waits config.WaitConfig) *Session {
	page.SetDefaultTimeout(waits.TimeoutMillis())
	page.SetDefaultNavigationTimeout(waits.TimeoutMillis())
	return &Session{page: page, waits: waits}
}

// Page returns the underlying tab
func (s *Session) Page() playwright.Page { return s.page }

// Waits returns the wait contract
func (s *Session) Waits() config.WaitConfig { return s.waits }

// URL returns the tab's current URL
func (s *Session) URL() string { return s.page.URL() }

// Open navigates to the shop's base URL and returns its home page
func (s *Session) Open(url string) (*HomePage, error) {
	if _, err := s.page.Goto(url); err != nil {
		return nil, &ElementError{Page: KindHome, Action: "open", Selector: url, Err: err}
	}
	return NewHomePage(s), nil
}

func (s *Session) locator(selector string) playwright.Locator {
	return s.page.Locator(selector).First()
}

func (s *Session) fill(kind Kind, selector, value string) error {
	if err := s.locator(selector).Fill(value); err != nil {
		return &ElementError{Page: kind, Action: "fill", Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) click(kind Kind, selector string) error {
	if err := s.locator(selector).Click(); err != nil {
		return &ElementError{Page: kind, Action: "click", Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) check(kind Kind, selector string) error {
	if err := s.locator(selector).Check(); err != nil {
		return &ElementError{Page: kind, Action: "check", Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) selectLabel(kind Kind, selector, label string) error {
	_, err := s.locator(selector).SelectOption(playwright.SelectOptionValues{
		Labels: playwright.StringSlice(label),
	})
	if err != nil {
		return &ElementError{Page: kind, Action: "select", Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) inputValue(kind Kind, selector string) (string, error) {
	v, err := s.locator(selector).InputValue()
	if err != nil {
		return "", &ElementError{Page: kind, Action: "read value", Selector: selector, Err: err}
	}
	return v, nil
}

func (s *Session) text(kind Kind, selector string) (string, error) {
	v, err := s.locator(selector).TextContent()
	if err != nil {
		return "", &ElementError{Page: kind, Action: "read text", Selector: selector, Err: err}
	}
	return strings.TrimSpace(v), nil
}

// tag sets an empty attribute on the element selector matches
func (s *Session) tag(kind Kind, selector, attr string) error {
	_, err := s.locator(selector).Evaluate("(el, attr) => el.setAttribute(attr, '')", attr)
	if err != nil {
		return &ElementError{Page: kind, Action: "tag " + attr, Selector: selector, Err: err}
	}
	return nil
}

// visible waits up to the timeout for selector. A timeout is a false answer, not an error.
func (s *Session) visible(kind Kind, selector string) (bool, error) {
	err := s.locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(s.waits.TimeoutMillis()),
	})
	if err == nil {
		return true, nil
	}
	if IsTimeout(err) {
		return false, nil
	}
	return false, &ElementError{Page: kind, Action: "wait visible", Selector: selector, Err: err}
}

// present checks selector without waiting
func (s *Session) present(selector string) bool {
	ok, err := s.locator(selector).IsVisible()
	return err == nil && ok
}

// pollText waits for selector, then re-reads its text every poll interval until done
// accepts it or the timeout passes. The last text read is returned either way.
func (s *Session) pollText(kind Kind, selector string, done func(string) bool) (string, error) {
	deadline := time.Now().Add(s.waits.Timeout)

	ok, err := s.visible(kind, selector)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &ElementError{Page: kind, Action: "read text", Selector: selector,
			Err: fmt.Errorf("%w: not visible after %s", playwright.ErrTimeout, s.waits.Timeout)}
	}

	for {
		text, err := s.text(kind, selector)
		if err != nil {
			return "", err
		}
		if done(text) || !time.Now().Before(deadline) {
			return text, nil
		}
		time.Sleep(s.waits.PollInterval)
	}
}

// outcome pairs a selector with the page it proves was reached
type outcome struct {
	selector string
	page     Page
}

// await polls until one outcome's selector is visible and returns its page
func (s *Session) await(kind Kind, action string, outcomes ...outcome) (Page, error) {
	deadline := time.Now().Add(s.waits.Timeout)
	for {
		for _, o := range outcomes {
			if s.present(o.selector) {
				return o.page, nil
			}
		}
		if !time.Now().Before(deadline) {
			selectors := make([]string, len(outcomes))
			for i, o := range outcomes {
				selectors[i] = o.selector
			}
			return nil, &ElementError{Page: kind, Action: action, Selector: strings.Join(selectors, " | "),
				Err: fmt.Errorf("%w: no outcome after %s", playwright.ErrTimeout, s.waits.Timeout)}
		}
		time.Sleep(s.waits.PollInterval)
	}
}

func containsText(want string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, want) }
}

func nonEmpty(s string) bool { return s != "" }
