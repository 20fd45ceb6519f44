// Package pagestest fakes a playwright tab as a set of visible selectors, so page
// objects and the flows built on them can be exercised without a browser.
package pagestest

import (
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// Site is a selector-keyed stand-in for a rendered page. Only the methods the page
// objects call are implemented; anything else panics through the nil embed.
type Site struct {
	// Home is what Goto renders
	Home []string

	Visible    map[string]bool
	Values     map[string]string
	Texts      map[string][]string
	Counts     map[string]int
	Errs       map[string]error
	OnClick    map[string]func()
	OnEvaluate map[string]func()
	Clicks     []string
	Checked    []string
	Evaluated  []string
	Selected   map[string]string
	URL        string
	Timeout    float64
	NavTimeout float64

	mu sync.Mutex
}

// NewSite returns an empty site whose Goto renders home
func NewSite(home ...string) *Site {
	return &Site{
		Home:       home,
		Visible:    map[string]bool{},
		Values:     map[string]string{},
		Texts:      map[string][]string{},
		Counts:     map[string]int{},
		Errs:       map[string]error{},
		OnClick:    map[string]func(){},
		OnEvaluate: map[string]func(){},
		Selected:   map[string]string{},
	}
}

// Page returns a playwright.Page backed by the site
func (f *Site) Page() playwright.Page {
	return &fakePage{site: f}
}

// Show marks selectors visible
func (f *Site) Show(selectors ...string) {
	for _, s := range selectors {
		f.Visible[s] = true
	}
}

// Navigate replaces everything visible, as a page load would
func (f *Site) Navigate(selectors ...string) {
	f.Visible = map[string]bool{}
	f.Show(selectors...)
}

func (f *Site) timeoutErr(selector string) error {
	return fmt.Errorf("%w: waiting for locator(%q)", playwright.ErrTimeout, selector)
}

type fakePage struct {
	playwright.Page
	site *Site
}

func (p *fakePage) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	return &fakeLocator{site: p.site, selector: selector}
}

func (p *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.site.URL = url
	p.site.Navigate(p.site.Home...)
	return nil, nil
}

func (p *fakePage) URL() string { return p.site.URL }

func (p *fakePage) SetDefaultTimeout(timeout float64) { p.site.Timeout = timeout }

func (p *fakePage) SetDefaultNavigationTimeout(timeout float64) { p.site.NavTimeout = timeout }

// locator aliases playwright.Locator so the embedded field is not named Locator,
// which would hide the interface's Locator method
type locator = playwright.Locator

type fakeLocator struct {
	locator
	site     *Site
	selector string
}

func (l *fakeLocator) First() playwright.Locator { return l }

// ready returns the forced error for the selector, or a timeout when it is not visible
func (l *fakeLocator) ready() error {
	if err := l.site.Errs[l.selector]; err != nil {
		return err
	}
	if !l.site.Visible[l.selector] {
		return l.site.timeoutErr(l.selector)
	}
	return nil
}

func (l *fakeLocator) Fill(value string, options ...playwright.LocatorFillOptions) error {
	if err := l.ready(); err != nil {
		return err
	}
	l.site.Values[l.selector] = value
	return nil
}

func (l *fakeLocator) Click(options ...playwright.LocatorClickOptions) error {
	if err := l.ready(); err != nil {
		return err
	}
	l.site.Clicks = append(l.site.Clicks, l.selector)
	if fn := l.site.OnClick[l.selector]; fn != nil {
		fn()
	}
	return nil
}

func (l *fakeLocator) Check(options ...playwright.LocatorCheckOptions) error {
	if err := l.ready(); err != nil {
		return err
	}
	l.site.Checked = append(l.site.Checked, l.selector)
	return nil
}

func (l *fakeLocator) SelectOption(values playwright.SelectOptionValues, options ...playwright.LocatorSelectOptionOptions) ([]string, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}
	labels := *values.Labels
	l.site.Selected[l.selector] = labels[0]
	return labels, nil
}

func (l *fakeLocator) InputValue(options ...playwright.LocatorInputValueOptions) (string, error) {
	if err := l.ready(); err != nil {
		return "", err
	}
	return l.site.Values[l.selector], nil
}

// TextContent pops queued texts until one is left, which it keeps returning
func (l *fakeLocator) TextContent(options ...playwright.LocatorTextContentOptions) (string, error) {
	if err := l.ready(); err != nil {
		return "", err
	}
	l.site.mu.Lock()
	defer l.site.mu.Unlock()
	queue := l.site.Texts[l.selector]
	if len(queue) == 0 {
		return "", nil
	}
	if len(queue) > 1 {
		l.site.Texts[l.selector] = queue[1:]
	}
	return queue[0], nil
}

func (l *fakeLocator) IsVisible(options ...playwright.LocatorIsVisibleOptions) (bool, error) {
	if err := l.site.Errs[l.selector]; err != nil {
		return false, err
	}
	return l.site.Visible[l.selector], nil
}

func (l *fakeLocator) WaitFor(options ...playwright.LocatorWaitForOptions) error {
	if len(options) > 0 && options[0].State != nil {
		switch *options[0].State {
		case *playwright.WaitForSelectorStateDetached, *playwright.WaitForSelectorStateHidden:
			if l.site.Visible[l.selector] {
				return l.site.timeoutErr(l.selector)
			}
			return nil
		}
	}
	return l.ready()
}

// Evaluate records the call and runs the selector's OnEvaluate hook
func (l *fakeLocator) Evaluate(expression string, arg interface{}, options ...playwright.LocatorEvaluateOptions) (interface{}, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}
	l.site.Evaluated = append(l.site.Evaluated, l.selector)
	if fn := l.site.OnEvaluate[l.selector]; fn != nil {
		fn()
	}
	return nil, nil
}

func (l *fakeLocator) Count() (int, error) {
	if err := l.site.Errs[l.selector]; err != nil {
		return 0, err
	}
	return l.site.Counts[l.selector], nil
}
