package pages

import "fmt"

const productTitle = "#product-search .product-thumb h4 a"

// SearchResultsPage lists products matching the header search
type SearchResultsPage struct {
	s *Session
}

// NewSearchResultsPage binds a search results page to the session
func NewSearchResultsPage(s *Session) *SearchResultsPage {
	return &SearchResultsPage{s: s}
}

func (p *SearchResultsPage) Kind() Kind     { return KindSearchResults }
func (p *SearchResultsPage) marker() string { return searchMarker }

// Exists reports whether the results page is rendered
func (p *SearchResultsPage) Exists() (bool, error) {
	return p.s.visible(KindSearchResults, searchMarker)
}

func productLink(name string) string {
	return fmt.Sprintf("%s:text-is(%q)", productTitle, name)
}

// IsProductExist reports whether a result is titled exactly name. It waits for the
// results page, then counts without waiting: the list is rendered with the page.
func (p *SearchResultsPage) IsProductExist(name string) (bool, error) {
	ok, err := p.Exists()
	if err != nil || !ok {
		return false, err
	}

	sel := productLink(name)
	n, err := p.s.page.Locator(sel).Count()
	if err != nil {
		return false, &ElementError{Page: KindSearchResults, Action: "count", Selector: sel, Err: err}
	}
	return n > 0, nil
}

// SelectProduct opens the result titled name. When there is none it returns
// ErrProductNotFound and the browser stays on the results page.
func (p *SearchResultsPage) SelectProduct(name string) (*ProductPage, error) {
	found, err := p.IsProductExist(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, name)
	}
	if err := p.s.click(KindSearchResults, productLink(name)); err != nil {
		return nil, err
	}
	return NewProductPage(p.s), nil
}
