package pages

// Detect reports which page is rendered right now. It checks markers without
// waiting, so call it after the page has settled.
func Detect(s *Session) (Page, error) {
	candidates := []Page{
		NewMyAccountPage(s),
		NewRegistrationPage(s),
		NewLoginPage(s),
		NewLogoutPage(s),
		NewSearchResultsPage(s),
		NewProductPage(s),
		NewShoppingCartPage(s),
		NewCheckoutPage(s),
		NewHomePage(s),
	}
	for _, p := range candidates {
		if s.present(p.marker()) {
			return p, nil
		}
	}
	return nil, ErrUnknownPage
}
