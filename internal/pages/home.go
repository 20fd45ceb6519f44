package pages

// HomePage is the storefront landing page. Its header is shared by every page.
type HomePage struct {
	s *Session
}

// NewHomePage binds a home page to the session
func NewHomePage(s *Session) *HomePage {
	return &HomePage{s: s}
}

func (p *HomePage) Kind() Kind     { return KindHome }
func (p *HomePage) marker() string { return homeMarker }

// Exists reports whether the home page is rendered
func (p *HomePage) Exists() (bool, error) {
	return p.s.visible(KindHome, homeMarker)
}

// ClickMyAccount opens the account dropdown
func (p *HomePage) ClickMyAccount() error {
	return p.s.click(KindHome, myAccountToggle)
}

// ClickRegister follows the dropdown's Register link
func (p *HomePage) ClickRegister() (*RegistrationPage, error) {
	if err := p.s.click(KindHome, registerLink); err != nil {
		return nil, err
	}
	return NewRegistrationPage(p.s), nil
}

// ClickLogin follows the dropdown's Login link
func (p *HomePage) ClickLogin() (*LoginPage, error) {
	if err := p.s.click(KindHome, loginLink); err != nil {
		return nil, err
	}
	return NewLoginPage(p.s), nil
}

// EnterProductName types into the header search box
func (p *HomePage) EnterProductName(name string) error {
	return p.s.fill(KindHome, searchInput, name)
}

// ClickSearch submits the header search
func (p *HomePage) ClickSearch() (*SearchResultsPage, error) {
	if err := p.s.click(KindHome, searchButton); err != nil {
		return nil, err
	}
	return NewSearchResultsPage(p.s), nil
}

// Search enters name and submits it
func (p *HomePage) Search(name string) (*SearchResultsPage, error) {
	if err := p.EnterProductName(name); err != nil {
		return nil, err
	}
	return p.ClickSearch()
}
