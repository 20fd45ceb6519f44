package pages

const logoutContinue = "#account-logout a.btn-primary:text-is('Continue')"

// LogoutPage confirms the customer has been signed out
type LogoutPage struct {
	s *Session
}

// NewLogoutPage binds a logout page to the session
func NewLogoutPage(s *Session) *LogoutPage {
	return &LogoutPage{s: s}
}

func (p *LogoutPage) Kind() Kind     { return KindLogout }
func (p *LogoutPage) marker() string { return logoutMarker }

// Exists reports whether the logout page is rendered
func (p *LogoutPage) Exists() (bool, error) {
	return p.s.visible(KindLogout, logoutMarker)
}

// IsContinueButtonVisible waits for the Continue button
func (p *LogoutPage) IsContinueButtonVisible() (bool, error) {
	return p.s.visible(KindLogout, logoutContinue)
}

// ClickContinue returns to the home page
func (p *LogoutPage) ClickContinue() (*HomePage, error) {
	if err := p.s.click(KindLogout, logoutContinue); err != nil {
		return nil, err
	}
	return NewHomePage(p.s), nil
}
