package pages

const accountLogoutLink = "#column-right a.list-group-item:text-is('Logout')"

// MyAccountPage is the signed-in account overview
type MyAccountPage struct {
	s *Session
}

// NewMyAccountPage binds a my-account page to the session
func NewMyAccountPage(s *Session) *MyAccountPage {
	return &MyAccountPage{s: s}
}

func (p *MyAccountPage) Kind() Kind     { return KindMyAccount }
func (p *MyAccountPage) marker() string { return myAccountMarker }

// Exists reports whether the My Account heading is rendered
func (p *MyAccountPage) Exists() (bool, error) {
	return p.s.visible(KindMyAccount, myAccountMarker)
}

// ClickLogout signs out through the account menu
func (p *MyAccountPage) ClickLogout() (*LogoutPage, error) {
	if err := p.s.click(KindMyAccount, accountLogoutLink); err != nil {
		return nil, err
	}
	return NewLogoutPage(p.s), nil
}
