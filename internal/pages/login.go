package pages

const (
	loginEmail    = "#account-login #input-email"
	loginPassword = "#account-login #input-password"
	loginSubmit   = "#account-login input[type='submit'][value='Login']"
	loginWarning  = loginMarker + " " + warningAlert

	// staleAttr tags an alert from an earlier attempt so it cannot pass for the next outcome
	staleAttr         = "data-stale"
	freshLoginWarning = loginWarning + ":not([" + staleAttr + "])"
)

// LoginPage is the returning-customer form
type LoginPage struct {
	s *Session
}

// NewLoginPage binds a login page to the session
func NewLoginPage(s *Session) *LoginPage {
	return &LoginPage{s: s}
}

func (p *LoginPage) Kind() Kind     { return KindLogin }
func (p *LoginPage) marker() string { return loginMarker }

// Exists reports whether the login form is rendered
func (p *LoginPage) Exists() (bool, error) {
	return p.s.visible(KindLogin, loginMarker)
}

func (p *LoginPage) SetEmail(v string) error {
	return p.s.fill(KindLogin, loginEmail, v)
}

// Email returns the email field's current value
func (p *LoginPage) Email() (string, error) {
	return p.s.inputValue(KindLogin, loginEmail)
}

func (p *LoginPage) SetPassword(v string) error {
	return p.s.fill(KindLogin, loginPassword, v)
}

// ClickLogin submits the form. It returns a *MyAccountPage when the login succeeds
// and this *LoginPage when the shop shows its warning alert instead. A warning already
// on screen is tagged first, so only one rendered by this submit counts.
func (p *LoginPage) ClickLogin() (Page, error) {
	if p.s.present(loginWarning) {
		if err := p.s.tag(KindLogin, loginWarning, staleAttr); err != nil {
			return nil, err
		}
	}
	if err := p.s.click(KindLogin, loginSubmit); err != nil {
		return nil, err
	}
	return p.s.await(KindLogin, "await login outcome",
		outcome{selector: myAccountMarker, page: NewMyAccountPage(p.s)},
		outcome{selector: freshLoginWarning, page: p},
	)
}

// Login fills both fields and submits
func (p *LoginPage) Login(email, password string) (Page, error) {
	if err := p.SetEmail(email); err != nil {
		return nil, err
	}
	if err := p.SetPassword(password); err != nil {
		return nil, err
	}
	return p.ClickLogin()
}

// Warning returns the warning alert text, or "" when none is shown
func (p *LoginPage) Warning() (string, error) {
	if !p.s.present(loginWarning) {
		return "", nil
	}
	return p.s.text(KindLogin, loginWarning)
}
