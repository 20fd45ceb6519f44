package pages

import "github.com/themizzi/shopcheck/internal/randomdata"

const (
	regFirstName     = "#input-firstname"
	regLastName      = "#input-lastname"
	regEmail         = "#input-email"
	regTelephone     = "#input-telephone"
	regPassword      = "#input-password"
	regConfirm       = "#input-confirm"
	regPrivacyPolicy = "#account-register input[name='agree']"
	regContinue      = "#account-register input[type='submit'][value='Continue']"
)

// RegistrationPage is the account registration form. After a successful submit the
// browser shows the account-created page, whose heading ConfirmationMsg reads.
type RegistrationPage struct {
	s *Session
}

// NewRegistrationPage binds a registration page to the session
func NewRegistrationPage(s *Session) *RegistrationPage {
	return &RegistrationPage{s: s}
}

func (p *RegistrationPage) Kind() Kind     { return KindRegistration }
func (p *RegistrationPage) marker() string { return registrationMarker }

// Exists reports whether the registration form is rendered
func (p *RegistrationPage) Exists() (bool, error) {
	return p.s.visible(KindRegistration, registrationMarker)
}

func (p *RegistrationPage) SetFirstName(v string) error {
	return p.s.fill(KindRegistration, regFirstName, v)
}

func (p *RegistrationPage) SetLastName(v string) error {
	return p.s.fill(KindRegistration, regLastName, v)
}

func (p *RegistrationPage) SetEmail(v string) error {
	return p.s.fill(KindRegistration, regEmail, v)
}

// Email returns the email field's current value
func (p *RegistrationPage) Email() (string, error) {
	return p.s.inputValue(KindRegistration, regEmail)
}

func (p *RegistrationPage) SetTelephone(v string) error {
	return p.s.fill(KindRegistration, regTelephone, v)
}

func (p *RegistrationPage) SetPassword(v string) error {
	return p.s.fill(KindRegistration, regPassword, v)
}

func (p *RegistrationPage) SetConfirmPassword(v string) error {
	return p.s.fill(KindRegistration, regConfirm, v)
}

// SetPrivacyPolicy ticks the privacy policy checkbox
func (p *RegistrationPage) SetPrivacyPolicy() error {
	return p.s.check(KindRegistration, regPrivacyPolicy)
}

// ClickContinue submits the form
func (p *RegistrationPage) ClickContinue() error {
	return p.s.click(KindRegistration, regContinue)
}

// ConfirmationMsg returns the account-created heading once it has text
func (p *RegistrationPage) ConfirmationMsg() (string, error) {
	return p.s.pollText(KindRegistration, accountSuccessID+" "+pageHeading, nonEmpty)
}

// Register fills every field from id, accepts the policy and submits
func (p *RegistrationPage) Register(id randomdata.GeneratedIdentity) error {
	steps := []func() error{
		func() error { return p.SetFirstName(id.FirstName) },
		func() error { return p.SetLastName(id.LastName) },
		func() error { return p.SetEmail(id.Email) },
		func() error { return p.SetTelephone(id.Phone) },
		func() error { return p.SetPassword(id.Password) },
		func() error { return p.SetConfirmPassword(id.Password) },
		p.SetPrivacyPolicy,
		p.ClickContinue,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
