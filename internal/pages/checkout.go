package pages

import "github.com/themizzi/shopcheck/internal/randomdata"

const (
	coFirstName       = "#input-payment-firstname"
	coLastName        = "#input-payment-lastname"
	coAddress1        = "#input-payment-address-1"
	coAddress2        = "#input-payment-address-2"
	coCity            = "#input-payment-city"
	coPostcode        = "#input-payment-postcode"
	coCountry         = "#input-payment-country"
	coZone            = "#input-payment-zone"
	coBillingNext     = "#button-payment-address"
	coDeliveryNext    = "#button-shipping-address"
	coComment         = "#collapse-shipping-method textarea[name='comment']"
	coMethodNext      = "#button-shipping-method"
	coTerms           = "#collapse-payment-method input[name='agree']"
	coPaymentNext     = "#button-payment-method"
	coConfirm         = "#button-confirm"
	orderPlacedNotice = "Your order has been placed!"
)

// CheckoutPage is the multi-step checkout. Each Continue reveals the next step.
type CheckoutPage struct {
	s *Session
}

// NewCheckoutPage binds a checkout page to the session
func NewCheckoutPage(s *Session) *CheckoutPage {
	return &CheckoutPage{s: s}
}

func (p *CheckoutPage) Kind() Kind     { return KindCheckout }
func (p *CheckoutPage) marker() string { return checkoutMarker }

// Exists reports whether the checkout page is rendered
func (p *CheckoutPage) Exists() (bool, error) {
	return p.s.visible(KindCheckout, checkoutMarker)
}

func (p *CheckoutPage) SetFirstName(v string) error { return p.s.fill(KindCheckout, coFirstName, v) }
func (p *CheckoutPage) SetLastName(v string) error  { return p.s.fill(KindCheckout, coLastName, v) }
func (p *CheckoutPage) SetAddress1(v string) error  { return p.s.fill(KindCheckout, coAddress1, v) }
func (p *CheckoutPage) SetAddress2(v string) error  { return p.s.fill(KindCheckout, coAddress2, v) }
func (p *CheckoutPage) SetCity(v string) error      { return p.s.fill(KindCheckout, coCity, v) }
func (p *CheckoutPage) SetPin(v string) error       { return p.s.fill(KindCheckout, coPostcode, v) }

// SetCountry picks the country option labelled v
func (p *CheckoutPage) SetCountry(v string) error {
	return p.s.selectLabel(KindCheckout, coCountry, v)
}

// SetState picks the region option labelled v
func (p *CheckoutPage) SetState(v string) error {
	return p.s.selectLabel(KindCheckout, coZone, v)
}

func (p *CheckoutPage) ClickOnContinueAfterBillingAddress() error {
	return p.s.click(KindCheckout, coBillingNext)
}

func (p *CheckoutPage) ClickOnContinueAfterDeliveryAddress() error {
	return p.s.click(KindCheckout, coDeliveryNext)
}

func (p *CheckoutPage) SetDeliveryMethodComment(v string) error {
	return p.s.fill(KindCheckout, coComment, v)
}

func (p *CheckoutPage) ClickOnContinueAfterDeliveryMethod() error {
	return p.s.click(KindCheckout, coMethodNext)
}

func (p *CheckoutPage) SelectTermsAndConditions() error {
	return p.s.check(KindCheckout, coTerms)
}

func (p *CheckoutPage) ClickOnContinueAfterPaymentMethod() error {
	return p.s.click(KindCheckout, coPaymentNext)
}

// ClickConfirmOrder places the order
func (p *CheckoutPage) ClickConfirmOrder() error {
	return p.s.click(KindCheckout, coConfirm)
}

// ConfirmationMsg returns the order-placed heading, polling until it reads as placed
func (p *CheckoutPage) ConfirmationMsg() (string, error) {
	return p.s.pollText(KindCheckout, orderSuccessID+" "+pageHeading, containsText(orderPlacedNotice))
}

// FillBillingAddress fills the billing step from a
func (p *CheckoutPage) FillBillingAddress(a randomdata.Address) error {
	steps := []func() error{
		func() error { return p.SetFirstName(a.FirstName) },
		func() error { return p.SetLastName(a.LastName) },
		func() error { return p.SetAddress1(a.Address1) },
		func() error { return p.SetAddress2(a.Address2) },
		func() error { return p.SetCity(a.City) },
		func() error { return p.SetPin(a.Pin) },
		func() error { return p.SetCountry(a.Country) },
		func() error { return p.SetState(a.State) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
