package pages

import (
	"errors"
	"testing"

	"github.com/themizzi/shopcheck/internal/pages/pagestest"
	"github.com/themizzi/shopcheck/internal/randomdata"
)

func TestNewSessionAppliesTimeouts(t *testing.T) {
	_, site := newTestSession(t)

	if site.Timeout != 50 || site.NavTimeout != 50 {
		t.Errorf("expected 50ms default timeouts, got action=%v navigation=%v", site.Timeout, site.NavTimeout)
	}
}

func TestOpenReturnsHomePage(t *testing.T) {
	s, site := newTestSession(t)

	home, err := s.Open("http://shop.test/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if site.URL != "http://shop.test/" || s.URL() != "http://shop.test/" {
		t.Errorf("expected navigation to base URL, got %q", site.URL)
	}
	if ok, _ := home.Exists(); !ok {
		t.Error("expected home page to exist after Open")
	}
}

func TestRegistrationEmailRoundTrip(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(registrationMarker, regEmail)

	reg := NewRegistrationPage(s)
	email := randomdata.Email()
	if err := reg.SetEmail(email); err != nil {
		t.Fatalf("SetEmail: %v", err)
	}

	got, err := reg.Email()
	if err != nil {
		t.Fatalf("Email: %v", err)
	}
	if got != email {
		t.Errorf("expected %q read back, got %q", email, got)
	}
}

func TestExistsIsIdempotent(t *testing.T) {
	tests := []struct {
		name    string
		visible []string
		want    bool
	}{
		{"rendered", []string{myAccountMarker}, true},
		{"not rendered", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, site := newTestSession(t)
			site.Navigate(tt.visible...)
			page := NewMyAccountPage(s)

			first, err := page.Exists()
			if err != nil {
				t.Fatalf("first query: %v", err)
			}
			second, err := page.Exists()
			if err != nil {
				t.Fatalf("second query: %v", err)
			}
			if first != tt.want || second != first {
				t.Errorf("expected %v twice, got %v then %v", tt.want, first, second)
			}
		})
	}
}

func TestExistsPropagatesDriverErrors(t *testing.T) {
	s, site := newTestSession(t)
	closed := errors.New("target closed")
	site.Errs[homeMarker] = closed

	ok, err := NewHomePage(s).Exists()
	if ok {
		t.Error("expected false on error")
	}
	if !errors.Is(err, closed) {
		t.Fatalf("expected target closed error, got %v", err)
	}
	if IsTimeout(err) {
		t.Error("driver error should not read as a timeout")
	}
}

func TestMissingElementIsTimeout(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(registrationMarker)

	err := NewRegistrationPage(s).SetFirstName("Ada")
	if !IsTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}

	var elemErr *ElementError
	if !errors.As(err, &elemErr) {
		t.Fatalf("expected *ElementError, got %T", err)
	}
	if elemErr.Page != KindRegistration || elemErr.Selector != regFirstName || elemErr.Action != "fill" {
		t.Errorf("unexpected error details: %+v", elemErr)
	}
}

func TestRegisterFillsEveryField(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(registrationMarker, regFirstName, regLastName, regEmail, regTelephone,
		regPassword, regConfirm, regPrivacyPolicy, regContinue)
	site.OnClick[regContinue] = func() {
		site.Navigate(accountSuccessID + " " + pageHeading)
		site.Texts[accountSuccessID+" "+pageHeading] = []string{"", "Your Account Has Been Created!"}
	}

	id := randomdata.New().Identity()
	reg := NewRegistrationPage(s)
	if err := reg.Register(id); err != nil {
		t.Fatalf("Register: %v", err)
	}

	want := map[string]string{
		regFirstName: id.FirstName,
		regLastName:  id.LastName,
		regEmail:     id.Email,
		regTelephone: id.Phone,
		regPassword:  id.Password,
		regConfirm:   id.Password,
	}
	for sel, v := range want {
		if site.Values[sel] != v {
			t.Errorf("%s: expected %q, got %q", sel, v, site.Values[sel])
		}
	}
	if len(site.Checked) != 1 || site.Checked[0] != regPrivacyPolicy {
		t.Errorf("expected privacy policy checked, got %v", site.Checked)
	}

	msg, err := reg.ConfirmationMsg()
	if err != nil {
		t.Fatalf("ConfirmationMsg: %v", err)
	}
	if msg != "Your Account Has Been Created!" {
		t.Errorf("expected polled confirmation, got %q", msg)
	}
}

func TestLoginOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		land     func(site *pagestest.Site)
		wantKind Kind
		wantErr  bool
	}{
		{
			name:     "success lands on my account",
			land:     func(site *pagestest.Site) { site.Navigate(myAccountMarker) },
			wantKind: KindMyAccount,
		},
		{
			name: "bad credentials stay on login",
			land: func(site *pagestest.Site) {
				site.Navigate(loginMarker, loginEmail, loginPassword, loginSubmit, loginWarning, freshLoginWarning)
				site.Texts[loginWarning] = []string{" Warning: No match for E-Mail Address and/or Password."}
			},
			wantKind: KindLogin,
		},
		{
			name:    "nothing renders",
			land:    func(site *pagestest.Site) { site.Navigate() },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, site := newTestSession(t)
			site.Navigate(loginMarker, loginEmail, loginPassword, loginSubmit)
			site.OnClick[loginSubmit] = func() { tt.land(site) }

			got, err := NewLoginPage(s).Login("demo@shopcheck.test", "test123")
			if tt.wantErr {
				if !IsTimeout(err) {
					t.Fatalf("expected timeout, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind() != tt.wantKind {
				t.Fatalf("expected %s, got %s", tt.wantKind, got.Kind())
			}

			switch p := got.(type) {
			case *MyAccountPage:
				if ok, _ := p.Exists(); !ok {
					t.Error("expected my account page to exist")
				}
			case *LoginPage:
				warning, err := p.Warning()
				if err != nil || warning != "Warning: No match for E-Mail Address and/or Password." {
					t.Errorf("unexpected warning %q, err %v", warning, err)
				}
			default:
				t.Fatalf("unexpected page %T", got)
			}
		})
	}
}

func TestLoginRetryIgnoresStaleWarning(t *testing.T) {
	tests := []struct {
		name     string
		respond  func(site *pagestest.Site)
		wantKind Kind
	}{
		{
			name:     "retry succeeds",
			respond:  func(site *pagestest.Site) { site.Navigate(myAccountMarker) },
			wantKind: KindMyAccount,
		},
		{
			name:    "response still loading",
			respond: func(site *pagestest.Site) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, site := newTestSession(t)
			// GIVEN the form still shows the warning from a failed attempt
			site.Navigate(loginMarker, loginEmail, loginPassword, loginSubmit, loginWarning, freshLoginWarning)
			site.OnEvaluate[loginWarning] = func() { delete(site.Visible, freshLoginWarning) }
			site.OnClick[loginSubmit] = func() { tt.respond(site) }

			// WHEN the customer submits again
			got, err := NewLoginPage(s).Login("demo@shopcheck.test", "demo1234")

			// THEN the old warning is tagged and never taken as the outcome
			if len(site.Evaluated) != 1 || site.Evaluated[0] != loginWarning {
				t.Errorf("expected the stale warning to be tagged, got %v", site.Evaluated)
			}
			if tt.wantKind == KindUnknown {
				if !IsTimeout(err) {
					t.Fatalf("expected timeout while the response loads, got %v, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind() != tt.wantKind {
				t.Errorf("expected %s, got %s", tt.wantKind, got.Kind())
			}
		})
	}
}

func TestLoginFirstAttemptTagsNothing(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(loginMarker, loginEmail, loginPassword, loginSubmit)
	site.OnClick[loginSubmit] = func() { site.Navigate(myAccountMarker) }

	if _, err := NewLoginPage(s).Login("demo@shopcheck.test", "demo1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(site.Evaluated) != 0 {
		t.Errorf("expected nothing tagged, got %v", site.Evaluated)
	}
}

func TestLoginWarningAbsent(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(loginMarker)

	warning, err := NewLoginPage(s).Warning()
	if err != nil || warning != "" {
		t.Errorf("expected no warning, got %q, %v", warning, err)
	}
}

func TestHomeSearch(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(homeMarker, searchInput, searchButton)

	results, err := NewHomePage(s).Search("MacBook")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if site.Values[searchInput] != "MacBook" {
		t.Errorf("expected search term typed, got %q", site.Values[searchInput])
	}
	if len(site.Clicks) != 1 || site.Clicks[0] != searchButton {
		t.Errorf("expected search button click, got %v", site.Clicks)
	}
	if results.Kind() != KindSearchResults {
		t.Errorf("unexpected kind %s", results.Kind())
	}
}

func TestSelectProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, site := newTestSession(t)
		link := productLink("MacBook")
		site.Navigate(searchMarker, link)
		site.Counts[link] = 1

		results := NewSearchResultsPage(s)
		if ok, err := results.IsProductExist("MacBook"); err != nil || !ok {
			t.Fatalf("expected product to exist, got %v, %v", ok, err)
		}
		product, err := results.SelectProduct("MacBook")
		if err != nil {
			t.Fatalf("SelectProduct: %v", err)
		}
		if product.Kind() != KindProduct || len(site.Clicks) != 1 || site.Clicks[0] != link {
			t.Errorf("expected click on %s, got %v", link, site.Clicks)
		}
	})

	t.Run("no match", func(t *testing.T) {
		s, site := newTestSession(t)
		site.Navigate(searchMarker)

		results := NewSearchResultsPage(s)
		if ok, err := results.IsProductExist("Zune"); err != nil || ok {
			t.Fatalf("expected product to be absent, got %v, %v", ok, err)
		}
		_, err := results.SelectProduct("Zune")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if len(site.Clicks) != 0 {
			t.Errorf("expected no navigation, got clicks %v", site.Clicks)
		}
	})

	t.Run("not on results page", func(t *testing.T) {
		s, site := newTestSession(t)
		site.Navigate(homeMarker)

		if ok, err := NewSearchResultsPage(s).IsProductExist("MacBook"); err != nil || ok {
			t.Errorf("expected false without results page, got %v, %v", ok, err)
		}
	})
}

func TestProductToCart(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(productMarker, productQuantity, productAddToCart, cartTotalButton)
	site.OnClick[productAddToCart] = func() { site.Show(successAlert) }
	site.OnClick[cartTotalButton] = func() { site.Show(viewCartLink) }
	site.OnClick[viewCartLink] = func() {
		site.Navigate(cartMarker, cartTotal)
		site.Texts[cartTotal] = []string{"$2,408.00"}
	}

	product := NewProductPage(s)
	if err := product.SetQuantity("4"); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if qty, _ := product.Quantity(); qty != "4" {
		t.Errorf("expected quantity 4 read back, got %q", qty)
	}
	if err := product.AddToCart(); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if ok, err := product.IsConfirmationMessageVisible(); err != nil || !ok {
		t.Fatalf("expected success alert, got %v, %v", ok, err)
	}
	if err := product.ClickItemsToNavigateToCart(); err != nil {
		t.Fatalf("ClickItemsToNavigateToCart: %v", err)
	}
	cart, err := product.ClickViewCart()
	if err != nil {
		t.Fatalf("ClickViewCart: %v", err)
	}

	total, err := cart.TotalPrice()
	if err != nil {
		t.Fatalf("TotalPrice: %v", err)
	}
	if total != "$2,408.00" {
		t.Errorf("expected $2,408.00, got %q", total)
	}
}

func TestTotalPriceMissingIsTimeout(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(cartMarker)

	if _, err := NewShoppingCartPage(s).TotalPrice(); !IsTimeout(err) {
		t.Errorf("expected timeout, got %v", err)
	}
}

func TestCheckoutFlow(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(checkoutMarker, coFirstName, coLastName, coAddress1, coAddress2, coCity,
		coPostcode, coCountry, coZone, coBillingNext)
	site.OnClick[coBillingNext] = func() { site.Show(coDeliveryNext) }
	site.OnClick[coDeliveryNext] = func() { site.Show(coComment, coMethodNext) }
	site.OnClick[coMethodNext] = func() { site.Show(coTerms, coPaymentNext) }
	site.OnClick[coPaymentNext] = func() { site.Show(coConfirm) }
	site.OnClick[coConfirm] = func() {
		heading := orderSuccessID + " " + pageHeading
		site.Navigate(heading)
		site.Texts[heading] = []string{"Processing", "Your order has been placed!"}
	}

	addr := randomdata.New().BillingAddress()
	co := NewCheckoutPage(s)
	steps := []struct {
		name string
		run  func() error
	}{
		{"billing address", func() error { return co.FillBillingAddress(addr) }},
		{"continue billing", co.ClickOnContinueAfterBillingAddress},
		{"continue delivery", co.ClickOnContinueAfterDeliveryAddress},
		{"comment", func() error { return co.SetDeliveryMethodComment("testing...") }},
		{"continue method", co.ClickOnContinueAfterDeliveryMethod},
		{"terms", co.SelectTermsAndConditions},
		{"continue payment", co.ClickOnContinueAfterPaymentMethod},
		{"confirm", co.ClickConfirmOrder},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
	}

	if site.Selected[coCountry] != addr.Country || site.Selected[coZone] != addr.State {
		t.Errorf("expected country/state selected by label, got %v", site.Selected)
	}
	if site.Values[coPostcode] != addr.Pin || site.Values[coComment] != "testing..." {
		t.Errorf("unexpected values: %v", site.Values)
	}

	msg, err := co.ConfirmationMsg()
	if err != nil {
		t.Fatalf("ConfirmationMsg: %v", err)
	}
	if msg != "Your order has been placed!" {
		t.Errorf("expected placed notice, got %q", msg)
	}
}

func TestLogoutFlow(t *testing.T) {
	s, site := newTestSession(t)
	site.Navigate(myAccountMarker, accountLogoutLink)
	site.OnClick[accountLogoutLink] = func() { site.Navigate(logoutMarker, logoutContinue) }
	site.OnClick[logoutContinue] = func() { site.Navigate(homeMarker) }

	logout, err := NewMyAccountPage(s).ClickLogout()
	if err != nil {
		t.Fatalf("ClickLogout: %v", err)
	}
	if ok, err := logout.IsContinueButtonVisible(); err != nil || !ok {
		t.Fatalf("expected continue button, got %v, %v", ok, err)
	}
	home, err := logout.ClickContinue()
	if err != nil {
		t.Fatalf("ClickContinue: %v", err)
	}
	if ok, _ := home.Exists(); !ok {
		t.Error("expected home page after logout")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		marker string
		want   Kind
	}{
		{homeMarker, KindHome},
		{registrationMarker, KindRegistration},
		{loginMarker, KindLogin},
		{logoutMarker, KindLogout},
		{myAccountMarker, KindMyAccount},
		{searchMarker, KindSearchResults},
		{productMarker, KindProduct},
		{cartMarker, KindShoppingCart},
		{checkoutMarker, KindCheckout},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			s, site := newTestSession(t)
			site.Navigate(tt.marker)

			got, err := Detect(s)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if got.Kind() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.Kind())
			}
		})
	}

	s, site := newTestSession(t)
	site.Navigate()
	if _, err := Detect(s); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("expected ErrUnknownPage, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	if KindShoppingCart.String() != "shopping cart" {
		t.Errorf("unexpected name %q", KindShoppingCart.String())
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("unexpected name %q", Kind(42).String())
	}
}
