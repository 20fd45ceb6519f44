package scenarios

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/pages"
	"github.com/themizzi/shopcheck/internal/pages/pagestest"
	"github.com/themizzi/shopcheck/internal/randomdata"
)

type testLogger struct{ t *testing.T }

func (l testLogger) Printf(format string, args ...interface{}) {
	l.t.Helper()
	l.t.Logf(format, args...)
}

// Storefront markup the page objects look for
const (
	homeMarker        = "#common-home"
	accountToggle     = "#top a[title='My Account']"
	registerLink      = "#top .dropdown-menu a:text-is('Register')"
	loginLink         = "#top .dropdown-menu a:text-is('Login')"
	searchInput       = "#search input[name='search']"
	searchButton      = "#search button"
	loginMarker       = "#account-login"
	loginEmail        = "#account-login #input-email"
	loginPassword     = "#account-login #input-password"
	loginSubmit       = "#account-login input[type='submit'][value='Login']"
	loginWarning      = "#account-login .alert-danger"
	freshLoginWarning = loginWarning + ":not([data-stale])"
	myAccountMarker   = "#account-account h2:text-is('My Account')"
	regEmail          = "#input-email"
	regPassword       = "#input-password"
	regConfirm        = "#input-confirm"
	regContinue       = "#account-register input[type='submit'][value='Continue']"
	accountCreated    = "#account-success #content h1"
	searchMarker      = "#product-search"
)

var (
	header           = []string{homeMarker, accountToggle, registerLink, loginLink, searchInput, searchButton}
	registrationForm = []string{
		"#account-register", "#input-firstname", "#input-lastname", regEmail, "#input-telephone",
		regPassword, regConfirm, "#account-register input[name='agree']", regContinue,
	}
)

func newTestEnv(t *testing.T, mode config.CheckoutMode) (*Env, *pagestest.Site) {
	t.Helper()
	site := pagestest.NewSite(header...)
	waits := config.WaitConfig{Timeout: 50 * time.Millisecond, PollInterval: 5 * time.Millisecond}
	return &Env{
		Session: pages.NewSession(site.Page(), waits),
		Config:  &config.TestConfig{AppURL: "http://shop.test/", ProductName: "MacBook", Checkout: mode},
		Data:    randomdata.New(),
		Log:     testLogger{t},
	}, site
}

func TestCheckoutSkipLeavesSessionAlone(t *testing.T) {
	env := &Env{
		Config: &config.TestConfig{Checkout: config.CheckoutSkip},
		Data:   randomdata.New(),
		Log:    testLogger{t},
	}

	// a nil session would panic on any page interaction
	assert.NoError(t, Checkout(env))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		respond     func(site *pagestest.Site)
		wantActual  string
		wantTimeout bool
	}{
		{
			name:    "lands on my account",
			respond: func(site *pagestest.Site) { site.Navigate(myAccountMarker) },
		},
		{
			name: "shop rejects the credentials",
			respond: func(site *pagestest.Site) {
				site.Navigate(loginMarker, loginEmail, loginPassword, loginSubmit, loginWarning, freshLoginWarning)
				site.Texts[loginWarning] = []string{"Warning: No match for E-Mail Address and/or Password."}
			},
			wantActual: `login warning "Warning: No match for E-Mail Address and/or Password."`,
		},
		{
			name:        "shop never answers",
			respond:     func(site *pagestest.Site) {},
			wantTimeout: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, site := newTestEnv(t, config.CheckoutSkip)
			site.OnClick[loginLink] = func() { site.Navigate(loginMarker, loginEmail, loginPassword, loginSubmit) }
			site.OnClick[loginSubmit] = func() { tt.respond(site) }

			err := Login(env, "demo@shopcheck.test", "demo1234")

			switch {
			case tt.wantTimeout:
				assert.True(t, pages.IsTimeout(err), "expected a timeout, got %v", err)
			case tt.wantActual != "":
				var assertion *AssertionError
				require.ErrorAs(t, err, &assertion)
				assert.Equal(t, "login", assertion.Step)
				assert.Equal(t, tt.wantActual, assertion.Actual)
			default:
				require.NoError(t, err)
				assert.Equal(t, "demo@shopcheck.test", site.Values[loginEmail])
				assert.Equal(t, "demo1234", site.Values[loginPassword])
			}
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		heading       string
		wantAssertion bool
	}{
		{name: "account created", heading: "Your Account Has Been Created!"},
		{name: "shop shows another page", heading: "Register Account", wantAssertion: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, site := newTestEnv(t, config.CheckoutSkip)
			site.Navigate(header...)
			site.OnClick[registerLink] = func() { site.Navigate(registrationForm...) }
			site.OnClick[regContinue] = func() {
				site.Navigate(accountCreated)
				site.Texts[accountCreated] = []string{tt.heading}
			}

			email, err := Register(env)

			// the generated password is always replaced so the flow can log back in
			assert.Equal(t, FlowPassword, site.Values[regPassword])
			assert.Equal(t, FlowPassword, site.Values[regConfirm])
			if tt.wantAssertion {
				var assertion *AssertionError
				require.ErrorAs(t, err, &assertion)
				assert.Empty(t, email)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, site.Values[regEmail], email)
		})
	}
}

func TestSearchMissingProduct(t *testing.T) {
	listing := `#product-search .product-thumb h4 a:text-is("` + MissingProductName + `")`

	tests := []struct {
		name          string
		results       func(site *pagestest.Site)
		wantAssertion bool
	}{
		{
			name:    "stays on the results page",
			results: func(site *pagestest.Site) { site.Navigate(searchMarker) },
		},
		{
			name: "product is listed",
			results: func(site *pagestest.Site) {
				site.Navigate(searchMarker)
				site.Counts[listing] = 1
			},
			wantAssertion: true,
		},
		{
			name:          "another page is rendered",
			results:       func(site *pagestest.Site) { site.Navigate(searchMarker, myAccountMarker) },
			wantAssertion: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, site := newTestEnv(t, config.CheckoutSkip)
			site.Navigate(header...)
			site.OnClick[searchButton] = func() { tt.results(site) }

			err := SearchMissingProduct(env, MissingProductName)

			assert.Equal(t, MissingProductName, site.Values[searchInput])
			if !tt.wantAssertion {
				assert.NoError(t, err)
				return
			}
			var assertion *AssertionError
			assert.ErrorAs(t, err, &assertion)
		})
	}
}
