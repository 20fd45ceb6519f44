package pages

import "fmt"

// Kind identifies a page variant
type Kind int

// Page variants
const (
	KindUnknown Kind = iota
	KindHome
	KindRegistration
	KindLogin
	KindLogout
	KindMyAccount
	KindSearchResults
	KindProduct
	KindShoppingCart
	KindCheckout
)

var kindNames = map[Kind]string{
	KindUnknown:       "unknown",
	KindHome:          "home",
	KindRegistration:  "registration",
	KindLogin:         "login",
	KindLogout:        "logout",
	KindMyAccount:     "my account",
	KindSearchResults: "search results",
	KindProduct:       "product",
	KindShoppingCart:  "shopping cart",
	KindCheckout:      "checkout",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Page is implemented only by the page objects in this package.
type Page interface {
	// Kind reports which variant this is.
	Kind() Kind
	// Exists waits up to the session timeout for the page's marker to be visible.
	Exists() (bool, error)

	marker() string
}

// Page markers: the container each view renders
const (
	homeMarker         = "#common-home"
	registrationMarker = "#account-register"
	loginMarker        = "#account-login"
	logoutMarker       = "#account-logout"
	myAccountMarker    = "#account-account h2:text-is('My Account')"
	searchMarker       = "#product-search"
	productMarker      = "#product-product"
	cartMarker         = "#checkout-cart"
	checkoutMarker     = "#checkout-checkout"
)

// Shared header and result selectors
const (
	myAccountToggle  = "#top a[title='My Account']"
	registerLink     = "#top .dropdown-menu a:text-is('Register')"
	loginLink        = "#top .dropdown-menu a:text-is('Login')"
	searchInput      = "#search input[name='search']"
	searchButton     = "#search button"
	cartTotalButton  = "#cart-total"
	viewCartLink     = "#cart .dropdown-menu a:has-text('View Cart')"
	pageHeading      = "#content h1"
	successAlert     = ".alert-success"
	warningAlert     = ".alert-danger"
	accountSuccessID = "#account-success"
	orderSuccessID   = "#checkout-success"
)
