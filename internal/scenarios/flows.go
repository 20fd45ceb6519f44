package scenarios

import (
	"errors"
	"fmt"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/pages"
	"github.com/themizzi/shopcheck/internal/randomdata"
)

// Expected shop texts
const (
	AccountCreatedMsg = "Your Account Has Been Created!"
	OrderPlacedMsg    = "Your order has been placed!"
)

// FlowPassword is the password accounts registered by the end-to-end flow log back in with.
const FlowPassword = "test123"

const deliveryComment = "testing..."

// Register signs up a fresh identity from the home page with FlowPassword and returns
// its email once the account-created confirmation is shown.
func Register(env *Env) (string, error) {
	id := env.Data.Identity()
	id.Password = FlowPassword
	if err := RegisterIdentity(env, id); err != nil {
		return "", err
	}
	return id.Email, nil
}

// RegisterIdentity opens the registration form from the header, submits id and
// checks the confirmation.
func RegisterIdentity(env *Env, id randomdata.GeneratedIdentity) error {
	home := pages.NewHomePage(env.Session)
	if err := home.ClickMyAccount(); err != nil {
		return err
	}
	reg, err := home.ClickRegister()
	if err != nil {
		return err
	}

	env.Log.Printf("register %s", id.Email)
	if err := reg.Register(id); err != nil {
		return err
	}

	msg, err := reg.ConfirmationMsg()
	if err != nil {
		return err
	}
	return expectContains("registration confirmation", msg, AccountCreatedMsg)
}

// Logout signs out from the my-account page and expects to land back on the home page
func Logout(env *Env) error {
	logout, err := pages.NewMyAccountPage(env.Session).ClickLogout()
	if err != nil {
		return err
	}

	ok, err := logout.IsContinueButtonVisible()
	if err := expectState("logout continue button visible", true, ok, err); err != nil {
		return err
	}

	home, err := logout.ClickContinue()
	if err != nil {
		return err
	}
	ok, err = home.Exists()
	return expectState("home page after logout", true, ok, err)
}

// Login opens the shop, signs in and expects the my-account page
func Login(env *Env, email, password string) error {
	home, err := env.Open()
	if err != nil {
		return err
	}
	if err := home.ClickMyAccount(); err != nil {
		return err
	}
	login, err := home.ClickLogin()
	if err != nil {
		return err
	}

	env.Log.Printf("log in as %s", email)
	reached, err := login.Login(email, password)
	if err != nil {
		return err
	}

	switch page := reached.(type) {
	case *pages.MyAccountPage:
		ok, err := page.Exists()
		return expectState("my account page exists", true, ok, err)
	case *pages.LoginPage:
		warning, err := page.Warning()
		if err != nil {
			return err
		}
		return &AssertionError{Step: "login", Expected: "my account page", Actual: fmt.Sprintf("login warning %q", warning)}
	default:
		return &AssertionError{Step: "login", Expected: "my account page", Actual: reached.Kind().String() + " page"}
	}
}

// AddProductToCart searches for the configured product, opens it and adds the
// configured quantity to the cart.
func AddProductToCart(env *Env) error {
	name := env.Config.ProductName
	results, err := searchFor(env, name, true)
	if err != nil {
		return err
	}

	product, err := results.SelectProduct(name)
	if err != nil {
		return err
	}
	if err := product.SetQuantity(env.Config.ProductQuantity); err != nil {
		return err
	}
	env.Log.Printf("add %s x %s to cart", env.Config.ProductQuantity, name)
	if err := product.AddToCart(); err != nil {
		return err
	}

	ok, err := product.IsConfirmationMessageVisible()
	return expectState("added to cart alert visible", true, ok, err)
}

// VerifyShoppingCart opens the cart from the header and checks the order total
func VerifyShoppingCart(env *Env) error {
	product := pages.NewProductPage(env.Session)
	if err := product.ClickItemsToNavigateToCart(); err != nil {
		return err
	}
	cart, err := product.ClickViewCart()
	if err != nil {
		return err
	}

	total, err := cart.TotalPrice()
	if err != nil {
		return err
	}
	env.Log.Printf("cart total %s", total)
	return expectContains("cart total", total, env.Config.TotalPrice)
}

// Checkout continues from the cart according to the configured checkout mode.
// CheckoutSkip does nothing, CheckoutFill walks every step short of confirming and
// CheckoutAssert also confirms and expects the order-placed notice.
func Checkout(env *Env) error {
	mode := env.Config.Checkout
	if mode == config.CheckoutSkip {
		env.Log.Printf("checkout skipped")
		return nil
	}

	co, err := pages.NewShoppingCartPage(env.Session).ClickCheckout()
	if err != nil {
		return err
	}

	addr := env.Data.BillingAddress()
	env.Log.Printf("checkout to %s, %s", addr.City, addr.Country)
	steps := []func() error{
		func() error { return co.FillBillingAddress(addr) },
		co.ClickOnContinueAfterBillingAddress,
		co.ClickOnContinueAfterDeliveryAddress,
		func() error { return co.SetDeliveryMethodComment(deliveryComment) },
		co.ClickOnContinueAfterDeliveryMethod,
		co.SelectTermsAndConditions,
		co.ClickOnContinueAfterPaymentMethod,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	if mode != config.CheckoutAssert {
		return nil
	}

	if err := co.ClickConfirmOrder(); err != nil {
		return err
	}
	msg, err := co.ConfirmationMsg()
	if err != nil {
		return err
	}
	return expectContains("order confirmation", msg, OrderPlacedMsg)
}

// SearchMissingProduct searches for a name the catalog does not carry. The product
// must not be listed, and selecting it must leave the browser on the results page.
func SearchMissingProduct(env *Env, name string) error {
	results, err := searchFor(env, name, false)
	if err != nil {
		return err
	}

	if _, err := results.SelectProduct(name); !errors.Is(err, pages.ErrProductNotFound) {
		if err == nil {
			return &AssertionError{Step: "select missing product", Expected: "no product page", Actual: "product page"}
		}
		return err
	}

	current, err := pages.Detect(env.Session)
	if err != nil {
		return err
	}
	if current.Kind() != pages.KindSearchResults {
		return &AssertionError{Step: "page after missing product", Expected: pages.KindSearchResults.String(), Actual: current.Kind().String()}
	}
	return nil
}

// searchFor runs the header search from the current page and checks whether name is listed
func searchFor(env *Env, name string, listed bool) (*pages.SearchResultsPage, error) {
	env.Log.Printf("search for %q", name)
	results, err := pages.NewHomePage(env.Session).Search(name)
	if err != nil {
		return nil, err
	}

	ok, err := results.Exists()
	if err := expectState("search results page exists", true, ok, err); err != nil {
		return nil, err
	}
	ok, err = results.IsProductExist(name)
	if err := expectState(fmt.Sprintf("product %q listed", name), listed, ok, err); err != nil {
		return nil, err
	}
	return results, nil
}
