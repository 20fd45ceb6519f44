package pages

const (
	cartTotal    = "#checkout-cart .cart-totals tr:last-child td:last-child"
	cartCheckout = "#checkout-cart a.btn-primary:text-is('Checkout')"
)

// ShoppingCartPage lists cart lines and order totals
type ShoppingCartPage struct {
	s *Session
}

// NewShoppingCartPage binds a shopping cart page to the session
func NewShoppingCartPage(s *Session) *ShoppingCartPage {
	return &ShoppingCartPage{s: s}
}

func (p *ShoppingCartPage) Kind() Kind     { return KindShoppingCart }
func (p *ShoppingCartPage) marker() string { return cartMarker }

// Exists reports whether the cart page is rendered
func (p *ShoppingCartPage) Exists() (bool, error) {
	return p.s.visible(KindShoppingCart, cartMarker)
}

// TotalPrice returns the last totals row, e.g. "$2,408.00"
func (p *ShoppingCartPage) TotalPrice() (string, error) {
	return p.s.pollText(KindShoppingCart, cartTotal, nonEmpty)
}

// ClickCheckout proceeds to checkout
func (p *ShoppingCartPage) ClickCheckout() (*CheckoutPage, error) {
	if err := p.s.click(KindShoppingCart, cartCheckout); err != nil {
		return nil, err
	}
	return NewCheckoutPage(p.s), nil
}
