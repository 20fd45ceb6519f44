package pages

const (
	productQuantity  = "#product-product #input-quantity"
	productAddToCart = "#product-product #button-cart"
)

// ProductPage shows one product with its add-to-cart form
type ProductPage struct {
	s *Session
}

// NewProductPage binds a product page to the session
func NewProductPage(s *Session) *ProductPage {
	return &ProductPage{s: s}
}

func (p *ProductPage) Kind() Kind     { return KindProduct }
func (p *ProductPage) marker() string { return productMarker }

// Exists reports whether a product page is rendered
func (p *ProductPage) Exists() (bool, error) {
	return p.s.visible(KindProduct, productMarker)
}

func (p *ProductPage) SetQuantity(qty string) error {
	return p.s.fill(KindProduct, productQuantity, qty)
}

// Quantity returns the quantity field's current value
func (p *ProductPage) Quantity() (string, error) {
	return p.s.inputValue(KindProduct, productQuantity)
}

func (p *ProductPage) AddToCart() error {
	return p.s.click(KindProduct, productAddToCart)
}

// IsConfirmationMessageVisible waits for the added-to-cart alert
func (p *ProductPage) IsConfirmationMessageVisible() (bool, error) {
	return p.s.visible(KindProduct, successAlert)
}

// ClickItemsToNavigateToCart opens the header cart dropdown
func (p *ProductPage) ClickItemsToNavigateToCart() error {
	return p.s.click(KindProduct, cartTotalButton)
}

// ClickViewCart follows the dropdown's View Cart link
func (p *ProductPage) ClickViewCart() (*ShoppingCartPage, error) {
	if err := p.s.click(KindProduct, viewCartLink); err != nil {
		return nil, err
	}
	return NewShoppingCartPage(p.s), nil
}
