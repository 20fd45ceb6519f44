package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/themizzi/shopcheck/internal/models"
	"github.com/themizzi/shopcheck/internal/randomdata"
)

// Checkout warnings
const (
	msgTermsNotAccepted = "Warning: You must agree to the Terms & Conditions!"
	msgInvalidBilling   = "Warning: Please check the billing details!"
)

type cartData struct {
	Cart *models.Cart
}

// CartHandler shows the session's cart lines and totals
type CartHandler struct {
	shop *Shop
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	h.shop.render(w, r, v, http.StatusOK, "cart", cartData{Cart: h.shop.Carts.Get(v.ID)})
}

type checkoutData struct {
	Cart      *models.Cart
	Billing   models.BillingAddress
	Comment   string
	Countries []string
	Zones     []string
	// Expanded shows every step at once, used when a submitted form is shown again
	Expanded bool
	Warning  string
}

// CheckoutHandler runs the multi-step checkout for a signed-in customer. The steps
// are one form; confirming it places the order and empties the cart.
type CheckoutHandler struct {
	shop *Shop
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	if !v.SignedIn() {
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return
	}

	cart := h.shop.Carts.Get(v.ID)
	if cart.IsEmpty() {
		http.Redirect(w, r, "/checkout/cart", http.StatusSeeOther)
		return
	}

	data := checkoutData{
		Cart:      cart,
		Countries: randomdata.Countries,
		Zones:     randomdata.States,
	}
	if r.Method != http.MethodPost {
		h.shop.render(w, r, v, http.StatusOK, "checkout", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	data.Billing = billingFromForm(r)
	data.Comment = strings.TrimSpace(r.PostFormValue("comment"))
	data.Expanded = true

	if r.PostFormValue("agree") == "" {
		data.Warning = msgTermsNotAccepted
		h.shop.render(w, r, v, http.StatusOK, "checkout", data)
		return
	}

	order, err := h.shop.Orders.PlaceOrder(v.Customer, cart, data.Billing, data.Comment)
	if errors.Is(err, models.ErrInvalidAddress) {
		data.Warning = msgInvalidBilling
		h.shop.render(w, r, v, http.StatusOK, "checkout", data)
		return
	}
	if err != nil {
		log.Printf("Error placing order: %v", err)
		http.Error(w, "Failed to place order", http.StatusInternalServerError)
		return
	}

	log.Printf("Order placed - Reference: %s, Customer: %s, Amount: %s", order.Reference, order.CustomerEmail, order.GetFormattedAmount())
	h.shop.Carts.Clear(v.ID)
	http.Redirect(w, r, "/checkout/success?order="+url.QueryEscape(order.Reference), http.StatusSeeOther)
}

func billingFromForm(r *http.Request) models.BillingAddress {
	field := func(name string) string { return strings.TrimSpace(r.PostFormValue(name)) }
	return models.BillingAddress{
		FirstName: field("firstname"),
		LastName:  field("lastname"),
		Address1:  field("address_1"),
		Address2:  field("address_2"),
		City:      field("city"),
		Postcode:  field("postcode"),
		Country:   field("country_id"),
		Zone:      field("zone_id"),
	}
}
