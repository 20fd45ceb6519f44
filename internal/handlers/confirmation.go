package handlers

import (
	"net/http"

	"github.com/themizzi/shopcheck/internal/models"
)

type confirmationData struct {
	Order *models.Order
}

// ConfirmationHandler shows the order-placed page for one of the customer's orders
type ConfirmationHandler struct {
	shop *Shop
}

func (h *ConfirmationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	if !v.SignedIn() {
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return
	}

	reference := r.URL.Query().Get("order")
	if reference == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Another customer's reference is reported the same as an unknown one
	order, err := h.shop.Orders.GetOrderByReference(reference)
	if err != nil || order.CustomerEmail != v.Customer {
		h.shop.notFound(w, r, "Order not found!")
		return
	}

	h.shop.render(w, r, v, http.StatusOK, "order_success", confirmationData{Order: order})
}
