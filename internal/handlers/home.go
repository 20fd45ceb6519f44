package handlers

import (
	"net/http"

	"github.com/themizzi/shopcheck/internal/models"
)

// HomeHandler renders the storefront landing page with the featured products
type HomeHandler struct {
	shop *Shop
}

type homeData struct {
	Products []models.Product
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	h.shop.render(w, r, v, http.StatusOK, "home", homeData{Products: h.shop.Catalog.Products()})
}
