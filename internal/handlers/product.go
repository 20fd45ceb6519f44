package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/themizzi/shopcheck/internal/models"
	"github.com/themizzi/shopcheck/internal/services"
)

type searchData struct {
	Term     string
	Products []models.Product
}

// SearchHandler lists catalog products whose name contains the search term
type SearchHandler struct {
	shop *Shop
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	term := strings.TrimSpace(r.URL.Query().Get("search"))
	h.shop.render(w, r, v, http.StatusOK, "search", searchData{
		Term:     term,
		Products: h.shop.Catalog.Search(term),
	})
}

type productData struct {
	Product models.Product
	Added   bool
	Warning string
}

// ProductHandler shows one product with its add-to-cart form
type ProductHandler struct {
	shop *Shop
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	product, err := h.shop.Catalog.Product(mux.Vars(r)["id"])
	if err != nil {
		h.shop.notFound(w, r, "Product not found!")
		return
	}

	v := h.shop.visit(w, r)
	h.shop.render(w, r, v, http.StatusOK, "product", productData{
		Product: product,
		Added:   r.URL.Query().Get("added") == "1",
	})
}

// CartAddHandler puts a product in the session's cart and returns to the product
// page with the added-to-cart alert.
type CartAddHandler struct {
	shop *Shop
}

func (h *CartAddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	product, err := h.shop.Catalog.Product(r.PostFormValue("product_id"))
	if errors.Is(err, services.ErrProductNotFound) {
		h.shop.notFound(w, r, "Product not found!")
		return
	}

	v := h.shop.visit(w, r)
	qty, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("quantity")))
	if err == nil {
		err = h.shop.Carts.Add(v.ID, product, qty)
	}
	if err != nil {
		h.shop.render(w, r, v, http.StatusBadRequest, "product", productData{
			Product: product,
			Warning: fmt.Sprintf("Warning: Quantity must be a whole number between 1 and %d!", models.MaxLineQuantity),
		})
		return
	}

	http.Redirect(w, r, "/product/"+product.ID+"?added=1", http.StatusSeeOther)
}
