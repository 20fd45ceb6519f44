package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/themizzi/shopcheck/internal/services"
)

// Shop bundles what every storefront handler needs
type Shop struct {
	Accounts  services.AccountService
	Orders    services.OrderService
	Catalog   *services.Catalog
	Carts     *services.CartStore
	Sessions  *Sessions
	Templates *Templates
}

// NewShop wires a storefront over the given services with a fresh session table
func NewShop(accounts services.AccountService, orders services.OrderService, catalog *services.Catalog, carts *services.CartStore) (*Shop, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	return &Shop{
		Accounts:  accounts,
		Orders:    orders,
		Catalog:   catalog,
		Carts:     carts,
		Sessions:  NewSessions(carts.NewSessionID),
		Templates: templates,
	}, nil
}

// header is the state the shared page header shows
type header struct {
	SignedIn  bool
	CartCount int
	CartTotal int64
	Search    string
}

// view is what the layout template receives
type view struct {
	Header header
	Page   any
}

// visit is one request's browser session
type visit struct {
	ID       string
	Customer string
}

func (v visit) SignedIn() bool { return v.Customer != "" }

func (s *Shop) visit(w http.ResponseWriter, r *http.Request) visit {
	id := s.Sessions.ID(w, r)
	email, _ := s.Sessions.Customer(id)
	return visit{ID: id, Customer: email}
}

func (s *Shop) render(w http.ResponseWriter, r *http.Request, v visit, status int, page string, data any) {
	cart := s.Carts.Get(v.ID)
	vw := view{
		Header: header{
			SignedIn:  v.SignedIn(),
			CartCount: cart.Count(),
			CartTotal: cart.Total(),
			Search:    r.URL.Query().Get("search"),
		},
		Page: data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.Templates.Render(w, page, vw); err != nil {
		log.Printf("Error rendering template: %v", err)
	}
}

type notFoundData struct {
	Heading string
	Message string
}

func (s *Shop) notFound(w http.ResponseWriter, r *http.Request, heading string) {
	s.render(w, r, s.visit(w, r), http.StatusNotFound, "not_found", notFoundData{
		Heading: heading,
		Message: "The page you requested cannot be found!",
	})
}

// NewRouter routes every storefront page
func NewRouter(shop *Shop) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/", &HomeHandler{shop: shop}).Methods(http.MethodGet)

	r.Handle("/account/register", &RegisterHandler{shop: shop}).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/account/success", &AccountSuccessHandler{shop: shop}).Methods(http.MethodGet)
	r.Handle("/account/login", &LoginHandler{shop: shop}).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/account/account", &AccountHandler{shop: shop}).Methods(http.MethodGet)
	r.Handle("/account/logout", &LogoutHandler{shop: shop}).Methods(http.MethodGet)

	r.Handle("/product/search", &SearchHandler{shop: shop}).Methods(http.MethodGet)
	r.Handle("/product/{id}", &ProductHandler{shop: shop}).Methods(http.MethodGet)
	r.Handle("/cart/add", &CartAddHandler{shop: shop}).Methods(http.MethodPost)

	r.Handle("/checkout/cart", &CartHandler{shop: shop}).Methods(http.MethodGet)
	r.Handle("/checkout/checkout", &CheckoutHandler{shop: shop}).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/checkout/success", &ConfirmationHandler{shop: shop}).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		shop.notFound(w, req, "Page Not Found!")
	})
	return r
}
