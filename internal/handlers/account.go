package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/themizzi/shopcheck/internal/models"
	"github.com/themizzi/shopcheck/internal/services"
)

// Messages the account pages show
const (
	msgEmailTaken         = "Warning: E-Mail Address is already registered!"
	msgInvalidCredentials = "Warning: No match for E-Mail Address and/or Password."
)

// registrationFields maps each validation error to the form field it is shown under
var registrationFields = []struct {
	field   string
	err     error
	message string
}{
	{"firstname", models.ErrInvalidFirstName, "First Name must be between 1 and 32 characters!"},
	{"lastname", models.ErrInvalidLastName, "Last Name must be between 1 and 32 characters!"},
	{"email", models.ErrInvalidEmail, "E-Mail Address does not appear to be valid!"},
	{"telephone", models.ErrInvalidTelephone, "Telephone must be between 3 and 32 characters!"},
	{"password", models.ErrInvalidPassword, "Password must be between 4 and 20 characters!"},
	{"confirm", models.ErrPasswordMismatch, "Password confirmation does not match password!"},
	{"agree", models.ErrPolicyNotAccepted, "Warning: You must agree to the Privacy Policy!"},
}

type registerData struct {
	Form    models.Registration
	Errors  map[string]string
	Warning string
}

// RegisterHandler shows and submits the registration form. A successful sign-up
// signs the session in and redirects to the account-created page.
type RegisterHandler struct {
	shop *Shop
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	if v.SignedIn() {
		http.Redirect(w, r, "/account/account", http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		h.shop.render(w, r, v, http.StatusOK, "register", registerData{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	form := models.Registration{
		FirstName: r.PostFormValue("firstname"),
		LastName:  r.PostFormValue("lastname"),
		Email:     r.PostFormValue("email"),
		Telephone: r.PostFormValue("telephone"),
		Password:  r.PostFormValue("password"),
		Confirm:   r.PostFormValue("confirm"),
		Agree:     r.PostFormValue("agree") != "",
	}

	customer, err := h.shop.Accounts.Register(form)
	if err != nil {
		data := registerData{Errors: map[string]string{}}
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			data.Warning = msgEmailTaken
		default:
			for _, f := range registrationFields {
				if errors.Is(err, f.err) {
					data.Errors[f.field] = f.message
				}
			}
			if len(data.Errors) == 0 {
				log.Printf("Error registering customer: %v", err)
				http.Error(w, "Failed to register", http.StatusInternalServerError)
				return
			}
		}
		form.Password, form.Confirm = "", ""
		data.Form = form
		h.shop.render(w, r, v, http.StatusOK, "register", data)
		return
	}

	log.Printf("Customer registered: %s", customer.Email)
	h.shop.Sessions.SignIn(v.ID, customer.Email)
	http.Redirect(w, r, "/account/success", http.StatusSeeOther)
}

// AccountSuccessHandler confirms a new account
type AccountSuccessHandler struct {
	shop *Shop
}

func (h *AccountSuccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	if !v.SignedIn() {
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return
	}
	h.shop.render(w, r, v, http.StatusOK, "account_success", nil)
}

type loginData struct {
	Email   string
	Warning string
}

// LoginHandler shows and submits the returning-customer form
type LoginHandler struct {
	shop *Shop
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	if v.SignedIn() {
		http.Redirect(w, r, "/account/account", http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		h.shop.render(w, r, v, http.StatusOK, "login", loginData{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))

	customer, err := h.shop.Accounts.Authenticate(email, r.PostFormValue("password"))
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.shop.render(w, r, v, http.StatusOK, "login", loginData{Email: email, Warning: msgInvalidCredentials})
		return
	}
	if err != nil {
		log.Printf("Error authenticating customer: %v", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	h.shop.Sessions.SignIn(v.ID, customer.Email)
	http.Redirect(w, r, "/account/account", http.StatusSeeOther)
}

type accountData struct {
	Email  string
	Orders []*models.Order
}

// AccountHandler shows the signed-in customer's overview and order history
type AccountHandler struct {
	shop *Shop
}

func (h *AccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	if !v.SignedIn() {
		http.Redirect(w, r, "/account/login", http.StatusSeeOther)
		return
	}

	orders, err := h.shop.Orders.ListOrders(v.Customer)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		http.Error(w, "Failed to load account", http.StatusInternalServerError)
		return
	}
	h.shop.render(w, r, v, http.StatusOK, "account", accountData{Email: v.Customer, Orders: orders})
}

// LogoutHandler signs the session out. The cart stays with the browser session.
type LogoutHandler struct {
	shop *Shop
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := h.shop.visit(w, r)
	h.shop.Sessions.SignOut(v.ID)
	v.Customer = ""
	h.shop.render(w, r, v, http.StatusOK, "logout", nil)
}
