package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Customer is a registered shop account
type Customer struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Telephone    string
	PasswordHash string
	CreatedAt    time.Time
}

// Registration errors, one per form field
var (
	ErrInvalidFirstName  = errors.New("first name must be between 1 and 32 characters")
	ErrInvalidLastName   = errors.New("last name must be between 1 and 32 characters")
	ErrInvalidEmail      = errors.New("e-mail address does not appear to be valid")
	ErrInvalidTelephone  = errors.New("telephone must be between 3 and 32 characters")
	ErrInvalidPassword   = errors.New("password must be between 4 and 20 characters")
	ErrPasswordMismatch  = errors.New("password confirmation does not match password")
	ErrPolicyNotAccepted = errors.New("you must agree to the privacy policy")
)

// Storage errors
var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateCustomer = errors.New("customer email already registered")
)

// Registration is the submitted sign-up form
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Password  string
	Confirm   string
	Agree     bool
}

// Validate returns every field error joined, or nil
func (r Registration) Validate() error {
	var errs []error
	if !lengthBetween(r.FirstName, 1, 32) {
		errs = append(errs, ErrInvalidFirstName)
	}
	if !lengthBetween(r.LastName, 1, 32) {
		errs = append(errs, ErrInvalidLastName)
	}
	if !validEmail(r.Email) {
		errs = append(errs, ErrInvalidEmail)
	}
	if !lengthBetween(r.Telephone, 3, 32) {
		errs = append(errs, ErrInvalidTelephone)
	}
	if !lengthBetween(r.Password, 4, 20) {
		errs = append(errs, ErrInvalidPassword)
	} else if r.Confirm != r.Password {
		errs = append(errs, ErrPasswordMismatch)
	}
	if !r.Agree {
		errs = append(errs, ErrPolicyNotAccepted)
	}
	return errors.Join(errs...)
}

// NewCustomer builds a customer from a valid registration and an already hashed password
func NewCustomer(r Registration, passwordHash string) (*Customer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Customer{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		Email:        NormalizeEmail(r.Email),
		Telephone:    strings.TrimSpace(r.Telephone),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}, nil
}

// NormalizeEmail is the form emails are stored and looked up in
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) > 96 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at:], ".")
}
