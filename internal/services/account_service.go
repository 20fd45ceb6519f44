package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/themizzi/shopcheck/internal/models"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	CreateCustomer(c *models.Customer) error
	GetCustomerByEmail(email string) (*models.Customer, error)
}

// Account errors shown to the shopper
var (
	ErrEmailTaken         = errors.New("e-mail address is already registered")
	ErrInvalidCredentials = errors.New("no match for e-mail address and/or password")
)

// AccountService handles registration and login
type AccountService interface {
	Register(r models.Registration) (*models.Customer, error)
	Authenticate(email, password string) (*models.Customer, error)
	SeedCustomer(email, password string) error
}

// AccountServiceImpl implements AccountService
type AccountServiceImpl struct {
	customerRepo CustomerRepository
	cost         int
}

// NewAccountService creates an account service hashing with bcrypt's default cost
func NewAccountService(customerRepo CustomerRepository) AccountService {
	return NewAccountServiceWithCost(customerRepo, bcrypt.DefaultCost)
}

// NewAccountServiceWithCost allows a cheaper bcrypt cost (primarily for testing)
func NewAccountServiceWithCost(customerRepo CustomerRepository, cost int) AccountService {
	return &AccountServiceImpl{
		customerRepo: customerRepo,
		cost:         cost,
	}
}

// Register validates the form, rejects a taken email and stores the new customer
func (s *AccountServiceImpl) Register(r models.Registration) (*models.Customer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetCustomerByEmail(r.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, models.ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer, err := models.NewCustomer(r, string(hash))
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.CreateCustomer(customer); err != nil {
		if errors.Is(err, models.ErrDuplicateCustomer) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// Authenticate checks an email and password pair
func (s *AccountServiceImpl) Authenticate(email, password string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByEmail(email)
	if errors.Is(err, models.ErrCustomerNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return customer, nil
}

// SeedCustomer registers the demo account the login scenario signs in with.
// An existing account with that email is left alone.
func (s *AccountServiceImpl) SeedCustomer(email, password string) error {
	_, err := s.Register(models.Registration{
		FirstName: "Demo",
		LastName:  "Shopper",
		Email:     email,
		Telephone: "5550100",
		Password:  password,
		Confirm:   password,
		Agree:     true,
	})
	if err != nil && !errors.Is(err, ErrEmailTaken) {
		return fmt.Errorf("failed to seed customer %s: %w", email, err)
	}
	return nil
}
