//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/themizzi/shopcheck/internal/models"
	"github.com/themizzi/shopcheck/internal/repository/testutil"
)

func testCustomer(email string) *models.Customer {
	return &models.Customer{
		ID:           uuid.New().String(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		Telephone:    "9876543210",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}
}

func TestCustomerRepository_CreateAndGet_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewCustomerRepository(testDB.DB)

	customer := testCustomer("ada@shopcheck.test")
	if err := repo.CreateCustomer(customer); err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	retrieved, err := repo.GetCustomerByEmail("  ADA@shopcheck.test ")
	if err != nil {
		t.Fatalf("GetCustomerByEmail() error = %v", err)
	}
	if retrieved.ID != customer.ID || retrieved.PasswordHash != customer.PasswordHash {
		t.Errorf("Customer mismatch: got %+v, want %+v", retrieved, customer)
	}
}

func TestCustomerRepository_DuplicateEmail_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewCustomerRepository(testDB.DB)

	if err := repo.CreateCustomer(testCustomer("ada@shopcheck.test")); err != nil {
		t.Fatalf("Failed to create first customer: %v", err)
	}
	err := repo.CreateCustomer(testCustomer("ada@shopcheck.test"))
	if !errors.Is(err, models.ErrDuplicateCustomer) {
		t.Errorf("Expected ErrDuplicateCustomer, got %v", err)
	}
}

func TestCustomerRepository_NotFound_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewCustomerRepository(testDB.DB)

	if _, err := repo.GetCustomerByEmail("nobody@shopcheck.test"); !errors.Is(err, models.ErrCustomerNotFound) {
		t.Errorf("Expected ErrCustomerNotFound, got %v", err)
	}
}
