package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/themizzi/shopcheck/internal/models"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure
const uniqueViolation = "23505"

// CustomerRepository stores customers in PostgreSQL
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a customer repository over db
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CreateCustomer inserts a customer. A taken email gives models.ErrDuplicateCustomer.
func (r *CustomerRepository) CreateCustomer(c *models.Customer) error {
	query := `
		INSERT INTO customers (id, first_name, last_name, email, telephone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query, c.ID, c.FirstName, c.LastName, c.Email, c.Telephone, c.PasswordHash, c.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", models.ErrDuplicateCustomer, c.Email)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetCustomerByEmail looks a customer up by normalized email
func (r *CustomerRepository) GetCustomerByEmail(email string) (*models.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, telephone, password_hash, created_at
		FROM customers
		WHERE email = $1
	`

	c := &models.Customer{}
	err := r.db.QueryRow(query, models.NormalizeEmail(email)).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Telephone,
		&c.PasswordHash,
		&c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrCustomerNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, nil
}
