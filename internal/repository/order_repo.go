package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/themizzi/shopcheck/internal/models"
)

// OrderRepository stores orders in PostgreSQL
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates an order repository over db
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

const orderColumns = `id, reference, customer_email, amount, currency, items, status, comment,
		       billing_first_name, billing_last_name, billing_address_1, billing_address_2,
		       billing_city, billing_postcode, billing_country, billing_zone, created_at, updated_at`

// CreateOrder creates a new order in the database
func (r *OrderRepository) CreateOrder(order *models.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	now := time.Now()
	b := order.Billing
	_, err := r.db.Exec(query,
		order.ID,
		order.Reference,
		order.CustomerEmail,
		order.Amount,
		order.Currency,
		order.Items,
		order.Status,
		order.Comment,
		b.FirstName, b.LastName, b.Address1, b.Address2,
		b.City, b.Postcode, b.Country, b.Zone,
		now,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	order.CreatedAt = now
	order.UpdatedAt = now

	return nil
}

// GetOrderByReference retrieves an order by its reference
func (r *OrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE reference = $1`

	order, err := scanOrder(r.db.QueryRow(query, reference))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrOrderNotFound, reference)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// ListOrdersByCustomer returns a customer's orders, newest first
func (r *OrderRepository) ListOrdersByCustomer(email string) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_email = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus updates the status of an order
func (r *OrderRepository) UpdateOrderStatus(reference string, status models.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE reference = $3
	`

	result, err := r.db.Exec(query, status, time.Now(), reference)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", models.ErrOrderNotFound, reference)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}
	b := &order.Billing
	err := row.Scan(
		&order.ID,
		&order.Reference,
		&order.CustomerEmail,
		&order.Amount,
		&order.Currency,
		&order.Items,
		&order.Status,
		&order.Comment,
		&b.FirstName, &b.LastName, &b.Address1, &b.Address2,
		&b.City, &b.Postcode, &b.Country, &b.Zone,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
