package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents valid order states
type OrderStatus string

// Order statuses
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// BillingAddress is the address entered in the first checkout step
type BillingAddress struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	Postcode  string
	Country   string
	Zone      string
}

// Order represents a customer order with business logic
type Order struct {
	ID            string
	Reference     string
	CustomerEmail string
	Amount        int64
	Currency      string
	Items         int
	Status        OrderStatus
	Comment       string
	Billing       BillingAddress
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Domain errors
var (
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidCustomer         = errors.New("order needs a customer email")
	ErrInvalidAddress          = errors.New("billing address is incomplete")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrOrderNotFound           = errors.New("order not found")
)

// Validate checks the fields the checkout form requires
func (a BillingAddress) Validate() error {
	var missing []string
	if !lengthBetween(a.FirstName, 1, 32) {
		missing = append(missing, "first name")
	}
	if !lengthBetween(a.LastName, 1, 32) {
		missing = append(missing, "last name")
	}
	if !lengthBetween(a.Address1, 3, 128) {
		missing = append(missing, "address 1")
	}
	if !lengthBetween(a.City, 2, 128) {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(a.Country) == "" {
		missing = append(missing, "country")
	}
	if strings.TrimSpace(a.Zone) == "" {
		missing = append(missing, "region / state")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, strings.Join(missing, ", "))
	}
	return nil
}

// NewOrder creates a pending order for everything in the cart
func NewOrder(customerEmail string, cart *Cart, billing BillingAddress, comment string) (*Order, error) {
	if customerEmail == "" {
		return nil, ErrInvalidCustomer
	}
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if err := billing.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	now := time.Now()

	return &Order{
		ID:            id,
		Reference:     "ORDER-" + strings.ToUpper(id[:8]),
		CustomerEmail: customerEmail,
		Amount:        cart.Total(),
		Currency:      Currency,
		Items:         cart.Count(),
		Status:        OrderStatusPending,
		Comment:       strings.TrimSpace(comment),
		Billing:       billing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Place confirms a pending order
func (o *Order) Place() error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: cannot place order with status %s", ErrInvalidStatusTransition, o.Status)
	}

	o.Status = OrderStatusPlaced
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel marks the order as cancelled
func (o *Order) Cancel() error {
	if o.Status == OrderStatusPlaced {
		return fmt.Errorf("%w: cannot cancel a placed order", ErrInvalidStatusTransition)
	}

	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// IsPending returns true if the order is in pending status
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsPlaced returns true if the order was confirmed
func (o *Order) IsPlaced() bool {
	return o.Status == OrderStatusPlaced
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// GetFormattedAmount returns the amount as shown on the storefront
func (o *Order) GetFormattedAmount() string {
	return FormatPrice(o.Amount)
}
