package services

import (
	"fmt"

	"github.com/themizzi/shopcheck/internal/models"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	CreateOrder(order *models.Order) error
	GetOrderByReference(reference string) (*models.Order, error)
	ListOrdersByCustomer(email string) ([]*models.Order, error)
	UpdateOrderStatus(reference string, status models.OrderStatus) error
}

// OrderService handles order business logic
type OrderService interface {
	PlaceOrder(customerEmail string, cart *models.Cart, billing models.BillingAddress, comment string) (*models.Order, error)
	GetOrderByReference(reference string) (*models.Order, error)
	ListOrders(customerEmail string) ([]*models.Order, error)
	CancelOrder(reference string) error
}

// OrderServiceImpl implements OrderService
type OrderServiceImpl struct {
	orderRepo OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
	}
}

// PlaceOrder records a pending order for the cart and then confirms it
func (s *OrderServiceImpl) PlaceOrder(customerEmail string, cart *models.Cart, billing models.BillingAddress, comment string) (*models.Order, error) {
	order, err := models.NewOrder(customerEmail, cart, billing, comment)
	if err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	if err := s.orderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := order.Place(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateOrderStatus(order.Reference, order.Status); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	return order, nil
}

// GetOrderByReference retrieves an order by its reference
func (s *OrderServiceImpl) GetOrderByReference(reference string) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListOrders returns a customer's order history, newest first
func (s *OrderServiceImpl) ListOrders(customerEmail string) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListOrdersByCustomer(customerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// CancelOrder cancels an order that has not been placed
func (s *OrderServiceImpl) CancelOrder(reference string) error {
	order, err := s.orderRepo.GetOrderByReference(reference)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	if err := order.Cancel(); err != nil {
		return err
	}

	if err := s.orderRepo.UpdateOrderStatus(reference, order.Status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
