package services

import (
	"errors"
	"testing"

	"github.com/themizzi/shopcheck/internal/models"
)

// MockOrderRepository is a mock implementation of OrderRepository for testing
type MockOrderRepository struct {
	CreateOrderFunc          func(*models.Order) error
	GetOrderByReferenceFunc  func(string) (*models.Order, error)
	ListOrdersByCustomerFunc func(string) ([]*models.Order, error)
	UpdateOrderStatusFunc    func(string, models.OrderStatus) error
}

func (m *MockOrderRepository) CreateOrder(order *models.Order) error {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(order)
	}
	return nil
}

func (m *MockOrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	if m.GetOrderByReferenceFunc != nil {
		return m.GetOrderByReferenceFunc(reference)
	}
	return &models.Order{Reference: reference}, nil
}

func (m *MockOrderRepository) ListOrdersByCustomer(email string) ([]*models.Order, error) {
	if m.ListOrdersByCustomerFunc != nil {
		return m.ListOrdersByCustomerFunc(email)
	}
	return nil, nil
}

func (m *MockOrderRepository) UpdateOrderStatus(reference string, status models.OrderStatus) error {
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(reference, status)
	}
	return nil
}

func testCart(qty int) *models.Cart {
	cart := &models.Cart{ID: "session-1"}
	if qty > 0 {
		_ = cart.Add(DefaultProducts[0], qty)
	}
	return cart
}

func testBilling() models.BillingAddress {
	return models.BillingAddress{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address1:  "12 Analytical Row",
		City:      "Austin",
		Country:   "United States",
		Zone:      "Texas",
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name        string
		cart        *models.Cart
		createError error
		updateError error
		wantErr     error
	}{
		{
			name: "successful order",
			cart: testCart(4),
		},
		{
			name:    "empty cart",
			cart:    testCart(0),
			wantErr: models.ErrEmptyCart,
		},
		{
			name:        "create fails",
			cart:        testCart(1),
			createError: errors.New("database error"),
		},
		{
			name:        "status update fails",
			cart:        testCart(1),
			updateError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *models.Order
			var updated models.OrderStatus
			mockRepo := &MockOrderRepository{
				CreateOrderFunc: func(order *models.Order) error {
					if tt.createError != nil {
						return tt.createError
					}
					if order.Status != models.OrderStatusPending {
						t.Errorf("Expected order to be stored as pending, got %s", order.Status)
					}
					created = order
					return nil
				},
				UpdateOrderStatusFunc: func(reference string, status models.OrderStatus) error {
					if tt.updateError != nil {
						return tt.updateError
					}
					updated = status
					return nil
				},
			}

			service := NewOrderService(mockRepo)
			order, err := service.PlaceOrder("ada@shopcheck.test", tt.cart, testBilling(), "testing...")

			wantErr := tt.wantErr != nil || tt.createError != nil || tt.updateError != nil
			if (err != nil) != wantErr {
				t.Fatalf("PlaceOrder() error = %v, wantErr %v", err, wantErr)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("PlaceOrder() error = %v, want %v", err, tt.wantErr)
			}
			if wantErr {
				return
			}

			if created == nil || created.Reference != order.Reference {
				t.Fatal("Expected the placed order to be persisted")
			}
			if updated != models.OrderStatusPlaced || !order.IsPlaced() {
				t.Errorf("Expected order to be placed, got %s", order.Status)
			}
			if order.GetFormattedAmount() != "$2,408.00" {
				t.Errorf("Expected $2,408.00, got %s", order.GetFormattedAmount())
			}
		})
	}
}

func TestOrderService_GetOrderByReference(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		mockOrder *models.Order
		mockError error
		wantErr   bool
	}{
		{
			name:      "successful retrieval",
			reference: "ORDER-123",
			mockOrder: &models.Order{Reference: "ORDER-123", Amount: 100},
		},
		{
			name:      "order not found",
			reference: "ORDER-999",
			mockError: models.ErrOrderNotFound,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockOrderRepository{
				GetOrderByReferenceFunc: func(reference string) (*models.Order, error) {
					if tt.mockError != nil {
						return nil, tt.mockError
					}
					return tt.mockOrder, nil
				},
			}

			service := NewOrderService(mockRepo)
			order, err := service.GetOrderByReference(tt.reference)

			if (err != nil) != tt.wantErr {
				t.Errorf("GetOrderByReference() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, models.ErrOrderNotFound) {
				t.Errorf("Expected ErrOrderNotFound to be wrapped, got %v", err)
			}
			if !tt.wantErr && order == nil {
				t.Error("Expected order to be returned, got nil")
			}
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	tests := []struct {
		name      string
		status    models.OrderStatus
		mockError error
		wantErr   bool
	}{
		{
			name:   "cancel pending order",
			status: models.OrderStatusPending,
		},
		{
			name:    "cannot cancel placed order",
			status:  models.OrderStatusPlaced,
			wantErr: true,
		},
		{
			name:      "repository error",
			status:    models.OrderStatusPending,
			mockError: errors.New("database error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockOrderRepository{
				GetOrderByReferenceFunc: func(reference string) (*models.Order, error) {
					return &models.Order{Reference: reference, Status: tt.status}, nil
				},
				UpdateOrderStatusFunc: func(reference string, status models.OrderStatus) error {
					if status != models.OrderStatusCancelled {
						t.Errorf("Expected cancelled status, got %s", status)
					}
					return tt.mockError
				},
			}

			err := NewOrderService(mockRepo).CancelOrder("ORDER-123")

			if (err != nil) != tt.wantErr {
				t.Errorf("CancelOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	mockRepo := &MockOrderRepository{
		ListOrdersByCustomerFunc: func(email string) ([]*models.Order, error) {
			if email != "ada@shopcheck.test" {
				return nil, errors.New("unexpected email")
			}
			return []*models.Order{{Reference: "ORDER-2"}, {Reference: "ORDER-1"}}, nil
		},
	}

	orders, err := NewOrderService(mockRepo).ListOrders("ada@shopcheck.test")
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("Expected 2 orders, got %d", len(orders))
	}
}
