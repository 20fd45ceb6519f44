package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/themizzi/shopcheck/internal/models"
)

// MemoryCustomerRepository keeps customers in process memory
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]models.Customer
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{customers: map[string]models.Customer{}}
}

func (r *MemoryCustomerRepository) CreateCustomer(c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := models.NormalizeEmail(c.Email)
	if _, ok := r.customers[key]; ok {
		return fmt.Errorf("%w: %s", models.ErrDuplicateCustomer, c.Email)
	}
	r.customers[key] = *c
	return nil
}

func (r *MemoryCustomerRepository) GetCustomerByEmail(email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[models.NormalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrCustomerNotFound, email)
	}
	return &c, nil
}

// MemoryOrderRepository keeps orders in process memory
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: map[string]models.Order{}}
}

func (r *MemoryOrderRepository) CreateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.Reference]; ok {
		return fmt.Errorf("failed to create order: duplicate reference %s", order.Reference)
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.Reference] = *order
	return nil
}

func (r *MemoryOrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[reference]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrOrderNotFound, reference)
	}
	return &order, nil
}

func (r *MemoryOrderRepository) ListOrdersByCustomer(email string) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*models.Order
	for _, o := range r.orders {
		if o.CustomerEmail == email {
			o := o
			orders = append(orders, &o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *MemoryOrderRepository) UpdateOrderStatus(reference string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[reference]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrOrderNotFound, reference)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[reference] = order
	return nil
}
