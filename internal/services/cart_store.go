package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/themizzi/shopcheck/internal/models"
)

// CartStore keeps one cart per browser session
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[string]*models.Cart{}}
}

// NewSessionID returns an ID for a new browser session
func (s *CartStore) NewSessionID() string {
	return uuid.New().String()
}

// Get returns a copy of the session's cart, empty when it has none
func (s *CartStore) Get(sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return &models.Cart{ID: sessionID}
	}
	return &models.Cart{ID: cart.ID, Lines: append([]models.CartLine(nil), cart.Lines...)}
}

// Add puts qty of p in the session's cart
func (s *CartStore) Add(sessionID string, p models.Product, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &models.Cart{ID: sessionID}
	}
	if err := cart.Add(p, qty); err != nil {
		return err
	}
	s.carts[sessionID] = cart
	return nil
}

// Clear drops the session's cart
func (s *CartStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
