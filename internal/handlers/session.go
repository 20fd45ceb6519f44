package handlers

import (
	"net/http"
	"sync"
)

// SessionCookie names the browser session cookie
const SessionCookie = "OCSESSID"

// Sessions maps browser session IDs to the signed-in customer's email. Only IDs
// this table issued are honoured.
type Sessions struct {
	mu        sync.RWMutex
	issued    map[string]struct{}
	customers map[string]string
	newID     func() string
}

// NewSessions creates an empty session table. newID mints IDs for new browsers.
func NewSessions(newID func() string) *Sessions {
	return &Sessions{
		issued:    map[string]struct{}{},
		customers: map[string]string{},
		newID:     newID,
	}
}

// ID returns the request's session ID. A browser with no cookie, or with one this
// table never issued, gets a new ID and cookie.
func (s *Sessions) ID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && s.known(c.Value) {
		return c.Value
	}

	id := s.newID()
	s.mu.Lock()
	s.issued[id] = struct{}{}
	s.mu.Unlock()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Sessions) known(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.issued[id]
	return ok
}

// Customer returns the email signed in on the session
func (s *Sessions) Customer(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.customers[id]
	return email, ok
}

func (s *Sessions) SignIn(id, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[id] = email
}

func (s *Sessions) SignOut(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.customers, id)
}
