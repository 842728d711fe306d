package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore implements UserStore with process-local storage.
// Users are kept in creation order so listings are stable.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]*User
	order []string
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users: make(map[string]*User),
	}
}

// CreateUser stores a copy of the user
func (s *InMemoryStore) CreateUser(ctx context.Context, user *User) error {
	if user == nil || user.ID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user with id %s already exists", user.ID)
	}

	s.users[user.ID] = user.Clone()
	s.order = append(s.order, user.ID)
	return nil
}

// GetUser retrieves a copy of the user by ID
func (s *InMemoryStore) GetUser(ctx context.Context, userID string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, false
	}
	return user.Clone(), true
}

// SetStatus updates the status of a non-admin user
func (s *InMemoryStore) SetStatus(ctx context.Context, userID string, status UserStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists || user.IsAdmin {
		return false
	}

	user.Status = status
	user.UpdatedAt = time.Now()
	return true
}

// ListUsers returns copies of all users in creation order
func (s *InMemoryStore) ListUsers(ctx context.Context) []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id].Clone())
	}
	return users
}

// Clear removes every user
func (s *InMemoryStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*User)
	s.order = nil
}

func newUserID() string {
	return uuid.New().String()
}
