// Package session implements the authentication store: a fixed list of demo
// accounts and an in-memory registry of active sessions. Nothing survives a
// restart; there is no token issuance and no password hashing.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"medcare/models"
)

// ErrInvalidCredentials is returned when no account matches the submitted
// email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultLoginDelay matches the simulated API latency of the original login
// flow.
const DefaultLoginDelay = time.Second

// Store authenticates against the embedded accounts and tracks active
// sessions keyed by opaque ids.
type Store struct {
	accounts   []models.Account
	loginDelay time.Duration

	mu       sync.RWMutex
	sessions map[string]models.User
}

// NewStore returns a session store seeded with the three demo accounts.
// delay is the simulated authentication latency; pass 0 to disable it.
func NewStore(delay time.Duration) *Store {
	return &Store{
		accounts:   models.SeedAccounts(),
		loginDelay: delay,
		sessions:   make(map[string]models.User),
	}
}

// Authenticate performs a linear scan over the embedded accounts requiring
// an exact match on both email and password. On success it returns the
// sanitized identity; the password never leaves this package. The simulated
// latency runs first and honors ctx cancellation.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.User{}, ctx.Err()
		}
	}

	for _, acct := range s.accounts {
		if acct.Email == email && acct.Password == password {
			return acct.User, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Create registers a new session for the given identity and returns its id.
func (s *Store) Create(user models.User) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = user
	s.mu.Unlock()
	return id
}

// Get returns the identity bound to the session id, or false.
func (s *Store) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[id]
	return user, ok
}

// Destroy removes the session. Destroying an unknown id is a no-op.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
