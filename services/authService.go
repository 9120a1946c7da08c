package services

import (
	"context"

	"medcare/models"
	"medcare/session"
)

// AuthService mediates between the HTTP layer and the session store.
type AuthService struct {
	sessions *session.Store
}

func NewAuthService(sessions *session.Store) *AuthService {
	return &AuthService{sessions: sessions}
}

// Login authenticates the credentials and, on success, opens a session.
// Returns the sanitized identity and the session id.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.sessions.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, "", err
	}
	return user, s.sessions.Create(user), nil
}

// Logout destroys the session. Unknown session ids are a no-op.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.Destroy(sessionID)
}

// CurrentUser resolves a session id to its identity.
func (s *AuthService) CurrentUser(sessionID string) (models.User, bool) {
	return s.sessions.Get(sessionID)
}
