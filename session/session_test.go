package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medcare/models"
)

func TestAuthenticateSeededAccounts(t *testing.T) {
	s := NewStore(0)

	cases := []struct {
		email    string
		password string
		role     string
		name     string
	}{
		{"sarah@hospital.com", "admin123", models.RoleAdmin, "Dr. Sarah Johnson"},
		{"michael@hospital.com", "doctor123", models.RoleDoctor, "Dr. Michael Chen"},
		{"lisa@hospital.com", "nurse123", models.RoleNurse, "Nurse Lisa Rodriguez"},
	}
	for _, tc := range cases {
		user, err := s.Authenticate(context.Background(), tc.email, tc.password)
		assert.NoError(t, err, tc.email)
		assert.Equal(t, tc.role, user.Role)
		assert.Equal(t, tc.name, user.Name)
		assert.Equal(t, tc.email, user.Email)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	s := NewStore(0)

	cases := []struct {
		email    string
		password string
	}{
		{"sarah@hospital.com", "wrong"},
		{"sarah@hospital.com", "Admin123"}, // exact match required
		{"SARAH@hospital.com", "admin123"}, // email is case-sensitive too
		{"nobody@hospital.com", "admin123"},
		{"", ""},
	}
	for _, tc := range cases {
		user, err := s.Authenticate(context.Background(), tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, tc.email)
		assert.Equal(t, models.User{}, user)
	}
}

func TestAuthenticateHonorsContextCancellation(t *testing.T) {
	s := NewStore(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Authenticate(ctx, "sarah@hospital.com", "admin123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionLifecycle(t *testing.T) {
	s := NewStore(0)

	user, err := s.Authenticate(context.Background(), "michael@hospital.com", "doctor123")
	assert.NoError(t, err)

	id := s.Create(user)
	assert.NotEmpty(t, id)

	got, ok := s.Get(id)
	assert.True(t, ok)
	assert.Equal(t, user, got)

	s.Destroy(id)
	_, ok = s.Get(id)
	assert.False(t, ok)

	// Destroying an unknown id is a no-op.
	s.Destroy("never-existed")
}

func TestSessionIDsAreUnique(t *testing.T) {
	s := NewStore(0)
	user := models.User{ID: "2", Role: models.RoleDoctor}

	first := s.Create(user)
	second := s.Create(user)
	assert.NotEqual(t, first, second)
}
