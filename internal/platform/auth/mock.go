package auth

import (
	"context"
)

// MockVerifier provides fake token verification for tests.
type MockVerifier struct {
	User  *FirebaseUser
	Error error
}

// Verify returns the configured user or error.
func (m *MockVerifier) Verify(_ context.Context, _ string) (*FirebaseUser, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

// TestUser returns a standard test user.
func TestUser() *FirebaseUser {
	return &FirebaseUser{
		UID:           "test-user-123",
		Email:         "test@example.com",
		EmailVerified: true,
	}
}

// MockAccounts records account deletions for tests.
type MockAccounts struct {
	Deleted []string
	Error   error
}

// DeleteUser records the UID or returns the configured error.
func (m *MockAccounts) DeleteUser(_ context.Context, uid string) error {
	if m.Error != nil {
		return m.Error
	}
	m.Deleted = append(m.Deleted, uid)
	return nil
}

// Compile-time interface checks
var (
	_ Verifier = (*MockVerifier)(nil)
	_ Accounts = (*MockAccounts)(nil)
)
