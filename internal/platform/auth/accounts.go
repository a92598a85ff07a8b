package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// Accounts manages Firebase user accounts. Separate from Verifier so handlers
// that only read identity never hold a deletion capability.
type Accounts interface {
	DeleteUser(ctx context.Context, uid string) error
}

// FirebaseAccounts implements Accounts using the Firebase Admin SDK.
type FirebaseAccounts struct {
	client *fbauth.Client
}

// NewFirebaseAccounts creates account management backed by the given auth client.
func NewFirebaseAccounts(client *fbauth.Client) *FirebaseAccounts {
	return &FirebaseAccounts{client: client}
}

// DeleteUser removes the Firebase account. A user that is already gone is
// treated as deleted.
func (a *FirebaseAccounts) DeleteUser(ctx context.Context, uid string) error {
	if err := a.client.DeleteUser(ctx, uid); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil
		}
		return fmt.Errorf("deleting user %s: %w", uid, err)
	}
	return nil
}

// Compile-time interface check
var _ Accounts = (*FirebaseAccounts)(nil)
