// Package auth provides credential handling for the dividir backend:
// bcrypt-backed registration/login and JWT session tokens. The receipt
// services never read ambient identity; they take the principal from claims
// the middleware verified and stored in the request context.
package auth

import (
	"context"

	"github.com/dividircl/backend/internal/models"
)

// Authenticator verifies user credentials and creates accounts.
type Authenticator interface {
	// Register creates a new account from an email, display name and
	// credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies a credential and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks that a credential meets minimum strength
	// requirements.
	ValidateCredential(credential string) error
}
