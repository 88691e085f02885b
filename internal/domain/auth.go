package domain

import (
	"context"
	"time"
)

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated manager.
type TokenIssuer interface {
	Issue(subject, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthService authenticates the shop manager. The manager account comes
// from configuration; there is no shopper sign-up.
type AuthService interface {
	// Login checks the credentials and returns a bearer token for the
	// admin endpoints. Wrong credentials return ErrForbidden.
	Login(ctx context.Context, email, password string) (token string, err error)
}
