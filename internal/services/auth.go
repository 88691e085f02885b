package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursebooking/internal/domain"
)

const managerRole = "manager"

// ManagerAccount is the single shop-manager account, loaded from
// configuration. PasswordHash and Salt follow the bcrypt hasher's scheme.
type ManagerAccount struct {
	Email        string
	PasswordHash string
	Salt         string
}

type authService struct {
	account   ManagerAccount
	hasher    domain.PasswordHasher
	issuer    domain.TokenIssuer
	jwtExpiry time.Duration
}

// NewAuthService creates the manager AuthService. There is no sign-up:
// the only account comes from configuration, mirroring the capability
// check a shop staff role would provide.
func NewAuthService(account ManagerAccount, hasher domain.PasswordHasher, issuer domain.TokenIssuer, jwtExpiry time.Duration) domain.AuthService {
	return &authService{account: account, hasher: hasher, issuer: issuer, jwtExpiry: jwtExpiry}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("email and password are required: %w", domain.ErrInvalidInput)
	}
	if email != strings.ToLower(s.account.Email) {
		return "", domain.ErrForbidden
	}
	if err := s.hasher.Compare(s.account.PasswordHash, s.account.Salt, password); err != nil {
		return "", domain.ErrForbidden
	}
	token, err := s.issuer.Issue(email, email, []string{managerRole}, s.jwtExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
