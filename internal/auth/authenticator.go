package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
)

var (
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "invalid credentials")
	ErrUnauthorized       = apperr.New(apperr.ErrUnauthorized, "unauthorized")
)

// Authenticator checks admin credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

// StaticAuthenticator compares against fixed credentials with plain string
// equality. It is a capability gate, not a credential store; use
// BcryptAuthenticator when a hashed password is configured.
type StaticAuthenticator struct {
	Username string
	Password string
}

func (a StaticAuthenticator) Authenticate(_ context.Context, username, password string) error {
	if username == a.Username && password == a.Password {
		return nil
	}
	return ErrInvalidCredentials
}

type BcryptAuthenticator struct {
	Username string
	Hash     []byte
}

func (a BcryptAuthenticator) Authenticate(_ context.Context, username, password string) error {
	if username != a.Username {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.Hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NewAuthenticator prefers the bcrypt hash when one is configured.
func NewAuthenticator(username, password, passwordHash string) Authenticator {
	if passwordHash != "" {
		return BcryptAuthenticator{Username: username, Hash: []byte(passwordHash)}
	}
	return StaticAuthenticator{Username: username, Password: password}
}
