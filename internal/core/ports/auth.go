package ports

import (
	"context"
	"time"

	"taskforge/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
}

// TokenRepository persists opaque bearer tokens as SHA-256 digests. A token
// row existing (and not being past its expiry) is what makes it valid;
// revocation is plain row deletion.
type TokenRepository interface {
	StoreToken(ctx context.Context, userID uint64, tokenHash string, expiresAt *time.Time) error
	DeleteToken(ctx context.Context, tokenHash string) error
	GetUserByTokenHash(ctx context.Context, tokenHash string) (domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
