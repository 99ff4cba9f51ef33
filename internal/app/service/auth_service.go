package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 8
	tokenByteLength   = 32
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenRepository
	tokenTTL time.Duration
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService builds the credential store. tokenTTL of zero means issued
// tokens never expire.
func NewAuthService(users ports.UserRepository, tokens ports.TokenRepository, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	verr := &domain.ValidationError{}

	switch {
	case input.Name == "":
		verr.Add("name", apierrors.MsgNameRequired)
	case len(input.Name) > maxNameLength:
		verr.Add("name", apierrors.MsgNameTooLong)
	}

	switch {
	case input.Email == "":
		verr.Add("email", apierrors.MsgEmailRequired)
	case len(input.Email) > maxEmailLength:
		verr.Add("email", apierrors.MsgEmailTooLong)
	case !emailPattern.MatchString(input.Email):
		verr.Add("email", apierrors.MsgEmailInvalid)
	default:
		exists, err := s.users.ExistsUserByEmail(ctx, input.Email)
		if err != nil {
			return domain.User{}, err
		}
		if exists {
			verr.Add("email", apierrors.MsgEmailTaken)
		}
	}

	switch {
	case input.Password == "":
		verr.Add("password", apierrors.MsgPasswordRequired)
	case len(input.Password) < minPasswordLength:
		verr.Add("password", apierrors.MsgPasswordTooShort)
	case input.Password != input.PasswordConfirmation:
		verr.Add("password", apierrors.MsgPasswordMismatch)
	}

	if !verr.Empty() {
		return domain.User{}, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.users.CreateUser(ctx, input.Name, input.Email, string(hash))
	if errors.Is(err, domain.ErrEmailTaken) {
		// Concurrent registration slipped past the pre-check; the unique
		// index on email caught it.
		return domain.User{}, domain.NewValidationError("email", apierrors.MsgEmailTaken)
	}
	return user, err
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrUserNotFound) {
		// Unknown email and wrong password are indistinguishable to the caller.
		return "", domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", domain.User{}, err
	}

	var expiresAt *time.Time
	if s.tokenTTL > 0 {
		value := time.Now().Add(s.tokenTTL)
		expiresAt = &value
	}

	if err := s.tokens.StoreToken(ctx, user.ID, HashToken(token), expiresAt); err != nil {
		return "", domain.User{}, err
	}

	return token, user, nil
}

// Logout revokes exactly the presented token. Other tokens issued to the
// same user stay valid.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidToken
	}
	return s.tokens.DeleteToken(ctx, HashToken(token))
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrInvalidToken
	}
	return s.tokens.GetUserByTokenHash(ctx, HashToken(token))
}

func generateToken() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex SHA-256 digest under which a token is stored.
// Only digests touch the database, so a leaked table cannot be replayed.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
