package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

const (
	insertTokenQuery = `
INSERT INTO auth_tokens (user_id, token_hash, expires_at)
VALUES (?, ?, ?);
`

	deleteTokenQuery = `
DELETE FROM auth_tokens
WHERE token_hash = ?;
`

	getUserByTokenHashQuery = `
SELECT u.id, u.name, u.email, u.password_hash, u.created_at, u.updated_at
FROM auth_tokens t
JOIN users u ON u.id = t.user_id
WHERE t.token_hash = ?
  AND (t.expires_at IS NULL OR t.expires_at > NOW());
`
)

type TokenRepository struct {
	db *sqlx.DB
}

var _ ports.TokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) StoreToken(ctx context.Context, userID uint64, tokenHash string, expiresAt *time.Time) error {
	_, err := r.db.ExecContext(ctx, insertTokenQuery, userID, tokenHash, expiresAt)
	return err
}

func (r *TokenRepository) DeleteToken(ctx context.Context, tokenHash string) error {
	result, err := r.db.ExecContext(ctx, deleteTokenQuery, tokenHash)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvalidToken
	}
	return nil
}

func (r *TokenRepository) GetUserByTokenHash(ctx context.Context, tokenHash string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserByTokenHashQuery, tokenHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrInvalidToken
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}
