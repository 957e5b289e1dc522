package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type TokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) GetToken(ctx context.Context, userID uuid.UUID) (*domain.StravaToken, error) {
	query := `SELECT user_id, access_token, refresh_token, expires_at
		FROM user_tokens WHERE user_id = $1`

	token := &domain.StravaToken{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&token.UserID,
		&token.AccessToken,
		&token.RefreshToken,
		&token.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("strava token")
	}
	if err != nil {
		return nil, wrapError("get token", err)
	}
	return token, nil
}

func (r *TokenRepository) SaveToken(ctx context.Context, token *domain.StravaToken) error {
	query := `INSERT INTO user_tokens (user_id, access_token, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = CURRENT_TIMESTAMP`

	_, err := r.db.ExecContext(ctx, query, token.UserID, token.AccessToken, token.RefreshToken, token.ExpiresAt)
	if err != nil {
		return wrapError("save token", err)
	}
	return nil
}
