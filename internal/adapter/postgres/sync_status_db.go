package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type SyncStatusRepository struct {
	db *sql.DB
}

func NewSyncStatusRepository(db *sql.DB) *SyncStatusRepository {
	return &SyncStatusRepository{db: db}
}

func (r *SyncStatusRepository) GetSyncStatus(ctx context.Context, userID uuid.UUID) (*domain.SyncStatus, error) {
	query := `SELECT user_id, last_activity_sync, last_bike_sync, last_sync_error, updated_at
		FROM sync_status WHERE user_id = $1`

	var (
		status       domain.SyncStatus
		activitySync sql.NullTime
		bikeSync     sql.NullTime
		syncErr      sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&status.UserID,
		&activitySync,
		&bikeSync,
		&syncErr,
		&status.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError("get sync status", err)
	}

	if activitySync.Valid {
		status.LastActivitySync = &activitySync.Time
	}
	if bikeSync.Valid {
		status.LastBikeSync = &bikeSync.Time
	}
	status.LastSyncError = stringPtr(syncErr)
	return &status, nil
}

// RecordActivitySync keeps the previous last_activity_sync when at is nil.
func (r *SyncStatusRepository) RecordActivitySync(ctx context.Context, userID uuid.UUID, at *time.Time, syncErr *string) error {
	query := `INSERT INTO sync_status (user_id, last_activity_sync, last_sync_error, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			last_activity_sync = COALESCE(EXCLUDED.last_activity_sync, sync_status.last_activity_sync),
			last_sync_error = EXCLUDED.last_sync_error,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, userID, at, syncErr); err != nil {
		return wrapError("record activity sync", err)
	}
	return nil
}

func (r *SyncStatusRepository) ResetActivitySync(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE sync_status SET last_activity_sync = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return wrapError("reset activity sync", err)
	}
	return nil
}

func (r *SyncStatusRepository) RecordBikeSync(ctx context.Context, userID uuid.UUID, at time.Time, syncErr *string) error {
	query := `INSERT INTO sync_status (user_id, last_bike_sync, last_sync_error, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			last_bike_sync = EXCLUDED.last_bike_sync,
			last_sync_error = EXCLUDED.last_sync_error,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, userID, at, syncErr); err != nil {
		return wrapError("record bike sync", err)
	}
	return nil
}
