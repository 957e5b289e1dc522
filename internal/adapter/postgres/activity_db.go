package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

const activityInsertColumns = 9

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) DeleteActivitiesByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE user_id = $1`, userID)
	if err != nil {
		return 0, wrapError("delete activities", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, wrapError("delete activities", err)
	}
	return deleted, nil
}

func (r *ActivityRepository) ExistingExternalIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	existing := make(map[int64]struct{})
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT external_id FROM activities WHERE external_id = ANY($1)`,
		pq.Int64Array(ids),
	)
	if err != nil {
		return nil, wrapError("check stored activities", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, wrapError("check stored activities", err)
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("check stored activities", err)
	}
	return existing, nil
}

// InsertActivities writes the batch in one statement, so a duplicate
// external id rejects the whole batch.
func (r *ActivityRepository) InsertActivities(ctx context.Context, activities []*domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(`INSERT INTO activities
		(id, user_id, bike_id, external_id, name, distance, moving_time, start_date, activity_type)
	VALUES `)

	args := make([]any, 0, len(activities)*activityInsertColumns)
	for i, a := range activities {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for col := 0; col < activityInsertColumns; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", i*activityInsertColumns+col+1)
		}
		b.WriteString(")")

		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		var bikeID any
		if a.BikeID != nil {
			bikeID = *a.BikeID
		}
		args = append(args,
			a.ID,
			a.UserID,
			bikeID,
			a.ExternalID,
			a.Name,
			a.Distance,
			a.MovingTime,
			a.StartDate,
			a.ActivityType,
		)
	}

	if _, err := r.db.ExecContext(ctx, b.String(), args...); err != nil {
		return wrapError("insert activities", err)
	}
	return nil
}

// SumDistanceSince adds up the distance of activities ridden on bikeID at
// or after since.
func (r *ActivityRepository) SumDistanceSince(ctx context.Context, bikeID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(distance), 0) FROM activities
		WHERE bike_id = $1 AND start_date >= $2`

	var sum int64
	if err := r.db.QueryRowContext(ctx, query, bikeID, since).Scan(&sum); err != nil {
		return 0, wrapError("sum activity distance", err)
	}
	return sum, nil
}

func (r *ActivityRepository) GetActivityStats(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ActivityStats, error) {
	query := `SELECT
			COUNT(*),
			COALESCE(SUM(distance), 0),
			COUNT(*) FILTER (WHERE start_date >= $2),
			COALESCE(SUM(distance) FILTER (WHERE start_date >= $2), 0)
		FROM activities
		WHERE user_id = $1`

	stats := &domain.ActivityStats{}
	err := r.db.QueryRowContext(ctx, query, userID, since).Scan(
		&stats.TotalActivities,
		&stats.TotalDistance,
		&stats.Last30Days.Activities,
		&stats.Last30Days.Distance,
	)
	if err != nil {
		return nil, wrapError("activity stats", err)
	}
	return stats, nil
}
