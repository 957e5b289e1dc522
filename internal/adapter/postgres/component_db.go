package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

const componentColumns = `id, bike_id, type, name, icon, brand, model, notes, recommended_distance,
	current_distance, bike_distance_at_install, installed_at, replaced_at, created_at, updated_at`

const insertComponentQuery = `INSERT INTO components (id, bike_id, type, name, icon, brand, model, notes,
		recommended_distance, current_distance, bike_distance_at_install, installed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING created_at, updated_at`

// execQuerier is satisfied by *sql.DB and *sql.Tx.
type execQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ComponentRepository struct {
	db *sql.DB
}

func NewComponentRepository(db *sql.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

func scanComponent(row rowScanner) (*domain.Component, error) {
	var (
		component  domain.Component
		icon       sql.NullString
		replacedAt sql.NullTime
	)

	err := row.Scan(
		&component.ID,
		&component.BikeID,
		&component.Type,
		&component.Name,
		&icon,
		&component.Brand,
		&component.Model,
		&component.Notes,
		&component.RecommendedDistance,
		&component.CurrentDistance,
		&component.BikeDistanceAtInstall,
		&component.InstalledAt,
		&replacedAt,
		&component.CreatedAt,
		&component.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	component.Icon = stringPtr(icon)
	if replacedAt.Valid {
		component.ReplacedAt = &replacedAt.Time
	}
	return &component, nil
}

func insertComponent(ctx context.Context, q execQuerier, component *domain.Component) error {
	if component.ID == uuid.Nil {
		component.ID = uuid.New()
	}
	if component.InstalledAt.IsZero() {
		component.InstalledAt = time.Now()
	}

	return q.QueryRowContext(ctx, insertComponentQuery,
		component.ID,
		component.BikeID,
		string(component.Type),
		component.Name,
		component.Icon,
		component.Brand,
		component.Model,
		component.Notes,
		component.RecommendedDistance,
		component.CurrentDistance,
		component.BikeDistanceAtInstall,
		component.InstalledAt,
	).Scan(
		&component.CreatedAt,
		&component.UpdatedAt,
	)
}

func (r *ComponentRepository) CreateComponent(ctx context.Context, component *domain.Component) (*domain.Component, error) {
	if err := insertComponent(ctx, r.db, component); err != nil {
		return nil, wrapError("create component", err)
	}
	return component, nil
}

// CreateComponents inserts all rows or none.
func (r *ComponentRepository) CreateComponents(ctx context.Context, components []*domain.Component) error {
	if len(components) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapError("begin create components", err)
	}
	defer tx.Rollback()

	for _, c := range components {
		if err := insertComponent(ctx, tx, c); err != nil {
			return wrapError(fmt.Sprintf("create component %s", c.Type), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapError("commit create components", err)
	}
	return nil
}

func (r *ComponentRepository) GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1`

	component, err := scanComponent(r.db.QueryRowContext(ctx, query, componentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("component")
	}
	if err != nil {
		return nil, wrapError("get component", err)
	}
	return component, nil
}

func (r *ComponentRepository) queryComponents(ctx context.Context, op, query string, args ...any) ([]*domain.Component, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError(op, err)
	}
	defer rows.Close()

	var components []*domain.Component
	for rows.Next() {
		component, err := scanComponent(rows)
		if err != nil {
			return nil, wrapError(op, err)
		}
		components = append(components, component)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapError(op, err)
	}
	return components, nil
}

// GetComponentsByBikeID returns active and replaced rows, newest first.
func (r *ComponentRepository) GetComponentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE bike_id = $1
		ORDER BY installed_at DESC`

	return r.queryComponents(ctx, "list components", query, bikeID)
}

func (r *ComponentRepository) GetActiveComponentsByBikeIDs(ctx context.Context, bikeIDs []uuid.UUID) ([]*domain.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components
		WHERE bike_id = ANY($1::uuid[]) AND replaced_at IS NULL`

	ids := make(pq.StringArray, 0, len(bikeIDs))
	for _, id := range bikeIDs {
		ids = append(ids, id.String())
	}
	return r.queryComponents(ctx, "list active components", query, ids)
}

func (r *ComponentRepository) GetComponentHistory(ctx context.Context, bikeID uuid.UUID, t domain.ComponentType) ([]*domain.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components
		WHERE bike_id = $1 AND type = $2
		ORDER BY installed_at DESC`

	return r.queryComponents(ctx, "component history", query, bikeID, string(t))
}

func (r *ComponentRepository) UpdateComponent(ctx context.Context, component *domain.Component) (*domain.Component, error) {
	query := `UPDATE components
		SET
			name = $1,
			brand = $2,
			model = $3,
			notes = $4,
			recommended_distance = $5,
			current_distance = $6,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING ` + componentColumns

	updated, err := scanComponent(r.db.QueryRowContext(ctx, query,
		component.Name,
		component.Brand,
		component.Model,
		component.Notes,
		component.RecommendedDistance,
		component.CurrentDistance,
		component.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("component")
	}
	if err != nil {
		return nil, wrapError("update component", err)
	}
	return updated, nil
}

// UpdateCurrentDistance only touches active rows.
func (r *ComponentRepository) UpdateCurrentDistance(ctx context.Context, componentID uuid.UUID, distance int64) error {
	query := `UPDATE components SET current_distance = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND replaced_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, distance, componentID)
	if err != nil {
		return wrapError("update component distance", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapError("update component distance", err)
	}
	if rowsAffected == 0 {
		return domain.NotFoundError("active component")
	}
	return nil
}

// ReplaceComponent marks the component replaced and inserts its successor
// in one transaction. The replaced_at guard makes a concurrent second
// replace fail with ErrAlreadyReplaced.
func (r *ComponentRepository) ReplaceComponent(
	ctx context.Context,
	componentID uuid.UUID,
	replacedAt time.Time,
	notes *string,
	successor *domain.Component,
) (*domain.Component, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapError("begin replace component", err)
	}
	defer tx.Rollback()

	retire := `UPDATE components
		SET replaced_at = $1, notes = COALESCE($2, notes), updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND replaced_at IS NULL`

	result, err := tx.ExecContext(ctx, retire, replacedAt, notes, componentID)
	if err != nil {
		return nil, wrapError("retire component", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, wrapError("retire component", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM components WHERE id = $1)`, componentID).Scan(&exists); err != nil {
			return nil, wrapError("retire component", err)
		}
		if exists {
			return nil, domain.ErrAlreadyReplaced
		}
		return nil, domain.NotFoundError("component")
	}

	if err := insertComponent(ctx, tx, successor); err != nil {
		return nil, wrapError("insert successor", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapError("commit replace component", err)
	}
	return successor, nil
}

func (r *ComponentRepository) DeleteComponent(ctx context.Context, componentID uuid.UUID) error {
	query := `DELETE FROM components WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, componentID)
	if err != nil {
		return wrapError("delete component", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapError("delete component", err)
	}

	if rowsAffected == 0 {
		return domain.NotFoundError("component")
	}

	return nil
}
