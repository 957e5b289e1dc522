package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

const bikeColumns = `user_id, bike_id, external_id, bike_name, brand_name, model_name, frame_type,
	description, total_distance, is_primary, retired, shifting_type, brake_type,
	drivetrain_speed, tire_system, config_complete, deleted_defaults, created_at, updated_at`

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

func scanBike(row rowScanner) (*domain.Bike, error) {
	var (
		bike        domain.Bike
		externalID  sql.NullString
		brandName   sql.NullString
		modelName   sql.NullString
		frameType   sql.NullInt64
		description sql.NullString
		shifting    sql.NullString
		brake       sql.NullString
		speed       sql.NullInt64
		tires       sql.NullString
		deleted     pq.StringArray
	)

	err := row.Scan(
		&bike.UserID,
		&bike.BikeID,
		&externalID,
		&bike.BikeName,
		&brandName,
		&modelName,
		&frameType,
		&description,
		&bike.TotalDistance,
		&bike.IsPrimary,
		&bike.Retired,
		&shifting,
		&brake,
		&speed,
		&tires,
		&bike.ConfigComplete,
		&deleted,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	bike.ExternalID = externalID.String
	bike.BrandName = stringPtr(brandName)
	bike.ModelName = stringPtr(modelName)
	bike.Description = stringPtr(description)
	if frameType.Valid {
		v := int(frameType.Int64)
		bike.FrameType = &v
	}
	if shifting.Valid {
		v := domain.ShiftingType(shifting.String)
		bike.ShiftingType = &v
	}
	if brake.Valid {
		v := domain.BrakeType(brake.String)
		bike.BrakeType = &v
	}
	if speed.Valid {
		v := int(speed.Int64)
		bike.DrivetrainSpeed = &v
	}
	if tires.Valid {
		v := domain.TireSystem(tires.String)
		bike.TireSystem = &v
	}

	bike.DeletedDefaults = make([]domain.ComponentType, 0, len(deleted))
	for _, t := range deleted {
		bike.DeletedDefaults = append(bike.DeletedDefaults, domain.ComponentType(t))
	}

	return &bike, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func typeArray(types []domain.ComponentType) pq.StringArray {
	out := make(pq.StringArray, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (user_id, bike_id, external_id, bike_name, brand_name, model_name,
		frame_type, description, total_distance, is_primary, deleted_defaults)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING ` + bikeColumns

	created, err := scanBike(r.db.QueryRowContext(ctx, query,
		bike.UserID,
		bike.BikeID,
		nullIfEmpty(bike.ExternalID),
		bike.BikeName,
		bike.BrandName,
		bike.ModelName,
		bike.FrameType,
		bike.Description,
		bike.TotalDistance,
		bike.IsPrimary,
		typeArray(bike.DeletedDefaults),
	))
	if err != nil {
		return nil, wrapError("create bike", err)
	}
	return created, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE bike_id = $1`

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, bikeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("bike")
	}
	if err != nil {
		return nil, wrapError("get bike", err)
	}
	return bike, nil
}

func (r *BikeRepository) GetBikeByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE user_id = $1 AND external_id = $2`

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, userID, externalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError("get bike by external id", err)
	}
	return bike, nil
}

// GetBikesByUserID returns every bike of the user, retired ones included,
// primary bike first and then by distance.
func (r *BikeRepository) GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE user_id = $1
		ORDER BY is_primary DESC, total_distance DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapError("list bikes", err)
	}
	defer rows.Close()

	var bikes []*domain.Bike
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, wrapError("scan bike", err)
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapError("list bikes", err)
	}
	return bikes, nil
}

// UpdateBike writes the fields owned by the activity service.
func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET
			bike_name = $1,
			brand_name = $2,
			model_name = $3,
			frame_type = $4,
			description = $5,
			total_distance = $6,
			is_primary = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $8
		RETURNING ` + bikeColumns

	updated, err := scanBike(r.db.QueryRowContext(ctx, query,
		bike.BikeName,
		bike.BrandName,
		bike.ModelName,
		bike.FrameType,
		bike.Description,
		bike.TotalDistance,
		bike.IsPrimary,
		bike.BikeID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("bike")
	}
	if err != nil {
		return nil, wrapError("update bike", err)
	}
	return updated, nil
}

func (r *BikeRepository) SaveConfig(ctx context.Context, bikeID uuid.UUID, cfg *domain.BikeConfig) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET
			shifting_type = $1,
			brake_type = $2,
			drivetrain_speed = $3,
			tire_system = $4,
			config_complete = TRUE,
			updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $5
		RETURNING ` + bikeColumns

	bike, err := scanBike(r.db.QueryRowContext(ctx, query,
		string(cfg.ShiftingType),
		string(cfg.BrakeType),
		cfg.DrivetrainSpeed,
		string(cfg.TireSystem),
		bikeID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("bike")
	}
	if err != nil {
		return nil, wrapError("save bike config", err)
	}
	return bike, nil
}

func (r *BikeRepository) SetRetired(ctx context.Context, bikeID uuid.UUID, retired bool) (*domain.Bike, error) {
	query := `UPDATE bikes SET retired = $1, updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $2
		RETURNING ` + bikeColumns

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, retired, bikeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("bike")
	}
	if err != nil {
		return nil, wrapError("set bike retired", err)
	}
	return bike, nil
}

// AddDeletedDefault appends t to deleted_defaults unless already present.
func (r *BikeRepository) AddDeletedDefault(ctx context.Context, bikeID uuid.UUID, t domain.ComponentType) error {
	query := `UPDATE bikes
		SET deleted_defaults = CASE
				WHEN $2::text = ANY(deleted_defaults) THEN deleted_defaults
				ELSE array_append(deleted_defaults, $2::text)
			END,
			updated_at = CURRENT_TIMESTAMP
		WHERE bike_id = $1`

	result, err := r.db.ExecContext(ctx, query, bikeID, string(t))
	if err != nil {
		return wrapError("add deleted default", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapError("add deleted default", err)
	}
	if rowsAffected == 0 {
		return domain.NotFoundError("bike")
	}
	return nil
}
