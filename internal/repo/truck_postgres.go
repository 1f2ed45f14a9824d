package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

type PostgresTruckRepository struct {
	db *sql.DB
}

func NewPostgresTruckRepository(db *sql.DB) *PostgresTruckRepository {
	return &PostgresTruckRepository{db: db}
}

const truckColumns = `id, name, type, max_weight, max_volume, average_speed, time_active, time_inactive`

func (r *PostgresTruckRepository) Create(t models.Truck) (models.Truck, error) {
	query := `INSERT INTO truck (id, name, type, max_weight, max_volume, average_speed, time_active, time_inactive)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Type, t.MaxWeight, t.MaxVolume, t.AverageSpeed, t.TimeActive, t.TimeInactive)
	return t, err
}

func (r *PostgresTruckRepository) GetAll() ([]models.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM truck ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trucks []models.Truck
	for rows.Next() {
		var t models.Truck
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.MaxWeight, &t.MaxVolume, &t.AverageSpeed, &t.TimeActive, &t.TimeInactive); err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}
	return trucks, rows.Err()
}

func (r *PostgresTruckRepository) GetByID(id uuid.UUID) (models.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM truck WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var t models.Truck
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.Type, &t.MaxWeight, &t.MaxVolume, &t.AverageSpeed, &t.TimeActive, &t.TimeInactive)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Truck{}, ErrTruckNotFound
	}
	return t, err
}

func (r *PostgresTruckRepository) Update(t models.Truck) (models.Truck, error) {
	query := `UPDATE truck SET name = $1, type = $2, max_weight = $3, max_volume = $4, average_speed = $5, time_active = $6, time_inactive = $7
		WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		t.Name, t.Type, t.MaxWeight, t.MaxVolume, t.AverageSpeed, t.TimeActive, t.TimeInactive, t.ID)
	if err != nil {
		return models.Truck{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Truck{}, ErrTruckNotFound
	}
	return t, nil
}

func (r *PostgresTruckRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM truck WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translatePgError(err, nil)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrTruckNotFound
	}
	return nil
}
