package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

type PostgresDropshipperRepository struct {
	db *sql.DB
}

func NewPostgresDropshipperRepository(db *sql.DB) *PostgresDropshipperRepository {
	return &PostgresDropshipperRepository{db: db}
}

func (r *PostgresDropshipperRepository) Create(d models.Dropshipper) (models.Dropshipper, error) {
	query := `INSERT INTO dropshipper (id, name) VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, d.ID, d.Name)
	return d, err
}

func (r *PostgresDropshipperRepository) GetAll() ([]models.Dropshipper, error) {
	query := `SELECT id, name FROM dropshipper ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dropshippers []models.Dropshipper
	for rows.Next() {
		var d models.Dropshipper
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		dropshippers = append(dropshippers, d)
	}
	return dropshippers, rows.Err()
}

func (r *PostgresDropshipperRepository) GetByID(id uuid.UUID) (models.Dropshipper, error) {
	query := `SELECT id, name FROM dropshipper WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d models.Dropshipper
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Dropshipper{}, ErrDropshipperNotFound
	}
	return d, err
}

func (r *PostgresDropshipperRepository) Update(d models.Dropshipper) (models.Dropshipper, error) {
	query := `UPDATE dropshipper SET name = $1 WHERE id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, d.Name, d.ID)
	if err != nil {
		return models.Dropshipper{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Dropshipper{}, ErrDropshipperNotFound
	}
	return d, nil
}

func (r *PostgresDropshipperRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM dropshipper WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translatePgError(err, nil)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrDropshipperNotFound
	}
	return nil
}
