package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

type PostgresSupplierRepository struct {
	db *sql.DB
}

func NewPostgresSupplierRepository(db *sql.DB) *PostgresSupplierRepository {
	return &PostgresSupplierRepository{db: db}
}

func (r *PostgresSupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	query := `INSERT INTO supplier (id, name) VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name)
	return s, err
}

func (r *PostgresSupplierRepository) GetAll() ([]models.Supplier, error) {
	query := `SELECT id, name FROM supplier ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *PostgresSupplierRepository) GetByID(id uuid.UUID) (models.Supplier, error) {
	query := `SELECT id, name FROM supplier WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Supplier
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Supplier{}, ErrSupplierNotFound
	}
	return s, err
}

func (r *PostgresSupplierRepository) Update(s models.Supplier) (models.Supplier, error) {
	query := `UPDATE supplier SET name = $1 WHERE id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, s.Name, s.ID)
	if err != nil {
		return models.Supplier{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (r *PostgresSupplierRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM supplier WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translatePgError(err, nil)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
