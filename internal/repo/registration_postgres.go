package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

type PostgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) *PostgresRegistrationRepository {
	return &PostgresRegistrationRepository{db: db}
}

func (r *PostgresRegistrationRepository) Create(reg models.Registration) (models.Registration, error) {
	query := `INSERT INTO registration (dropshipper_id, product_id, commission_fee, status, created_date)
		VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		reg.DropshipperID, reg.ProductID, reg.CommissionFee, reg.Status, reg.CreatedDate)
	if err != nil {
		return models.Registration{}, translatePgError(err, ErrDuplicateRegistration)
	}
	return reg, nil
}

func (r *PostgresRegistrationRepository) Find(filter RegistrationFilter) ([]models.Registration, error) {
	query := `SELECT dropshipper_id, product_id, commission_fee, status, created_date
		FROM registration WHERE 1=1`
	args := []any{}
	argIdx := 1

	if filter.DropshipperID != nil {
		query += fmt.Sprintf(" AND dropshipper_id = $%d", argIdx)
		args = append(args, *filter.DropshipperID)
		argIdx++
	}
	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND product_id = $%d", argIdx)
		args = append(args, *filter.ProductID)
		argIdx++
	}
	if len(filter.ProductIDs) > 0 {
		query += fmt.Sprintf(" AND product_id = ANY($%d)", argIdx)
		args = append(args, filter.ProductIDs)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	query += " ORDER BY created_date"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []models.Registration
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.DropshipperID, &reg.ProductID, &reg.CommissionFee, &reg.Status, &reg.CreatedDate); err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

func (r *PostgresRegistrationRepository) GetByKey(dropshipperID, productID uuid.UUID) (models.Registration, error) {
	query := `SELECT dropshipper_id, product_id, commission_fee, status, created_date
		FROM registration WHERE dropshipper_id = $1 AND product_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var reg models.Registration
	err := r.db.QueryRowContext(ctx, query, dropshipperID, productID).
		Scan(&reg.DropshipperID, &reg.ProductID, &reg.CommissionFee, &reg.Status, &reg.CreatedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Registration{}, ErrRegistrationNotFound
	}
	return reg, err
}

func (r *PostgresRegistrationRepository) Update(reg models.Registration) (models.Registration, error) {
	query := `UPDATE registration SET commission_fee = $1, status = $2
		WHERE dropshipper_id = $3 AND product_id = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		reg.CommissionFee, reg.Status, reg.DropshipperID, reg.ProductID)
	if err != nil {
		return models.Registration{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Registration{}, ErrRegistrationNotFound
	}
	return reg, nil
}

func (r *PostgresRegistrationRepository) Delete(dropshipperID, productID uuid.UUID) error {
	query := `DELETE FROM registration WHERE dropshipper_id = $1 AND product_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, dropshipperID, productID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}
