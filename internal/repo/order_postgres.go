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

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

const orderColumns = `id, product_id, dropshipper_id, quantity, volume, weight, location_x, location_y, status, time_created, note`

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	query := `INSERT INTO orders (id, product_id, dropshipper_id, quantity, volume, weight, location_x, location_y, status, time_created, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.ProductID, o.DropshipperID, o.Quantity, o.Volume, o.Weight,
		o.LocationX, o.LocationY, o.Status, o.TimeCreated, nullableString(o.Note))
	if err != nil {
		return models.Order{}, translatePgError(err, nil)
	}
	return o, nil
}

func (r *PostgresOrderRepository) Find(filter OrderFilter) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	argIdx := 1

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
	if filter.DropshipperID != nil {
		query += fmt.Sprintf(" AND dropshipper_id = $%d", argIdx)
		args = append(args, *filter.DropshipperID)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND time_created >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND time_created <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}
	query += " ORDER BY time_created"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) GetByID(id uuid.UUID) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	var dropshipperID uuid.NullUUID
	var note sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.ProductID, &dropshipperID, &o.Quantity, &o.Volume, &o.Weight,
		&o.LocationX, &o.LocationY, &o.Status, &o.TimeCreated, &note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if dropshipperID.Valid {
		o.DropshipperID = &dropshipperID.UUID
	}
	o.Note = note.String
	return o, err
}

func (r *PostgresOrderRepository) Update(o models.Order) (models.Order, error) {
	query := `UPDATE orders SET quantity = $1, volume = $2, weight = $3, location_x = $4, location_y = $5, status = $6, note = $7
		WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		o.Quantity, o.Volume, o.Weight, o.LocationX, o.LocationY, o.Status, nullableString(o.Note), o.ID)
	if err != nil {
		return models.Order{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (r *PostgresOrderRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translatePgError(err, nil)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func scanOrder(rows *sql.Rows) (models.Order, error) {
	var o models.Order
	var dropshipperID uuid.NullUUID
	var note sql.NullString
	err := rows.Scan(
		&o.ID, &o.ProductID, &dropshipperID, &o.Quantity, &o.Volume, &o.Weight,
		&o.LocationX, &o.LocationY, &o.Status, &o.TimeCreated, &note)
	if err != nil {
		return models.Order{}, err
	}
	if dropshipperID.Valid {
		o.DropshipperID = &dropshipperID.UUID
	}
	o.Note = note.String
	return o, nil
}
