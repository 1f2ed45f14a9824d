package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, price, weight, volume, note, supplier_id, date`

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO product (id, name, price, weight, volume, note, supplier_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Price, p.Weight, p.Volume, nullableString(p.Note), p.SupplierID, p.Date)
	if err != nil {
		return models.Product{}, translatePgError(err, nil)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product ORDER BY date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresProductRepository) GetByID(id uuid.UUID) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	var note sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Weight, &p.Volume, &note, &p.SupplierID, &p.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	p.Note = note.String
	return p, err
}

func (r *PostgresProductRepository) GetBySupplier(supplierID uuid.UUID) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE supplier_id = $1 ORDER BY date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, supplierID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE product SET name = $1, price = $2, weight = $3, volume = $4, note = $5 WHERE id = $6`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Price, p.Weight, p.Volume, nullableString(p.Note), p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM product WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translatePgError(err, nil)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		var note sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Weight, &p.Volume, &note, &p.SupplierID, &p.Date); err != nil {
			return nil, err
		}
		p.Note = note.String
		products = append(products, p)
	}
	return products, rows.Err()
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
