package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

type PostgresWarehouseRepository struct {
	db *sql.DB
}

func NewPostgresWarehouseRepository(db *sql.DB) *PostgresWarehouseRepository {
	return &PostgresWarehouseRepository{db: db}
}

const warehouseColumns = `id, name, location_x, location_y, capacity, time_to_load, supplier_id`

func (r *PostgresWarehouseRepository) Create(w models.Warehouse) (models.Warehouse, error) {
	query := `INSERT INTO warehouse (id, name, location_x, location_y, capacity, time_to_load, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.Name, w.LocationX, w.LocationY, w.Capacity, w.TimeToLoad, w.SupplierID)
	if err != nil {
		return models.Warehouse{}, translatePgError(err, nil)
	}
	return w, nil
}

func (r *PostgresWarehouseRepository) GetAll() ([]models.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouse ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWarehouses(rows)
}

func (r *PostgresWarehouseRepository) GetByID(id uuid.UUID) (models.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouse WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var w models.Warehouse
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&w.ID, &w.Name, &w.LocationX, &w.LocationY, &w.Capacity, &w.TimeToLoad, &w.SupplierID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Warehouse{}, ErrWarehouseNotFound
	}
	return w, err
}

func (r *PostgresWarehouseRepository) GetBySupplier(supplierID uuid.UUID) ([]models.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouse WHERE supplier_id = $1 ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, supplierID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWarehouses(rows)
}

func (r *PostgresWarehouseRepository) GetByProductInStock(productID uuid.UUID) ([]models.Warehouse, error) {
	query := `SELECT w.id, w.name, w.location_x, w.location_y, w.capacity, w.time_to_load, w.supplier_id
		FROM warehouse w
		JOIN warehouse_product wp ON wp.warehouse_id = w.id
		WHERE wp.product_id = $1 AND wp.quantity > 0
		ORDER BY w.name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWarehouses(rows)
}

func (r *PostgresWarehouseRepository) Update(w models.Warehouse) (models.Warehouse, error) {
	query := `UPDATE warehouse SET name = $1, location_x = $2, location_y = $3, capacity = $4, time_to_load = $5 WHERE id = $6`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		w.Name, w.LocationX, w.LocationY, w.Capacity, w.TimeToLoad, w.ID)
	if err != nil {
		return models.Warehouse{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Warehouse{}, ErrWarehouseNotFound
	}
	return w, nil
}

func (r *PostgresWarehouseRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM warehouse WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translatePgError(err, nil)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrWarehouseNotFound
	}
	return nil
}

// UpsertStock sets the absolute quantity for a (warehouse, product) pair,
// creating the row when it does not exist yet.
func (r *PostgresWarehouseRepository) UpsertStock(stock models.WarehouseProduct) (models.WarehouseProduct, error) {
	query := `INSERT INTO warehouse_product (warehouse_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (warehouse_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, stock.WarehouseID, stock.ProductID, stock.Quantity)
	if err != nil {
		return models.WarehouseProduct{}, translatePgError(err, nil)
	}
	return stock, nil
}

func (r *PostgresWarehouseRepository) GetStockByWarehouse(warehouseID uuid.UUID) ([]models.WarehouseProduct, error) {
	query := `SELECT warehouse_id, product_id, quantity FROM warehouse_product WHERE warehouse_id = $1`
	return r.queryStock(query, warehouseID)
}

func (r *PostgresWarehouseRepository) GetStockByProduct(productID uuid.UUID) ([]models.WarehouseProduct, error) {
	query := `SELECT warehouse_id, product_id, quantity FROM warehouse_product WHERE product_id = $1`
	return r.queryStock(query, productID)
}

func (r *PostgresWarehouseRepository) GetStockByProducts(productIDs []uuid.UUID) ([]models.WarehouseProduct, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	query := `SELECT warehouse_id, product_id, quantity FROM warehouse_product WHERE product_id = ANY($1)`
	return r.queryStock(query, productIDs)
}

func (r *PostgresWarehouseRepository) queryStock(query string, arg any) ([]models.WarehouseProduct, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stock []models.WarehouseProduct
	for rows.Next() {
		var wp models.WarehouseProduct
		if err := rows.Scan(&wp.WarehouseID, &wp.ProductID, &wp.Quantity); err != nil {
			return nil, err
		}
		stock = append(stock, wp)
	}
	return stock, rows.Err()
}

func scanWarehouses(rows *sql.Rows) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	for rows.Next() {
		var w models.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.LocationX, &w.LocationY, &w.Capacity, &w.TimeToLoad, &w.SupplierID); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}
