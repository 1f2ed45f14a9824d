package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresStatisticRepository struct {
	db *sql.DB
}

func NewPostgresStatisticRepository(db *sql.DB) *PostgresStatisticRepository {
	return &PostgresStatisticRepository{db: db}
}

// Counts reads all six tallies inside one transaction so concurrent writes
// cannot skew the snapshot. The per-entity summaries deliberately do not do
// this; counts is the only endpoint that promises consistency.
func (r *PostgresStatisticRepository) Counts() (Counts, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return Counts{}, err
	}
	defer tx.Rollback()

	var c Counts
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM orders`, &c.Orders},
		{`SELECT COUNT(*) FROM product`, &c.Products},
		{`SELECT COUNT(*) FROM supplier`, &c.Suppliers},
		{`SELECT COUNT(*) FROM dropshipper`, &c.Dropshippers},
		{`SELECT COUNT(*) FROM warehouse`, &c.Warehouses},
		{`SELECT COUNT(*) FROM truck`, &c.Trucks},
	}
	for _, q := range counts {
		if err := tx.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return Counts{}, err
		}
	}
	return c, tx.Commit()
}

func (r *PostgresStatisticRepository) OrdersByStatus() ([]OrderStatusCount, error) {
	query := `SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OrderStatusCount
	for rows.Next() {
		var row OrderStatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *PostgresStatisticRepository) ProductsBySupplier() ([]SupplierProductCount, error) {
	query := `SELECT supplier_id, COUNT(id) AS cnt FROM product GROUP BY supplier_id ORDER BY cnt DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SupplierProductCount
	for rows.Next() {
		var row SupplierProductCount
		if err := rows.Scan(&row.SupplierID, &row.ProductCount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *PostgresStatisticRepository) RegistrationsByStatus() ([]RegistrationStatusCount, error) {
	query := `SELECT status, COUNT(*) FROM registration GROUP BY status ORDER BY status`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RegistrationStatusCount
	for rows.Next() {
		var row RegistrationStatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
