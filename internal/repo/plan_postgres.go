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

type PostgresPlanRepository struct {
	db *sql.DB
}

func NewPostgresPlanRepository(db *sql.DB) *PostgresPlanRepository {
	return &PostgresPlanRepository{db: db}
}

const planColumns = `id, truck_id, order_id, warehouse_id, type, status, plan_date, start_time, execution_time`

func (r *PostgresPlanRepository) Create(p models.Plan) (models.Plan, error) {
	query := `INSERT INTO plan (id, truck_id, order_id, warehouse_id, type, status, plan_date, start_time, execution_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.TruckID, p.OrderID, p.WarehouseID, p.Type, p.Status, p.PlanDate, p.StartTime, p.ExecutionTime)
	if err != nil {
		return models.Plan{}, translatePgError(err, nil)
	}
	return p, nil
}

func (r *PostgresPlanRepository) Find(filter PlanFilter) ([]models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plan WHERE 1=1`
	args := []any{}
	argIdx := 1

	if filter.TruckID != nil {
		query += fmt.Sprintf(" AND truck_id = $%d", argIdx)
		args = append(args, *filter.TruckID)
		argIdx++
	}
	if filter.OrderID != nil {
		query += fmt.Sprintf(" AND order_id = $%d", argIdx)
		args = append(args, *filter.OrderID)
		argIdx++
	}
	if filter.WarehouseID != nil {
		query += fmt.Sprintf(" AND warehouse_id = $%d", argIdx)
		args = append(args, *filter.WarehouseID)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND plan_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND plan_date < $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	query += " ORDER BY plan_date"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *PostgresPlanRepository) GetByID(id uuid.UUID) (models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plan WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Plan
	var warehouseID uuid.NullUUID
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.TruckID, &p.OrderID, &warehouseID, &p.Type, &p.Status,
		&p.PlanDate, &p.StartTime, &p.ExecutionTime)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plan{}, ErrPlanNotFound
	}
	if warehouseID.Valid {
		p.WarehouseID = &warehouseID.UUID
	}
	return p, err
}

func (r *PostgresPlanRepository) Update(p models.Plan) (models.Plan, error) {
	query := `UPDATE plan SET warehouse_id = $1, type = $2, status = $3, plan_date = $4, start_time = $5, execution_time = $6
		WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		p.WarehouseID, p.Type, p.Status, p.PlanDate, p.StartTime, p.ExecutionTime, p.ID)
	if err != nil {
		return models.Plan{}, translatePgError(err, nil)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (r *PostgresPlanRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM plan WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func scanPlan(rows *sql.Rows) (models.Plan, error) {
	var p models.Plan
	var warehouseID uuid.NullUUID
	err := rows.Scan(
		&p.ID, &p.TruckID, &p.OrderID, &warehouseID, &p.Type, &p.Status,
		&p.PlanDate, &p.StartTime, &p.ExecutionTime)
	if err != nil {
		return models.Plan{}, err
	}
	if warehouseID.Valid {
		p.WarehouseID = &warehouseID.UUID
	}
	return p, nil
}
