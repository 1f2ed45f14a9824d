package repo

import (
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// PlanFilter narrows Find results. Nil fields are not applied. StartDate and
// EndDate bound plan_date; EndDate is exclusive, callers extend a date-only
// input by one day to cover the whole day.
type PlanFilter struct {
	TruckID     *uuid.UUID
	OrderID     *uuid.UUID
	WarehouseID *uuid.UUID
	Status      *models.PlanStatus
	Type        *models.PlanType
	StartDate   *time.Time
	EndDate     *time.Time
}

// PlanRepository defines the interface for transport plan data operations.
// Find returns plans ordered by plan date ascending.
type PlanRepository interface {
	Create(plan models.Plan) (models.Plan, error)
	Find(filter PlanFilter) ([]models.Plan, error)
	GetByID(id uuid.UUID) (models.Plan, error)
	Update(plan models.Plan) (models.Plan, error)
	Delete(id uuid.UUID) error
}
