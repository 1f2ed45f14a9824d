package repo

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryPlanRepository is an in-memory implementation of PlanRepository
// used by the handler test suites.
type InMemoryPlanRepository struct {
	plans []models.Plan
}

func NewInMemoryPlanRepository() *InMemoryPlanRepository {
	return &InMemoryPlanRepository{}
}

func (r *InMemoryPlanRepository) Create(p models.Plan) (models.Plan, error) {
	r.plans = append(r.plans, p)
	return p, nil
}

func (r *InMemoryPlanRepository) Find(filter PlanFilter) ([]models.Plan, error) {
	var result []models.Plan
	for _, p := range r.plans {
		if filter.TruckID != nil && p.TruckID != *filter.TruckID {
			continue
		}
		if filter.OrderID != nil && p.OrderID != *filter.OrderID {
			continue
		}
		if filter.WarehouseID != nil {
			if p.WarehouseID == nil || *p.WarehouseID != *filter.WarehouseID {
				continue
			}
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && p.Type != *filter.Type {
			continue
		}
		if filter.StartDate != nil && p.PlanDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !p.PlanDate.Before(*filter.EndDate) {
			continue
		}
		result = append(result, p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PlanDate.Before(result[j].PlanDate)
	})
	return result, nil
}

func (r *InMemoryPlanRepository) GetByID(id uuid.UUID) (models.Plan, error) {
	for _, p := range r.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Plan{}, ErrPlanNotFound
}

func (r *InMemoryPlanRepository) Update(p models.Plan) (models.Plan, error) {
	for i, existing := range r.plans {
		if existing.ID == p.ID {
			r.plans[i] = p
			return p, nil
		}
	}
	return models.Plan{}, ErrPlanNotFound
}

func (r *InMemoryPlanRepository) Delete(id uuid.UUID) error {
	for i, p := range r.plans {
		if p.ID == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return nil
		}
	}
	return ErrPlanNotFound
}

func (r *InMemoryPlanRepository) Clear() {
	r.plans = nil
}
