package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryTruckRepository is an in-memory implementation of TruckRepository
// used by the handler test suites.
type InMemoryTruckRepository struct {
	trucks []models.Truck
	plans  PlanRepository
}

func NewInMemoryTruckRepository() *InMemoryTruckRepository {
	return &InMemoryTruckRepository{}
}

func (r *InMemoryTruckRepository) SetDependencies(plans PlanRepository) {
	r.plans = plans
}

func (r *InMemoryTruckRepository) Create(t models.Truck) (models.Truck, error) {
	r.trucks = append(r.trucks, t)
	return t, nil
}

func (r *InMemoryTruckRepository) GetAll() ([]models.Truck, error) {
	return r.trucks, nil
}

func (r *InMemoryTruckRepository) GetByID(id uuid.UUID) (models.Truck, error) {
	for _, t := range r.trucks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Truck{}, ErrTruckNotFound
}

func (r *InMemoryTruckRepository) Update(t models.Truck) (models.Truck, error) {
	for i, existing := range r.trucks {
		if existing.ID == t.ID {
			r.trucks[i] = t
			return t, nil
		}
	}
	return models.Truck{}, ErrTruckNotFound
}

func (r *InMemoryTruckRepository) Delete(id uuid.UUID) error {
	for i, t := range r.trucks {
		if t.ID != id {
			continue
		}
		if r.plans != nil {
			if plans, _ := r.plans.Find(PlanFilter{TruckID: &id}); len(plans) > 0 {
				return ErrForeignKeyViolation
			}
		}
		r.trucks = append(r.trucks[:i], r.trucks[i+1:]...)
		return nil
	}
	return ErrTruckNotFound
}

func (r *InMemoryTruckRepository) Clear() {
	r.trucks = nil
}
