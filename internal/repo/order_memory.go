package repo

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository
// used by the handler test suites.
type InMemoryOrderRepository struct {
	orders []models.Order
	plans  PlanRepository
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

func (r *InMemoryOrderRepository) SetDependencies(plans PlanRepository) {
	r.plans = plans
}

func (r *InMemoryOrderRepository) Create(o models.Order) (models.Order, error) {
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *InMemoryOrderRepository) Find(filter OrderFilter) ([]models.Order, error) {
	productIDs := make(map[uuid.UUID]struct{}, len(filter.ProductIDs))
	for _, id := range filter.ProductIDs {
		productIDs[id] = struct{}{}
	}

	var result []models.Order
	for _, o := range r.orders {
		if filter.ProductID != nil && o.ProductID != *filter.ProductID {
			continue
		}
		if len(productIDs) > 0 {
			if _, ok := productIDs[o.ProductID]; !ok {
				continue
			}
		}
		if filter.DropshipperID != nil {
			if o.DropshipperID == nil || *o.DropshipperID != *filter.DropshipperID {
				continue
			}
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.From != nil && o.TimeCreated.Before(*filter.From) {
			continue
		}
		if filter.To != nil && o.TimeCreated.After(*filter.To) {
			continue
		}
		result = append(result, o)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TimeCreated.Before(result[j].TimeCreated)
	})
	return result, nil
}

func (r *InMemoryOrderRepository) GetByID(id uuid.UUID) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Update(o models.Order) (models.Order, error) {
	for i, existing := range r.orders {
		if existing.ID == o.ID {
			r.orders[i] = o
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Delete(id uuid.UUID) error {
	for i, o := range r.orders {
		if o.ID != id {
			continue
		}
		if r.plans != nil {
			if plans, _ := r.plans.Find(PlanFilter{OrderID: &id}); len(plans) > 0 {
				return ErrForeignKeyViolation
			}
		}
		r.orders = append(r.orders[:i], r.orders[i+1:]...)
		return nil
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = nil
}
