package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryDropshipperRepository is an in-memory implementation of
// DropshipperRepository used by the handler test suites.
type InMemoryDropshipperRepository struct {
	dropshippers  []models.Dropshipper
	registrations RegistrationRepository
	orders        OrderRepository
}

func NewInMemoryDropshipperRepository() *InMemoryDropshipperRepository {
	return &InMemoryDropshipperRepository{}
}

func (r *InMemoryDropshipperRepository) SetDependencies(registrations RegistrationRepository, orders OrderRepository) {
	r.registrations = registrations
	r.orders = orders
}

func (r *InMemoryDropshipperRepository) Create(d models.Dropshipper) (models.Dropshipper, error) {
	r.dropshippers = append(r.dropshippers, d)
	return d, nil
}

func (r *InMemoryDropshipperRepository) GetAll() ([]models.Dropshipper, error) {
	return r.dropshippers, nil
}

func (r *InMemoryDropshipperRepository) GetByID(id uuid.UUID) (models.Dropshipper, error) {
	for _, d := range r.dropshippers {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Dropshipper{}, ErrDropshipperNotFound
}

func (r *InMemoryDropshipperRepository) Update(d models.Dropshipper) (models.Dropshipper, error) {
	for i, existing := range r.dropshippers {
		if existing.ID == d.ID {
			r.dropshippers[i] = d
			return d, nil
		}
	}
	return models.Dropshipper{}, ErrDropshipperNotFound
}

func (r *InMemoryDropshipperRepository) Delete(id uuid.UUID) error {
	for i, d := range r.dropshippers {
		if d.ID != id {
			continue
		}
		if r.registrations != nil {
			if regs, _ := r.registrations.Find(RegistrationFilter{DropshipperID: &id}); len(regs) > 0 {
				return ErrForeignKeyViolation
			}
		}
		if r.orders != nil {
			if orders, _ := r.orders.Find(OrderFilter{DropshipperID: &id}); len(orders) > 0 {
				return ErrForeignKeyViolation
			}
		}
		r.dropshippers = append(r.dropshippers[:i], r.dropshippers[i+1:]...)
		return nil
	}
	return ErrDropshipperNotFound
}

func (r *InMemoryDropshipperRepository) Clear() {
	r.dropshippers = nil
}
