package repo

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryRegistrationRepository is an in-memory implementation of
// RegistrationRepository used by the handler test suites. The composite
// primary key is enforced the same way the unique index does in postgres.
type InMemoryRegistrationRepository struct {
	registrations []models.Registration
}

func NewInMemoryRegistrationRepository() *InMemoryRegistrationRepository {
	return &InMemoryRegistrationRepository{}
}

func (r *InMemoryRegistrationRepository) Create(reg models.Registration) (models.Registration, error) {
	for _, existing := range r.registrations {
		if existing.DropshipperID == reg.DropshipperID && existing.ProductID == reg.ProductID {
			return models.Registration{}, ErrDuplicateRegistration
		}
	}
	r.registrations = append(r.registrations, reg)
	return reg, nil
}

func (r *InMemoryRegistrationRepository) Find(filter RegistrationFilter) ([]models.Registration, error) {
	productIDs := make(map[uuid.UUID]struct{}, len(filter.ProductIDs))
	for _, id := range filter.ProductIDs {
		productIDs[id] = struct{}{}
	}

	var result []models.Registration
	for _, reg := range r.registrations {
		if filter.DropshipperID != nil && reg.DropshipperID != *filter.DropshipperID {
			continue
		}
		if filter.ProductID != nil && reg.ProductID != *filter.ProductID {
			continue
		}
		if len(productIDs) > 0 {
			if _, ok := productIDs[reg.ProductID]; !ok {
				continue
			}
		}
		if filter.Status != nil && reg.Status != *filter.Status {
			continue
		}
		result = append(result, reg)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedDate.Before(result[j].CreatedDate)
	})
	return result, nil
}

func (r *InMemoryRegistrationRepository) GetByKey(dropshipperID, productID uuid.UUID) (models.Registration, error) {
	for _, reg := range r.registrations {
		if reg.DropshipperID == dropshipperID && reg.ProductID == productID {
			return reg, nil
		}
	}
	return models.Registration{}, ErrRegistrationNotFound
}

func (r *InMemoryRegistrationRepository) Update(reg models.Registration) (models.Registration, error) {
	for i, existing := range r.registrations {
		if existing.DropshipperID == reg.DropshipperID && existing.ProductID == reg.ProductID {
			r.registrations[i] = reg
			return reg, nil
		}
	}
	return models.Registration{}, ErrRegistrationNotFound
}

func (r *InMemoryRegistrationRepository) Delete(dropshipperID, productID uuid.UUID) error {
	for i, reg := range r.registrations {
		if reg.DropshipperID == dropshipperID && reg.ProductID == productID {
			r.registrations = append(r.registrations[:i], r.registrations[i+1:]...)
			return nil
		}
	}
	return ErrRegistrationNotFound
}

func (r *InMemoryRegistrationRepository) Clear() {
	r.registrations = nil
}
