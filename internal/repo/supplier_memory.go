package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemorySupplierRepository is an in-memory implementation of
// SupplierRepository used by the handler test suites.
type InMemorySupplierRepository struct {
	suppliers  []models.Supplier
	products   ProductRepository
	warehouses WarehouseRepository
}

func NewInMemorySupplierRepository() *InMemorySupplierRepository {
	return &InMemorySupplierRepository{}
}

// SetDependencies links the repositories consulted for foreign key checks on
// delete, standing in for the constraints the real store enforces.
func (r *InMemorySupplierRepository) SetDependencies(products ProductRepository, warehouses WarehouseRepository) {
	r.products = products
	r.warehouses = warehouses
}

func (r *InMemorySupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	r.suppliers = append(r.suppliers, s)
	return s, nil
}

func (r *InMemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	return r.suppliers, nil
}

func (r *InMemorySupplierRepository) GetByID(id uuid.UUID) (models.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Update(s models.Supplier) (models.Supplier, error) {
	for i, existing := range r.suppliers {
		if existing.ID == s.ID {
			r.suppliers[i] = s
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Delete(id uuid.UUID) error {
	for i, s := range r.suppliers {
		if s.ID != id {
			continue
		}
		if r.products != nil {
			if deps, _ := r.products.GetBySupplier(id); len(deps) > 0 {
				return ErrForeignKeyViolation
			}
		}
		if r.warehouses != nil {
			if deps, _ := r.warehouses.GetBySupplier(id); len(deps) > 0 {
				return ErrForeignKeyViolation
			}
		}
		r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
		return nil
	}
	return ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Clear() {
	r.suppliers = nil
}
