package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository used by the handler test suites.
type InMemoryProductRepository struct {
	products      []models.Product
	warehouses    WarehouseRepository
	registrations RegistrationRepository
	orders        OrderRepository
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{}
}

func (r *InMemoryProductRepository) SetDependencies(warehouses WarehouseRepository, registrations RegistrationRepository, orders OrderRepository) {
	r.warehouses = warehouses
	r.registrations = registrations
	r.orders = orders
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return r.products, nil
}

func (r *InMemoryProductRepository) GetByID(id uuid.UUID) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetBySupplier(supplierID uuid.UUID) ([]models.Product, error) {
	var result []models.Product
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *InMemoryProductRepository) Update(p models.Product) (models.Product, error) {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id uuid.UUID) error {
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if r.warehouses != nil {
			if stock, _ := r.warehouses.GetStockByProduct(id); len(stock) > 0 {
				return ErrForeignKeyViolation
			}
		}
		if r.registrations != nil {
			if regs, _ := r.registrations.Find(RegistrationFilter{ProductID: &id}); len(regs) > 0 {
				return ErrForeignKeyViolation
			}
		}
		if r.orders != nil {
			if orders, _ := r.orders.Find(OrderFilter{ProductID: &id}); len(orders) > 0 {
				return ErrForeignKeyViolation
			}
		}
		r.products = append(r.products[:i], r.products[i+1:]...)
		return nil
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = nil
}
