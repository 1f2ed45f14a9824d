package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryWarehouseRepository is an in-memory implementation of
// WarehouseRepository used by the handler test suites. Stock rows live next
// to the warehouses, mirroring the warehouse_product relation.
type InMemoryWarehouseRepository struct {
	warehouses []models.Warehouse
	stock      []models.WarehouseProduct
	plans      PlanRepository
}

func NewInMemoryWarehouseRepository() *InMemoryWarehouseRepository {
	return &InMemoryWarehouseRepository{}
}

func (r *InMemoryWarehouseRepository) SetDependencies(plans PlanRepository) {
	r.plans = plans
}

func (r *InMemoryWarehouseRepository) Create(w models.Warehouse) (models.Warehouse, error) {
	r.warehouses = append(r.warehouses, w)
	return w, nil
}

func (r *InMemoryWarehouseRepository) GetAll() ([]models.Warehouse, error) {
	return r.warehouses, nil
}

func (r *InMemoryWarehouseRepository) GetByID(id uuid.UUID) (models.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Warehouse{}, ErrWarehouseNotFound
}

func (r *InMemoryWarehouseRepository) GetBySupplier(supplierID uuid.UUID) ([]models.Warehouse, error) {
	var result []models.Warehouse
	for _, w := range r.warehouses {
		if w.SupplierID == supplierID {
			result = append(result, w)
		}
	}
	return result, nil
}

func (r *InMemoryWarehouseRepository) GetByProductInStock(productID uuid.UUID) ([]models.Warehouse, error) {
	var result []models.Warehouse
	for _, wp := range r.stock {
		if wp.ProductID != productID || wp.Quantity <= 0 {
			continue
		}
		if w, err := r.GetByID(wp.WarehouseID); err == nil {
			result = append(result, w)
		}
	}
	return result, nil
}

func (r *InMemoryWarehouseRepository) Update(w models.Warehouse) (models.Warehouse, error) {
	for i, existing := range r.warehouses {
		if existing.ID == w.ID {
			r.warehouses[i] = w
			return w, nil
		}
	}
	return models.Warehouse{}, ErrWarehouseNotFound
}

func (r *InMemoryWarehouseRepository) Delete(id uuid.UUID) error {
	for i, w := range r.warehouses {
		if w.ID != id {
			continue
		}
		for _, wp := range r.stock {
			if wp.WarehouseID == id {
				return ErrForeignKeyViolation
			}
		}
		if r.plans != nil {
			if plans, _ := r.plans.Find(PlanFilter{WarehouseID: &id}); len(plans) > 0 {
				return ErrForeignKeyViolation
			}
		}
		r.warehouses = append(r.warehouses[:i], r.warehouses[i+1:]...)
		return nil
	}
	return ErrWarehouseNotFound
}

func (r *InMemoryWarehouseRepository) UpsertStock(s models.WarehouseProduct) (models.WarehouseProduct, error) {
	for i, wp := range r.stock {
		if wp.WarehouseID == s.WarehouseID && wp.ProductID == s.ProductID {
			r.stock[i].Quantity = s.Quantity
			return r.stock[i], nil
		}
	}
	r.stock = append(r.stock, s)
	return s, nil
}

func (r *InMemoryWarehouseRepository) GetStockByWarehouse(warehouseID uuid.UUID) ([]models.WarehouseProduct, error) {
	var result []models.WarehouseProduct
	for _, wp := range r.stock {
		if wp.WarehouseID == warehouseID {
			result = append(result, wp)
		}
	}
	return result, nil
}

func (r *InMemoryWarehouseRepository) GetStockByProduct(productID uuid.UUID) ([]models.WarehouseProduct, error) {
	var result []models.WarehouseProduct
	for _, wp := range r.stock {
		if wp.ProductID == productID {
			result = append(result, wp)
		}
	}
	return result, nil
}

func (r *InMemoryWarehouseRepository) GetStockByProducts(productIDs []uuid.UUID) ([]models.WarehouseProduct, error) {
	ids := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		ids[id] = struct{}{}
	}
	var result []models.WarehouseProduct
	for _, wp := range r.stock {
		if _, ok := ids[wp.ProductID]; ok {
			result = append(result, wp)
		}
	}
	return result, nil
}

func (r *InMemoryWarehouseRepository) Clear() {
	r.warehouses = nil
	r.stock = nil
}
