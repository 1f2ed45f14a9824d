package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// WarehouseRepository covers warehouses and their stock rows. Stock is the
// warehouse_product relation keyed by (warehouseId, productId).
type WarehouseRepository interface {
	Create(warehouse models.Warehouse) (models.Warehouse, error)
	GetAll() ([]models.Warehouse, error)
	GetByID(id uuid.UUID) (models.Warehouse, error)
	GetBySupplier(supplierID uuid.UUID) ([]models.Warehouse, error)
	// GetByProductInStock returns only warehouses holding a strictly
	// positive quantity of the product.
	GetByProductInStock(productID uuid.UUID) ([]models.Warehouse, error)
	Update(warehouse models.Warehouse) (models.Warehouse, error)
	Delete(id uuid.UUID) error

	UpsertStock(stock models.WarehouseProduct) (models.WarehouseProduct, error)
	GetStockByWarehouse(warehouseID uuid.UUID) ([]models.WarehouseProduct, error)
	GetStockByProduct(productID uuid.UUID) ([]models.WarehouseProduct, error)
	GetStockByProducts(productIDs []uuid.UUID) ([]models.WarehouseProduct, error)
}
