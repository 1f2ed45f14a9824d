package models

import "github.com/google/uuid"

type Warehouse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LocationX  float64   `json:"locationX"`
	LocationY  float64   `json:"locationY"`
	Capacity   float64   `json:"capacity"`
	TimeToLoad float64   `json:"timeToLoad"`
	SupplierID uuid.UUID `json:"supplierId"`
}

// WarehouseProduct is the current stock of one product in one warehouse.
// The (warehouseId, productId) pair is the primary key.
type WarehouseProduct struct {
	WarehouseID uuid.UUID `json:"warehouseId"`
	ProductID   uuid.UUID `json:"productId"`
	Quantity    int       `json:"quantity"`
}
