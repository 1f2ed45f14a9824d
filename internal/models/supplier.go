package models

import "github.com/google/uuid"

// Supplier owns products and warehouses.
type Supplier struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
