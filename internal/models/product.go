package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product belongs to exactly one supplier. Stock lives in warehouse_product
// rows, not on the product itself.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Weight     float64         `json:"weight"`
	Volume     float64         `json:"volume"`
	Note       string          `json:"note,omitempty"`
	SupplierID uuid.UUID       `json:"supplierId"`
	Date       time.Time       `json:"date"`
}
