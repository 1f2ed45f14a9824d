package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// Counts is a snapshot of global row counts. The postgres implementation
// reads all six counts inside a single transaction so the snapshot is
// internally consistent.
type Counts struct {
	Orders       int `json:"orders"`
	Products     int `json:"products"`
	Suppliers    int `json:"suppliers"`
	Dropshippers int `json:"dropshippers"`
	Warehouses   int `json:"warehouses"`
	Trucks       int `json:"trucks"`
}

type OrderStatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

type RegistrationStatusCount struct {
	Status models.RegistrationStatus `json:"status"`
	Count  int                       `json:"count"`
}

type SupplierProductCount struct {
	SupplierID   uuid.UUID `json:"supplierId"`
	ProductCount int       `json:"productCount"`
}

// StatisticRepository exposes the store-level group-by tallies used by the
// statistic endpoints.
type StatisticRepository interface {
	Counts() (Counts, error)
	// OrdersByStatus returns counts grouped by status, status ascending.
	OrdersByStatus() ([]OrderStatusCount, error)
	// ProductsBySupplier returns product counts grouped by supplier,
	// count descending.
	ProductsBySupplier() ([]SupplierProductCount, error)
	// RegistrationsByStatus returns counts grouped by status, status
	// ascending.
	RegistrationsByStatus() ([]RegistrationStatusCount, error)
}
