package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// SupplierRepository defines the interface for supplier data operations.
type SupplierRepository interface {
	Create(supplier models.Supplier) (models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	GetByID(id uuid.UUID) (models.Supplier, error)
	Update(supplier models.Supplier) (models.Supplier, error)
	Delete(id uuid.UUID) error
}
