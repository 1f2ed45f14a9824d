package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id uuid.UUID) (models.Product, error)
	GetBySupplier(supplierID uuid.UUID) ([]models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id uuid.UUID) error
}
