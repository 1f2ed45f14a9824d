package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// TruckRepository defines the interface for truck data operations.
type TruckRepository interface {
	Create(truck models.Truck) (models.Truck, error)
	GetAll() ([]models.Truck, error)
	GetByID(id uuid.UUID) (models.Truck, error)
	Update(truck models.Truck) (models.Truck, error)
	Delete(id uuid.UUID) error
}
