package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// DropshipperRepository defines the interface for dropshipper data operations.
type DropshipperRepository interface {
	Create(dropshipper models.Dropshipper) (models.Dropshipper, error)
	GetAll() ([]models.Dropshipper, error)
	GetByID(id uuid.UUID) (models.Dropshipper, error)
	Update(dropshipper models.Dropshipper) (models.Dropshipper, error)
	Delete(id uuid.UUID) error
}
