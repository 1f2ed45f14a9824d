package repo

import (
	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// RegistrationFilter narrows Find results. Nil fields are not applied.
// ProductIDs, when set, matches any of the given products.
type RegistrationFilter struct {
	DropshipperID *uuid.UUID
	ProductID     *uuid.UUID
	ProductIDs    []uuid.UUID
	Status        *models.RegistrationStatus
}

// RegistrationRepository works on the composite (dropshipperId, productId) key.
type RegistrationRepository interface {
	Create(registration models.Registration) (models.Registration, error)
	Find(filter RegistrationFilter) ([]models.Registration, error)
	GetByKey(dropshipperID, productID uuid.UUID) (models.Registration, error)
	Update(registration models.Registration) (models.Registration, error)
	Delete(dropshipperID, productID uuid.UUID) error
}
