package repo

import (
	"time"

	"github.com/google/uuid"

	"github.com/lightningdhna/final-api/internal/models"
)

// OrderFilter narrows Find results. Nil fields are not applied. From/To
// bound time_created inclusively; ProductIDs matches any of the given
// products.
type OrderFilter struct {
	ProductID     *uuid.UUID
	ProductIDs    []uuid.UUID
	DropshipperID *uuid.UUID
	Status        *models.OrderStatus
	From          *time.Time
	To            *time.Time
}

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	Find(filter OrderFilter) ([]models.Order, error)
	GetByID(id uuid.UUID) (models.Order, error)
	Update(order models.Order) (models.Order, error)
	Delete(id uuid.UUID) error
}
