package repo

import "github.com/lightningdhna/final-api/internal/models"

// UserRepository backs the login endpoints.
type UserRepository interface {
	Create(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
