package repo

import "github.com/lightningdhna/final-api/internal/models"

// InMemoryUserRepository is an in-memory implementation of UserRepository
// used by the handler test suites.
type InMemoryUserRepository struct {
	users map[string]models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]models.User)}
}

func (r *InMemoryUserRepository) Create(u models.User) (models.User, error) {
	if _, exists := r.users[u.Username]; exists {
		return models.User{}, ErrDuplicateUsername
	}
	r.users[u.Username] = u
	return u, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}
