package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lightningdhna/final-api/internal/models"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(u models.User) (models.User, error) {
	query := `INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		return models.User{}, translatePgError(err, ErrDuplicateUsername)
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByUsername(username string) (models.User, error) {
	query := `SELECT id, username, password_hash, role FROM users WHERE username = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}
