package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSupplierNotFound     = errors.New("supplier not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrWarehouseNotFound    = errors.New("warehouse not found")
	ErrDropshipperNotFound  = errors.New("dropshipper not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTruckNotFound        = errors.New("truck not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrUserNotFound         = errors.New("user not found")

	// ErrForeignKeyViolation is returned when a write would break a
	// relationship, typically a delete with dependent rows.
	ErrForeignKeyViolation = errors.New("operation violates a foreign key constraint")

	// ErrDuplicateRegistration is returned when a (dropshipper, product)
	// pair is registered a second time.
	ErrDuplicateRegistration = errors.New("registration already exists for this dropshipper and product")

	ErrDuplicateUsername = errors.New("username already taken")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translatePgError maps constraint violations onto the sentinel errors above
// so handlers never see raw SQLSTATE codes.
func translatePgError(err error, onUnique error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return ErrForeignKeyViolation
	case pgUniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	}
	return err
}
