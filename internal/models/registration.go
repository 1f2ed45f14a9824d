package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegistrationStatus values are specific to registrations; they do not share
// a scale with order or plan statuses.
type RegistrationStatus int

const (
	RegistrationPending  RegistrationStatus = 0
	RegistrationApproved RegistrationStatus = 1
	RegistrationRejected RegistrationStatus = 2
)

func (s RegistrationStatus) Valid() bool {
	return s >= RegistrationPending && s <= RegistrationRejected
}

// Registration links a dropshipper to a product it resells. At most one row
// per (dropshipper, product) pair.
type Registration struct {
	DropshipperID uuid.UUID          `json:"dropshipperId"`
	ProductID     uuid.UUID          `json:"productId"`
	CommissionFee decimal.Decimal    `json:"commissionFee"`
	Status        RegistrationStatus `json:"status"`
	CreatedDate   time.Time          `json:"createdDate"`
}
