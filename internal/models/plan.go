package models

import (
	"time"

	"github.com/google/uuid"
)

type PlanStatus int

const (
	PlanWaiting    PlanStatus = 0
	PlanOnGoing    PlanStatus = 1
	PlanInProgress PlanStatus = 2
	PlanCompleted  PlanStatus = 3
)

func (s PlanStatus) Valid() bool {
	return s >= PlanWaiting && s <= PlanCompleted
}

type PlanType int

const (
	PlanLoad   PlanType = 1
	PlanUnload PlanType = 2
)

func (t PlanType) Valid() bool {
	return t == PlanLoad || t == PlanUnload
}

// Plan schedules a truck against an order. WarehouseID is required for load
// plans and must be nil otherwise.
type Plan struct {
	ID            uuid.UUID  `json:"id"`
	TruckID       uuid.UUID  `json:"truckId"`
	OrderID       uuid.UUID  `json:"orderId"`
	WarehouseID   *uuid.UUID `json:"warehouseId,omitempty"`
	Type          PlanType   `json:"type"`
	Status        PlanStatus `json:"status"`
	PlanDate      time.Time  `json:"planDate"`
	StartTime     time.Time  `json:"startTime"`
	ExecutionTime int        `json:"executionTime"` // minutes
}
