package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lightningdhna/final-api/internal/models"
)

type SupplierRequest struct {
	Name string `json:"name"`
}

type ProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Weight     float64         `json:"weight"`
	Volume     float64         `json:"volume"`
	Note       string          `json:"note,omitempty"`
	SupplierID uuid.UUID       `json:"supplierId"`
	Date       *time.Time      `json:"date,omitempty"`
}

// ProductPatch carries the mutable product fields; nil fields are left
// untouched by the merge.
type ProductPatch struct {
	Name   *string          `json:"name,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Weight *float64         `json:"weight,omitempty"`
	Volume *float64         `json:"volume,omitempty"`
	Note   *string          `json:"note,omitempty"`
}

type WarehouseRequest struct {
	Name       string    `json:"name"`
	LocationX  float64   `json:"locationX"`
	LocationY  float64   `json:"locationY"`
	Capacity   float64   `json:"capacity"`
	TimeToLoad float64   `json:"timeToLoad"`
	SupplierID uuid.UUID `json:"supplierId"`
}

type WarehousePatch struct {
	Name       *string  `json:"name,omitempty"`
	LocationX  *float64 `json:"locationX,omitempty"`
	LocationY  *float64 `json:"locationY,omitempty"`
	Capacity   *float64 `json:"capacity,omitempty"`
	TimeToLoad *float64 `json:"timeToLoad,omitempty"`
}

// StockRequest sets the absolute quantity of one product in one warehouse.
type StockRequest struct {
	Quantity int `json:"quantity"`
}

type DropshipperRequest struct {
	Name string `json:"name"`
}

type RegistrationRequest struct {
	DropshipperID uuid.UUID                  `json:"dropshipperId"`
	ProductID     uuid.UUID                  `json:"productId"`
	CommissionFee decimal.Decimal            `json:"commissionFee"`
	Status        *models.RegistrationStatus `json:"status,omitempty"`
}

type RegistrationPatch struct {
	CommissionFee *decimal.Decimal           `json:"commissionFee,omitempty"`
	Status        *models.RegistrationStatus `json:"status,omitempty"`
}

type OrderRequest struct {
	ProductID     uuid.UUID           `json:"productId"`
	DropshipperID *uuid.UUID          `json:"dropshipperId,omitempty"`
	Quantity      int                 `json:"quantity"`
	Volume        float64             `json:"volume"`
	Weight        float64             `json:"weight"`
	LocationX     float64             `json:"locationX"`
	LocationY     float64             `json:"locationY"`
	Status        *models.OrderStatus `json:"status,omitempty"`
	Note          string              `json:"note,omitempty"`
}

type OrderPatch struct {
	Quantity  *int                `json:"quantity,omitempty"`
	Volume    *float64            `json:"volume,omitempty"`
	Weight    *float64            `json:"weight,omitempty"`
	LocationX *float64            `json:"locationX,omitempty"`
	LocationY *float64            `json:"locationY,omitempty"`
	Status    *models.OrderStatus `json:"status,omitempty"`
	Note      *string             `json:"note,omitempty"`
}

type OrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type TruckRequest struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	MaxWeight    float64    `json:"maxWeight"`
	MaxVolume    float64    `json:"maxVolume"`
	AverageSpeed float64    `json:"averageSpeed"`
	TimeActive   *time.Time `json:"timeActive,omitempty"`
}

type TruckPatch struct {
	Name         *string    `json:"name,omitempty"`
	Type         *string    `json:"type,omitempty"`
	MaxWeight    *float64   `json:"maxWeight,omitempty"`
	MaxVolume    *float64   `json:"maxVolume,omitempty"`
	AverageSpeed *float64   `json:"averageSpeed,omitempty"`
	TimeInactive *time.Time `json:"timeInactive,omitempty"`
}

type PlanRequest struct {
	TruckID       uuid.UUID          `json:"truckId"`
	OrderID       uuid.UUID          `json:"orderId"`
	WarehouseID   *uuid.UUID         `json:"warehouseId,omitempty"`
	Type          models.PlanType    `json:"type"`
	Status        *models.PlanStatus `json:"status,omitempty"`
	PlanDate      time.Time          `json:"planDate"`
	StartTime     *time.Time         `json:"startTime,omitempty"`
	ExecutionTime int                `json:"executionTime"`
}

type PlanPatch struct {
	WarehouseID   *uuid.UUID         `json:"warehouseId,omitempty"`
	Status        *models.PlanStatus `json:"status,omitempty"`
	PlanDate      *time.Time         `json:"planDate,omitempty"`
	StartTime     *time.Time         `json:"startTime,omitempty"`
	ExecutionTime *int               `json:"executionTime,omitempty"`
}

// ProductWithQuantity is a product joined with its quantity in one
// warehouse, used by the by-warehouse lookup.
type ProductWithQuantity struct {
	models.Product
	QuantityInWarehouse int `json:"quantityInWarehouse"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
