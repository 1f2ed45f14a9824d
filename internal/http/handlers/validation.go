package handlers

import (
	"strings"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateSupplier(req SupplierRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateProduct(req ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if req.Price.IsNegative() {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if req.Weight < 0 {
		errs = append(errs, ValidationError{Field: "Weight", Description: "Weight cannot be negative"})
	}
	if req.Volume < 0 {
		errs = append(errs, ValidationError{Field: "Volume", Description: "Volume cannot be negative"})
	}
	if req.SupplierID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "SupplierId", Description: "SupplierId is required"})
	}
	return errs
}

func validateWarehouse(req WarehouseRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if req.Capacity < 0 {
		errs = append(errs, ValidationError{Field: "Capacity", Description: "Capacity cannot be negative"})
	}
	if req.SupplierID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "SupplierId", Description: "SupplierId is required"})
	}
	return errs
}

func validateDropshipper(req DropshipperRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateRegistration(req RegistrationRequest) []ValidationError {
	errs := []ValidationError{}
	if req.DropshipperID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "DropshipperId", Description: "DropshipperId is required"})
	}
	if req.ProductID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "ProductId", Description: "ProductId is required"})
	}
	if req.CommissionFee.IsNegative() {
		errs = append(errs, ValidationError{Field: "CommissionFee", Description: "CommissionFee cannot be negative"})
	}
	if req.Status != nil && !req.Status.Valid() {
		errs = append(errs, ValidationError{Field: "Status", Description: "Status must be between 0 and 2"})
	}
	return errs
}

func validateOrder(req OrderRequest) []ValidationError {
	errs := []ValidationError{}
	if req.ProductID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "ProductId", Description: "ProductId is required"})
	}
	if req.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if req.Status != nil && !req.Status.Valid() {
		errs = append(errs, ValidationError{Field: "Status", Description: "Status must be between 0 and 3"})
	}
	return errs
}

func validateTruck(req TruckRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if req.AverageSpeed < 0 {
		errs = append(errs, ValidationError{Field: "AverageSpeed", Description: "AverageSpeed cannot be negative"})
	}
	return errs
}

func validatePlan(req PlanRequest) []ValidationError {
	errs := []ValidationError{}
	if req.TruckID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "TruckId", Description: "TruckId is required"})
	}
	if req.OrderID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "OrderId", Description: "OrderId is required"})
	}
	if !req.Type.Valid() {
		errs = append(errs, ValidationError{Field: "Type", Description: "Type must be 1 (load) or 2 (unload)"})
	}
	if req.Status != nil && !req.Status.Valid() {
		errs = append(errs, ValidationError{Field: "Status", Description: "Status must be between 0 and 3"})
	}
	if req.ExecutionTime < 0 {
		errs = append(errs, ValidationError{Field: "ExecutionTime", Description: "ExecutionTime cannot be negative"})
	}
	if req.PlanDate.IsZero() {
		errs = append(errs, ValidationError{Field: "PlanDate", Description: "PlanDate is required"})
	}
	return errs
}
