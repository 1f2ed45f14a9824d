package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	models "github.com/lightningdhna/final-api/internal/models"
	repo "github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

// CreateWarehouseHandler godoc
// @Summary Create a new warehouse
// @Tags warehouses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param warehouse body WarehouseRequest true "Warehouse to add"
// @Success 201 {object} models.Warehouse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Supplier not found"
// @Router /warehouse [post]
func CreateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	var req WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateWarehouse(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := supplierRepo.GetByID(req.SupplierID); err != nil {
		http.Error(w, fmt.Sprintf("supplier %s not found", req.SupplierID), http.StatusNotFound)
		return
	}

	warehouse := models.Warehouse{
		ID:         uuid.New(),
		Name:       req.Name,
		LocationX:  req.LocationX,
		LocationY:  req.LocationY,
		Capacity:   req.Capacity,
		TimeToLoad: req.TimeToLoad,
		SupplierID: req.SupplierID,
	}
	created, err := warehouseRepo.Create(warehouse)
	if err != nil {
		logger.Error("create warehouse failed", zap.Error(err))
		http.Error(w, "could not create warehouse", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetWarehousesHandler godoc
// @Summary List all warehouses
// @Tags warehouses
// @Produce json
// @Success 200 {array} models.Warehouse
// @Router /warehouse [get]
func GetWarehousesHandler(w http.ResponseWriter, r *http.Request) {
	warehouses, err := warehouseRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch warehouses", http.StatusInternalServerError)
		return
	}
	if warehouses == nil {
		warehouses = []models.Warehouse{}
	}
	writeJSON(w, http.StatusOK, warehouses)
}

// GetWarehouseByIDHandler godoc
// @Summary Get warehouse by ID
// @Tags warehouses
// @Produce json
// @Param id path string true "Warehouse ID"
// @Success 200 {object} models.Warehouse
// @Failure 404 {string} string "Not found"
// @Router /warehouse/{id} [get]
func GetWarehouseByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	warehouse, err := warehouseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch warehouse", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, warehouse)
}

// GetWarehousesBySupplierHandler godoc
// @Summary List a supplier's warehouses
// @Tags warehouses
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {array} models.Warehouse
// @Failure 404 {string} string "Not found"
// @Router /warehouse/by-supplier/{supplierId} [get]
func GetWarehousesBySupplierHandler(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := uuidParam(w, r, "supplierId")
	if !ok {
		return
	}

	if _, err := supplierRepo.GetByID(supplierID); err != nil {
		http.Error(w, "supplier not found", http.StatusNotFound)
		return
	}

	warehouses, err := warehouseRepo.GetBySupplier(supplierID)
	if err != nil {
		http.Error(w, "could not fetch warehouses", http.StatusInternalServerError)
		return
	}
	if warehouses == nil {
		warehouses = []models.Warehouse{}
	}
	writeJSON(w, http.StatusOK, warehouses)
}

// GetWarehousesByProductHandler godoc
// @Summary List warehouses holding a product
// @Description Only warehouses with a strictly positive quantity are returned.
// @Tags warehouses
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {array} models.Warehouse
// @Failure 404 {string} string "Not found"
// @Router /warehouse/by-product/{productId} [get]
func GetWarehousesByProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	if _, err := productRepo.GetByID(productID); err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	warehouses, err := warehouseRepo.GetByProductInStock(productID)
	if err != nil {
		http.Error(w, "could not fetch warehouses", http.StatusInternalServerError)
		return
	}
	if warehouses == nil {
		warehouses = []models.Warehouse{}
	}
	writeJSON(w, http.StatusOK, warehouses)
}

// UpdateWarehouseHandler godoc
// @Summary Update a warehouse
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags warehouses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Warehouse ID"
// @Param warehouse body WarehousePatch true "Fields to update"
// @Success 200 {object} models.Warehouse
// @Failure 404 {string} string "Not found"
// @Router /warehouse/{id} [patch]
func UpdateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var patch WarehousePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	warehouse, err := warehouseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch warehouse", http.StatusInternalServerError)
		return
	}

	changed := false
	if patch.Name != nil && *patch.Name != warehouse.Name {
		warehouse.Name = *patch.Name
		changed = true
	}
	if patch.LocationX != nil && *patch.LocationX != warehouse.LocationX {
		warehouse.LocationX = *patch.LocationX
		changed = true
	}
	if patch.LocationY != nil && *patch.LocationY != warehouse.LocationY {
		warehouse.LocationY = *patch.LocationY
		changed = true
	}
	if patch.Capacity != nil && *patch.Capacity != warehouse.Capacity {
		warehouse.Capacity = *patch.Capacity
		changed = true
	}
	if patch.TimeToLoad != nil && *patch.TimeToLoad != warehouse.TimeToLoad {
		warehouse.TimeToLoad = *patch.TimeToLoad
		changed = true
	}
	if !changed {
		writeJSON(w, http.StatusOK, warehouse)
		return
	}

	updated, err := warehouseRepo.Update(warehouse)
	if err != nil {
		http.Error(w, "could not update warehouse", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteWarehouseHandler godoc
// @Summary Delete a warehouse
// @Tags warehouses
// @Security BearerAuth
// @Param id path string true "Warehouse ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Has dependent records"
// @Failure 404 {string} string "Not found"
// @Router /warehouse/{id} [delete]
func DeleteWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := warehouseRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrWarehouseNotFound):
			http.Error(w, "warehouse not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrForeignKeyViolation):
			http.Error(w, "warehouse still holds stock or plans", http.StatusBadRequest)
		default:
			http.Error(w, "could not delete warehouse", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpsertStockHandler godoc
// @Summary Set the stock of a product in a warehouse
// @Tags warehouses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Warehouse ID"
// @Param productId path string true "Product ID"
// @Param stock body StockRequest true "Absolute quantity"
// @Success 200 {object} models.WarehouseProduct
// @Failure 400 {string} string "Negative quantity"
// @Failure 404 {string} string "Not found"
// @Router /warehouse/{id}/product/{productId} [put]
func UpsertStockHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	var req StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity < 0 {
		http.Error(w, "quantity cannot be negative", http.StatusBadRequest)
		return
	}

	if _, err := warehouseRepo.GetByID(warehouseID); err != nil {
		http.Error(w, "warehouse not found", http.StatusNotFound)
		return
	}
	if _, err := productRepo.GetByID(productID); err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	stock, err := warehouseRepo.UpsertStock(models.WarehouseProduct{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		logger.Error("upsert stock failed", zap.Error(err))
		http.Error(w, "could not update stock", http.StatusInternalServerError)
		return
	}

	summaryCache.Invalidate(
		"summary:product:"+productID.String(),
		"summary:warehouse:"+warehouseID.String(),
	)
	writeJSON(w, http.StatusOK, stock)
}

// GetWarehouseSummaryHandler godoc
// @Summary Stock summary for a warehouse
// @Tags warehouses
// @Produce json
// @Param id path string true "Warehouse ID"
// @Success 200 {object} summary.WarehouseSummary
// @Failure 404 {string} string "Not found"
// @Router /warehouse/{id}/summary [get]
func GetWarehouseSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cacheKey := "summary:warehouse:" + id.String()
	var cached summary.WarehouseSummary
	if summaryCache.Get(cacheKey, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := summarySvc.Warehouse(id)
	if err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		logger.Error("warehouse summary failed", zap.String("id", id.String()), zap.Error(err))
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	summaryCache.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}
