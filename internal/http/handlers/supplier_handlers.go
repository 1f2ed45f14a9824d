package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	models "github.com/lightningdhna/final-api/internal/models"
	repo "github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

// CreateSupplierHandler godoc
// @Summary Create a new supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param supplier body SupplierRequest true "Supplier to add"
// @Success 201 {object} models.Supplier
// @Failure 400 {object} []ValidationError
// @Router /supplier [post]
func CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSupplier(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := supplierRepo.Create(models.Supplier{ID: uuid.New(), Name: req.Name})
	if err != nil {
		logger.Error("create supplier failed", zap.Error(err))
		http.Error(w, "could not create supplier", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetSuppliersHandler godoc
// @Summary List all suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} models.Supplier
// @Router /supplier [get]
func GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, err := supplierRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch suppliers", http.StatusInternalServerError)
		return
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// GetSupplierByIDHandler godoc
// @Summary Get supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} models.Supplier
// @Failure 404 {string} string "Not found"
// @Router /supplier/{id} [get]
func GetSupplierByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	supplier, err := supplierRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch supplier", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// UpdateSupplierHandler godoc
// @Summary Update a supplier
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Param supplier body SupplierRequest true "Fields to update"
// @Success 200 {object} models.Supplier
// @Failure 404 {string} string "Not found"
// @Router /supplier/{id} [patch]
func UpdateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var patch struct {
		Name *string `json:"name,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	supplier, err := supplierRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch supplier", http.StatusInternalServerError)
		return
	}

	if patch.Name == nil || *patch.Name == supplier.Name {
		writeJSON(w, http.StatusOK, supplier)
		return
	}
	supplier.Name = *patch.Name

	updated, err := supplierRepo.Update(supplier)
	if err != nil {
		http.Error(w, "could not update supplier", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteSupplierHandler godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Has dependent records"
// @Failure 404 {string} string "Not found"
// @Router /supplier/{id} [delete]
func DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := supplierRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrSupplierNotFound):
			http.Error(w, "supplier not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrForeignKeyViolation):
			http.Error(w, "supplier still owns products or warehouses", http.StatusBadRequest)
		default:
			http.Error(w, "could not delete supplier", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSupplierByWarehouseHandler godoc
// @Summary Get the supplier owning a warehouse
// @Tags suppliers
// @Produce json
// @Param warehouseId path string true "Warehouse ID"
// @Success 200 {object} models.Supplier
// @Failure 404 {string} string "Not found"
// @Router /supplier/by-warehouse/{warehouseId} [get]
func GetSupplierByWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID, ok := uuidParam(w, r, "warehouseId")
	if !ok {
		return
	}

	warehouse, err := warehouseRepo.GetByID(warehouseID)
	if err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch warehouse", http.StatusInternalServerError)
		return
	}

	supplier, err := supplierRepo.GetByID(warehouse.SupplierID)
	if err != nil {
		http.Error(w, "supplier not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// GetSupplierByProductHandler godoc
// @Summary Get the supplier owning a product
// @Tags suppliers
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Supplier
// @Failure 404 {string} string "Not found"
// @Router /supplier/by-product/{productId} [get]
func GetSupplierByProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	product, err := productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	supplier, err := supplierRepo.GetByID(product.SupplierID)
	if err != nil {
		http.Error(w, "supplier not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// GetSuppliersByDropshipperHandler godoc
// @Summary List suppliers a dropshipper resells for
// @Description Distinct suppliers reached through the dropshipper's approved registrations, in first-seen order.
// @Tags suppliers
// @Produce json
// @Param dropshipperId path string true "Dropshipper ID"
// @Success 200 {array} models.Supplier
// @Failure 404 {string} string "Not found"
// @Router /supplier/by-dropshipper/{dropshipperId} [get]
func GetSuppliersByDropshipperHandler(w http.ResponseWriter, r *http.Request) {
	dropshipperID, ok := uuidParam(w, r, "dropshipperId")
	if !ok {
		return
	}

	if _, err := dropshipperRepo.GetByID(dropshipperID); err != nil {
		http.Error(w, "dropshipper not found", http.StatusNotFound)
		return
	}

	approved := models.RegistrationApproved
	registrations, err := registrationRepo.Find(repo.RegistrationFilter{
		DropshipperID: &dropshipperID,
		Status:        &approved,
	})
	if err != nil {
		http.Error(w, "could not fetch registrations", http.StatusInternalServerError)
		return
	}

	seen := make(map[uuid.UUID]struct{})
	suppliers := []models.Supplier{}
	for _, reg := range registrations {
		product, err := productRepo.GetByID(reg.ProductID)
		if err != nil {
			continue
		}
		if _, ok := seen[product.SupplierID]; ok {
			continue
		}
		seen[product.SupplierID] = struct{}{}
		if supplier, err := supplierRepo.GetByID(product.SupplierID); err == nil {
			suppliers = append(suppliers, supplier)
		}
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// GetSupplierSummaryHandler godoc
// @Summary Monthly sales summary for a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} summary.SupplierSummary
// @Failure 404 {string} string "Not found"
// @Router /supplier/{id}/summary [get]
func GetSupplierSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cacheKey := "summary:supplier:" + id.String()
	var cached summary.SupplierSummary
	if summaryCache.Get(cacheKey, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := summarySvc.Supplier(id)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		logger.Error("supplier summary failed", zap.String("id", id.String()), zap.Error(err))
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	summaryCache.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}
