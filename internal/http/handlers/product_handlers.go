package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	models "github.com/lightningdhna/final-api/internal/models"
	repo "github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Supplier not found"
// @Router /product [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := supplierRepo.GetByID(req.SupplierID); err != nil {
		http.Error(w, fmt.Sprintf("supplier %s not found", req.SupplierID), http.StatusNotFound)
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	product := models.Product{
		ID:         uuid.New(),
		Name:       req.Name,
		Price:      req.Price,
		Weight:     req.Weight,
		Volume:     req.Volume,
		Note:       req.Note,
		SupplierID: req.SupplierID,
		Date:       date,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		logger.Error("create product failed", zap.Error(err))
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Router /product [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Router /product/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetProductsBySupplierHandler godoc
// @Summary List a supplier's products
// @Tags products
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {array} models.Product
// @Failure 404 {string} string "Not found"
// @Router /product/by-supplier/{supplierId} [get]
func GetProductsBySupplierHandler(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := uuidParam(w, r, "supplierId")
	if !ok {
		return
	}

	if _, err := supplierRepo.GetByID(supplierID); err != nil {
		http.Error(w, "supplier not found", http.StatusNotFound)
		return
	}

	products, err := productRepo.GetBySupplier(supplierID)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductsByWarehouseHandler godoc
// @Summary List products stocked in a warehouse
// @Description Each product carries its quantity in this warehouse.
// @Tags products
// @Produce json
// @Param warehouseId path string true "Warehouse ID"
// @Success 200 {array} ProductWithQuantity
// @Failure 404 {string} string "Not found"
// @Router /product/by-warehouse/{warehouseId} [get]
func GetProductsByWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID, ok := uuidParam(w, r, "warehouseId")
	if !ok {
		return
	}

	if _, err := warehouseRepo.GetByID(warehouseID); err != nil {
		http.Error(w, "warehouse not found", http.StatusNotFound)
		return
	}

	stock, err := warehouseRepo.GetStockByWarehouse(warehouseID)
	if err != nil {
		http.Error(w, "could not fetch stock", http.StatusInternalServerError)
		return
	}

	result := []ProductWithQuantity{}
	for _, wp := range stock {
		product, err := productRepo.GetByID(wp.ProductID)
		if err != nil {
			continue
		}
		result = append(result, ProductWithQuantity{Product: product, QuantityInWarehouse: wp.Quantity})
	}
	writeJSON(w, http.StatusOK, result)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductPatch true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Router /product/{id} [patch]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var patch ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	changed := false
	if patch.Name != nil && *patch.Name != product.Name {
		product.Name = *patch.Name
		changed = true
	}
	if patch.Price != nil && !patch.Price.Equal(product.Price) {
		product.Price = *patch.Price
		changed = true
	}
	if patch.Weight != nil && *patch.Weight != product.Weight {
		product.Weight = *patch.Weight
		changed = true
	}
	if patch.Volume != nil && *patch.Volume != product.Volume {
		product.Volume = *patch.Volume
		changed = true
	}
	if patch.Note != nil && *patch.Note != product.Note {
		product.Note = *patch.Note
		changed = true
	}
	if !changed {
		writeJSON(w, http.StatusOK, product)
		return
	}

	updated, err := productRepo.Update(product)
	if err != nil {
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Has dependent records"
// @Failure 404 {string} string "Not found"
// @Router /product/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := productRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrForeignKeyViolation):
			http.Error(w, "product still has stock, registrations or orders", http.StatusBadRequest)
		default:
			http.Error(w, "could not delete product", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SeedProductsHandler godoc
// @Summary Seed random products
// @Description Creates count products spread over the existing suppliers.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param count path int true "How many products to create"
// @Success 201 {array} models.Product
// @Failure 400 {string} string "Invalid count or no suppliers"
// @Router /product/seed/{count} [post]
func SeedProductsHandler(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(chi.URLParam(r, "count"))
	if err != nil || count <= 0 || count > 1000 {
		http.Error(w, "count must be between 1 and 1000", http.StatusBadRequest)
		return
	}

	suppliers, err := supplierRepo.GetAll()
	if err != nil || len(suppliers) == 0 {
		http.Error(w, "no suppliers to attach products to", http.StatusBadRequest)
		return
	}

	created := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		supplier := suppliers[rand.Intn(len(suppliers))]
		product := models.Product{
			ID:         uuid.New(),
			Name:       fmt.Sprintf("Product %s", uuid.NewString()[:8]),
			Price:      decimal.NewFromInt(int64(rand.Intn(9900)+100)).Div(decimal.NewFromInt(100)),
			Weight:     float64(rand.Intn(50)+1) / 10,
			Volume:     float64(rand.Intn(100)+1) / 10,
			SupplierID: supplier.ID,
			Date:       time.Now(),
		}
		p, err := productRepo.Create(product)
		if err != nil {
			logger.Error("seeding product failed", zap.Error(err))
			http.Error(w, "could not seed products", http.StatusInternalServerError)
			return
		}
		created = append(created, p)
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetProductSummaryHandler godoc
// @Summary Stock and sales summary for a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} summary.ProductSummary
// @Failure 404 {string} string "Not found"
// @Router /product/{id}/summary [get]
func GetProductSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cacheKey := "summary:product:" + id.String()
	var cached summary.ProductSummary
	if summaryCache.Get(cacheKey, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := summarySvc.Product(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		logger.Error("product summary failed", zap.String("id", id.String()), zap.Error(err))
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	summaryCache.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}
