package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	models "github.com/lightningdhna/final-api/internal/models"
	repo "github.com/lightningdhna/final-api/internal/repo"
)

// CreateOrderHandler godoc
// @Summary Create a new order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order to add"
// @Success 201 {object} models.Order
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Product or dropshipper not found"
// @Router /order [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := productRepo.GetByID(req.ProductID); err != nil {
		http.Error(w, fmt.Sprintf("product %s not found", req.ProductID), http.StatusNotFound)
		return
	}
	if req.DropshipperID != nil {
		if _, err := dropshipperRepo.GetByID(*req.DropshipperID); err != nil {
			http.Error(w, fmt.Sprintf("dropshipper %s not found", *req.DropshipperID), http.StatusNotFound)
			return
		}
	}

	status := models.OrderPending
	if req.Status != nil {
		status = *req.Status
	}
	order := models.Order{
		ID:            uuid.New(),
		ProductID:     req.ProductID,
		DropshipperID: req.DropshipperID,
		Quantity:      req.Quantity,
		Volume:        req.Volume,
		Weight:        req.Weight,
		LocationX:     req.LocationX,
		LocationY:     req.LocationY,
		Status:        status,
		TimeCreated:   time.Now(),
		Note:          req.Note,
	}
	created, err := orderRepo.Create(order)
	if err != nil {
		logger.Error("create order failed", zap.Error(err))
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetOrdersHandler godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Router /order [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.Find(repo.OrderFilter{})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByIDHandler godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {string} string "Not found"
// @Router /order/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// GetOrdersByStatusHandler godoc
// @Summary List orders with a given status
// @Tags orders
// @Produce json
// @Param status path int true "Order status (0 pending, 1 processing, 2 shipping, 3 completed)"
// @Success 200 {array} models.Order
// @Failure 400 {string} string "Invalid status"
// @Router /order/by-status/{status} [get]
func GetOrdersByStatusHandler(w http.ResponseWriter, r *http.Request) {
	raw, err := strconv.Atoi(chi.URLParam(r, "status"))
	if err != nil {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	status := models.OrderStatus(raw)
	if !status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	orders, err := orderRepo.Find(repo.OrderFilter{Status: &status})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrdersBySupplierHandler godoc
// @Summary List orders over a supplier's products
// @Tags orders
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {array} models.Order
// @Failure 404 {string} string "Not found"
// @Router /order/by-supplier/{supplierId} [get]
func GetOrdersBySupplierHandler(w http.ResponseWriter, r *http.Request) {
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
	orders := []models.Order{}
	if len(products) > 0 {
		productIDs := lo.Map(products, func(p models.Product, _ int) uuid.UUID { return p.ID })
		orders, err = orderRepo.Find(repo.OrderFilter{ProductIDs: productIDs})
		if err != nil {
			http.Error(w, "could not fetch orders", http.StatusInternalServerError)
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrdersByDropshipperHandler godoc
// @Summary List orders attributed to a dropshipper
// @Tags orders
// @Produce json
// @Param dropshipperId path string true "Dropshipper ID"
// @Success 200 {array} models.Order
// @Failure 404 {string} string "Not found"
// @Router /order/by-dropshipper/{dropshipperId} [get]
func GetOrdersByDropshipperHandler(w http.ResponseWriter, r *http.Request) {
	dropshipperID, ok := uuidParam(w, r, "dropshipperId")
	if !ok {
		return
	}

	if _, err := dropshipperRepo.GetByID(dropshipperID); err != nil {
		http.Error(w, "dropshipper not found", http.StatusNotFound)
		return
	}

	orders, err := orderRepo.Find(repo.OrderFilter{DropshipperID: &dropshipperID})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrdersByProductHandler godoc
// @Summary List orders of a product
// @Tags orders
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {array} models.Order
// @Failure 404 {string} string "Not found"
// @Router /order/by-product/{productId} [get]
func GetOrdersByProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	if _, err := productRepo.GetByID(productID); err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	orders, err := orderRepo.Find(repo.OrderFilter{ProductID: &productID})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderPlansHandler godoc
// @Summary List the plans serving an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {array} models.Plan
// @Failure 404 {string} string "Not found"
// @Router /order/{id}/plans [get]
func GetOrderPlansHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if _, err := orderRepo.GetByID(id); err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	plans, err := planRepo.Find(repo.PlanFilter{OrderID: &id})
	if err != nil {
		http.Error(w, "could not fetch plans", http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []models.Plan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

// UpdateOrderHandler godoc
// @Summary Update an order
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param order body OrderPatch true "Fields to update"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /order/{id} [patch]
func UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var patch OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		return
	}

	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}

	changed := false
	if patch.Quantity != nil && *patch.Quantity != order.Quantity {
		order.Quantity = *patch.Quantity
		changed = true
	}
	if patch.Volume != nil && *patch.Volume != order.Volume {
		order.Volume = *patch.Volume
		changed = true
	}
	if patch.Weight != nil && *patch.Weight != order.Weight {
		order.Weight = *patch.Weight
		changed = true
	}
	if patch.LocationX != nil && *patch.LocationX != order.LocationX {
		order.LocationX = *patch.LocationX
		changed = true
	}
	if patch.LocationY != nil && *patch.LocationY != order.LocationY {
		order.LocationY = *patch.LocationY
		changed = true
	}
	if patch.Status != nil && *patch.Status != order.Status {
		order.Status = *patch.Status
		changed = true
	}
	if patch.Note != nil && *patch.Note != order.Note {
		order.Note = *patch.Note
		changed = true
	}
	if !changed {
		writeJSON(w, http.StatusOK, order)
		return
	}

	updated, err := orderRepo.Update(order)
	if err != nil {
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// UpdateOrderStatusHandler godoc
// @Summary Set the status of an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body OrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Router /order/{id}/status [patch]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}

	if order.Status == req.Status {
		writeJSON(w, http.StatusOK, order)
		return
	}
	order.Status = req.Status

	updated, err := orderRepo.Update(order)
	if err != nil {
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}

	summaryCache.Invalidate("summary:product:" + order.ProductID.String())
	writeJSON(w, http.StatusOK, updated)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Has dependent plans"
// @Failure 404 {string} string "Not found"
// @Router /order/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := orderRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrForeignKeyViolation):
			http.Error(w, "order still has plans", http.StatusBadRequest)
		default:
			http.Error(w, "could not delete order", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
