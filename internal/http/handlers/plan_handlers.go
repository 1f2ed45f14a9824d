package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	models "github.com/lightningdhna/final-api/internal/models"
	repo "github.com/lightningdhna/final-api/internal/repo"

	"github.com/google/uuid"
)

// CreatePlanHandler godoc
// @Summary Create a new transport plan
// @Description Load plans require a warehouse; unload plans must not carry one.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body PlanRequest true "Plan to add"
// @Success 201 {object} models.Plan
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Truck, order or warehouse not found"
// @Router /plan [post]
func CreatePlanHandler(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePlan(req)
	if req.Type == models.PlanLoad && req.WarehouseID == nil {
		validationErrors = append(validationErrors, ValidationError{Field: "WarehouseId", Description: "WarehouseId is required for load plans"})
	}
	if req.Type == models.PlanUnload && req.WarehouseID != nil {
		validationErrors = append(validationErrors, ValidationError{Field: "WarehouseId", Description: "WarehouseId must be empty for unload plans"})
	}
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := truckRepo.GetByID(req.TruckID); err != nil {
		http.Error(w, fmt.Sprintf("truck %s not found", req.TruckID), http.StatusNotFound)
		return
	}
	if _, err := orderRepo.GetByID(req.OrderID); err != nil {
		http.Error(w, fmt.Sprintf("order %s not found", req.OrderID), http.StatusNotFound)
		return
	}
	if req.WarehouseID != nil {
		if _, err := warehouseRepo.GetByID(*req.WarehouseID); err != nil {
			http.Error(w, fmt.Sprintf("warehouse %s not found", *req.WarehouseID), http.StatusNotFound)
			return
		}
	}

	status := models.PlanWaiting
	if req.Status != nil {
		status = *req.Status
	}
	startTime := req.PlanDate
	if req.StartTime != nil {
		startTime = *req.StartTime
	}
	plan := models.Plan{
		ID:            uuid.New(),
		TruckID:       req.TruckID,
		OrderID:       req.OrderID,
		WarehouseID:   req.WarehouseID,
		Type:          req.Type,
		Status:        status,
		PlanDate:      req.PlanDate,
		StartTime:     startTime,
		ExecutionTime: req.ExecutionTime,
	}
	created, err := planRepo.Create(plan)
	if err != nil {
		logger.Error("create plan failed", zap.Error(err))
		http.Error(w, "could not create plan", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetPlansHandler godoc
// @Summary List plans
// @Description endDate is date-only and inclusive; internally it is extended by one day and applied exclusively.
// @Tags plans
// @Produce json
// @Param truckId query string false "Filter by truck"
// @Param orderId query string false "Filter by order"
// @Param warehouseId query string false "Filter by warehouse"
// @Param status query int false "Filter by status (0..3)"
// @Param type query int false "Filter by type (1 load, 2 unload)"
// @Param startDate query string false "Plans on or after this date (YYYY-MM-DD)"
// @Param endDate query string false "Plans up to and including this date (YYYY-MM-DD)"
// @Success 200 {array} models.Plan
// @Failure 400 {string} string "Invalid filter"
// @Router /plan [get]
func GetPlansHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.PlanFilter{
		TruckID:     parseUUIDPtr(q.Get("truckId")),
		OrderID:     parseUUIDPtr(q.Get("orderId")),
		WarehouseID: parseUUIDPtr(q.Get("warehouseId")),
		StartDate:   parseDatePtr(q.Get("startDate")),
	}
	if v := parseIntPtr(q.Get("status")); v != nil {
		status := models.PlanStatus(*v)
		if !status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}
	if v := parseIntPtr(q.Get("type")); v != nil {
		planType := models.PlanType(*v)
		if !planType.Valid() {
			http.Error(w, "invalid type", http.StatusBadRequest)
			return
		}
		filter.Type = &planType
	}
	if end := parseDatePtr(q.Get("endDate")); end != nil {
		// Inclusive date input becomes an exclusive next-day bound.
		bound := end.AddDate(0, 0, 1)
		filter.EndDate = &bound
	}

	plans, err := planRepo.Find(filter)
	if err != nil {
		http.Error(w, "could not fetch plans", http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []models.Plan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

// GetPlanByIDHandler godoc
// @Summary Get plan by ID
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} models.Plan
// @Failure 404 {string} string "Not found"
// @Router /plan/{id} [get]
func GetPlanByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	plan, err := planRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch plan", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// UpdatePlanHandler godoc
// @Summary Update a plan
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param plan body PlanPatch true "Fields to update"
// @Success 200 {object} models.Plan
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /plan/{id} [patch]
func UpdatePlanHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var patch PlanPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if patch.ExecutionTime != nil && *patch.ExecutionTime < 0 {
		http.Error(w, "executionTime cannot be negative", http.StatusBadRequest)
		return
	}

	plan, err := planRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch plan", http.StatusInternalServerError)
		return
	}

	changed := false
	if patch.WarehouseID != nil {
		if _, err := warehouseRepo.GetByID(*patch.WarehouseID); err != nil {
			http.Error(w, fmt.Sprintf("warehouse %s not found", *patch.WarehouseID), http.StatusNotFound)
			return
		}
		if plan.WarehouseID == nil || *plan.WarehouseID != *patch.WarehouseID {
			plan.WarehouseID = patch.WarehouseID
			changed = true
		}
	}
	if patch.Status != nil && *patch.Status != plan.Status {
		plan.Status = *patch.Status
		changed = true
	}
	if patch.PlanDate != nil && !patch.PlanDate.Equal(plan.PlanDate) {
		plan.PlanDate = *patch.PlanDate
		changed = true
	}
	if patch.StartTime != nil && !patch.StartTime.Equal(plan.StartTime) {
		plan.StartTime = *patch.StartTime
		changed = true
	}
	if patch.ExecutionTime != nil && *patch.ExecutionTime != plan.ExecutionTime {
		plan.ExecutionTime = *patch.ExecutionTime
		changed = true
	}
	if !changed {
		writeJSON(w, http.StatusOK, plan)
		return
	}

	updated, err := planRepo.Update(plan)
	if err != nil {
		http.Error(w, "could not update plan", http.StatusInternalServerError)
		return
	}

	summaryCache.Invalidate("summary:truck:" + plan.TruckID.String())
	writeJSON(w, http.StatusOK, updated)
}

// DeletePlanHandler godoc
// @Summary Delete a plan
// @Tags plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /plan/{id} [delete]
func DeletePlanHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := planRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete plan", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
