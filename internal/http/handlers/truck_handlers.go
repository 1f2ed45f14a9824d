package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	models "github.com/lightningdhna/final-api/internal/models"
	repo "github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

// CreateTruckHandler godoc
// @Summary Create a new truck
// @Tags trucks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param truck body TruckRequest true "Truck to add"
// @Success 201 {object} models.Truck
// @Failure 400 {object} []ValidationError
// @Router /truck [post]
func CreateTruckHandler(w http.ResponseWriter, r *http.Request) {
	var req TruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateTruck(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	timeActive := time.Now()
	if req.TimeActive != nil {
		timeActive = *req.TimeActive
	}
	truck := models.Truck{
		ID:           uuid.New(),
		Name:         req.Name,
		Type:         req.Type,
		MaxWeight:    req.MaxWeight,
		MaxVolume:    req.MaxVolume,
		AverageSpeed: req.AverageSpeed,
		TimeActive:   timeActive,
	}
	created, err := truckRepo.Create(truck)
	if err != nil {
		logger.Error("create truck failed", zap.Error(err))
		http.Error(w, "could not create truck", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetTrucksHandler godoc
// @Summary List all trucks
// @Tags trucks
// @Produce json
// @Success 200 {array} models.Truck
// @Router /truck [get]
func GetTrucksHandler(w http.ResponseWriter, r *http.Request) {
	trucks, err := truckRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch trucks", http.StatusInternalServerError)
		return
	}
	if trucks == nil {
		trucks = []models.Truck{}
	}
	writeJSON(w, http.StatusOK, trucks)
}

// GetTruckByIDHandler godoc
// @Summary Get truck by ID
// @Tags trucks
// @Produce json
// @Param id path string true "Truck ID"
// @Success 200 {object} models.Truck
// @Failure 404 {string} string "Not found"
// @Router /truck/{id} [get]
func GetTruckByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	truck, err := truckRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrTruckNotFound) {
			http.Error(w, "truck not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch truck", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, truck)
}

// UpdateTruckHandler godoc
// @Summary Update a truck
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags trucks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Truck ID"
// @Param truck body TruckPatch true "Fields to update"
// @Success 200 {object} models.Truck
// @Failure 404 {string} string "Not found"
// @Router /truck/{id} [patch]
func UpdateTruckHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var patch TruckPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	truck, err := truckRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrTruckNotFound) {
			http.Error(w, "truck not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch truck", http.StatusInternalServerError)
		return
	}

	changed := false
	if patch.Name != nil && *patch.Name != truck.Name {
		truck.Name = *patch.Name
		changed = true
	}
	if patch.Type != nil && *patch.Type != truck.Type {
		truck.Type = *patch.Type
		changed = true
	}
	if patch.MaxWeight != nil && *patch.MaxWeight != truck.MaxWeight {
		truck.MaxWeight = *patch.MaxWeight
		changed = true
	}
	if patch.MaxVolume != nil && *patch.MaxVolume != truck.MaxVolume {
		truck.MaxVolume = *patch.MaxVolume
		changed = true
	}
	if patch.AverageSpeed != nil && *patch.AverageSpeed != truck.AverageSpeed {
		truck.AverageSpeed = *patch.AverageSpeed
		changed = true
	}
	if patch.TimeInactive != nil && !patch.TimeInactive.Equal(truck.TimeInactive) {
		truck.TimeInactive = *patch.TimeInactive
		changed = true
	}
	if !changed {
		writeJSON(w, http.StatusOK, truck)
		return
	}

	updated, err := truckRepo.Update(truck)
	if err != nil {
		http.Error(w, "could not update truck", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTruckHandler godoc
// @Summary Delete a truck
// @Tags trucks
// @Security BearerAuth
// @Param id path string true "Truck ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Has dependent plans"
// @Failure 404 {string} string "Not found"
// @Router /truck/{id} [delete]
func DeleteTruckHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := truckRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrTruckNotFound):
			http.Error(w, "truck not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrForeignKeyViolation):
			http.Error(w, "truck still has plans", http.StatusBadRequest)
		default:
			http.Error(w, "could not delete truck", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTruckPlansHandler godoc
// @Summary List a truck's plans
// @Tags trucks
// @Produce json
// @Param id path string true "Truck ID"
// @Success 200 {array} models.Plan
// @Failure 404 {string} string "Not found"
// @Router /truck/{id}/plans [get]
func GetTruckPlansHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if _, err := truckRepo.GetByID(id); err != nil {
		http.Error(w, "truck not found", http.StatusNotFound)
		return
	}

	plans, err := planRepo.Find(repo.PlanFilter{TruckID: &id})
	if err != nil {
		http.Error(w, "could not fetch plans", http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []models.Plan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

// GetTruckSummaryHandler godoc
// @Summary Operation metrics for a truck
// @Description Derived from the truck's completed plans over all-time, current-month and current-year windows.
// @Tags trucks
// @Produce json
// @Param id path string true "Truck ID"
// @Success 200 {object} summary.TruckSummary
// @Failure 404 {string} string "Not found"
// @Router /truck/{id}/summary [get]
func GetTruckSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cacheKey := "summary:truck:" + id.String()
	var cached summary.TruckSummary
	if summaryCache.Get(cacheKey, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := summarySvc.Truck(id)
	if err != nil {
		if errors.Is(err, repo.ErrTruckNotFound) {
			http.Error(w, "truck not found", http.StatusNotFound)
			return
		}
		logger.Error("truck summary failed", zap.String("id", id.String()), zap.Error(err))
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	summaryCache.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}
