package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	models "github.com/lightningdhna/final-api/internal/models"
	repo "github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

// CreateRegistrationHandler godoc
// @Summary Register a dropshipper for a product
// @Description At most one registration per (dropshipper, product) pair.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration body RegistrationRequest true "Registration to add"
// @Success 201 {object} models.Registration
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Dropshipper or product not found"
// @Failure 409 {string} string "Already registered"
// @Router /registration [post]
func CreateRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateRegistration(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := dropshipperRepo.GetByID(req.DropshipperID); err != nil {
		http.Error(w, fmt.Sprintf("dropshipper %s not found", req.DropshipperID), http.StatusNotFound)
		return
	}
	if _, err := productRepo.GetByID(req.ProductID); err != nil {
		http.Error(w, fmt.Sprintf("product %s not found", req.ProductID), http.StatusNotFound)
		return
	}

	status := models.RegistrationPending
	if req.Status != nil {
		status = *req.Status
	}
	registration := models.Registration{
		DropshipperID: req.DropshipperID,
		ProductID:     req.ProductID,
		CommissionFee: req.CommissionFee,
		Status:        status,
		CreatedDate:   time.Now(),
	}
	created, err := registrationRepo.Create(registration)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateRegistration) {
			http.Error(w, "registration already exists for this dropshipper and product", http.StatusConflict)
			return
		}
		logger.Error("create registration failed", zap.Error(err))
		http.Error(w, "could not create registration", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetRegistrationsHandler godoc
// @Summary List registrations
// @Tags registrations
// @Produce json
// @Param dropshipperId query string false "Filter by dropshipper"
// @Param productId query string false "Filter by product"
// @Param status query int false "Filter by status (0 pending, 1 approved, 2 rejected)"
// @Success 200 {array} models.Registration
// @Router /registration [get]
func GetRegistrationsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.RegistrationFilter{
		DropshipperID: parseUUIDPtr(q.Get("dropshipperId")),
		ProductID:     parseUUIDPtr(q.Get("productId")),
	}
	if v := parseIntPtr(q.Get("status")); v != nil {
		status := models.RegistrationStatus(*v)
		if !status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}

	registrations, err := registrationRepo.Find(filter)
	if err != nil {
		http.Error(w, "could not fetch registrations", http.StatusInternalServerError)
		return
	}
	if registrations == nil {
		registrations = []models.Registration{}
	}
	writeJSON(w, http.StatusOK, registrations)
}

// GetRegistrationHandler godoc
// @Summary Get one registration by its pair
// @Tags registrations
// @Produce json
// @Param dropshipperId path string true "Dropshipper ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Registration
// @Failure 404 {string} string "Not found"
// @Router /registration/{dropshipperId}/{productId} [get]
func GetRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	dropshipperID, ok := uuidParam(w, r, "dropshipperId")
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	registration, err := registrationRepo.GetByKey(dropshipperID, productID)
	if err != nil {
		if errors.Is(err, repo.ErrRegistrationNotFound) {
			http.Error(w, "registration not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch registration", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, registration)
}

// UpdateRegistrationHandler godoc
// @Summary Update a registration
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dropshipperId path string true "Dropshipper ID"
// @Param productId path string true "Product ID"
// @Param registration body RegistrationPatch true "Fields to update"
// @Success 200 {object} models.Registration
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Router /registration/{dropshipperId}/{productId} [patch]
func UpdateRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	dropshipperID, ok := uuidParam(w, r, "dropshipperId")
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	var patch RegistrationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	registration, err := registrationRepo.GetByKey(dropshipperID, productID)
	if err != nil {
		if errors.Is(err, repo.ErrRegistrationNotFound) {
			http.Error(w, "registration not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch registration", http.StatusInternalServerError)
		return
	}

	changed := false
	if patch.CommissionFee != nil && !patch.CommissionFee.Equal(registration.CommissionFee) {
		registration.CommissionFee = *patch.CommissionFee
		changed = true
	}
	if patch.Status != nil && *patch.Status != registration.Status {
		registration.Status = *patch.Status
		changed = true
	}
	if !changed {
		writeJSON(w, http.StatusOK, registration)
		return
	}

	updated, err := registrationRepo.Update(registration)
	if err != nil {
		http.Error(w, "could not update registration", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteRegistrationHandler godoc
// @Summary Delete a registration
// @Tags registrations
// @Security BearerAuth
// @Param dropshipperId path string true "Dropshipper ID"
// @Param productId path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /registration/{dropshipperId}/{productId} [delete]
func DeleteRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	dropshipperID, ok := uuidParam(w, r, "dropshipperId")
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	if err := registrationRepo.Delete(dropshipperID, productID); err != nil {
		if errors.Is(err, repo.ErrRegistrationNotFound) {
			http.Error(w, "registration not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete registration", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRegistrationSummaryHandler godoc
// @Summary Sales summary for one (dropshipper, product) pair
// @Tags registrations
// @Produce json
// @Param dropshipperId path string true "Dropshipper ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} summary.RegistrationSummary
// @Failure 404 {string} string "Not found"
// @Router /registration/{dropshipperId}/{productId}/summary [get]
func GetRegistrationSummaryHandler(w http.ResponseWriter, r *http.Request) {
	dropshipperID, ok := uuidParam(w, r, "dropshipperId")
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "productId")
	if !ok {
		return
	}

	cacheKey := "summary:registration:" + dropshipperID.String() + ":" + productID.String()
	var cached summary.RegistrationSummary
	if summaryCache.Get(cacheKey, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := summarySvc.Registration(dropshipperID, productID)
	if err != nil {
		if errors.Is(err, repo.ErrRegistrationNotFound) {
			http.Error(w, "registration not found", http.StatusNotFound)
			return
		}
		logger.Error("registration summary failed", zap.Error(err))
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	summaryCache.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}
