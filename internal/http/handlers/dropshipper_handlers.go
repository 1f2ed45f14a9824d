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

// CreateDropshipperHandler godoc
// @Summary Create a new dropshipper
// @Tags dropshippers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dropshipper body DropshipperRequest true "Dropshipper to add"
// @Success 201 {object} models.Dropshipper
// @Failure 400 {object} []ValidationError
// @Router /dropshipper [post]
func CreateDropshipperHandler(w http.ResponseWriter, r *http.Request) {
	var req DropshipperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateDropshipper(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := dropshipperRepo.Create(models.Dropshipper{ID: uuid.New(), Name: req.Name})
	if err != nil {
		logger.Error("create dropshipper failed", zap.Error(err))
		http.Error(w, "could not create dropshipper", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetDropshippersHandler godoc
// @Summary List all dropshippers
// @Tags dropshippers
// @Produce json
// @Success 200 {array} models.Dropshipper
// @Router /dropshipper [get]
func GetDropshippersHandler(w http.ResponseWriter, r *http.Request) {
	dropshippers, err := dropshipperRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch dropshippers", http.StatusInternalServerError)
		return
	}
	if dropshippers == nil {
		dropshippers = []models.Dropshipper{}
	}
	writeJSON(w, http.StatusOK, dropshippers)
}

// GetDropshipperByIDHandler godoc
// @Summary Get dropshipper by ID
// @Tags dropshippers
// @Produce json
// @Param id path string true "Dropshipper ID"
// @Success 200 {object} models.Dropshipper
// @Failure 404 {string} string "Not found"
// @Router /dropshipper/{id} [get]
func GetDropshipperByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	dropshipper, err := dropshipperRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrDropshipperNotFound) {
			http.Error(w, "dropshipper not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch dropshipper", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dropshipper)
}

// UpdateDropshipperHandler godoc
// @Summary Update a dropshipper
// @Description Applies only the provided fields; an empty patch returns the unchanged record.
// @Tags dropshippers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dropshipper ID"
// @Param dropshipper body DropshipperRequest true "Fields to update"
// @Success 200 {object} models.Dropshipper
// @Failure 404 {string} string "Not found"
// @Router /dropshipper/{id} [patch]
func UpdateDropshipperHandler(w http.ResponseWriter, r *http.Request) {
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

	dropshipper, err := dropshipperRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrDropshipperNotFound) {
			http.Error(w, "dropshipper not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch dropshipper", http.StatusInternalServerError)
		return
	}

	if patch.Name == nil || *patch.Name == dropshipper.Name {
		writeJSON(w, http.StatusOK, dropshipper)
		return
	}
	dropshipper.Name = *patch.Name

	updated, err := dropshipperRepo.Update(dropshipper)
	if err != nil {
		http.Error(w, "could not update dropshipper", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteDropshipperHandler godoc
// @Summary Delete a dropshipper
// @Tags dropshippers
// @Security BearerAuth
// @Param id path string true "Dropshipper ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Has dependent records"
// @Failure 404 {string} string "Not found"
// @Router /dropshipper/{id} [delete]
func DeleteDropshipperHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := dropshipperRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrDropshipperNotFound):
			http.Error(w, "dropshipper not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrForeignKeyViolation):
			http.Error(w, "dropshipper still has registrations or orders", http.StatusBadRequest)
		default:
			http.Error(w, "could not delete dropshipper", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetDropshipperRegistrationsHandler godoc
// @Summary List a dropshipper's registrations
// @Tags dropshippers
// @Produce json
// @Param id path string true "Dropshipper ID"
// @Success 200 {array} models.Registration
// @Failure 404 {string} string "Not found"
// @Router /dropshipper/{id}/registrations [get]
func GetDropshipperRegistrationsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if _, err := dropshipperRepo.GetByID(id); err != nil {
		http.Error(w, "dropshipper not found", http.StatusNotFound)
		return
	}

	registrations, err := registrationRepo.Find(repo.RegistrationFilter{DropshipperID: &id})
	if err != nil {
		http.Error(w, "could not fetch registrations", http.StatusInternalServerError)
		return
	}
	if registrations == nil {
		registrations = []models.Registration{}
	}
	writeJSON(w, http.StatusOK, registrations)
}

// GetDropshipperOrdersHandler godoc
// @Summary List a dropshipper's orders
// @Tags dropshippers
// @Produce json
// @Param id path string true "Dropshipper ID"
// @Success 200 {array} models.Order
// @Failure 404 {string} string "Not found"
// @Router /dropshipper/{id}/orders [get]
func GetDropshipperOrdersHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if _, err := dropshipperRepo.GetByID(id); err != nil {
		http.Error(w, "dropshipper not found", http.StatusNotFound)
		return
	}

	orders, err := orderRepo.Find(repo.OrderFilter{DropshipperID: &id})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetDropshipperSummaryHandler godoc
// @Summary Sales summary for a dropshipper
// @Tags dropshippers
// @Produce json
// @Param id path string true "Dropshipper ID"
// @Success 200 {object} summary.DropshipperSummary
// @Failure 404 {string} string "Not found"
// @Router /dropshipper/{id}/summary [get]
func GetDropshipperSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cacheKey := "summary:dropshipper:" + id.String()
	var cached summary.DropshipperSummary
	if summaryCache.Get(cacheKey, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := summarySvc.Dropshipper(id)
	if err != nil {
		if errors.Is(err, repo.ErrDropshipperNotFound) {
			http.Error(w, "dropshipper not found", http.StatusNotFound)
			return
		}
		logger.Error("dropshipper summary failed", zap.String("id", id.String()), zap.Error(err))
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	summaryCache.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}
