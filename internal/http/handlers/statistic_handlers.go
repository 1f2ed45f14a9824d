package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	repo "github.com/lightningdhna/final-api/internal/repo"
)

// SupplierProductCountResponse is a group-by row with the supplier name
// resolved for display.
type SupplierProductCountResponse struct {
	SupplierID   uuid.UUID `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	ProductCount int       `json:"productCount"`
}

// GetCountsHandler godoc
// @Summary Global row counts
// @Description All six counts are read in one transaction, so they are consistent with each other.
// @Tags statistics
// @Produce json
// @Success 200 {object} repo.Counts
// @Router /statistic/counts [get]
func GetCountsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := statisticRepo.Counts()
	if err != nil {
		logger.Error("counts failed", zap.Error(err))
		http.Error(w, "could not fetch counts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// GetOrdersByStatusStatHandler godoc
// @Summary Order counts grouped by status
// @Tags statistics
// @Produce json
// @Success 200 {array} repo.OrderStatusCount
// @Router /statistic/orders/by-status [get]
func GetOrdersByStatusStatHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := statisticRepo.OrdersByStatus()
	if err != nil {
		http.Error(w, "could not fetch statistics", http.StatusInternalServerError)
		return
	}
	if counts == nil {
		counts = []repo.OrderStatusCount{}
	}
	writeJSON(w, http.StatusOK, counts)
}

// GetProductsBySupplierStatHandler godoc
// @Summary Product counts grouped by supplier
// @Description Ordered by count descending. A supplier deleted mid-read shows as "Unknown".
// @Tags statistics
// @Produce json
// @Success 200 {array} SupplierProductCountResponse
// @Router /statistic/products/by-supplier [get]
func GetProductsBySupplierStatHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := statisticRepo.ProductsBySupplier()
	if err != nil {
		http.Error(w, "could not fetch statistics", http.StatusInternalServerError)
		return
	}

	response := make([]SupplierProductCountResponse, len(counts))
	for i, c := range counts {
		name := "Unknown"
		if supplier, err := supplierRepo.GetByID(c.SupplierID); err == nil {
			name = supplier.Name
		}
		response[i] = SupplierProductCountResponse{
			SupplierID:   c.SupplierID,
			SupplierName: name,
			ProductCount: c.ProductCount,
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// GetRegistrationsByStatusStatHandler godoc
// @Summary Registration counts grouped by status
// @Tags statistics
// @Produce json
// @Success 200 {array} repo.RegistrationStatusCount
// @Router /statistic/registrations/by-status [get]
func GetRegistrationsByStatusStatHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := statisticRepo.RegistrationsByStatus()
	if err != nil {
		http.Error(w, "could not fetch statistics", http.StatusInternalServerError)
		return
	}
	if counts == nil {
		counts = []repo.RegistrationStatusCount{}
	}
	writeJSON(w, http.StatusOK, counts)
}

// GetSupplierStatisticsHandler godoc
// @Summary Per-product breakdown for every supplier
// @Tags statistics
// @Produce json
// @Success 200 {array} summary.SupplierStatistics
// @Router /statistic/suppliers [get]
func GetSupplierStatisticsHandler(w http.ResponseWriter, r *http.Request) {
	result, err := summarySvc.AllSupplierStatistics()
	if err != nil {
		logger.Error("supplier statistics failed", zap.Error(err))
		http.Error(w, "could not compute statistics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetSupplierStatisticsByIDHandler godoc
// @Summary Per-product breakdown for one supplier
// @Tags statistics
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} summary.SupplierStatistics
// @Failure 404 {string} string "Not found"
// @Router /statistic/suppliers/{id} [get]
func GetSupplierStatisticsByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	result, err := summarySvc.SupplierStatistics(id)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		logger.Error("supplier statistics failed", zap.String("id", id.String()), zap.Error(err))
		http.Error(w, "could not compute statistics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
