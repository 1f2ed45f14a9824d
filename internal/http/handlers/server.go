package handlers

import (
	"go.uber.org/zap"

	"github.com/lightningdhna/final-api/internal/cache"
	repo "github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

var (
	supplierRepo     repo.SupplierRepository
	productRepo      repo.ProductRepository
	warehouseRepo    repo.WarehouseRepository
	dropshipperRepo  repo.DropshipperRepository
	registrationRepo repo.RegistrationRepository
	orderRepo        repo.OrderRepository
	truckRepo        repo.TruckRepository
	planRepo         repo.PlanRepository
	statisticRepo    repo.StatisticRepository
	userRepo         repo.UserRepository

	summarySvc   *summary.Service
	summaryCache *cache.SummaryCache
	logger       = zap.NewNop()
)

func SetSupplierRepo(r repo.SupplierRepository) {
	supplierRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetWarehouseRepo(r repo.WarehouseRepository) {
	warehouseRepo = r
}

func SetDropshipperRepo(r repo.DropshipperRepository) {
	dropshipperRepo = r
}

func SetRegistrationRepo(r repo.RegistrationRepository) {
	registrationRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetTruckRepo(r repo.TruckRepository) {
	truckRepo = r
}

func SetPlanRepo(r repo.PlanRepository) {
	planRepo = r
}

func SetStatisticRepo(r repo.StatisticRepository) {
	statisticRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSummaryService(s *summary.Service) {
	summarySvc = s
}

// SetSummaryCache is optional; summaries recompute on every request without it.
func SetSummaryCache(c *cache.SummaryCache) {
	summaryCache = c
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
