// Package summary computes the per-entity dashboard aggregates. Each method
// fetches the anchor entity, derives the current month/year window from the
// injected clock, fans out over the related record sets and reduces them in
// memory.
//
// The fan-out reads are not wrapped in a transaction: a write landing between
// two reads can skew one total against another. Dashboards tolerate that;
// the /statistic/counts endpoint is the consistent-snapshot exception.
package summary

import (
	"go.uber.org/zap"

	"github.com/lightningdhna/final-api/internal/repo"
)

type Service struct {
	suppliers     repo.SupplierRepository
	products      repo.ProductRepository
	warehouses    repo.WarehouseRepository
	dropshippers  repo.DropshipperRepository
	registrations repo.RegistrationRepository
	orders        repo.OrderRepository
	trucks        repo.TruckRepository
	plans         repo.PlanRepository
	clock         Clock
	log           *zap.Logger
}

type Repositories struct {
	Suppliers     repo.SupplierRepository
	Products      repo.ProductRepository
	Warehouses    repo.WarehouseRepository
	Dropshippers  repo.DropshipperRepository
	Registrations repo.RegistrationRepository
	Orders        repo.OrderRepository
	Trucks        repo.TruckRepository
	Plans         repo.PlanRepository
}

func NewService(repos Repositories, clock Clock, log *zap.Logger) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		suppliers:     repos.Suppliers,
		products:      repos.Products,
		warehouses:    repos.Warehouses,
		dropshippers:  repos.Dropshippers,
		registrations: repos.Registrations,
		orders:        repos.Orders,
		trucks:        repos.Trucks,
		plans:         repos.Plans,
		clock:         clock,
		log:           log,
	}
}
