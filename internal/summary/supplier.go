package summary

import (
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
)

type TopDropshipper struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
}

type SupplierSummary struct {
	SupplierID          uuid.UUID       `json:"supplierId"`
	SupplierName        string          `json:"supplierName"`
	WarehouseCount      int             `json:"warehouseCount"`
	DropshipperCount    int             `json:"dropshipperCount"`
	CompletedOrderCount int             `json:"completedOrderCount"`
	SoldProductQuantity int             `json:"soldProductQuantity"`
	TopDropshipper      *TopDropshipper `json:"topDropshipper"`
	Month               int             `json:"month"`
	Year                int             `json:"year"`
}

// Supplier aggregates this month's sales across all of a supplier's
// products. Returns repo.ErrSupplierNotFound when the anchor is absent.
func (s *Service) Supplier(supplierID uuid.UUID) (*SupplierSummary, error) {
	supplier, err := s.suppliers.GetByID(supplierID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	monthStart, monthEnd := monthWindow(now)

	warehouses, err := s.warehouses.GetBySupplier(supplierID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	productIDs := lo.Map(products, func(p models.Product, _ int) uuid.UUID { return p.ID })

	// Distinct dropshippers among approved registrations for the
	// supplier's products.
	dropshipperCount := 0
	var monthlyCompleted []models.Order
	if len(productIDs) > 0 {
		approved := models.RegistrationApproved
		registrations, err := s.registrations.Find(repo.RegistrationFilter{ProductIDs: productIDs, Status: &approved})
		if err != nil {
			return nil, err
		}
		dropshipperCount = len(lo.UniqBy(registrations, func(r models.Registration) uuid.UUID { return r.DropshipperID }))

		completed := models.OrderCompleted
		monthlyCompleted, err = s.orders.Find(repo.OrderFilter{
			ProductIDs: productIDs,
			Status:     &completed,
			From:       &monthStart,
			To:         &monthEnd,
		})
		if err != nil {
			return nil, err
		}
	}

	return &SupplierSummary{
		SupplierID:          supplier.ID,
		SupplierName:        supplier.Name,
		WarehouseCount:      len(warehouses),
		DropshipperCount:    dropshipperCount,
		CompletedOrderCount: len(monthlyCompleted),
		SoldProductQuantity: lo.SumBy(monthlyCompleted, orderQuantity),
		TopDropshipper:      s.topDropshipper(monthlyCompleted),
		Month:               int(now.Month()),
		Year:                now.Year(),
	}, nil
}

// topDropshipper groups the month's attributed completed orders by
// dropshipper, sums quantities and picks the best seller. The sort is a
// stable descending sort on quantity, so among ties the first-seen
// dropshipper wins. Returns nil when no order carries a dropshipper.
func (s *Service) topDropshipper(orders []models.Order) *TopDropshipper {
	var ranking []*TopDropshipper
	index := make(map[uuid.UUID]*TopDropshipper)

	for _, o := range orders {
		if o.DropshipperID == nil {
			continue
		}
		id := *o.DropshipperID
		if entry, ok := index[id]; ok {
			entry.Quantity += o.Quantity
			continue
		}
		entry := &TopDropshipper{ID: id, Quantity: o.Quantity}
		if d, err := s.dropshippers.GetByID(id); err == nil {
			entry.Name = d.Name
		}
		index[id] = entry
		ranking = append(ranking, entry)
	}

	if len(ranking) == 0 {
		return nil
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Quantity > ranking[j].Quantity })
	return ranking[0]
}
