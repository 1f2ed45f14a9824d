package summary

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
)

type DropshipperSummary struct {
	DropshipperID              uuid.UUID `json:"dropshipperId"`
	DropshipperName            string    `json:"dropshipperName"`
	SupplierCount              int       `json:"supplierCount"`
	RegisteredProductCount     int       `json:"registeredProductCount"`
	CompletedOrderCount        int       `json:"completedOrderCount"`
	SoldProductQuantity        int       `json:"soldProductQuantity"`
	CompletedOrderCountAllTime int       `json:"completedOrderCountAllTime"`
	SoldProductQuantityAllTime int       `json:"soldProductQuantityAllTime"`
	Month                      int       `json:"month"`
	Year                       int       `json:"year"`
}

// Dropshipper aggregates a dropshipper's approved registrations and its
// completed sales, monthly and all-time. Returns repo.ErrDropshipperNotFound
// when the anchor is absent.
func (s *Service) Dropshipper(dropshipperID uuid.UUID) (*DropshipperSummary, error) {
	dropshipper, err := s.dropshippers.GetByID(dropshipperID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	monthStart, monthEnd := monthWindow(now)

	approved := models.RegistrationApproved
	registrations, err := s.registrations.Find(repo.RegistrationFilter{
		DropshipperID: &dropshipperID,
		Status:        &approved,
	})
	if err != nil {
		return nil, err
	}

	// Distinct suppliers behind the registered products. Each product is
	// fetched once; registrations are unique per product by construction.
	supplierSet := make(map[uuid.UUID]struct{})
	for _, reg := range registrations {
		product, err := s.products.GetByID(reg.ProductID)
		if err != nil {
			continue // product deleted under us, skip
		}
		supplierSet[product.SupplierID] = struct{}{}
	}

	completed := models.OrderCompleted
	allTime, err := s.orders.Find(repo.OrderFilter{DropshipperID: &dropshipperID, Status: &completed})
	if err != nil {
		return nil, err
	}
	monthly := lo.Filter(allTime, func(o models.Order, _ int) bool {
		return !o.TimeCreated.Before(monthStart) && !o.TimeCreated.After(monthEnd)
	})

	return &DropshipperSummary{
		DropshipperID:              dropshipper.ID,
		DropshipperName:            dropshipper.Name,
		SupplierCount:              len(supplierSet),
		RegisteredProductCount:     len(registrations),
		CompletedOrderCount:        len(monthly),
		SoldProductQuantity:        lo.SumBy(monthly, orderQuantity),
		CompletedOrderCountAllTime: len(allTime),
		SoldProductQuantityAllTime: lo.SumBy(allTime, orderQuantity),
		Month:                      int(now.Month()),
		Year:                       now.Year(),
	}, nil
}
