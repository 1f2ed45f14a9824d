package summary

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
)

type RegistrationSummary struct {
	DropshipperID       uuid.UUID       `json:"dropshipperId"`
	DropshipperName     string          `json:"dropshipperName"`
	ProductID           uuid.UUID       `json:"productId"`
	ProductName         string          `json:"productName"`
	AvailableQuantity   int             `json:"availableQuantity"`
	CompletedOrderCount int             `json:"completedOrderCount"`
	SoldQuantity        int             `json:"soldQuantity"`
	PendingOrderCount   int             `json:"pendingOrderCount"`
	CommissionFee       decimal.Decimal `json:"commissionFee"`
}

// Registration aggregates one (dropshipper, product) pair: remaining stock,
// completed sales, and orders still in flight (status pending, processing or
// shipping). Returns repo.ErrRegistrationNotFound when the pair is not
// registered.
func (s *Service) Registration(dropshipperID, productID uuid.UUID) (*RegistrationSummary, error) {
	registration, err := s.registrations.GetByKey(dropshipperID, productID)
	if err != nil {
		return nil, err
	}
	dropshipper, err := s.dropshippers.GetByID(dropshipperID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	stock, err := s.warehouses.GetStockByProduct(productID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.Find(repo.OrderFilter{ProductID: &productID, DropshipperID: &dropshipperID})
	if err != nil {
		return nil, err
	}
	completedOrders := lo.Filter(orders, func(o models.Order, _ int) bool {
		return o.Status == models.OrderCompleted
	})

	return &RegistrationSummary{
		DropshipperID:       dropshipper.ID,
		DropshipperName:     dropshipper.Name,
		ProductID:           product.ID,
		ProductName:         product.Name,
		AvailableQuantity:   lo.SumBy(stock, func(wp models.WarehouseProduct) int { return wp.Quantity }),
		CompletedOrderCount: len(completedOrders),
		SoldQuantity:        lo.SumBy(completedOrders, orderQuantity),
		PendingOrderCount:   len(orders) - len(completedOrders),
		CommissionFee:       registration.CommissionFee,
	}, nil
}
