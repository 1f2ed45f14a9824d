package summary

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
)

type ProductSummary struct {
	ProductID                 uuid.UUID `json:"productId"`
	ProductName               string    `json:"productName"`
	TotalStockQuantity        int       `json:"totalStockQuantity"`
	WarehouseCount            int       `json:"warehouseCount"`
	DropshipperCount          int       `json:"dropshipperCount"`
	TotalSoldQuantity         int       `json:"totalSoldQuantity"`
	CompletedOrderCount       int       `json:"completedOrderCount"`
	MonthlySoldQuantity       int       `json:"monthlySoldQuantity"`
	MonthlyCompletedOrderCount int      `json:"monthlyCompletedOrderCount"`
	Month                     int       `json:"month"`
	Year                      int       `json:"year"`
}

// Product aggregates stock, registration and sales figures for one product.
// Returns repo.ErrProductNotFound when the anchor is absent.
func (s *Service) Product(productID uuid.UUID) (*ProductSummary, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	monthStart, monthEnd := monthWindow(now)

	stock, err := s.warehouses.GetStockByProduct(productID)
	if err != nil {
		return nil, err
	}
	totalStock := lo.SumBy(stock, func(wp models.WarehouseProduct) int { return wp.Quantity })
	warehouseCount := lo.CountBy(stock, func(wp models.WarehouseProduct) bool { return wp.Quantity > 0 })

	approved := models.RegistrationApproved
	registrations, err := s.registrations.Find(repo.RegistrationFilter{ProductID: &productID, Status: &approved})
	if err != nil {
		return nil, err
	}

	completed := models.OrderCompleted
	allCompleted, err := s.orders.Find(repo.OrderFilter{ProductID: &productID, Status: &completed})
	if err != nil {
		return nil, err
	}
	monthly := lo.Filter(allCompleted, func(o models.Order, _ int) bool {
		return !o.TimeCreated.Before(monthStart) && !o.TimeCreated.After(monthEnd)
	})

	return &ProductSummary{
		ProductID:                  product.ID,
		ProductName:                product.Name,
		TotalStockQuantity:         totalStock,
		WarehouseCount:             warehouseCount,
		DropshipperCount:           len(registrations),
		TotalSoldQuantity:          lo.SumBy(allCompleted, orderQuantity),
		CompletedOrderCount:        len(allCompleted),
		MonthlySoldQuantity:        lo.SumBy(monthly, orderQuantity),
		MonthlyCompletedOrderCount: len(monthly),
		Month:                      int(now.Month()),
		Year:                       now.Year(),
	}, nil
}

func orderQuantity(o models.Order) int { return o.Quantity }
