package summary

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lightningdhna/final-api/internal/models"
)

type WarehouseProductDetail struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
}

type WarehouseSummary struct {
	WarehouseID          uuid.UUID                `json:"warehouseId"`
	WarehouseName        string                   `json:"warehouseName"`
	ProductTypeCount     int                      `json:"productTypeCount"`
	TotalProductQuantity int                      `json:"totalProductQuantity"`
	Products             []WarehouseProductDetail `json:"products"`
}

// Warehouse aggregates the stock held in one warehouse. Returns
// repo.ErrWarehouseNotFound when the anchor is absent.
func (s *Service) Warehouse(warehouseID uuid.UUID) (*WarehouseSummary, error) {
	warehouse, err := s.warehouses.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}

	stock, err := s.warehouses.GetStockByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}

	details := make([]WarehouseProductDetail, 0, len(stock))
	for _, wp := range stock {
		detail := WarehouseProductDetail{ProductID: wp.ProductID, Quantity: wp.Quantity}
		if product, err := s.products.GetByID(wp.ProductID); err == nil {
			detail.ProductName = product.Name
		}
		details = append(details, detail)
	}

	return &WarehouseSummary{
		WarehouseID:          warehouse.ID,
		WarehouseName:        warehouse.Name,
		ProductTypeCount:     len(stock),
		TotalProductQuantity: lo.SumBy(stock, func(wp models.WarehouseProduct) int { return wp.Quantity }),
		Products:             details,
	}, nil
}
