package summary

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
)

type ProductStatistics struct {
	ProductID           uuid.UUID `json:"productId"`
	ProductName         string    `json:"productName"`
	TotalStock          int       `json:"totalStock"`
	WarehouseCount      int       `json:"warehouseCount"`
	CompletedOrderCount int       `json:"completedOrderCount"`
	SoldQuantity        int       `json:"soldQuantity"`
	PendingOrderCount   int       `json:"pendingOrderCount"`
}

type SupplierStatistics struct {
	SupplierID   uuid.UUID           `json:"supplierId"`
	SupplierName string              `json:"supplierName"`
	Products     []ProductStatistics `json:"products"`
}

// SupplierStatistics breaks a supplier down product by product. The related
// record sets are fetched once for the whole product set and reduced in
// memory instead of issuing per-product queries.
func (s *Service) SupplierStatistics(supplierID uuid.UUID) (*SupplierStatistics, error) {
	supplier, err := s.suppliers.GetByID(supplierID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	result := &SupplierStatistics{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Products:     make([]ProductStatistics, 0, len(products)),
	}
	if len(products) == 0 {
		return result, nil
	}

	productIDs := lo.Map(products, func(p models.Product, _ int) uuid.UUID { return p.ID })

	stock, err := s.warehouses.GetStockByProducts(productIDs)
	if err != nil {
		return nil, err
	}
	stockByProduct := lo.GroupBy(stock, func(wp models.WarehouseProduct) uuid.UUID { return wp.ProductID })

	orders, err := s.orders.Find(repo.OrderFilter{ProductIDs: productIDs})
	if err != nil {
		return nil, err
	}
	ordersByProduct := lo.GroupBy(orders, func(o models.Order) uuid.UUID { return o.ProductID })

	for _, product := range products {
		productStock := stockByProduct[product.ID]
		productOrders := ordersByProduct[product.ID]
		completedOrders := lo.Filter(productOrders, func(o models.Order, _ int) bool {
			return o.Status == models.OrderCompleted
		})

		result.Products = append(result.Products, ProductStatistics{
			ProductID:           product.ID,
			ProductName:         product.Name,
			TotalStock:          lo.SumBy(productStock, func(wp models.WarehouseProduct) int { return wp.Quantity }),
			WarehouseCount:      lo.CountBy(productStock, func(wp models.WarehouseProduct) bool { return wp.Quantity > 0 }),
			CompletedOrderCount: len(completedOrders),
			SoldQuantity:        lo.SumBy(completedOrders, orderQuantity),
			PendingOrderCount:   len(productOrders) - len(completedOrders),
		})
	}
	return result, nil
}

// AllSupplierStatistics runs the breakdown for every supplier.
func (s *Service) AllSupplierStatistics() ([]SupplierStatistics, error) {
	suppliers, err := s.suppliers.GetAll()
	if err != nil {
		return nil, err
	}
	result := make([]SupplierStatistics, 0, len(suppliers))
	for _, supplier := range suppliers {
		stats, err := s.SupplierStatistics(supplier.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, *stats)
	}
	return result, nil
}
