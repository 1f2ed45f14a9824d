package repo

import (
	"sort"

	"github.com/lightningdhna/final-api/internal/models"
)

// InMemoryStatisticRepository computes the statistic tallies from sibling
// in-memory repositories, standing in for the SQL group-by queries.
type InMemoryStatisticRepository struct {
	suppliers     SupplierRepository
	products      ProductRepository
	warehouses    WarehouseRepository
	dropshippers  DropshipperRepository
	registrations RegistrationRepository
	orders        OrderRepository
	trucks        TruckRepository
}

func NewInMemoryStatisticRepository() *InMemoryStatisticRepository {
	return &InMemoryStatisticRepository{}
}

func (r *InMemoryStatisticRepository) SetRepositories(
	suppliers SupplierRepository,
	products ProductRepository,
	warehouses WarehouseRepository,
	dropshippers DropshipperRepository,
	registrations RegistrationRepository,
	orders OrderRepository,
	trucks TruckRepository,
) {
	r.suppliers = suppliers
	r.products = products
	r.warehouses = warehouses
	r.dropshippers = dropshippers
	r.registrations = registrations
	r.orders = orders
	r.trucks = trucks
}

func (r *InMemoryStatisticRepository) Counts() (Counts, error) {
	orders, _ := r.orders.Find(OrderFilter{})
	products, _ := r.products.GetAll()
	suppliers, _ := r.suppliers.GetAll()
	dropshippers, _ := r.dropshippers.GetAll()
	warehouses, _ := r.warehouses.GetAll()
	trucks, _ := r.trucks.GetAll()
	return Counts{
		Orders:       len(orders),
		Products:     len(products),
		Suppliers:    len(suppliers),
		Dropshippers: len(dropshippers),
		Warehouses:   len(warehouses),
		Trucks:       len(trucks),
	}, nil
}

func (r *InMemoryStatisticRepository) OrdersByStatus() ([]OrderStatusCount, error) {
	orders, err := r.orders.Find(OrderFilter{})
	if err != nil {
		return nil, err
	}
	counts := make(map[models.OrderStatus]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	var result []OrderStatusCount
	for status, count := range counts {
		result = append(result, OrderStatusCount{Status: status, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Status < result[j].Status })
	return result, nil
}

func (r *InMemoryStatisticRepository) ProductsBySupplier() ([]SupplierProductCount, error) {
	products, err := r.products.GetAll()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]*SupplierProductCount)
	var order []string
	for _, p := range products {
		key := p.SupplierID.String()
		if _, ok := counts[key]; !ok {
			counts[key] = &SupplierProductCount{SupplierID: p.SupplierID}
			order = append(order, key)
		}
		counts[key].ProductCount++
	}
	result := make([]SupplierProductCount, 0, len(order))
	for _, key := range order {
		result = append(result, *counts[key])
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].ProductCount > result[j].ProductCount })
	return result, nil
}

func (r *InMemoryStatisticRepository) RegistrationsByStatus() ([]RegistrationStatusCount, error) {
	registrations, err := r.registrations.Find(RegistrationFilter{})
	if err != nil {
		return nil, err
	}
	counts := make(map[models.RegistrationStatus]int)
	for _, reg := range registrations {
		counts[reg.Status]++
	}
	var result []RegistrationStatusCount
	for status, count := range counts {
		result = append(result, RegistrationStatusCount{Status: status, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Status < result[j].Status })
	return result, nil
}
