package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/lightningdhna/final-api/docs"
	"github.com/lightningdhna/final-api/internal/http/handlers"
)

// NewRouter wires every endpoint. Reads are public; writes sit behind the
// bearer-token middleware.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(RateLimitMiddleware)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Supplier
	r.Get("/supplier", handlers.GetSuppliersHandler)
	r.Get("/supplier/by-warehouse/{warehouseId}", handlers.GetSupplierByWarehouseHandler)
	r.Get("/supplier/by-product/{productId}", handlers.GetSupplierByProductHandler)
	r.Get("/supplier/by-dropshipper/{dropshipperId}", handlers.GetSuppliersByDropshipperHandler)
	r.Get("/supplier/{id}", handlers.GetSupplierByIDHandler)
	r.Get("/supplier/{id}/summary", handlers.GetSupplierSummaryHandler)

	// Product
	r.Get("/product", handlers.GetProductsHandler)
	r.Get("/product/by-supplier/{supplierId}", handlers.GetProductsBySupplierHandler)
	r.Get("/product/by-warehouse/{warehouseId}", handlers.GetProductsByWarehouseHandler)
	r.Get("/product/{id}", handlers.GetProductByIDHandler)
	r.Get("/product/{id}/summary", handlers.GetProductSummaryHandler)

	// Warehouse
	r.Get("/warehouse", handlers.GetWarehousesHandler)
	r.Get("/warehouse/by-supplier/{supplierId}", handlers.GetWarehousesBySupplierHandler)
	r.Get("/warehouse/by-product/{productId}", handlers.GetWarehousesByProductHandler)
	r.Get("/warehouse/{id}", handlers.GetWarehouseByIDHandler)
	r.Get("/warehouse/{id}/summary", handlers.GetWarehouseSummaryHandler)

	// Dropshipper
	r.Get("/dropshipper", handlers.GetDropshippersHandler)
	r.Get("/dropshipper/{id}", handlers.GetDropshipperByIDHandler)
	r.Get("/dropshipper/{id}/registrations", handlers.GetDropshipperRegistrationsHandler)
	r.Get("/dropshipper/{id}/orders", handlers.GetDropshipperOrdersHandler)
	r.Get("/dropshipper/{id}/summary", handlers.GetDropshipperSummaryHandler)

	// Registration
	r.Get("/registration", handlers.GetRegistrationsHandler)
	r.Get("/registration/{dropshipperId}/{productId}", handlers.GetRegistrationHandler)
	r.Get("/registration/{dropshipperId}/{productId}/summary", handlers.GetRegistrationSummaryHandler)

	// Order
	r.Get("/order", handlers.GetOrdersHandler)
	r.Get("/order/by-status/{status}", handlers.GetOrdersByStatusHandler)
	r.Get("/order/by-supplier/{supplierId}", handlers.GetOrdersBySupplierHandler)
	r.Get("/order/by-dropshipper/{dropshipperId}", handlers.GetOrdersByDropshipperHandler)
	r.Get("/order/by-product/{productId}", handlers.GetOrdersByProductHandler)
	r.Get("/order/{id}", handlers.GetOrderByIDHandler)
	r.Get("/order/{id}/plans", handlers.GetOrderPlansHandler)

	// Truck
	r.Get("/truck", handlers.GetTrucksHandler)
	r.Get("/truck/{id}", handlers.GetTruckByIDHandler)
	r.Get("/truck/{id}/plans", handlers.GetTruckPlansHandler)
	r.Get("/truck/{id}/summary", handlers.GetTruckSummaryHandler)

	// Plan
	r.Get("/plan", handlers.GetPlansHandler)
	r.Get("/plan/{id}", handlers.GetPlanByIDHandler)

	// Statistics
	r.Get("/statistic/counts", handlers.GetCountsHandler)
	r.Get("/statistic/orders/by-status", handlers.GetOrdersByStatusStatHandler)
	r.Get("/statistic/products/by-supplier", handlers.GetProductsBySupplierStatHandler)
	r.Get("/statistic/registrations/by-status", handlers.GetRegistrationsByStatusStatHandler)
	r.Get("/statistic/suppliers", handlers.GetSupplierStatisticsHandler)
	r.Get("/statistic/suppliers/{id}", handlers.GetSupplierStatisticsByIDHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/supplier", handlers.CreateSupplierHandler)
		r.Patch("/supplier/{id}", handlers.UpdateSupplierHandler)
		r.Delete("/supplier/{id}", handlers.DeleteSupplierHandler)

		r.Post("/product", handlers.CreateProductHandler)
		r.Post("/product/seed/{count}", handlers.SeedProductsHandler)
		r.Patch("/product/{id}", handlers.UpdateProductHandler)
		r.Delete("/product/{id}", handlers.DeleteProductHandler)

		r.Post("/warehouse", handlers.CreateWarehouseHandler)
		r.Patch("/warehouse/{id}", handlers.UpdateWarehouseHandler)
		r.Delete("/warehouse/{id}", handlers.DeleteWarehouseHandler)
		r.Put("/warehouse/{id}/product/{productId}", handlers.UpsertStockHandler)

		r.Post("/dropshipper", handlers.CreateDropshipperHandler)
		r.Patch("/dropshipper/{id}", handlers.UpdateDropshipperHandler)
		r.Delete("/dropshipper/{id}", handlers.DeleteDropshipperHandler)

		r.Post("/registration", handlers.CreateRegistrationHandler)
		r.Patch("/registration/{dropshipperId}/{productId}", handlers.UpdateRegistrationHandler)
		r.Delete("/registration/{dropshipperId}/{productId}", handlers.DeleteRegistrationHandler)

		r.Post("/order", handlers.CreateOrderHandler)
		r.Patch("/order/{id}", handlers.UpdateOrderHandler)
		r.Patch("/order/{id}/status", handlers.UpdateOrderStatusHandler)
		r.Delete("/order/{id}", handlers.DeleteOrderHandler)

		r.Post("/truck", handlers.CreateTruckHandler)
		r.Patch("/truck/{id}", handlers.UpdateTruckHandler)
		r.Delete("/truck/{id}", handlers.DeleteTruckHandler)

		r.Post("/plan", handlers.CreatePlanHandler)
		r.Patch("/plan/{id}", handlers.UpdatePlanHandler)
		r.Delete("/plan/{id}", handlers.DeletePlanHandler)
	})

	return r
}
