package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	api "github.com/lightningdhna/final-api/internal/http"
	handler "github.com/lightningdhna/final-api/internal/http/handlers"
	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

func TestGetCountsHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})
	createDropshipper(r, "Dana")

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)
	addOrder(product.ID, nil, 1, models.OrderPending, nowish())

	req := httptest.NewRequest(http.MethodGet, "/statistic/counts", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var counts repo.Counts
	json.NewDecoder(got.Body).Decode(&counts)
	want := repo.Counts{Orders: 1, Products: 1, Suppliers: 1, Dropshippers: 1, Warehouses: 1, Trucks: 0}
	if counts != want {
		t.Errorf("expected counts %+v, got %+v", want, counts)
	}
}

func TestGetOrdersByStatusStatHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	addOrder(product.ID, nil, 1, models.OrderPending, nowish())
	addOrder(product.ID, nil, 1, models.OrderPending, nowish())
	addOrder(product.ID, nil, 1, models.OrderCompleted, nowish())

	req := httptest.NewRequest(http.MethodGet, "/statistic/orders/by-status", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var counts []repo.OrderStatusCount
	json.NewDecoder(got.Body).Decode(&counts)
	if len(counts) != 2 {
		t.Fatalf("expected 2 status groups, got %d", len(counts))
	}
	if counts[0].Status != models.OrderPending || counts[0].Count != 2 {
		t.Errorf("expected 2 pending first, got %+v", counts[0])
	}
	if counts[1].Status != models.OrderCompleted || counts[1].Count != 1 {
		t.Errorf("expected 1 completed second, got %+v", counts[1])
	}
}

func TestGetProductsBySupplierStatHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	acme := createSupplier(r, "Acme")
	globex := createSupplier(r, "Globex")

	for _, name := range []string{"Widget", "Sprocket", "Cog"} {
		createProduct(r, handler.ProductRequest{Name: name, Price: decimal.NewFromInt(10), SupplierID: acme.ID})
	}
	createProduct(r, handler.ProductRequest{Name: "Gadget", Price: decimal.NewFromInt(20), SupplierID: globex.ID})

	req := httptest.NewRequest(http.MethodGet, "/statistic/products/by-supplier", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var counts []handler.SupplierProductCountResponse
	json.NewDecoder(got.Body).Decode(&counts)
	if len(counts) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(counts))
	}
	if counts[0].SupplierID != acme.ID || counts[0].SupplierName != "Acme" || counts[0].ProductCount != 3 {
		t.Errorf("expected Acme with 3 products first, got %+v", counts[0])
	}
	if counts[1].ProductCount != 1 {
		t.Errorf("expected Globex with 1 product second, got %+v", counts[1])
	}
}

func TestGetRegistrationsByStatusStatHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var p1, p2 models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&p1)
	w = createProduct(r, handler.ProductRequest{Name: "Gadget", Price: decimal.NewFromInt(20), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&p2)

	dana := createDropshipper(r, "Dana")
	approved := models.RegistrationApproved
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: p1.ID, Status: &approved})
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: p2.ID})

	req := httptest.NewRequest(http.MethodGet, "/statistic/registrations/by-status", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	var counts []repo.RegistrationStatusCount
	json.NewDecoder(got.Body).Decode(&counts)
	if len(counts) != 2 {
		t.Fatalf("expected 2 status groups, got %d", len(counts))
	}
	if counts[0].Status != models.RegistrationPending || counts[0].Count != 1 {
		t.Errorf("expected 1 pending first, got %+v", counts[0])
	}
	if counts[1].Status != models.RegistrationApproved || counts[1].Count != 1 {
		t.Errorf("expected 1 approved second, got %+v", counts[1])
	}
}

func TestGetSupplierStatisticsByIDHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	doRequest(r, http.MethodPut, "/warehouse/"+warehouse.ID.String()+"/product/"+product.ID.String(), handler.StockRequest{Quantity: 40})
	addOrder(product.ID, nil, 7, models.OrderCompleted, nowish())
	addOrder(product.ID, nil, 2, models.OrderPending, nowish())

	req := httptest.NewRequest(http.MethodGet, "/statistic/suppliers/"+supplier.ID.String(), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp summary.SupplierStatistics
	json.NewDecoder(got.Body).Decode(&resp)
	if resp.SupplierName != "Acme" || len(resp.Products) != 1 {
		t.Fatalf("expected Acme with 1 product row, got %+v", resp)
	}
	row := resp.Products[0]
	if row.TotalStock != 40 || row.WarehouseCount != 1 {
		t.Errorf("expected 40 in stock across 1 warehouse, got %d/%d", row.TotalStock, row.WarehouseCount)
	}
	if row.CompletedOrderCount != 1 || row.SoldQuantity != 7 || row.PendingOrderCount != 1 {
		t.Errorf("unexpected order tallies %+v", row)
	}
}

func TestGetSupplierStatisticsHandler_All(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	createSupplier(r, "Acme")
	createSupplier(r, "Globex")

	req := httptest.NewRequest(http.MethodGet, "/statistic/suppliers", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp []summary.SupplierStatistics
	json.NewDecoder(got.Body).Decode(&resp)
	if len(resp) != 2 {
		t.Errorf("expected statistics for both suppliers, got %d", len(resp))
	}
	for _, s := range resp {
		if s.Products == nil {
			t.Errorf("expected an empty product list for %s, got nil", s.SupplierName)
		}
	}
}
