package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	api "github.com/lightningdhna/final-api/internal/http"
	handler "github.com/lightningdhna/final-api/internal/http/handlers"
	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/summary"
)

func TestCreateWarehouseHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	w := doRequest(r, http.MethodPost, "/warehouse", handler.WarehouseRequest{
		Name:       "North",
		Capacity:   5000,
		SupplierID: supplier.ID,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var resp models.Warehouse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Name != "North" || resp.SupplierID != supplier.ID {
		t.Errorf("unexpected warehouse %+v", resp)
	}
}

func TestCreateWarehouseHandler_UnknownSupplier(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/warehouse", handler.WarehouseRequest{
		Name:       "North",
		SupplierID: uuid.New(),
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown supplier, got %d", w.Code)
	}
}

func TestGetWarehousesByProductHandler_ExcludesEmptyStock(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	stocked := createWarehouse(r, handler.WarehouseRequest{Name: "Stocked", SupplierID: supplier.ID})
	empty := createWarehouse(r, handler.WarehouseRequest{Name: "Empty", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", stocked.ID, product.ID), handler.StockRequest{Quantity: 10})
	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", empty.ID, product.ID), handler.StockRequest{Quantity: 0})

	req := httptest.NewRequest(http.MethodGet, "/warehouse/by-product/"+product.ID.String(), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var warehouses []models.Warehouse
	json.NewDecoder(got.Body).Decode(&warehouses)
	if len(warehouses) != 1 || warehouses[0].ID != stocked.ID {
		t.Errorf("expected only the stocked warehouse, got %+v", warehouses)
	}
}

func TestUpsertStockHandler_OverwritesQuantity(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	path := fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, product.ID)
	doRequest(r, http.MethodPut, path, handler.StockRequest{Quantity: 10})
	second := doRequest(r, http.MethodPut, path, handler.StockRequest{Quantity: 4})

	if second.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", second.Code)
	}
	var stock models.WarehouseProduct
	json.NewDecoder(second.Body).Decode(&stock)
	if stock.Quantity != 4 {
		t.Errorf("expected quantity overwritten to 4, got %d", stock.Quantity)
	}
}

func TestUpsertStockHandler_NegativeQuantity(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	res := doRequest(r, http.MethodPut,
		fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, product.ID),
		handler.StockRequest{Quantity: -1})
	if res.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative quantity, got %d", res.Code)
	}
}

func TestGetWarehouseSummaryHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var p1, p2 models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&p1)
	w = createProduct(r, handler.ProductRequest{Name: "Gadget", Price: decimal.NewFromInt(20), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&p2)

	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, p1.ID), handler.StockRequest{Quantity: 30})
	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, p2.ID), handler.StockRequest{Quantity: 12})

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/warehouse/%s/summary", warehouse.ID), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp summary.WarehouseSummary
	json.NewDecoder(got.Body).Decode(&resp)
	if resp.ProductTypeCount != 2 || resp.TotalProductQuantity != 42 {
		t.Errorf("expected 2 types totalling 42, got %d/%d", resp.ProductTypeCount, resp.TotalProductQuantity)
	}
}

func TestDeleteWarehouseHandler_BlockedByStock(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, product.ID), handler.StockRequest{Quantity: 5})

	del := doRequest(r, http.MethodDelete, "/warehouse/"+warehouse.ID.String(), nil)
	if del.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for warehouse with stock, got %d", del.Code)
	}
}
