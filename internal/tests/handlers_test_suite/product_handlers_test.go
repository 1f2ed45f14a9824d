package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	api "github.com/lightningdhna/final-api/internal/http"
	handler "github.com/lightningdhna/final-api/internal/http/handlers"
	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/summary"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	w := createProduct(r, handler.ProductRequest{
		Name:       "Widget",
		Price:      decimal.NewFromFloat(19.99),
		Weight:     1.2,
		SupplierID: supplier.ID,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Product
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Widget" {
		t.Errorf("expected name 'Widget', got %v", resp.Name)
	}
	if !resp.Price.Equal(decimal.NewFromFloat(19.99)) {
		t.Errorf("expected price 19.99, got %v", resp.Price)
	}
	if resp.SupplierID != supplier.ID {
		t.Errorf("expected supplier %s, got %s", supplier.ID, resp.SupplierID)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and missing supplier",
			payload:        handler.ProductRequest{Name: ""},
			expectedErrors: []string{"Name", "SupplierId"},
		},
		{
			name:           "Negative price",
			payload:        handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(-5), SupplierID: supplier.ID},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative weight",
			payload:        handler.ProductRequest{Name: "Widget", Weight: -1, SupplierID: supplier.ID},
			expectedErrors: []string{"Weight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_UnknownSupplier(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{
		Name:       "Widget",
		Price:      decimal.NewFromInt(10),
		SupplierID: uuid.New(),
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown supplier, got %d", w.Code)
	}
}

func TestUpdateProductHandler_PartialPatch(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	newName := "Widget v2"
	patch := doRequest(r, http.MethodPatch, "/product/"+product.ID.String(), handler.ProductPatch{Name: &newName})
	if patch.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", patch.Code)
	}

	var updated models.Product
	json.NewDecoder(patch.Body).Decode(&updated)
	if updated.Name != "Widget v2" {
		t.Errorf("expected patched name, got %q", updated.Name)
	}
	if !updated.Price.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected price untouched, got %v", updated.Price)
	}
}

func TestGetProductsByWarehouseHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	stock := doRequest(r, http.MethodPut,
		fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, product.ID),
		handler.StockRequest{Quantity: 25})
	if stock.Code != http.StatusOK {
		t.Fatalf("expected 200 for stock upsert, got %d", stock.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/product/by-warehouse/"+warehouse.ID.String(), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp []handler.ProductWithQuantity
	json.NewDecoder(got.Body).Decode(&resp)
	if len(resp) != 1 {
		t.Fatalf("expected 1 product, got %d", len(resp))
	}
	if resp[0].ID != product.ID || resp[0].QuantityInWarehouse != 25 {
		t.Errorf("expected product %s with quantity 25, got %+v", product.ID, resp[0])
	}
}

func TestSeedProductsHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	createSupplier(r, "Acme")

	w := doRequest(r, http.MethodPost, "/product/seed/5", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var created []models.Product
	json.NewDecoder(w.Body).Decode(&created)
	if len(created) != 5 {
		t.Errorf("expected 5 seeded products, got %d", len(created))
	}

	all, _ := productRepo.GetAll()
	if len(all) != 5 {
		t.Errorf("expected 5 products in the repo, got %d", len(all))
	}
}

func TestSeedProductsHandler_NoSuppliers(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/product/seed/3", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without suppliers, got %d", w.Code)
	}
}

func TestGetProductSummaryHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	w1 := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})
	w2 := createWarehouse(r, handler.WarehouseRequest{Name: "South", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", w1.ID, product.ID), handler.StockRequest{Quantity: 30})
	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", w2.ID, product.ID), handler.StockRequest{Quantity: 20})

	dropshipper := createDropshipper(r, "Dana")
	approved := models.RegistrationApproved
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{
		DropshipperID: dropshipper.ID,
		ProductID:     product.ID,
		Status:        &approved,
	})

	addOrder(product.ID, &dropshipper.ID, 5, models.OrderCompleted, nowish())

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/product/%s/summary", product.ID), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp summary.ProductSummary
	json.NewDecoder(got.Body).Decode(&resp)
	if resp.TotalStockQuantity != 50 {
		t.Errorf("expected total stock 50, got %d", resp.TotalStockQuantity)
	}
	if resp.WarehouseCount != 2 {
		t.Errorf("expected 2 stocked warehouses, got %d", resp.WarehouseCount)
	}
	if resp.DropshipperCount != 1 {
		t.Errorf("expected 1 approved dropshipper, got %d", resp.DropshipperCount)
	}
	if resp.MonthlyCompletedOrderCount != 1 || resp.CompletedOrderCount != 1 {
		t.Errorf("expected the completed order in both windows, got %d/%d",
			resp.MonthlyCompletedOrderCount, resp.CompletedOrderCount)
	}
}

func TestDeleteProductHandler_BlockedByStock(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, product.ID), handler.StockRequest{Quantity: 5})

	del := doRequest(r, http.MethodDelete, "/product/"+product.ID.String(), nil)
	if del.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for product with stock, got %d", del.Code)
	}
}
