package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	api "github.com/lightningdhna/final-api/internal/http"
	handler "github.com/lightningdhna/final-api/internal/http/handlers"
	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/summary"
)

func TestCreateRegistrationHandler_DefaultsToPending(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)
	dropshipper := createDropshipper(r, "Dana")

	res := doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{
		DropshipperID: dropshipper.ID,
		ProductID:     product.ID,
		CommissionFee: decimal.NewFromFloat(0.5),
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", res.Code)
	}

	var created models.Registration
	json.NewDecoder(res.Body).Decode(&created)
	if created.Status != models.RegistrationPending {
		t.Errorf("expected pending status by default, got %v", created.Status)
	}
	if !created.CommissionFee.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("expected commission fee 0.5, got %v", created.CommissionFee)
	}
}

func TestCreateRegistrationHandler_Duplicate(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)
	dropshipper := createDropshipper(r, "Dana")

	payload := handler.RegistrationRequest{DropshipperID: dropshipper.ID, ProductID: product.ID}
	first := doRequest(r, http.MethodPost, "/registration", payload)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201 for the first registration, got %d", first.Code)
	}

	second := doRequest(r, http.MethodPost, "/registration", payload)
	if second.Code != http.StatusConflict {
		t.Errorf("expected 409 for a duplicate pair, got %d", second.Code)
	}
}

func TestGetRegistrationsHandler_Filters(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var p1, p2 models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&p1)
	w = createProduct(r, handler.ProductRequest{Name: "Gadget", Price: decimal.NewFromInt(20), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&p2)

	dana := createDropshipper(r, "Dana")
	eric := createDropshipper(r, "Eric")

	approved := models.RegistrationApproved
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: p1.ID, Status: &approved})
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: p2.ID})
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: eric.ID, ProductID: p1.ID})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"All", "", 3},
		{"By dropshipper", "?dropshipperId=" + dana.ID.String(), 2},
		{"By product", "?productId=" + p1.ID.String(), 2},
		{"By status", "?status=1", 1},
		{"Combined", fmt.Sprintf("?dropshipperId=%s&status=0", dana.ID), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/registration"+tt.query, nil)
			got := httptest.NewRecorder()
			r.ServeHTTP(got, req)

			if got.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", got.Code)
			}
			var registrations []models.Registration
			json.NewDecoder(got.Body).Decode(&registrations)
			if len(registrations) != tt.want {
				t.Errorf("expected %d registrations, got %d", tt.want, len(registrations))
			}
		})
	}
}

func TestGetRegistrationsHandler_InvalidStatus(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/registration?status=9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an out-of-range status, got %d", w.Code)
	}
}

func TestUpdateRegistrationHandler_StatusPatch(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)
	dropshipper := createDropshipper(r, "Dana")

	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dropshipper.ID, ProductID: product.ID})

	approved := models.RegistrationApproved
	patch := doRequest(r, http.MethodPatch,
		fmt.Sprintf("/registration/%s/%s", dropshipper.ID, product.ID),
		handler.RegistrationPatch{Status: &approved})
	if patch.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", patch.Code)
	}

	var updated models.Registration
	json.NewDecoder(patch.Body).Decode(&updated)
	if updated.Status != models.RegistrationApproved {
		t.Errorf("expected approved status, got %v", updated.Status)
	}
}

func TestDeleteRegistrationHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)
	dropshipper := createDropshipper(r, "Dana")

	del := doRequest(r, http.MethodDelete,
		fmt.Sprintf("/registration/%s/%s", dropshipper.ID, product.ID), nil)
	if del.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing pair, got %d", del.Code)
	}
}

func TestGetRegistrationSummaryHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)
	dropshipper := createDropshipper(r, "Dana")

	approved := models.RegistrationApproved
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{
		DropshipperID: dropshipper.ID,
		ProductID:     product.ID,
		CommissionFee: decimal.NewFromFloat(1.25),
		Status:        &approved,
	})

	doRequest(r, http.MethodPut, fmt.Sprintf("/warehouse/%s/product/%s", warehouse.ID, product.ID), handler.StockRequest{Quantity: 40})

	addOrder(product.ID, &dropshipper.ID, 5, models.OrderCompleted, nowish())
	addOrder(product.ID, &dropshipper.ID, 2, models.OrderPending, nowish())
	addOrder(product.ID, &dropshipper.ID, 1, models.OrderShipping, nowish())

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/registration/%s/%s/summary", dropshipper.ID, product.ID), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp summary.RegistrationSummary
	json.NewDecoder(got.Body).Decode(&resp)
	if resp.AvailableQuantity != 40 {
		t.Errorf("expected 40 available, got %d", resp.AvailableQuantity)
	}
	if resp.CompletedOrderCount != 1 || resp.SoldQuantity != 5 {
		t.Errorf("expected 1 completed order for 5 units, got %d/%d", resp.CompletedOrderCount, resp.SoldQuantity)
	}
	if resp.PendingOrderCount != 2 {
		t.Errorf("expected 2 orders still in flight, got %d", resp.PendingOrderCount)
	}
	if !resp.CommissionFee.Equal(decimal.NewFromFloat(1.25)) {
		t.Errorf("expected commission fee 1.25, got %v", resp.CommissionFee)
	}
}
