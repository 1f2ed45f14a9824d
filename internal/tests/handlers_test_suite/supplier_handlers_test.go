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

func TestCreateSupplierHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/supplier", handler.SupplierRequest{Name: "Acme"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Supplier
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Acme" {
		t.Errorf("expected name 'Acme', got %v", resp.Name)
	}
	if resp.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
}

func TestCreateSupplierHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/supplier", handler.SupplierRequest{Name: "  "})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].Field != "Name" {
		t.Errorf("expected a Name validation error, got %+v", resp)
	}
}

func TestGetSupplierByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/supplier/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateSupplierHandler_NoopReturnsUnchanged(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")

	w := doRequest(r, http.MethodPatch, "/supplier/"+supplier.ID.String(), map[string]string{})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for empty patch, got %d", w.Code)
	}

	var resp models.Supplier
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Name != "Acme" {
		t.Errorf("expected unchanged name 'Acme', got %q", resp.Name)
	}
}

func TestDeleteSupplierHandler_BlockedByProducts(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	w := createProduct(r, handler.ProductRequest{
		Name:       "Widget",
		Price:      decimal.NewFromInt(10),
		SupplierID: supplier.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for product creation, got %d", w.Code)
	}

	del := doRequest(r, http.MethodDelete, "/supplier/"+supplier.ID.String(), nil)
	if del.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for supplier with products, got %d", del.Code)
	}
}

func TestDeleteSupplierHandler_Empty(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")

	del := doRequest(r, http.MethodDelete, "/supplier/"+supplier.ID.String(), nil)
	if del.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content, got %d", del.Code)
	}
}

func TestGetSuppliersByDropshipperHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	s1 := createSupplier(r, "Acme")
	s2 := createSupplier(r, "Globex")
	createSupplier(r, "Initech") // never registered for

	var p1, p2 models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(5), SupplierID: s1.ID})
	json.NewDecoder(w.Body).Decode(&p1)
	w = createProduct(r, handler.ProductRequest{Name: "Gadget", Price: decimal.NewFromInt(7), SupplierID: s2.ID})
	json.NewDecoder(w.Body).Decode(&p2)

	dropshipper := createDropshipper(r, "Dana")
	approved := models.RegistrationApproved
	for _, productID := range []uuid.UUID{p1.ID, p2.ID} {
		reg := doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{
			DropshipperID: dropshipper.ID,
			ProductID:     productID,
			Status:        &approved,
		})
		if reg.Code != http.StatusCreated {
			t.Fatalf("expected 201 for registration, got %d", reg.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/supplier/by-dropshipper/"+dropshipper.ID.String(), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var suppliers []models.Supplier
	json.NewDecoder(got.Body).Decode(&suppliers)
	if len(suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(suppliers))
	}
	if suppliers[0].ID != s1.ID || suppliers[1].ID != s2.ID {
		t.Errorf("expected first-seen order [Acme, Globex], got %+v", suppliers)
	}
}

func TestGetSupplierSummaryHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(5), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	dropshipper := createDropshipper(r, "Dana")
	addOrder(product.ID, &dropshipper.ID, 5, models.OrderCompleted, nowish())
	addOrder(product.ID, &dropshipper.ID, 3, models.OrderPending, nowish())

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/supplier/%s/summary", supplier.ID), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp summary.SupplierSummary
	json.NewDecoder(got.Body).Decode(&resp)
	if resp.WarehouseCount != 1 {
		t.Errorf("expected 1 warehouse, got %d", resp.WarehouseCount)
	}
	if resp.CompletedOrderCount != 1 || resp.SoldProductQuantity != 5 {
		t.Errorf("expected 1 completed order with quantity 5, got %d/%d", resp.CompletedOrderCount, resp.SoldProductQuantity)
	}
	if resp.TopDropshipper == nil || resp.TopDropshipper.ID != dropshipper.ID {
		t.Errorf("expected top dropshipper %s, got %+v", dropshipper.ID, resp.TopDropshipper)
	}
}
