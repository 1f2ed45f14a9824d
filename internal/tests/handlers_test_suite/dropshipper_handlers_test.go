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

func TestCreateDropshipperHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/dropshipper", handler.DropshipperRequest{Name: "Dana"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Dropshipper
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Name != "Dana" || resp.ID == uuid.Nil {
		t.Errorf("unexpected dropshipper %+v", resp)
	}
}

func TestGetDropshipperRegistrationsHandler(t *testing.T) {
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

	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: p1.ID})
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: p2.ID})
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: eric.ID, ProductID: p1.ID})

	req := httptest.NewRequest(http.MethodGet, "/dropshipper/"+dana.ID.String()+"/registrations", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var registrations []models.Registration
	json.NewDecoder(got.Body).Decode(&registrations)
	if len(registrations) != 2 {
		t.Errorf("expected 2 registrations for Dana, got %d", len(registrations))
	}
}

func TestGetDropshipperOrdersHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	dana := createDropshipper(r, "Dana")
	eric := createDropshipper(r, "Eric")

	addOrder(product.ID, &dana.ID, 1, models.OrderPending, nowish())
	addOrder(product.ID, &eric.ID, 2, models.OrderPending, nowish())
	addOrder(product.ID, nil, 3, models.OrderPending, nowish())

	req := httptest.NewRequest(http.MethodGet, "/dropshipper/"+dana.ID.String()+"/orders", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	var orders []models.Order
	json.NewDecoder(got.Body).Decode(&orders)
	if len(orders) != 1 || orders[0].DropshipperID == nil || *orders[0].DropshipperID != dana.ID {
		t.Errorf("expected only Dana's order, got %+v", orders)
	}
}

func TestGetDropshipperSummaryHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	acme := createSupplier(r, "Acme")
	globex := createSupplier(r, "Globex")

	var widget, gadget models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: acme.ID})
	json.NewDecoder(w.Body).Decode(&widget)
	w = createProduct(r, handler.ProductRequest{Name: "Gadget", Price: decimal.NewFromInt(20), SupplierID: globex.ID})
	json.NewDecoder(w.Body).Decode(&gadget)

	dana := createDropshipper(r, "Dana")
	approved := models.RegistrationApproved
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: widget.ID, Status: &approved})
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: gadget.ID, Status: &approved})

	addOrder(widget.ID, &dana.ID, 4, models.OrderCompleted, nowish())
	addOrder(gadget.ID, &dana.ID, 2, models.OrderCompleted, nowish())
	addOrder(gadget.ID, &dana.ID, 9, models.OrderPending, nowish())

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/dropshipper/%s/summary", dana.ID), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var resp summary.DropshipperSummary
	json.NewDecoder(got.Body).Decode(&resp)
	if resp.SupplierCount != 2 {
		t.Errorf("expected 2 distinct suppliers, got %d", resp.SupplierCount)
	}
	if resp.RegisteredProductCount != 2 {
		t.Errorf("expected 2 registered products, got %d", resp.RegisteredProductCount)
	}
	if resp.CompletedOrderCount != 2 || resp.SoldProductQuantity != 6 {
		t.Errorf("expected 2 completed orders for 6 units this month, got %d/%d",
			resp.CompletedOrderCount, resp.SoldProductQuantity)
	}
	if resp.CompletedOrderCountAllTime != 2 || resp.SoldProductQuantityAllTime != 6 {
		t.Errorf("expected all-time totals to match, got %d/%d",
			resp.CompletedOrderCountAllTime, resp.SoldProductQuantityAllTime)
	}
}

func TestDeleteDropshipperHandler_BlockedByRegistrations(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()

	supplier := createSupplier(r, "Acme")
	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	dana := createDropshipper(r, "Dana")
	doRequest(r, http.MethodPost, "/registration", handler.RegistrationRequest{DropshipperID: dana.ID, ProductID: product.ID})

	del := doRequest(r, http.MethodDelete, "/dropshipper/"+dana.ID.String(), nil)
	if del.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a dropshipper with registrations, got %d", del.Code)
	}
}
