package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	api "github.com/lightningdhna/final-api/internal/http"
	handler "github.com/lightningdhna/final-api/internal/http/handlers"
	"github.com/lightningdhna/final-api/internal/models"
)

// planFixture creates the supplier, product, order, truck and warehouse a
// plan needs.
type planFixture struct {
	order     models.Order
	truck     models.Truck
	warehouse models.Warehouse
}

func newPlanFixture(t *testing.T, r http.Handler) planFixture {
	t.Helper()

	supplier := createSupplier(r, "Acme")
	warehouse := createWarehouse(r, handler.WarehouseRequest{Name: "North", SupplierID: supplier.ID})

	var product models.Product
	w := createProduct(r, handler.ProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), SupplierID: supplier.ID})
	json.NewDecoder(w.Body).Decode(&product)

	order := addOrder(product.ID, nil, 1, models.OrderPending, nowish())

	var truck models.Truck
	res := doRequest(r, http.MethodPost, "/truck", handler.TruckRequest{
		Name: "T-1", Type: "box", MaxWeight: 1000, MaxVolume: 20, AverageSpeed: 40,
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 for truck creation, got %d", res.Code)
	}
	json.NewDecoder(res.Body).Decode(&truck)

	return planFixture{order: order, truck: truck, warehouse: warehouse}
}

func TestCreatePlanHandler_LoadRequiresWarehouse(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	res := doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       fx.truck.ID,
		OrderID:       fx.order.ID,
		Type:          models.PlanLoad,
		PlanDate:      nowish(),
		ExecutionTime: 30,
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a load plan without warehouse, got %d", res.Code)
	}

	var errs []handler.ValidationError
	json.NewDecoder(res.Body).Decode(&errs)
	if len(errs) == 0 || errs[0].Field != "WarehouseId" {
		t.Errorf("expected a WarehouseId validation error, got %+v", errs)
	}
}

func TestCreatePlanHandler_UnloadRejectsWarehouse(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	res := doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       fx.truck.ID,
		OrderID:       fx.order.ID,
		WarehouseID:   &fx.warehouse.ID,
		Type:          models.PlanUnload,
		PlanDate:      nowish(),
		ExecutionTime: 30,
	})
	if res.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unload plan with warehouse, got %d", res.Code)
	}
}

func TestCreatePlanHandler_DefaultsStatusAndStartTime(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	planDate := time.Date(2026, time.August, 20, 8, 0, 0, 0, time.UTC)
	res := doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       fx.truck.ID,
		OrderID:       fx.order.ID,
		WarehouseID:   &fx.warehouse.ID,
		Type:          models.PlanLoad,
		PlanDate:      planDate,
		ExecutionTime: 45,
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", res.Code)
	}

	var created models.Plan
	json.NewDecoder(res.Body).Decode(&created)
	if created.Status != models.PlanWaiting {
		t.Errorf("expected waiting status by default, got %v", created.Status)
	}
	if !created.StartTime.Equal(planDate) {
		t.Errorf("expected start time defaulted to the plan date, got %v", created.StartTime)
	}
}

func TestCreatePlanHandler_UnknownTruck(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	res := doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       uuid.New(),
		OrderID:       fx.order.ID,
		Type:          models.PlanUnload,
		PlanDate:      nowish(),
		ExecutionTime: 30,
	})
	if res.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown truck, got %d", res.Code)
	}
}

func TestGetPlansHandler_EndDateInclusive(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	create := func(planDate time.Time) {
		res := doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
			TruckID:       fx.truck.ID,
			OrderID:       fx.order.ID,
			Type:          models.PlanUnload,
			PlanDate:      planDate,
			ExecutionTime: 30,
		})
		if res.Code != http.StatusCreated {
			t.Fatalf("expected 201 for plan creation, got %d", res.Code)
		}
	}
	create(time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC))
	create(time.Date(2026, time.August, 12, 23, 30, 0, 0, time.UTC))
	create(time.Date(2026, time.August, 13, 0, 30, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/plan?startDate=2026-08-10&endDate=2026-08-12", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", got.Code)
	}
	var plans []models.Plan
	json.NewDecoder(got.Body).Decode(&plans)
	if len(plans) != 2 {
		t.Errorf("expected 2 plans, the late Aug 12 one included, got %d", len(plans))
	}
}

func TestGetPlansHandler_FilterByTruckAndStatus(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	completed := models.PlanCompleted
	doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       fx.truck.ID,
		OrderID:       fx.order.ID,
		Type:          models.PlanUnload,
		Status:        &completed,
		PlanDate:      nowish(),
		ExecutionTime: 30,
	})
	doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       fx.truck.ID,
		OrderID:       fx.order.ID,
		Type:          models.PlanUnload,
		PlanDate:      nowish(),
		ExecutionTime: 30,
	})

	req := httptest.NewRequest(http.MethodGet, "/plan?truckId="+fx.truck.ID.String()+"&status=3", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	var plans []models.Plan
	json.NewDecoder(got.Body).Decode(&plans)
	if len(plans) != 1 || plans[0].Status != models.PlanCompleted {
		t.Errorf("expected only the completed plan, got %+v", plans)
	}
}

func TestUpdatePlanHandler_StatusPatch(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	var plan models.Plan
	res := doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       fx.truck.ID,
		OrderID:       fx.order.ID,
		Type:          models.PlanUnload,
		PlanDate:      nowish(),
		ExecutionTime: 30,
	})
	json.NewDecoder(res.Body).Decode(&plan)

	completed := models.PlanCompleted
	patch := doRequest(r, http.MethodPatch, "/plan/"+plan.ID.String(), handler.PlanPatch{Status: &completed})
	if patch.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", patch.Code)
	}

	var updated models.Plan
	json.NewDecoder(patch.Body).Decode(&updated)
	if updated.Status != models.PlanCompleted {
		t.Errorf("expected completed status, got %v", updated.Status)
	}
}

func TestDeletePlanHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter()
	fx := newPlanFixture(t, r)

	var plan models.Plan
	res := doRequest(r, http.MethodPost, "/plan", handler.PlanRequest{
		TruckID:       fx.truck.ID,
		OrderID:       fx.order.ID,
		Type:          models.PlanUnload,
		PlanDate:      nowish(),
		ExecutionTime: 30,
	})
	json.NewDecoder(res.Body).Decode(&plan)

	del := doRequest(r, http.MethodDelete, "/plan/"+plan.ID.String(), nil)
	if del.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", del.Code)
	}

	again := doRequest(r, http.MethodDelete, "/plan/"+plan.ID.String(), nil)
	if again.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeat delete, got %d", again.Code)
	}
}
