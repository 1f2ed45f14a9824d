package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	api "github.com/lightningdhna/final-api/internal/http"
	handler "github.com/lightningdhna/final-api/internal/http/handlers"
	rl "github.com/lightningdhna/final-api/internal/http/rate_limiter"
	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

var (
	token            string
	supplierRepo     *repo.InMemorySupplierRepository
	productRepo      *repo.InMemoryProductRepository
	warehouseRepo    *repo.InMemoryWarehouseRepository
	dropshipperRepo  *repo.InMemoryDropshipperRepository
	registrationRepo *repo.InMemoryRegistrationRepository
	orderRepo        *repo.InMemoryOrderRepository
	truckRepo        *repo.InMemoryTruckRepository
	planRepo         *repo.InMemoryPlanRepository
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	supplierRepo = repo.NewInMemorySupplierRepository()
	productRepo = repo.NewInMemoryProductRepository()
	warehouseRepo = repo.NewInMemoryWarehouseRepository()
	dropshipperRepo = repo.NewInMemoryDropshipperRepository()
	registrationRepo = repo.NewInMemoryRegistrationRepository()
	orderRepo = repo.NewInMemoryOrderRepository()
	truckRepo = repo.NewInMemoryTruckRepository()
	planRepo = repo.NewInMemoryPlanRepository()

	supplierRepo.SetDependencies(productRepo, warehouseRepo)
	productRepo.SetDependencies(warehouseRepo, registrationRepo, orderRepo)
	warehouseRepo.SetDependencies(planRepo)
	dropshipperRepo.SetDependencies(registrationRepo, orderRepo)
	orderRepo.SetDependencies(planRepo)
	truckRepo.SetDependencies(planRepo)

	handler.SetSupplierRepo(supplierRepo)
	handler.SetProductRepo(productRepo)
	handler.SetWarehouseRepo(warehouseRepo)
	handler.SetDropshipperRepo(dropshipperRepo)
	handler.SetRegistrationRepo(registrationRepo)
	handler.SetOrderRepo(orderRepo)
	handler.SetTruckRepo(truckRepo)
	handler.SetPlanRepo(planRepo)

	statisticRepo := repo.NewInMemoryStatisticRepository()
	statisticRepo.SetRepositories(supplierRepo, productRepo, warehouseRepo,
		dropshipperRepo, registrationRepo, orderRepo, truckRepo)
	handler.SetStatisticRepo(statisticRepo)

	handler.SetSummaryService(summary.NewService(summary.Repositories{
		Suppliers:     supplierRepo,
		Products:      productRepo,
		Warehouses:    warehouseRepo,
		Dropshippers:  dropshipperRepo,
		Registrations: registrationRepo,
		Orders:        orderRepo,
		Trucks:        truckRepo,
		Plans:         planRepo,
	}, summary.SystemClock(), nil))

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.Create(models.User{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

// clearAllData empties every entity repo and resets the rate limiter so
// tests stay independent.
func clearAllData() {
	planRepo.Clear()
	orderRepo.Clear()
	registrationRepo.Clear()
	warehouseRepo.Clear()
	productRepo.Clear()
	dropshipperRepo.Clear()
	truckRepo.Clear()
	supplierRepo.Clear()
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequest(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSupplier(r http.Handler, name string) models.Supplier {
	w := doRequest(r, http.MethodPost, "/supplier", handler.SupplierRequest{Name: name})
	var supplier models.Supplier
	json.NewDecoder(w.Body).Decode(&supplier)
	return supplier
}

func createProduct(r http.Handler, req handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/product", req)
}

func createWarehouse(r http.Handler, req handler.WarehouseRequest) models.Warehouse {
	w := doRequest(r, http.MethodPost, "/warehouse", req)
	var warehouse models.Warehouse
	json.NewDecoder(w.Body).Decode(&warehouse)
	return warehouse
}

func createDropshipper(r http.Handler, name string) models.Dropshipper {
	w := doRequest(r, http.MethodPost, "/dropshipper", handler.DropshipperRequest{Name: name})
	var dropshipper models.Dropshipper
	json.NewDecoder(w.Body).Decode(&dropshipper)
	return dropshipper
}

// nowish is the reference instant for seeded records; summaries run on the
// system clock, so "now" always falls inside the current month window.
func nowish() time.Time {
	return time.Now()
}

// addOrder seeds the order repo directly so tests control the timestamps.
func addOrder(productID uuid.UUID, dropshipperID *uuid.UUID, quantity int, status models.OrderStatus, created time.Time) models.Order {
	o, _ := orderRepo.Create(models.Order{
		ID:            uuid.New(),
		ProductID:     productID,
		DropshipperID: dropshipperID,
		Quantity:      quantity,
		Status:        status,
		TimeCreated:   created,
	})
	return o
}
