package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lightningdhna/final-api/internal/auth"
	"github.com/lightningdhna/final-api/internal/cache"
	"github.com/lightningdhna/final-api/internal/config"
	"github.com/lightningdhna/final-api/internal/db"
	api "github.com/lightningdhna/final-api/internal/http"
	"github.com/lightningdhna/final-api/internal/http/handlers"
	rl "github.com/lightningdhna/final-api/internal/http/rate_limiter"
	"github.com/lightningdhna/final-api/internal/jobs"
	"github.com/lightningdhna/final-api/internal/logging"
	"github.com/lightningdhna/final-api/internal/repo"
	"github.com/lightningdhna/final-api/internal/summary"
)

// @title Logistics Management API
// @version 1.0
// @description REST API for suppliers, products, warehouses, dropshippers, orders, trucks and transport plans.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.LogsDirectory)
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer logger.Sync()

	auth.SetSecret(cfg.JWTSecret)
	api.SetLogger(logger)
	handlers.SetLogger(logger)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	supplierRepo := repo.NewPostgresSupplierRepository(database)
	productRepo := repo.NewPostgresProductRepository(database)
	warehouseRepo := repo.NewPostgresWarehouseRepository(database)
	dropshipperRepo := repo.NewPostgresDropshipperRepository(database)
	registrationRepo := repo.NewPostgresRegistrationRepository(database)
	orderRepo := repo.NewPostgresOrderRepository(database)
	truckRepo := repo.NewPostgresTruckRepository(database)
	planRepo := repo.NewPostgresPlanRepository(database)
	statisticRepo := repo.NewPostgresStatisticRepository(database)

	handlers.SetSupplierRepo(supplierRepo)
	handlers.SetProductRepo(productRepo)
	handlers.SetWarehouseRepo(warehouseRepo)
	handlers.SetDropshipperRepo(dropshipperRepo)
	handlers.SetRegistrationRepo(registrationRepo)
	handlers.SetOrderRepo(orderRepo)
	handlers.SetTruckRepo(truckRepo)
	handlers.SetPlanRepo(planRepo)
	handlers.SetStatisticRepo(statisticRepo)
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	summarySvc := summary.NewService(summary.Repositories{
		Suppliers:     supplierRepo,
		Products:      productRepo,
		Warehouses:    warehouseRepo,
		Dropshippers:  dropshipperRepo,
		Registrations: registrationRepo,
		Orders:        orderRepo,
		Trucks:        truckRepo,
		Plans:         planRepo,
	}, summary.SystemClock(), logger)
	handlers.SetSummaryService(summarySvc)

	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, summary cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			handlers.SetSummaryCache(cache.NewSummaryCache(rdb, ctx))
		}
	}

	snapshot := jobs.StartNightlySnapshot(statisticRepo, logger)
	defer snapshot.Stop()

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
