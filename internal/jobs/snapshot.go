// Package jobs runs the scheduled background work.
package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lightningdhna/final-api/internal/repo"
)

// StartNightlySnapshot logs the global row counts every night at 00:05 so
// growth is traceable from the logs alone. The returned cron is already
// started; callers stop it on shutdown.
func StartNightlySnapshot(statRepo repo.StatisticRepository, log *zap.Logger) *cron.Cron {
	c := cron.New()
	c.AddFunc("5 0 * * *", func() {
		counts, err := statRepo.Counts()
		if err != nil {
			log.Error("nightly snapshot failed", zap.Error(err))
			return
		}
		log.Info("nightly counts snapshot",
			zap.Int("orders", counts.Orders),
			zap.Int("products", counts.Products),
			zap.Int("suppliers", counts.Suppliers),
			zap.Int("dropshippers", counts.Dropshippers),
			zap.Int("warehouses", counts.Warehouses),
			zap.Int("trucks", counts.Trucks),
		)
	})
	c.Start()
	return c
}
