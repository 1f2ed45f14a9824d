package summary

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lightningdhna/final-api/internal/models"
	"github.com/lightningdhna/final-api/internal/repo"
)

type PeriodMetrics struct {
	OrderCount    int     `json:"orderCount"`
	OperationTime float64 `json:"operationTime"` // hours
	TotalDistance float64 `json:"totalDistance"` // km
}

type TruckSummary struct {
	TruckID         uuid.UUID     `json:"truckId"`
	TruckName       string        `json:"truckName"`
	TruckType       string        `json:"truckType"`
	AllTime         PeriodMetrics `json:"allTime"`
	CurrentMonth    PeriodMetrics `json:"currentMonth"`
	CurrentYear     PeriodMetrics `json:"currentYear"`
	Month           int           `json:"month"`
	Year            int           `json:"year"`
	CreatedAt       time.Time     `json:"createdAt"`
	UtilizationRate float64       `json:"utilizationRate"`
}

// Truck derives per-window operation metrics from the truck's completed
// plans: operation time is the summed execution minutes, distance is
// operation hours times the truck's average speed, order count is the
// number of distinct orders served. Returns repo.ErrTruckNotFound when the
// anchor is absent.
func (s *Service) Truck(truckID uuid.UUID) (*TruckSummary, error) {
	truck, err := s.trucks.GetByID(truckID)
	if err != nil {
		return nil, err
	}

	completed := models.PlanCompleted
	plans, err := s.plans.Find(repo.PlanFilter{TruckID: &truckID, Status: &completed})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	monthStart, monthEnd := monthWindow(now)
	yearStart, yearEnd := yearWindow(now)

	allTime := reducePlans(plans, truck.AverageSpeed)
	currentMonth := reducePlans(plansWithin(plans, monthStart, monthEnd), truck.AverageSpeed)
	currentYear := reducePlans(plansWithin(plans, yearStart, yearEnd), truck.AverageSpeed)

	return &TruckSummary{
		TruckID:         truck.ID,
		TruckName:       truck.Name,
		TruckType:       truck.Type,
		AllTime:         allTime,
		CurrentMonth:    currentMonth,
		CurrentYear:     currentYear,
		Month:           int(now.Month()),
		Year:            now.Year(),
		CreatedAt:       truck.TimeActive,
		UtilizationRate: utilizationRate(allTime.OperationTime, truck.TimeActive, now),
	}, nil
}

func plansWithin(plans []models.Plan, from, to time.Time) []models.Plan {
	return lo.Filter(plans, func(p models.Plan, _ int) bool {
		return !p.PlanDate.Before(from) && !p.PlanDate.After(to)
	})
}

func reducePlans(plans []models.Plan, averageSpeed float64) PeriodMetrics {
	minutes := lo.SumBy(plans, func(p models.Plan) int { return p.ExecutionTime })
	hours := float64(minutes) / 60
	orders := lo.UniqBy(plans, func(p models.Plan) uuid.UUID { return p.OrderID })
	return PeriodMetrics{
		OrderCount:    len(orders),
		OperationTime: hours,
		TotalDistance: hours * averageSpeed,
	}
}

// utilizationRate is operated hours over the hours elapsed since the truck
// first went active, as a percentage clamped to 100. The elapsed span is
// floored at one day so a fresh truck does not divide by zero.
func utilizationRate(operationHours float64, timeActive, now time.Time) float64 {
	days := now.Sub(timeActive).Hours() / 24
	if days < 1 {
		days = 1
	}
	rate := operationHours / (days * 24) * 100
	if rate > 100 {
		rate = 100
	}
	return rate
}
