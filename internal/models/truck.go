package models

import (
	"time"

	"github.com/google/uuid"
)

type Truck struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	MaxWeight    float64   `json:"maxWeight"`
	MaxVolume    float64   `json:"maxVolume"`
	AverageSpeed float64   `json:"averageSpeed"`
	TimeActive   time.Time `json:"timeActive"`
	TimeInactive time.Time `json:"timeInactive"`
}
