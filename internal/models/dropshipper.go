package models

import "github.com/google/uuid"

// Dropshipper resells products it registered for.
type Dropshipper struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
