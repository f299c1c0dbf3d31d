package models

import "time"

// Timestamps holds the created_at/updated_at columns shared by all tables.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
