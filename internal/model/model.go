// Package model defines the records persisted by the service and their JSON shape.
package model

import "time"

// Base holds the columns every table carries.
type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
