package model

import (
	"time"
	"viagem/shared/model"
)

const (
	TableName  = "accommodation_availability"
	EntityName = "availability"

	FieldID              = "id"
	FieldAccommodationID = "accommodation_id"
	FieldDate            = "date"
	FieldStatus          = "status"
	FieldCustomPrice     = "custom_price"

	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

// Availability is one calendar day of an accommodation. A date maps to at
// most one row per accommodation; bulk writes upsert on
// (accommodation_id, date).
type Availability struct {
	ID              string    `db:"id"`
	AccommodationID string    `db:"accommodation_id"`
	Date            time.Time `db:"date"`
	Status          string    `db:"status"`
	CustomPrice     *float64  `db:"custom_price"`
	model.Metadata
}
