package model

import (
	"viagem/shared/model"
)

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID        = "id"
	FieldName      = "name"
	FieldLocation  = "location"
	FieldBasePrice = "base_price"
	FieldMinGuests = "min_guests"
	FieldMaxGuests = "max_guests"
	FieldActive    = "active"
)

type Accommodation struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Location    string  `db:"location"`
	BasePrice   float64 `db:"base_price"`
	MinGuests   int     `db:"min_guests"`
	MaxGuests   int     `db:"max_guests"`
	Active      bool    `db:"active"`
	model.Metadata
}
