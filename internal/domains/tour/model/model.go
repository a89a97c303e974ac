package model

import (
	"viagem/shared/model"
)

const (
	TableName  = "tours"
	EntityName = "tour"

	FieldID              = "id"
	FieldName            = "name"
	FieldLocation        = "location"
	FieldPrice           = "price"
	FieldMinParticipants = "min_participants"
	FieldMaxParticipants = "max_participants"
	FieldActive          = "active"
)

type Tour struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	Location        string  `db:"location"`
	Price           float64 `db:"price"`
	MinParticipants int     `db:"min_participants"`
	MaxParticipants int     `db:"max_participants"`
	Active          bool    `db:"active"`
	model.Metadata
}
