package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"viagem/infras/otel"
	"viagem/infras/postgres"
	"viagem/internal/domains/availability/model"
	gDto "viagem/shared/dto"
	gRepo "viagem/shared/repository"
)

type Availability interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Availability, error)
	UpsertBulk(ctx context.Context, models []model.Availability) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertBulk writes the whole batch in one statement; rows already present
// for (accommodation_id, date) get their status and price override replaced.
func (r *repositoryImpl) UpsertBulk(ctx context.Context, models []model.Availability) error {
	return r.Repository.UpsertBulk(
		ctx,
		models,
		[]string{model.FieldAccommodationID, model.FieldDate},
		[]string{model.FieldStatus, model.FieldCustomPrice, "modified_at", "modified_by"},
	)
}
