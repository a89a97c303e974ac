package service

import (
	"context"
	"fmt"
	"viagem/config"
	"viagem/infras/otel"
	accommodationModel "viagem/internal/domains/accommodation/model"
	accommodationRepo "viagem/internal/domains/accommodation/repository"
	"viagem/internal/domains/availability/model"
	"viagem/internal/domains/availability/model/dto"
	"viagem/internal/domains/availability/repository"
	"viagem/shared"
	"viagem/shared/cache"
	"viagem/shared/constant"
	gDto "viagem/shared/dto"
	"viagem/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAvailability = "availability:gets"
)

type Availability interface {
	Get(ctx context.Context, accommodationID, from, to string) (dto.GetAvailabilityResponse, error)
	SetRange(ctx context.Context, accommodationID string, req dto.SetAvailabilityRequest) error
}

type serviceImpl struct {
	repo              repository.Availability
	accommodationRepo accommodationRepo.Accommodation
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
}

func New(repo repository.Availability, accommodationRepo accommodationRepo.Accommodation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:              repo,
		accommodationRepo: accommodationRepo,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
	}
}

// Get returns the calendar rows for one accommodation, optionally bounded to
// [from, to]. Days without a row are absent from the result.
func (s *serviceImpl) Get(ctx context.Context, accommodationID, from, to string) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAvailability, accommodationID, from, to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAccommodationID,
				Value:    accommodationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if from != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "date_from",
			Field:    model.FieldDate,
			Value:    from,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if to != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "date_to",
			Field:    model.FieldDate,
			Value:    to,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldDate,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability")

		return res, fmt.Errorf("failed to get availability: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

// SetRange expands the requested range into per-day rows and writes them in
// one batched upsert. No check is made against overlapping confirmed
// bookings; a later write over the same dates wins.
func (s *serviceImpl) SetRange(ctx context.Context, accommodationID string, req dto.SetAvailabilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.accommodationRepo.Exist(ctx, shared.FilterByID(accommodationID, accommodationModel.FieldID, accommodationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if accommodation exists")

		return fmt.Errorf("failed to check if accommodation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	models, err := req.ToModels(accommodationID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse availability request")

		return err
	}

	if err = s.repo.UpsertBulk(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to upsert availability")

		return fmt.Errorf("failed to upsert availability: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAvailability, accommodationID))
	}()

	return nil
}
