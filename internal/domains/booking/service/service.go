package service

import (
	"context"
	"fmt"
	"viagem/config"
	"viagem/infras/kafka"
	"viagem/infras/otel"
	accommodationModel "viagem/internal/domains/accommodation/model"
	accommodationRepo "viagem/internal/domains/accommodation/repository"
	"viagem/internal/domains/booking/model"
	"viagem/internal/domains/booking/model/dto"
	"viagem/internal/domains/booking/repository"
	tourModel "viagem/internal/domains/tour/model"
	tourRepo "viagem/internal/domains/tour/repository"
	"viagem/shared"
	"viagem/shared/cache"
	"viagem/shared/constant"
	gDto "viagem/shared/dto"
	"viagem/shared/failure"
	"viagem/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo              repository.Booking
	accommodationRepo accommodationRepo.Accommodation
	tourRepo          tourRepo.Tour
	cfg               *config.Config
	cache             cache.RedisCache
	producer          kafka.Producer
	otel              otel.Otel
}

func New(
	repo repository.Booking,
	accommodationRepo accommodationRepo.Accommodation,
	tourRepo tourRepo.Tour,
	cfg *config.Config,
	cache cache.RedisCache,
	producer kafka.Producer,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:              repo,
		accommodationRepo: accommodationRepo,
		tourRepo:          tourRepo,
		cfg:               cfg,
		cache:             cache,
		producer:          producer,
		otel:              otel,
	}
}

// Create prices and persists a reservation. The item lookup, the guest-bound
// check, the price computation, and the insert all run inside one
// transaction, so the stored total always reflects the unit price the booking
// was validated against. Two identical submissions still produce two rows
// with distinct ids; there is no idempotency key.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, err
	}

	err = s.repo.WithTransaction(ctx, func(sqltx *sqlx.Tx) error {
		unitPrice, minGuests, maxGuests, err := s.resolveItem(ctx, sqltx, req.ItemType, req.ItemID)
		if err != nil {
			return err
		}

		if booking.Guests < minGuests || booking.Guests > maxGuests {
			return failure.BadRequestFromString(fmt.Sprintf("number_of_guests must be between %d and %d", minGuests, maxGuests)) // nolint:wrapcheck
		}

		booking.TotalPrice = model.TotalPrice(unitPrice, booking.Guests)

		return s.repo.InsertTx(ctx, sqltx, booking)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.SendMessages(c, constant.KafkaTopicBookingCreated, kafka.Message{Key: booking.ID, Value: res}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// resolveItem loads the booked item's unit price and guest bounds through the
// open transaction. Only tours and accommodations have catalog tables.
func (s *serviceImpl) resolveItem(ctx context.Context, sqltx *sqlx.Tx, itemType, itemID string) (unitPrice float64, minGuests, maxGuests int, err error) {
	switch itemType {
	case model.ItemTypeTour:
		tour, err := s.tourRepo.GetTx(ctx, sqltx, shared.FilterByID(itemID, tourModel.FieldID, tourModel.TableName))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("failed to get tour: %w", err)
		}

		if tour.ID == constant.Empty {
			return 0, 0, 0, failure.NotFound("tour not found") // nolint:wrapcheck
		}

		if !tour.Active {
			return 0, 0, 0, failure.BadRequestFromString("tour is not open for booking") // nolint:wrapcheck
		}

		return tour.Price, tour.MinParticipants, tour.MaxParticipants, nil
	case model.ItemTypeAccommodation:
		accommodation, err := s.accommodationRepo.GetTx(ctx, sqltx, shared.FilterByID(itemID, accommodationModel.FieldID, accommodationModel.TableName))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("failed to get accommodation: %w", err)
		}

		if accommodation.ID == constant.Empty {
			return 0, 0, 0, failure.NotFound("accommodation not found") // nolint:wrapcheck
		}

		if !accommodation.Active {
			return 0, 0, 0, failure.BadRequestFromString("accommodation is not open for booking") // nolint:wrapcheck
		}

		return accommodation.BasePrice, accommodation.MinGuests, accommodation.MaxGuests, nil
	default:
		return 0, 0, 0, failure.BadRequestFromString(fmt.Sprintf("item type %s is not bookable", itemType)) // nolint:wrapcheck
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update touches only post-creation mutable fields: status, payment_status,
// payment_method and special_requests. Dates, guests, and total_price never
// change after create.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// Cancel flips the status to cancelled and keeps the row.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if model.NormalizeStatus(booking.Status) == model.StatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus: model.StatusCancelled,
		"modified_at":     timezone.Now(),
		"modified_by":     user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.SendMessages(c, constant.KafkaTopicBookingCancelled, kafka.Message{Key: booking.ID, Value: map[string]string{"id": booking.ID, "user_id": booking.UserID}}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking cancelled event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
