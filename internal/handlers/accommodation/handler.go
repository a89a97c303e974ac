package accommodation

import (
	"net/http"
	"viagem/infras/otel"
	"viagem/internal/domains/accommodation/model"
	"viagem/internal/domains/accommodation/model/dto"
	accommodationService "viagem/internal/domains/accommodation/service"
	availabilityDto "viagem/internal/domains/availability/model/dto"
	availabilityService "viagem/internal/domains/availability/service"
	"viagem/shared/constant"
	gDto "viagem/shared/dto"
	"viagem/shared/validator"
	"viagem/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      accommodationService.Accommodation
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service accommodationService.Accommodation, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accommodations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAccommodation)
		routerGroup.Get("/", handler.GetAccommodations)
		routerGroup.Get("/{id}", handler.GetAccommodationByID)
		routerGroup.Patch("/{id}", handler.UpdateAccommodation)
		routerGroup.Delete("/{id}", handler.DeleteAccommodation)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Put("/{id}/availability", handler.SetAvailability)
	})
}

// CreateAccommodation registers a new bookable accommodation.
// @Summary Create a new accommodation
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param request body dto.CreateAccommodationRequest true "Create Accommodation Request"
// @Success 201 {object} response.Message "Accommodation created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [post]
// @Security BearerAuth
func (handler *Handler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccommodation")
	defer scope.End()

	req := dto.CreateAccommodationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create accommodation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation created successfully")

	response.WithMessage(w, http.StatusCreated, "Accommodation created successfully")
}

// GetAccommodations retrieves all accommodations based on query parameters.
// @Summary Get all accommodations
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by location (substring match)"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetAccommodationsResponse] "List of accommodations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [get]
func (handler *Handler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	location := r.URL.Query().Get(model.FieldLocation)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active == "true",
			Table:    model.TableName,
		})
	}

	accommodations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodations retrieved successfully")

	response.WithJSON(w, http.StatusOK, accommodations)
}

// GetAccommodationByID retrieves an accommodation by its ID.
// @Summary Get an accommodation by ID
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.AccommodationResponse] "Accommodation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [get]
func (handler *Handler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	accommodation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation retrieved successfully")

	response.WithJSON(w, http.StatusOK, accommodation)
}

// UpdateAccommodation updates an existing accommodation by its ID.
// @Summary Update an accommodation by ID
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body dto.UpdateAccommodationRequest true "Update Accommodation Request"
// @Success 200 {object} response.Message "Accommodation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAccommodation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAccommodationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update accommodation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation updated successfully")

	response.WithMessage(w, http.StatusOK, "Accommodation updated successfully")
}

// DeleteAccommodation deletes an accommodation by its ID.
// @Summary Delete an accommodation by ID
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Message "Accommodation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccommodation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete accommodation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Accommodation deleted successfully")
}

// GetAvailability retrieves the availability calendar for an accommodation.
// @Summary Get accommodation availability
// @Description List per-date availability rows, optionally bounded to [from, to]. Days without a row are absent.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param from query string false "Start of the date window (YYYY-MM-DD)"
// @Param to query string false "End of the date window (YYYY-MM-DD)"
// @Success 200 {object} response.Data[availabilityDto.GetAvailabilityResponse] "Availability rows"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	from := r.URL.Query().Get(constant.RequestParamDateFrom)
	to := r.URL.Query().Get(constant.RequestParamDateTo)

	availability, err := handler.availability.Get(ctx, id, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// SetAvailability bulk-sets the availability for a date range.
// @Summary Set accommodation availability for a date range
// @Description Expand the range into one row per calendar day (inclusive) and upsert them in one batch.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body availabilityDto.SetAvailabilityRequest true "Set Availability Request"
// @Success 200 {object} response.Message "Availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id}/availability [put]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := availabilityDto.SetAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.availability.SetRange(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set availability")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Availability updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Availability updated successfully")
}
