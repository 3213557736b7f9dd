package reservation

import (
	"cowork/infras/otel"
	"cowork/internal/domains/reservation/model/dto"
	"cowork/internal/domains/reservation/service"
	"cowork/shared/constant"
	"cowork/shared/logger"
	"cowork/shared/validator"
	"cowork/transport/http/request"
	"cowork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/validate-date", handler.ValidateDate)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Post("/export", handler.Export)
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Patch("/{folio}", handler.UpdateEventName)
	})
}

// ValidateDate checks a date against the booking policy.
// @Summary Validate a reservation date
// @Description The date must be at least two days ahead and not a Sunday. When Sunday substitution is enabled
// @Description the error carries the suggested Monday, resend with accept_substitute to take it.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.ValidateDateRequest true "Date in MM-DD-YYYY"
// @Success 200 {object} response.Data[dto.ValidateDateResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/validate-date [post]
func (handler *Handler) ValidateDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateDate")
	defer scope.End()

	req := dto.ValidateDateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ValidateDate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Debug().Err(err).Str("date", req.Date).Msg("date rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailability lists rooms with at least one free shift on a date.
// @Summary Room availability on a date
// @Tags Reservation
// @Produce json
// @Param date query string true "Date in MM-DD-YYYY"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	res, err := handler.service.ListAvailability(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to list availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateReservation books a room shift.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Shift already reserved"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservations lists reservations of one date, or of a date range when start and end are given.
// @Summary Get reservations
// @Description Without any parameter the reservations of today are returned.
// @Tags Reservation
// @Produce json
// @Param date query string false "Date in MM-DD-YYYY"
// @Param start query string false "Range start in MM-DD-YYYY"
// @Param end query string false "Range end in MM-DD-YYYY"
// @Success 200 {object} response.Data[[]dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	query := r.URL.Query()
	start := query.Get(constant.RequestParamStart)
	end := query.Get(constant.RequestParamEnd)

	var (
		res []dto.ReservationResponse
		err error
	)

	if start != constant.Empty || end != constant.Empty {
		res, err = handler.service.FindByDateRange(ctx, start, end)
	} else {
		res, err = handler.service.FindByDate(ctx, query.Get(constant.RequestParamDate))
	}

	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateEventName renames the event of a reservation.
// @Summary Rename a reservation event
// @Description When start and end are given the folio must fall within that range.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param folio path int true "Folio"
// @Param request body dto.UpdateEventNameRequest true "New event name"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{folio} [patch]
func (handler *Handler) UpdateEventName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEventName")
	defer scope.End()

	folio, err := request.IDParam(r, constant.RequestParamFolio)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateEventNameRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateEventName(ctx, folio, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("folio", folio).Msg("failed to update event name")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation renamed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Export uploads the report of a date to object storage.
// @Summary Export a day report
// @Tags Reservation
// @Produce json
// @Param date query string false "Date in MM-DD-YYYY, today when empty"
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/export [post]
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	res, err := handler.service.Export(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to export reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
