package booking

import (
	"lendit/infras/otel"
	"lendit/internal/domains/booking/model/dto"
	"lendit/internal/domains/booking/service"
	"lendit/shared"
	"lendit/shared/constant"
	gDto "lendit/shared/dto"
	"lendit/shared/failure"
	"lendit/shared/validator"
	"lendit/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookerBookings)
		routerGroup.Get("/owner", handler.GetOwnerBookings)
		routerGroup.Get("/{bookingId}", handler.GetBookingByID)
		routerGroup.Patch("/{bookingId}", handler.DecideBooking)
	})
}

// CreateBooking files a new booking for an item.
// @Summary Create a new booking
// @Description Create a booking of an item for the given time window. The caller becomes the booker.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller identity"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookerBookings lists the caller's own bookings, newest start first.
// @Summary List bookings made by the caller
// @Description List the caller's bookings filtered by state (ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED).
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller identity"
// @Param state query string false "Search state, defaults to ALL"
// @Param from query int false "Index of the first record"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookerBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	window, err := gDto.PageWindowFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	state := r.URL.Query().Get(constant.RequestParamState)

	bookings, err := handler.service.GetAllForBooker(ctx, userID, state, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booker bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully for booker " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetOwnerBookings lists bookings of the caller's items, newest start first.
// @Summary List bookings of the caller's items
// @Description List bookings made against items the caller owns, filtered by state.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller identity"
// @Param state query string false "Search state, defaults to ALL"
// @Param from query int false "Index of the first record"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/owner [get]
func (handler *Handler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	window, err := gDto.PageWindowFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	state := r.URL.Query().Get(constant.RequestParamState)

	bookings, err := handler.service.GetAllForOwner(ctx, userID, state, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully for owner " + userID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a single booking for one of its parties.
// @Summary Get a booking by ID
// @Description Retrieve a booking. Only the booker or the item owner may view it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller identity"
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{bookingId} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamBookingID)

	booking, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// DecideBooking settles a pending booking. The owner approves or rejects;
// the booker cancels by sending approved=false.
// @Summary Decide on a booking
// @Description Approve, reject or cancel a booking depending on the caller's role.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller identity"
// @Param bookingId path string true "Booking ID"
// @Param approved query bool true "Approve (true) or reject/cancel (false)"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking after the decision"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{bookingId} [patch]
func (handler *Handler) DecideBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamBookingID)

	approved := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamApproved))
	if approved == nil {
		err := failure.BadRequestFromString("invalid approved parameter")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Decide(ctx, id, userID, *approved)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide on booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking decided successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, booking)
}
