package request

import (
	"lendit/infras/otel"
	"lendit/internal/domains/request/model/dto"
	"lendit/internal/domains/request/service"
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
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetOwnRequests)
		routerGroup.Get("/all", handler.GetAllRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
	})
}

// CreateRequest files a wish for an item no one offers yet.
func (handler *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	req := dto.CreateItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	request, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item request created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, request)
}

// GetOwnRequests lists the caller's requests with the items answering them.
func (handler *Handler) GetOwnRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnRequests")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	requests, err := handler.service.GetAllOwn(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own item requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item requests retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, requests)
}

// GetAllRequests lists other users' requests, newest first.
func (handler *Handler) GetAllRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllRequests")
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

	requests, err := handler.service.GetAll(ctx, userID, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetRequestByID retrieves a request with the items answering it.
func (handler *Handler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item request retrieved successfully")

	response.WithJSON(w, http.StatusOK, request)
}
