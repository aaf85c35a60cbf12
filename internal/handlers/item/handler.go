package item

import (
	"lendit/infras/otel"
	"lendit/internal/domains/item/model/dto"
	"lendit/internal/domains/item/service"
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
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetOwnItems)
		routerGroup.Get("/search", handler.SearchItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
		routerGroup.Post("/{id}/comment", handler.AddComment)
	})
}

// CreateItem offers a new item for lending.
// @Summary Create a new item
// @Description Offer an item for lending. The caller becomes the owner.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller identity"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Data[dto.ItemResponse] "Item created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/items [post]
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
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

	item, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, item)
}

// GetOwnItems lists the caller's items.
func (handler *Handler) GetOwnItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnItems")
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

	items, err := handler.service.GetAll(ctx, userID, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Items retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, items)
}

// SearchItems finds available items matching the text.
// @Summary Search available items
// @Description Case-insensitive search over item names and descriptions. Empty text yields an empty result.
// @Tags Item
// @Accept json
// @Produce json
// @Param text query string true "Search text"
// @Param from query int false "Index of the first record"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "Matching items"
// @Failure 400 {object} response.Error
// @Router /v1/items/search [get]
func (handler *Handler) SearchItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchItems")
	defer scope.End()

	window, err := gDto.PageWindowFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	text := r.URL.Query().Get(constant.RequestParamText)

	items, err := handler.service.Search(ctx, text, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Items searched successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves an item with its comments.
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem patches an item. Only the owner may do this.
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Update(ctx, req, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item updated successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item. Only the owner may do this.
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item deleted successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Item deleted successfully")
}

// AddComment leaves feedback on an item after a completed booking.
func (handler *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddComment")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("missing "+constant.RequestHeaderUserID+" header"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateCommentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	comment, err := handler.service.AddComment(ctx, id, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add comment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comment added successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, comment)
}
