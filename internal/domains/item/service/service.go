package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lendit/config"
	"lendit/infras/otel"
	bookingModel "lendit/internal/domains/booking/model"
	bookingRepo "lendit/internal/domains/booking/repository"
	"lendit/internal/domains/item/model"
	"lendit/internal/domains/item/model/dto"
	"lendit/internal/domains/item/repository"
	userModel "lendit/internal/domains/user/model"
	userRepo "lendit/internal/domains/user/repository"
	"lendit/shared"
	"lendit/shared/cache"
	"lendit/shared/constant"
	gDto "lendit/shared/dto"
	"lendit/shared/failure"
	"lendit/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetItem    = "item:get"
	cacheGetAllItem = "item:gets"
	cacheCountItem  = "item:count"
)

type Item interface {
	Create(ctx context.Context, ownerID string, req dto.CreateItemRequest) (dto.ItemResponse, error)
	GetAll(ctx context.Context, ownerID string, window gDto.PageWindow) (dto.GetItemsResponse, error)
	Get(ctx context.Context, id string) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, id, actorID string) (dto.ItemResponse, error)
	Delete(ctx context.Context, id, actorID string) error
	Search(ctx context.Context, text string, window gDto.PageWindow) (dto.GetItemsResponse, error)
	AddComment(ctx context.Context, itemID, authorID string, req dto.CreateCommentRequest) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo        repository.Item
	commentRepo repository.Comment
	userRepo    userRepo.User
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Item,
	commentRepo repository.Comment,
	uRepo userRepo.User,
	bRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:        repo,
		commentRepo: commentRepo,
		userRepo:    uRepo,
		bookingRepo: bRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, ownerID string, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerExists, err := s.userRepo.Exist(ctx, shared.FilterByID(ownerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return res, fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !ownerExists {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	item := req.ToModel(ownerID)

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, ownerID string, window gDto.PageWindow) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = window.Validate(); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
	params := window.ToQueryParams(model.TableName+"."+constant.FieldCreatedAt, gDto.SortDirAsc)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count items")

		return res, fmt.Errorf("failed to count items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return res, fmt.Errorf("failed to get items: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for item")

		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	comments, err := s.commentRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.CommentTableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.CommentFieldItemID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.CommentTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get item comments")

		return res, fmt.Errorf("failed to get item comments: %w", err)
	}

	res.FromModel(item)
	res.AttachComments(comments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, id, actorID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateItemRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	if item.OwnerID != actorID {
		return res, failure.Forbidden("only the owner may update the item") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actorID)
	if req.Available != nil {
		status := model.StatusUnavailable
		if *req.Available {
			status = model.StatusAvailable
		}

		updatedFields[model.FieldStatus] = status
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	item, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated item")

		return res, fmt.Errorf("failed to get updated item: %w", err)
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, actorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("item not found") // nolint:wrapcheck
	}

	if item.OwnerID != actorID {
		return failure.Forbidden("only the owner may delete the item") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return nil
}

func (s *serviceImpl) Search(ctx context.Context, text string, window gDto.PageWindow) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = window.Validate(); err != nil {
		return res, err
	}

	if text == constant.Empty {
		res.Items = []dto.ItemResponse{}
		res.TotalPage = 1

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusAvailable, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{Field: model.FieldName, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
					gDto.Filter{ArgName: "description_like", Field: model.FieldDescription, Value: text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				},
			},
		},
	}
	params := window.ToQueryParams(model.TableName+"."+constant.FieldCreatedAt, gDto.SortDirAsc)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count matching items")

		return res, fmt.Errorf("failed to count matching items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search items")

		return res, fmt.Errorf("failed to search items: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) AddComment(ctx context.Context, itemID, authorID string, req dto.CreateCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddComment")
	defer scope.End()
	defer scope.TraceIfError(err)

	author, err := s.userRepo.Get(ctx, shared.FilterByID(authorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get comment author")

		return res, fmt.Errorf("failed to get comment author: %w", err)
	}

	if author.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	itemExists, err := s.repo.Exist(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if item exists")

		return res, fmt.Errorf("failed to check if item exists: %w", err)
	}

	if !itemExists {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	// A comment is only allowed after an approved booking of the item has
	// fully elapsed for this author.
	completed, err := s.bookingRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldItemID, Value: itemID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
			gDto.Filter{Field: bookingModel.FieldBookerID, Value: authorID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
			gDto.Filter{Field: bookingModel.FieldStatus, Value: string(bookingModel.StatusApproved), Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
			gDto.Filter{Field: bookingModel.FieldEndTime, Value: timezone.Now(), Operator: gDto.FilterOperatorLess, Table: bookingModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check completed bookings")

		return res, fmt.Errorf("failed to check completed bookings: %w", err)
	}

	if !completed {
		return res, failure.BadRequestFromString("commenting requires a completed booking of the item") // nolint:wrapcheck
	}

	comment := req.ToModel(itemID, authorID, author.Name)

	if err = s.commentRepo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	res.FromModel(comment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, itemID)); err != nil {
			log.Error().Err(err).Msg("failed to delete item from cache")
		}
	}()

	return res, nil
}
