package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lendit/config"
	"lendit/infras/otel"
	itemModel "lendit/internal/domains/item/model"
	itemRepo "lendit/internal/domains/item/repository"
	"lendit/internal/domains/request/model"
	"lendit/internal/domains/request/model/dto"
	"lendit/internal/domains/request/repository"
	userModel "lendit/internal/domains/user/model"
	userRepo "lendit/internal/domains/user/repository"
	"lendit/shared"
	"lendit/shared/constant"
	gDto "lendit/shared/dto"
	"lendit/shared/failure"

	"github.com/rs/zerolog/log"
)

type Request interface {
	Create(ctx context.Context, requesterID string, req dto.CreateItemRequest) (dto.ItemRequestResponse, error)
	GetAllOwn(ctx context.Context, requesterID string) (dto.GetItemRequestsResponse, error)
	GetAll(ctx context.Context, actorID string, window gDto.PageWindow) (dto.GetItemRequestsResponse, error)
	Get(ctx context.Context, id, actorID string) (dto.ItemRequestResponse, error)
}

type serviceImpl struct {
	repo     repository.Request
	itemRepo itemRepo.Item
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Request, iRepo itemRepo.Item, uRepo userRepo.User, cfg *config.Config, otel otel.Otel) Request {
	return &serviceImpl{
		repo:     repo,
		itemRepo: iRepo,
		userRepo: uRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, requesterID string, req dto.CreateItemRequest) (res dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, requesterID); err != nil {
		return res, err
	}

	request := req.ToModel(requesterID)

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create item request")

		return res, fmt.Errorf("failed to create item request: %w", err)
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) GetAllOwn(ctx context.Context, requesterID string) (res dto.GetItemRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, requesterID); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRequesterID, Value: requesterID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item requests")

		return res, fmt.Errorf("failed to get item requests: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return s.attachItems(ctx, res, models)
}

func (s *serviceImpl) GetAll(ctx context.Context, actorID string, window gDto.PageWindow) (res dto.GetItemRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = window.Validate(); err != nil {
		return res, err
	}

	if err = s.requireUser(ctx, actorID); err != nil {
		return res, err
	}

	// Requests by the actor are excluded, this listing is for offers to
	// other people's wishes.
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRequesterID, Value: actorID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		},
	}
	params := window.ToQueryParams(model.TableName+"."+constant.FieldCreatedAt, gDto.SortDirDesc)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count item requests")

		return res, fmt.Errorf("failed to count item requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item requests")

		return res, fmt.Errorf("failed to get item requests: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return s.attachItems(ctx, res, models)
}

func (s *serviceImpl) Get(ctx context.Context, id, actorID string) (res dto.ItemRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, actorID); err != nil {
		return res, err
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item request")

		return res, fmt.Errorf("failed to get item request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("item request not found") // nolint:wrapcheck
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: itemModel.FieldRequestID, Value: id, Operator: gDto.FilterOperatorEq, Table: itemModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get responding items")

		return res, fmt.Errorf("failed to get responding items: %w", err)
	}

	res.FromModel(request)
	res.AttachItems(items)

	return res, nil
}

func (s *serviceImpl) requireUser(ctx context.Context, id string) error {
	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) attachItems(ctx context.Context, res dto.GetItemRequestsResponse, models []model.ItemRequest) (dto.GetItemRequestsResponse, error) {
	if len(models) == 0 {
		return res, nil
	}

	ids := make([]string, len(models))
	for i, mod := range models {
		ids[i] = mod.ID
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: itemModel.FieldRequestID, Value: ids, Operator: gDto.FilterOperatorIn, Table: itemModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get responding items")

		return res, fmt.Errorf("failed to get responding items: %w", err)
	}

	res.AttachItems(items)

	return res, nil
}
