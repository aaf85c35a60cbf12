package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lendit/config"
	"lendit/infras/kafka"
	"lendit/infras/otel"
	"lendit/internal/domains/booking/guard"
	"lendit/internal/domains/booking/model"
	"lendit/internal/domains/booking/model/dto"
	"lendit/internal/domains/booking/repository"
	itemModel "lendit/internal/domains/item/model"
	itemRepo "lendit/internal/domains/item/repository"
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
	cacheGetBooking = "booking:get"
)

type Booking interface {
	Create(ctx context.Context, bookerID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Decide(ctx context.Context, id, actorID string, approved bool) (dto.BookingResponse, error)
	Get(ctx context.Context, id, actorID string) (dto.BookingResponse, error)
	GetAllForBooker(ctx context.Context, bookerID, state string, window gDto.PageWindow) (dto.GetBookingsResponse, error)
	GetAllForOwner(ctx context.Context, ownerID, state string, window gDto.PageWindow) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepo.User
	itemRepo itemRepo.Item
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	uRepo userRepo.User,
	iRepo itemRepo.Item,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: uRepo,
		itemRepo: iRepo,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafkaClient,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, bookerID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookerExists, err := s.userRepo.Exist(ctx, shared.FilterByID(bookerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booker exists")

		return res, fmt.Errorf("failed to check if booker exists: %w", err)
	}

	if !bookerExists {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(req.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	if !item.Available() {
		return res, failure.Conflict("item unavailable") // nolint:wrapcheck
	}

	booking, err := req.ToModel(bookerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if !booking.StartTime.Before(booking.EndTime) {
		return res, failure.BadRequestFromString("booking start must be before its end") // nolint:wrapcheck
	}

	if bookerID == item.OwnerID {
		return res, failure.Forbidden("owner cannot book own item") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ItemName = item.Name
	booking.ItemOwnerID = item.OwnerID

	s.publishEvent(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Decide(ctx context.Context, id, actorID string, approved bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer scope.TraceIfError(err)

	actorExists, err := s.userRepo.Exist(ctx, shared.FilterByID(actorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if actor exists")

		return res, fmt.Errorf("failed to check if actor exists: %w", err)
	}

	if !actorExists {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	if booking.Expired(now) {
		return res, failure.BadRequestFromString("booking window expired") // nolint:wrapcheck
	}

	if actorID == booking.BookerID {
		if approved {
			return res, failure.Forbidden("only the owner may approve") // nolint:wrapcheck
		}

		if err = guard.CanCancel(actorID, booking, now); err != nil {
			return res, err
		}

		if _, err = s.repo.UpdateStatus(ctx, id, "", model.StatusCanceled, actorID); err != nil {
			log.Error().Err(err).Msg("failed to cancel booking")

			return res, fmt.Errorf("failed to cancel booking: %w", err)
		}

		booking.Status = model.StatusCanceled
	} else {
		if err = guard.CanDecide(actorID, booking); err != nil {
			return res, err
		}

		target := model.StatusRejected
		if approved {
			target = model.StatusApproved
		}

		// The status filter makes this a compare-and-set: a concurrent
		// decision leaves zero rows and this request loses.
		updated, updateErr := s.repo.UpdateStatus(ctx, id, model.StatusWaiting, target, actorID)
		if updateErr != nil {
			log.Error().Err(updateErr).Msg("failed to update booking status")

			return res, fmt.Errorf("failed to update booking status: %w", updateErr)
		}

		if !updated {
			return res, failure.BadRequestFromString("decision already made") // nolint:wrapcheck
		}

		booking.Status = target
	}

	s.publishEvent(ctx, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, actorID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	actorExists, err := s.userRepo.Exist(ctx, shared.FilterByID(actorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if actor exists")

		return res, fmt.Errorf("failed to check if actor exists: %w", err)
	}

	if !actorExists {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = guard.CanView(actorID, booking); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAllForBooker(ctx context.Context, bookerID, state string, window gDto.PageWindow) (dto.GetBookingsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllForBooker")
	defer scope.End()

	scopeFilter := gDto.Filter{
		Field:    model.FieldBookerID,
		Value:    bookerID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}

	res, err := s.getAll(ctx, bookerID, state, window, scopeFilter)
	scope.TraceIfError(err)

	return res, err
}

func (s *serviceImpl) GetAllForOwner(ctx context.Context, ownerID, state string, window gDto.PageWindow) (dto.GetBookingsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllForOwner")
	defer scope.End()

	scopeFilter := gDto.Filter{
		Field:    itemModel.FieldOwnerID,
		Value:    ownerID,
		Operator: gDto.FilterOperatorEq,
		Table:    itemModel.TableName,
	}

	res, err := s.getAll(ctx, ownerID, state, window, scopeFilter)
	scope.TraceIfError(err)

	return res, err
}

// getAll runs one listing query. The pagination and state token are rejected
// before anything touches the store, and both temporal predicates evaluate
// against the same `now` snapshot.
func (s *serviceImpl) getAll(ctx context.Context, actorID, state string, window gDto.PageWindow, scopeFilter gDto.Filter) (res dto.GetBookingsResponse, err error) {
	if err = window.Validate(); err != nil {
		return res, err
	}

	search, err := model.ParseSearchStatus(state)
	if err != nil {
		return res, err
	}

	actorExists, err := s.userRepo.Exist(ctx, shared.FilterByID(actorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if actor exists")

		return res, fmt.Errorf("failed to check if actor exists: %w", err)
	}

	if !actorExists {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	now := timezone.Now()
	filter := search.Filter(scopeFilter, now)
	params := window.ToQueryParams(model.TableName+"."+model.FieldStartTime, gDto.SortDirDesc)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	var booking model.Booking

	err := s.cache.Get(ctx, cacheKey, &booking)
	if err == nil && booking.ID != constant.Empty {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return booking, nil
	}

	booking, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, booking, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return booking, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		var event dto.BookingEvent
		event.FromModel(booking)

		message := kafka.Message{Key: booking.ID, Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
