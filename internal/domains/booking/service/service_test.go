package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lendit/config"
	kafkaMocks "lendit/infras/kafka/mocks"
	"lendit/infras/otel/mocks"
	bookingMocks "lendit/internal/domains/booking/mocks"
	"lendit/internal/domains/booking/model"
	"lendit/internal/domains/booking/model/dto"
	"lendit/internal/domains/booking/service"
	itemMocks "lendit/internal/domains/item/mocks"
	itemModel "lendit/internal/domains/item/model"
	userMocks "lendit/internal/domains/user/mocks"
	cacheMocks "lendit/shared/cache/mocks"
	gDto "lendit/shared/dto"
	"lendit/shared/failure"
	"lendit/shared/timezone"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockItemRepo := itemMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockUserRepo, mockItemRepo, cfg, mockCache, mockKafka, mockOtel)

	now := timezone.Now()
	start := now.Add(time.Hour).Format(time.RFC3339)
	end := now.Add(2 * time.Hour).Format(time.RFC3339)

	availableItem := itemModel.Item{
		ID:      "item-1",
		Name:    "Drill",
		Status:  itemModel.StatusAvailable,
		OwnerID: "owner-1",
	}

	tests := []struct {
		name      string
		bookerID  string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:     "successful creation",
			bookerID: "booker-1",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: start, End: end},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:     "unknown booker",
			bookerID: "ghost",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: start, End: end},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown item",
			bookerID: "booker-1",
			req:      dto.CreateBookingRequest{ItemID: "missing", Start: start, End: end},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(itemModel.Item{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unavailable item",
			bookerID: "booker-1",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: start, End: end},
			setupMock: func() {
				unavailable := availableItem
				unavailable.Status = itemModel.StatusUnavailable

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unavailable, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:     "malformed start time",
			bookerID: "booker-1",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: "yesterday", End: end},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "start equal to end",
			bookerID: "booker-1",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: start, End: start},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "start after end",
			bookerID: "booker-1",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: end, End: start},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "owner books own item",
			bookerID: "owner-1",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: start, End: end},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "repository error",
			bookerID: "booker-1",
			req:      dto.CreateBookingRequest{ItemID: "item-1", Start: start, End: end},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.bookerID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusWaiting), res.Status)
				assert.Equal(t, "Drill", res.ItemName)
				assert.Equal(t, "owner-1", res.OwnerID)
			}
		})
	}
}

func TestBookingService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockItemRepo := itemMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockUserRepo, mockItemRepo, cfg, mockCache, mockKafka, mockOtel)

	now := timezone.Now()

	pending := model.Booking{
		ID:          "booking-1",
		StartTime:   now.Add(time.Hour),
		EndTime:     now.Add(2 * time.Hour),
		ItemID:      "item-1",
		BookerID:    "booker-1",
		Status:      model.StatusWaiting,
		ItemName:    "Drill",
		ItemOwnerID: "owner-1",
	}

	expectBooking := func(booking model.Booking) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)
	}

	tests := []struct {
		name       string
		actorID    string
		approved   bool
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantMsg    string
		wantStatus string
	}{
		{
			name:     "owner approves",
			actorID:  "owner-1",
			approved: true,
			setupMock: func() {
				expectBooking(pending)
				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-1", model.StatusWaiting, model.StatusApproved, "owner-1").
					Return(true, nil)
			},
			wantStatus: string(model.StatusApproved),
		},
		{
			name:     "owner rejects",
			actorID:  "owner-1",
			approved: false,
			setupMock: func() {
				expectBooking(pending)
				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-1", model.StatusWaiting, model.StatusRejected, "owner-1").
					Return(true, nil)
			},
			wantStatus: string(model.StatusRejected),
		},
		{
			name:     "booker cancels",
			actorID:  "booker-1",
			approved: false,
			setupMock: func() {
				expectBooking(pending)
				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-1", model.Status(""), model.StatusCanceled, "booker-1").
					Return(true, nil)
			},
			wantStatus: string(model.StatusCanceled),
		},
		{
			name:     "unknown actor",
			actorID:  "ghost",
			approved: true,
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown booking",
			actorID:  "owner-1",
			approved: true,
			setupMock: func() {
				expectBooking(model.Booking{})
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
			wantMsg:  "booking not found",
		},
		{
			name:     "elapsed window",
			actorID:  "owner-1",
			approved: true,
			setupMock: func() {
				stale := pending
				stale.StartTime = now.Add(-2 * time.Hour)
				stale.EndTime = now.Add(-time.Hour)
				expectBooking(stale)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "booking window expired",
		},
		{
			name:     "booker tries to approve",
			actorID:  "booker-1",
			approved: true,
			setupMock: func() {
				expectBooking(pending)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
			wantMsg:  "only the owner may approve",
		},
		{
			name:     "stranger tries to decide",
			actorID:  "stranger",
			approved: true,
			setupMock: func() {
				expectBooking(pending)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
			wantMsg:  "only the owner may decide",
		},
		{
			name:     "already approved",
			actorID:  "owner-1",
			approved: true,
			setupMock: func() {
				settled := pending
				settled.Status = model.StatusApproved
				expectBooking(settled)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "decision already made",
		},
		{
			name:     "canceled booking",
			actorID:  "owner-1",
			approved: true,
			setupMock: func() {
				canceled := pending
				canceled.Status = model.StatusCanceled
				expectBooking(canceled)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "booking was canceled",
		},
		{
			name:     "lost the decision race",
			actorID:  "owner-1",
			approved: true,
			setupMock: func() {
				expectBooking(pending)
				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "booking-1", model.StatusWaiting, model.StatusApproved, "owner-1").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "decision already made",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actorID != "ghost" {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			}

			tt.setupMock()

			res, err := svc.Decide(context.Background(), "booking-1", tt.actorID, tt.approved)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockItemRepo := itemMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockUserRepo, mockItemRepo, cfg, mockCache, mockKafka, mockOtel)

	now := timezone.Now()

	booking := model.Booking{
		ID:          "booking-1",
		StartTime:   now.Add(time.Hour),
		EndTime:     now.Add(2 * time.Hour),
		ItemID:      "item-1",
		BookerID:    "booker-1",
		Status:      model.StatusWaiting,
		ItemName:    "Drill",
		ItemOwnerID: "owner-1",
	}

	tests := []struct {
		name      string
		actorID   string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "booker views own booking",
			actorID: "booker-1",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
		},
		{
			name:    "owner views booking",
			actorID: "owner-1",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
		},
		{
			name:    "cache hit skips the store",
			actorID: "booker-1",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Booking) = booking

						return nil
					})
			},
		},
		{
			name:    "stranger is rejected",
			actorID: "stranger",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:    "unknown actor",
			actorID: "ghost",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:    "unknown booking",
			actorID: "booker-1",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "booking-1", tt.actorID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-1", res.ID)
				assert.Equal(t, "Drill", res.ItemName)
			}
		})
	}
}

func TestBookingService_GetAllForBooker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockItemRepo := itemMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockUserRepo, mockItemRepo, cfg, mockCache, mockKafka, mockOtel)

	now := timezone.Now()

	bookings := []model.Booking{
		{
			ID:          "booking-1",
			StartTime:   now.Add(time.Hour),
			EndTime:     now.Add(2 * time.Hour),
			ItemID:      "item-1",
			BookerID:    "booker-1",
			Status:      model.StatusWaiting,
			ItemName:    "Drill",
			ItemOwnerID: "owner-1",
		},
	}

	tests := []struct {
		name      string
		state     string
		window    gDto.PageWindow
		setupMock func()
		wantErr   bool
		wantCode  int
		wantMsg   string
		wantTotal int
	}{
		{
			name:   "default listing",
			state:  "",
			window: gDto.PageWindow{From: 0, Size: 10},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						assert.Equal(t, "bookings.start_time", params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)

						return bookings, nil
					})
			},
			wantTotal: 1,
		},
		{
			name:   "current listing",
			state:  "CURRENT",
			window: gDto.PageWindow{From: 0, Size: 10},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)
			},
			wantTotal: 1,
		},
		{
			name:      "negative from",
			state:     "",
			window:    gDto.PageWindow{From: -1, Size: 10},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "zero size",
			state:     "",
			window:    gDto.PageWindow{From: 0, Size: 0},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unsupported state",
			state:     "SOMETIME",
			window:    gDto.PageWindow{From: 0, Size: 10},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Unknown state: UNSUPPORTED_STATUS",
		},
		{
			name:   "unknown actor",
			state:  "",
			window: gDto.PageWindow{From: 0, Size: 10},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAllForBooker(context.Background(), "booker-1", tt.state, tt.window)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
				assert.Len(t, res.Bookings, tt.wantTotal)
			}
		})
	}
}

func TestBookingService_GetAllForOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockItemRepo := itemMocks.NewMockItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockUserRepo, mockItemRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name      string
		state     string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:  "empty result set",
			state: "PAST",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
			},
		},
		{
			name:      "unsupported state",
			state:     "LATER",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "count error",
			state: "",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAllForOwner(context.Background(), "owner-1", tt.state, gDto.PageWindow{From: 0, Size: 10})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 0, res.TotalData)
				assert.Equal(t, 1, res.TotalPage)
			}
		})
	}
}
