package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lendit/config"
	"lendit/infras/otel/mocks"
	bookingMocks "lendit/internal/domains/booking/mocks"
	itemMocks "lendit/internal/domains/item/mocks"
	"lendit/internal/domains/item/model"
	"lendit/internal/domains/item/model/dto"
	"lendit/internal/domains/item/service"
	userMocks "lendit/internal/domains/user/mocks"
	userModel "lendit/internal/domains/user/model"
	cacheMocks "lendit/shared/cache/mocks"
	gDto "lendit/shared/dto"
	"lendit/shared/failure"
)

func boolPtr(b bool) *bool {
	return &b
}

func newService(t *testing.T) (
	service.Item,
	*itemMocks.MockItem,
	*itemMocks.MockComment,
	*userMocks.MockUser,
	*bookingMocks.MockBooking,
	*cacheMocks.MockRedisCache,
) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := itemMocks.NewMockItem(ctrl)
	mockCommentRepo := itemMocks.NewMockComment(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockCommentRepo, mockUserRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCommentRepo, mockUserRepo, mockBookingRepo, mockCache
}

func TestItemService_Create(t *testing.T) {
	svc, mockRepo, _, mockUserRepo, _, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateItemRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateItemRequest{Name: "Drill", Description: "Cordless drill", Available: boolPtr(true)},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown owner",
			req:  dto.CreateItemRequest{Name: "Drill", Description: "Cordless drill", Available: boolPtr(true)},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req:  dto.CreateItemRequest{Name: "Drill", Description: "Cordless drill", Available: boolPtr(false)},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
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

			res, err := svc.Create(context.Background(), "owner-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Drill", res.Name)
				assert.True(t, res.Available)
				assert.Equal(t, "owner-1", res.OwnerID)
			}
		})
	}
}

func TestItemService_Get(t *testing.T) {
	svc, mockRepo, mockCommentRepo, _, _, mockCache := newService(t)

	item := model.Item{
		ID:          "item-1",
		Name:        "Drill",
		Description: "Cordless drill",
		Status:      model.StatusAvailable,
		OwnerID:     "owner-1",
	}

	t.Run("item with comments", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(item, nil)
		mockCommentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Comment{
				{ID: "comment-1", Text: "Works great", AuthorName: "Alice"},
			}, nil)

		res, err := svc.Get(context.Background(), "item-1")

		assert.NoError(t, err)
		assert.Equal(t, "item-1", res.ID)
		assert.Len(t, res.Comments, 1)
		assert.Equal(t, "Alice", res.Comments[0].AuthorName)
	})

	t.Run("unknown item", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Item{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_Update(t *testing.T) {
	svc, mockRepo, _, _, _, _ := newService(t)

	item := model.Item{
		ID:      "item-1",
		Name:    "Drill",
		Status:  model.StatusAvailable,
		OwnerID: "owner-1",
	}

	tests := []struct {
		name      string
		req       dto.UpdateItemRequest
		actorID   string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "owner toggles availability",
			req:     dto.UpdateItemRequest{Available: boolPtr(false)},
			actorID: "owner-1",
			setupMock: func() {
				updated := item
				updated.Status = model.StatusUnavailable

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(item, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(updated, nil)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateItemRequest{},
			actorID:   "owner-1",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:    "unknown item",
			req:     dto.UpdateItemRequest{Name: "Hammer"},
			actorID: "owner-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Item{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:    "non-owner is rejected",
			req:     dto.UpdateItemRequest{Name: "Hammer"},
			actorID: "stranger",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(item, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.req, "item-1", tt.actorID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.False(t, res.Available)
			}
		})
	}
}

func TestItemService_Delete(t *testing.T) {
	svc, mockRepo, _, _, _, _ := newService(t)

	item := model.Item{ID: "item-1", OwnerID: "owner-1"}

	t.Run("owner deletes", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(item, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "item-1", "owner-1"))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(item, nil)

		err := svc.Delete(context.Background(), "item-1", "stranger")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestItemService_Search(t *testing.T) {
	svc, mockRepo, _, _, _, _ := newService(t)

	t.Run("matching items", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Item{
				{ID: "item-1", Name: "Drill", Status: model.StatusAvailable, OwnerID: "owner-1"},
			}, nil)

		res, err := svc.Search(context.Background(), "drill", gDto.PageWindow{From: 0, Size: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("empty text short-circuits", func(t *testing.T) {
		res, err := svc.Search(context.Background(), "", gDto.PageWindow{From: 0, Size: 10})

		assert.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "drill", gDto.PageWindow{From: 0, Size: 0})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestItemService_AddComment(t *testing.T) {
	svc, mockRepo, mockCommentRepo, mockUserRepo, mockBookingRepo, _ := newService(t)

	author := userModel.User{ID: "booker-1", Name: "Alice", Email: "alice@example.com"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantMsg   string
	}{
		{
			name: "comment after a completed booking",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(author, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockCommentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown author",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
			wantMsg:  "user not found",
		},
		{
			name: "unknown item",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(author, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
			wantMsg:  "item not found",
		},
		{
			name: "no completed booking",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(author, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "commenting requires a completed booking of the item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.AddComment(context.Background(), "item-1", "booker-1", dto.CreateCommentRequest{Text: "Works great"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Works great", res.Text)
				assert.Equal(t, "Alice", res.AuthorName)
			}
		})
	}
}
