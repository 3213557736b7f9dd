package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cowork/config"
	"cowork/infras/otel/mocks"
	roomMocks "cowork/internal/domains/room/mocks"
	"cowork/internal/domains/room/model"
	"cowork/internal/domains/room/model/dto"
	"cowork/internal/domains/room/service"
	"cowork/shared/cache"
	cacheMocks "cowork/shared/cache/mocks"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateRoomRequest{Name: "Sala Norte", Capacity: 8},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req:  dto.CreateRoomRequest{Name: "Sala Norte", Capacity: 8},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "Sala Norte", res.Name)
			assert.Equal(t, 8, res.Capacity)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, "rooms.id", p.SortBy)

			return []model.Room{
				{ID: 1, Name: "Sala Norte", Capacity: 8},
				{ID: 2, Name: "Sala Sur", Capacity: 4},
			}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 50})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, int64(1), res.Rooms[0].ID)
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantCode  int
	}{
		{
			name: "cache hit",
			id:   1,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "room:get:1", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "found in store",
			id:   2,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:2", gomock.Any()).Return(cache.Nil)
				mockCache.EXPECT().Save(gomock.Any(), "room:get:2", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: 2, Name: "Sala Sur", Capacity: 4}, nil)
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:99", gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "storage failure",
			id:   3,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:3", gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, failure.Storage("get room", errors.New("eof")))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
