package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"viagem/config"
	"viagem/infras/otel/mocks"
	accommodationMocks "viagem/internal/domains/accommodation/mocks"
	availabilityMocks "viagem/internal/domains/availability/mocks"
	"viagem/internal/domains/availability/model"
	"viagem/internal/domains/availability/model/dto"
	"viagem/internal/domains/availability/service"
	cacheMocks "viagem/shared/cache/mocks"
	"viagem/shared/constant"
)

func TestAvailabilityService_SetRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockAccommodationRepo := accommodationMocks.NewMockAccommodation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAccommodationRepo, cfg, mockCache, mocks.NewOtel())

	accommodationID := "7b8a3c1e-17a4-4b5e-9f3d-2f8f33a6a001"

	tests := []struct {
		name      string
		req       dto.SetAvailabilityRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful range write",
			req: dto.SetAvailabilityRequest{
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				Status:    model.StatusUnavailable,
			},
			setupMock: func() {
				mockAccommodationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					UpsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, models []model.Availability) error {
						assert.Len(t, models, 3)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "accommodation not found",
			req: dto.SetAvailabilityRequest{
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				Status:    model.StatusUnavailable,
			},
			setupMock: func() {
				mockAccommodationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid range",
			req: dto.SetAvailabilityRequest{
				StartDate: "2026-09-12",
				EndDate:   "2026-09-10",
				Status:    model.StatusUnavailable,
			},
			setupMock: func() {
				mockAccommodationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "upsert error",
			req: dto.SetAvailabilityRequest{
				StartDate: "2026-09-10",
				EndDate:   "2026-09-10",
				Status:    model.StatusAvailable,
			},
			setupMock: func() {
				mockAccommodationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					UpsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.SetRange(ctx, accommodationID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAvailabilityService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockAccommodationRepo := accommodationMocks.NewMockAccommodation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockAccommodationRepo, cfg, mockCache, mocks.NewOtel())

	accommodationID := "7b8a3c1e-17a4-4b5e-9f3d-2f8f33a6a001"

	seed, err := (&dto.SetAvailabilityRequest{
		StartDate: "2026-09-10",
		EndDate:   "2026-09-11",
		Status:    model.StatusUnavailable,
	}).ToModels(accommodationID, "test-user-id")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, rows from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(seed, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), accommodationID, "2026-09-01", "2026-09-30")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantTotal > 0 {
					assert.Equal(t, tt.wantTotal, result.TotalData)
				}
			}
		})
	}
}
