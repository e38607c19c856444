package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAboutRepository struct {
	mock.Mock
}

func (m *MockAboutRepository) Get(ctx context.Context) (*models.AboutInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AboutInfo), args.Error(1)
}

func (m *MockAboutRepository) Upsert(ctx context.Context, patch models.AboutPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func TestAboutService_Get(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("returns stored info", func(t *testing.T) {
		mockRepo := new(MockAboutRepository)
		service := NewAboutService(log, mockRepo)

		desc := "painter and printmaker"
		mockRepo.On("Get", ctx).
			Return(&models.AboutInfo{ID: models.AboutID, Description: &desc}, nil).Once()

		info, err := service.Get(ctx)

		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, &desc, info.Description)
	})

	t.Run("missing row yields nil without error", func(t *testing.T) {
		mockRepo := new(MockAboutRepository)
		service := NewAboutService(log, mockRepo)

		mockRepo.On("Get", ctx).Return(nil, storage.ErrAboutNotFound).Once()

		info, err := service.Get(ctx)

		assert.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("storage failure degrades to nil", func(t *testing.T) {
		mockRepo := new(MockAboutRepository)
		service := NewAboutService(log, mockRepo)

		mockRepo.On("Get", ctx).Return(nil, errors.New("connection refused")).Once()

		info, err := service.Get(ctx)

		assert.NoError(t, err)
		assert.Nil(t, info)
	})
}

func TestAboutService_Upsert(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("coerces unset id to the singleton", func(t *testing.T) {
		mockRepo := new(MockAboutRepository)
		service := NewAboutService(log, mockRepo)

		mockRepo.On("Upsert", ctx, mock.MatchedBy(func(p models.AboutPatch) bool {
			return p.ID == models.AboutID
		})).Return(nil).Once()

		err := service.Upsert(ctx, models.AboutPatch{
			Description: models.NewField("sculptor"),
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("keeps an explicit id", func(t *testing.T) {
		mockRepo := new(MockAboutRepository)
		service := NewAboutService(log, mockRepo)

		mockRepo.On("Upsert", ctx, mock.MatchedBy(func(p models.AboutPatch) bool {
			return p.ID == 1
		})).Return(nil).Once()

		err := service.Upsert(ctx, models.AboutPatch{ID: 1})

		require.NoError(t, err)
	})

	t.Run("propagates storage error", func(t *testing.T) {
		mockRepo := new(MockAboutRepository)
		service := NewAboutService(log, mockRepo)

		mockRepo.On("Upsert", ctx, mock.AnythingOfType("models.AboutPatch")).
			Return(errors.New("write failed")).Once()

		err := service.Upsert(ctx, models.AboutPatch{})

		assert.Error(t, err)
	})
}
