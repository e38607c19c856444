package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"artfolio/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) GetAll(ctx context.Context) ([]models.NewsPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NewsPost), args.Error(1)
}

func (m *MockNewsRepository) Upsert(ctx context.Context, patch models.NewsPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestNewsService_GetAll(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("returns posts", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		service := NewNewsService(log, mockRepo)

		posts := []models.NewsPost{
			{ID: uuid.New(), Title: "Exhibition opening", Category: "General"},
			{ID: uuid.New(), Title: "New series", Category: "Studio"},
		}
		mockRepo.On("GetAll", ctx).Return(posts, nil).Once()

		got, err := service.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("propagates storage error", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		service := NewNewsService(log, mockRepo)

		mockRepo.On("GetAll", ctx).Return(nil, errors.New("connection refused")).Once()

		_, err := service.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestNewsService_Upsert(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	mockRepo := new(MockNewsRepository)
	service := NewNewsService(log, mockRepo)

	patch := models.NewsPatch{
		Title:    "Open studio weekend",
		Category: models.NewField("Events"),
	}
	mockRepo.On("Upsert", ctx, patch).Return(nil).Once()

	require.NoError(t, service.Upsert(ctx, patch))
	mockRepo.AssertExpectations(t)
}

func TestNewsService_Delete(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("passes through", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		service := NewNewsService(log, mockRepo)

		id := uuid.New()
		mockRepo.On("Delete", ctx, id).Return(nil).Once()

		assert.NoError(t, service.Delete(ctx, id))
	})

	t.Run("error propagates", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		service := NewNewsService(log, mockRepo)

		id := uuid.New()
		mockRepo.On("Delete", ctx, id).Return(errors.New("write failed")).Once()

		assert.Error(t, service.Delete(ctx, id))
	})
}
