package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artfolio/internal/domain/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// callRecorder tracks the order of cross-service calls inside one request.
type callRecorder struct {
	calls []string
}

func (r *callRecorder) record(name string) {
	r.calls = append(r.calls, name)
}

type MockPortfolioService struct {
	mock.Mock
	rec *callRecorder
}

func (m *MockPortfolioService) GetAll(ctx context.Context) ([]models.PortfolioSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioSection), args.Error(1)
}

func (m *MockPortfolioService) GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioSection), args.Error(1)
}

func (m *MockPortfolioService) UpsertSection(ctx context.Context, patch models.SectionPatch) (models.PortfolioSection, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(models.PortfolioSection), args.Error(1)
}

func (m *MockPortfolioService) UpsertInventory(ctx context.Context, inventory models.InventoryItem) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}

func (m *MockPortfolioService) UpsertItem(ctx context.Context, item models.SectionItem) (models.SectionItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.SectionItem), args.Error(1)
}

func (m *MockPortfolioService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if m.rec != nil {
		m.rec.record("row_delete")
	}
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPortfolioService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	if m.rec != nil {
		m.rec.record("row_delete")
	}
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMediaService struct {
	mock.Mock
	rec *callRecorder
}

func (m *MockMediaService) DeleteImage(ctx context.Context, publicID string) bool {
	args := m.Called(ctx, publicID)
	return args.Bool(0)
}

func (m *MockMediaService) DeleteImageByURL(ctx context.Context, url string) bool {
	if m.rec != nil {
		m.rec.record("media_delete")
	}
	args := m.Called(ctx, url)
	return args.Bool(0)
}

type MockNewsService struct {
	mock.Mock
	rec *callRecorder
}

func (m *MockNewsService) GetAll(ctx context.Context) ([]models.NewsPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NewsPost), args.Error(1)
}

func (m *MockNewsService) Upsert(ctx context.Context, patch models.NewsPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func (m *MockNewsService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.rec != nil {
		m.rec.record("row_delete")
	}
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHeroService struct {
	mock.Mock
}

func (m *MockHeroService) GetSettings(ctx context.Context) models.HeroSettings {
	args := m.Called(ctx)
	return args.Get(0).(models.HeroSettings)
}

func (m *MockHeroService) UpdateSettings(ctx context.Context, patch models.HeroPatch) (models.HeroSettings, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(models.HeroSettings), args.Error(1)
}

type MockAboutService struct {
	mock.Mock
}

func (m *MockAboutService) Get(ctx context.Context) (*models.AboutInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AboutInfo), args.Error(1)
}

func (m *MockAboutService) Upsert(ctx context.Context, patch models.AboutPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func newTestRouter(rec *callRecorder) (*Routers, *MockPortfolioService, *MockNewsService, *MockMediaService) {
	log := slog.Default()

	portfolio := &MockPortfolioService{rec: rec}
	news := &MockNewsService{rec: rec}
	media := &MockMediaService{rec: rec}

	r := NewRouter(
		log,
		new(MockAboutService),
		new(MockHeroService),
		portfolio,
		news,
		media,
		cache.New(cache.NoExpiration, cache.NoExpiration),
	)

	return r, portfolio, news, media
}

func deleteContext(e *echo.Echo, target, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rr := httptest.NewRecorder()
	c := e.NewContext(req, rr)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rr
}

func TestRouters_DeleteSection(t *testing.T) {
	e := echo.New()

	t.Run("image is deleted before the row", func(t *testing.T) {
		rec := &callRecorder{}
		r, portfolio, _, media := newTestRouter(rec)

		id := uuid.New()
		imgURL := "https://res.cloudinary.com/demo/image/upload/v1/covers/a.jpg"
		media.On("DeleteImageByURL", mock.Anything, imgURL).Return(true).Once()
		portfolio.On("DeleteSection", mock.Anything, id).Return(nil).Once()

		c, rr := deleteContext(e, "/api/v1/portfolio/sections/"+id.String()+"?img_url="+imgURL, id.String())

		require.NoError(t, r.DeleteSection(c))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []string{"media_delete", "row_delete"}, rec.calls)
	})

	t.Run("image failure does not block the row delete", func(t *testing.T) {
		rec := &callRecorder{}
		r, portfolio, _, media := newTestRouter(rec)

		id := uuid.New()
		imgURL := "https://res.cloudinary.com/demo/image/upload/v1/covers/a.jpg"
		media.On("DeleteImageByURL", mock.Anything, imgURL).Return(false).Once()
		portfolio.On("DeleteSection", mock.Anything, id).Return(nil).Once()

		c, rr := deleteContext(e, "/api/v1/portfolio/sections/"+id.String()+"?img_url="+imgURL, id.String())

		require.NoError(t, r.DeleteSection(c))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
		portfolio.AssertExpectations(t)
	})

	t.Run("no img_url skips media entirely", func(t *testing.T) {
		rec := &callRecorder{}
		r, portfolio, _, media := newTestRouter(rec)

		id := uuid.New()
		portfolio.On("DeleteSection", mock.Anything, id).Return(nil).Once()

		c, rr := deleteContext(e, "/api/v1/portfolio/sections/"+id.String(), id.String())

		require.NoError(t, r.DeleteSection(c))
		assert.Equal(t, http.StatusOK, rr.Code)
		media.AssertNotCalled(t, "DeleteImageByURL", mock.Anything, mock.Anything)
	})

	t.Run("row failure surfaces the storage error verbatim", func(t *testing.T) {
		rec := &callRecorder{}
		r, portfolio, _, _ := newTestRouter(rec)

		id := uuid.New()
		portfolio.On("DeleteSection", mock.Anything, id).
			Return(errors.New("section is referenced")).Once()

		c, rr := deleteContext(e, "/api/v1/portfolio/sections/"+id.String(), id.String())

		require.NoError(t, r.DeleteSection(c))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "section is referenced")
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		rec := &callRecorder{}
		r, portfolio, _, _ := newTestRouter(rec)

		c, rr := deleteContext(e, "/api/v1/portfolio/sections/not-a-uuid", "not-a-uuid")

		require.NoError(t, r.DeleteSection(c))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		portfolio.AssertNotCalled(t, "DeleteSection", mock.Anything, mock.Anything)
	})
}

func TestRouters_DeleteItem_Ordering(t *testing.T) {
	e := echo.New()
	rec := &callRecorder{}
	r, portfolio, _, media := newTestRouter(rec)

	id := uuid.New()
	imgURL := "https://res.cloudinary.com/demo/image/upload/v1/items/b.jpg"
	media.On("DeleteImageByURL", mock.Anything, imgURL).Return(true).Once()
	portfolio.On("DeleteItem", mock.Anything, id).Return(nil).Once()

	c, rr := deleteContext(e, "/api/v1/portfolio/items/"+id.String()+"?img_url="+imgURL, id.String())

	require.NoError(t, r.DeleteItem(c))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"media_delete", "row_delete"}, rec.calls)
}

func TestRouters_DeleteNews_Ordering(t *testing.T) {
	e := echo.New()
	rec := &callRecorder{}
	r, _, news, media := newTestRouter(rec)

	id := uuid.New()
	imageURL := "https://res.cloudinary.com/demo/image/upload/v1/news/c.jpg"
	media.On("DeleteImageByURL", mock.Anything, imageURL).Return(true).Once()
	news.On("Delete", mock.Anything, id).Return(nil).Once()

	c, rr := deleteContext(e, "/api/v1/news/"+id.String()+"?image_url="+imageURL, id.String())

	require.NoError(t, r.DeleteNews(c))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"media_delete", "row_delete"}, rec.calls)
}

func TestRouters_ListSections_Cache(t *testing.T) {
	e := echo.New()
	rec := &callRecorder{}
	r, portfolio, _, _ := newTestRouter(rec)

	title := "Watercolors"
	sections := []models.PortfolioSection{{ID: uuid.New(), Title: &title, Items: []models.SectionItem{}}}
	portfolio.On("GetAll", mock.Anything).Return(sections, nil).Once()

	// First hit populates the cache, second is served from it.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/sections", nil)
		rr := httptest.NewRecorder()
		require.NoError(t, r.ListSections(e.NewContext(req, rr)))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Watercolors")
	}

	portfolio.AssertNumberOfCalls(t, "GetAll", 1)
}

func TestRouters_SaveSection_InvalidatesCache(t *testing.T) {
	e := echo.New()
	rec := &callRecorder{}
	r, portfolio, _, _ := newTestRouter(rec)

	title := "Watercolors"
	sections := []models.PortfolioSection{{ID: uuid.New(), Title: &title, Items: []models.SectionItem{}}}
	portfolio.On("GetAll", mock.Anything).Return(sections, nil).Twice()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/sections", nil)
	require.NoError(t, r.ListSections(e.NewContext(req, httptest.NewRecorder())))

	saved := models.PortfolioSection{ID: uuid.New()}
	portfolio.On("UpsertSection", mock.Anything, mock.AnythingOfType("models.SectionPatch")).
		Return(saved, nil).Once()

	body := strings.NewReader(`{"section": {"title": "Ink"}}`)
	saveReq := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/sections", body)
	saveReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	saveRR := httptest.NewRecorder()
	require.NoError(t, r.SaveSection(e.NewContext(saveReq, saveRR)))
	require.Equal(t, http.StatusOK, saveRR.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/sections", nil)
	require.NoError(t, r.ListSections(e.NewContext(req, httptest.NewRecorder())))

	portfolio.AssertNumberOfCalls(t, "GetAll", 2)
}

func TestRouters_SaveSection_AttachesInventoryToSavedID(t *testing.T) {
	e := echo.New()
	rec := &callRecorder{}
	r, portfolio, _, _ := newTestRouter(rec)

	generated := uuid.MustParse("7b0d5ff1-8f6b-4f62-a9a7-6f4be27a6c55")
	portfolio.On("UpsertSection", mock.Anything, mock.AnythingOfType("models.SectionPatch")).
		Return(models.PortfolioSection{ID: generated}, nil).Once()
	portfolio.On("UpsertInventory", mock.Anything, mock.MatchedBy(func(inv models.InventoryItem) bool {
		return inv.SectionID == generated && inv.StockQty == 4
	})).Return(nil).Once()

	body := strings.NewReader(`{"section": {"title": "Prints"}, "inventory": {"stockQty": 4}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/sections", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()

	require.NoError(t, r.SaveSection(e.NewContext(req, rr)))
	assert.Equal(t, http.StatusOK, rr.Code)
	portfolio.AssertExpectations(t)
}
