package http

import (
	"context"
	"log/slog"
	"net/http"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/transport/http/dto"
	"artfolio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"

	_ "artfolio/docs"
)

type AboutService interface {
	Get(ctx context.Context) (*models.AboutInfo, error)
	Upsert(ctx context.Context, patch models.AboutPatch) error
}

type HeroService interface {
	GetSettings(ctx context.Context) models.HeroSettings
	UpdateSettings(ctx context.Context, patch models.HeroPatch) (models.HeroSettings, error)
}

type PortfolioService interface {
	GetAll(ctx context.Context) ([]models.PortfolioSection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioSection, error)
	UpsertSection(ctx context.Context, patch models.SectionPatch) (models.PortfolioSection, error)
	UpsertInventory(ctx context.Context, inventory models.InventoryItem) error
	UpsertItem(ctx context.Context, item models.SectionItem) (models.SectionItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
}

type NewsService interface {
	GetAll(ctx context.Context) ([]models.NewsPost, error)
	Upsert(ctx context.Context, patch models.NewsPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MediaService interface {
	DeleteImage(ctx context.Context, publicID string) bool
	DeleteImageByURL(ctx context.Context, url string) bool
}

// Cache keys for the read-through content cache. Every successful mutation
// flushes the whole cache, the Go counterpart of the original frontend's
// page revalidation.
const (
	cacheKeyAbout     = "about"
	cacheKeyHero      = "hero"
	cacheKeyPortfolio = "portfolio"
	cacheKeyNews      = "news"
)

type Routers struct {
	log              *slog.Logger
	AboutService     AboutService
	HeroService      HeroService
	PortfolioService PortfolioService
	NewsService      NewsService
	MediaService     MediaService
	cache            *cache.Cache
}

func NewRouter(
	log *slog.Logger,
	aboutService AboutService,
	heroService HeroService,
	portfolioService PortfolioService,
	newsService NewsService,
	mediaService MediaService,
	contentCache *cache.Cache,
) *Routers {
	return &Routers{
		log:              log,
		AboutService:     aboutService,
		HeroService:      heroService,
		PortfolioService: portfolioService,
		NewsService:      newsService,
		MediaService:     mediaService,
		cache:            contentCache,
	}
}

func (r *Routers) invalidate() {
	if r.cache != nil {
		r.cache.Flush()
	}
}

func (r *Routers) cached(key string) (interface{}, bool) {
	if r.cache == nil {
		return nil, false
	}
	return r.cache.Get(key)
}

func (r *Routers) store(key string, v interface{}) {
	if r.cache != nil {
		r.cache.SetDefault(key, v)
	}
}

// GetAbout godoc
// @Summary Get the about blurb
// @Description Returns the about singleton, or null when it has not been created yet
// @Tags about
// @Produce json
// @Success 200 {object} models.AboutInfo
// @Router /api/v1/about [get]
func (r *Routers) GetAbout(c echo.Context) error {
	if v, ok := r.cached(cacheKeyAbout); ok {
		return c.JSON(http.StatusOK, v)
	}

	info, _ := r.AboutService.Get(c.Request().Context())
	r.store(cacheKeyAbout, info)

	return c.JSON(http.StatusOK, info)
}

// SaveAbout godoc
// @Summary Save the about blurb
// @Tags about
// @Accept json
// @Produce json
// @Param request body models.AboutPatch true "Partial about info"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/about [post]
func (r *Routers) SaveAbout(c echo.Context) error {
	const op = "http.routers.SaveAbout"
	log := r.log.With(slog.String("op", op))

	var patch models.AboutPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.AboutService.Upsert(c.Request().Context(), patch); err != nil {
		log.Error("failed to save about info", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	r.invalidate()
	return c.JSON(http.StatusOK, response.OK())
}

// GetHero godoc
// @Summary Get hero banner settings
// @Description Never fails: storage problems degrade to the default banner
// @Tags hero
// @Produce json
// @Success 200 {object} models.HeroSettings
// @Router /api/v1/hero [get]
func (r *Routers) GetHero(c echo.Context) error {
	if v, ok := r.cached(cacheKeyHero); ok {
		return c.JSON(http.StatusOK, v)
	}

	settings := r.HeroService.GetSettings(c.Request().Context())
	r.store(cacheKeyHero, settings)

	return c.JSON(http.StatusOK, settings)
}

// UpdateHero godoc
// @Summary Update hero banner settings
// @Tags hero
// @Accept json
// @Produce json
// @Param request body models.HeroPatch true "Partial hero settings"
// @Success 200 {object} models.HeroSettings
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/hero [put]
func (r *Routers) UpdateHero(c echo.Context) error {
	const op = "http.routers.UpdateHero"
	log := r.log.With(slog.String("op", op))

	var patch models.HeroPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	settings, err := r.HeroService.UpdateSettings(c.Request().Context(), patch)
	if err != nil {
		log.Error("failed to update hero settings", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	r.invalidate()
	return c.JSON(http.StatusOK, settings)
}

// ListSections godoc
// @Summary List portfolio sections
// @Description Sections ordered by rank ascending, items ordered by rank within their section
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.PortfolioSection
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/portfolio/sections [get]
func (r *Routers) ListSections(c echo.Context) error {
	const op = "http.routers.ListSections"
	log := r.log.With(slog.String("op", op))

	if v, ok := r.cached(cacheKeyPortfolio); ok {
		return c.JSON(http.StatusOK, v)
	}

	sections, err := r.PortfolioService.GetAll(c.Request().Context())
	if err != nil {
		log.Error("failed to list sections", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Status: "error",
			Error:  "internal_error",
		})
	}

	r.store(cacheKeyPortfolio, sections)
	return c.JSON(http.StatusOK, sections)
}

// SaveSection godoc
// @Summary Save a portfolio section
// @Description Upserts the section; when aggregate inventory is supplied it is attached to the saved section
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body dto.SaveSectionRequest true "Section patch with optional inventory"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/portfolio/sections [post]
func (r *Routers) SaveSection(c echo.Context) error {
	const op = "http.routers.SaveSection"
	log := r.log.With(slog.String("op", op))

	var req dto.SaveSectionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	ctx := c.Request().Context()

	saved, err := r.PortfolioService.UpsertSection(ctx, req.Section)
	if err != nil {
		log.Error("failed to save section", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	if req.Inventory != nil && saved.ID != uuid.Nil {
		inventory := *req.Inventory
		inventory.SectionID = saved.ID
		if err := r.PortfolioService.UpsertInventory(ctx, inventory); err != nil {
			log.Error("failed to save inventory", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.Failed(err))
		}
	}

	r.invalidate()
	return c.JSON(http.StatusOK, response.OK())
}

// DeleteSection godoc
// @Summary Delete a portfolio section
// @Description Deletes the cover image first when img_url is supplied, then the row; items and inventory cascade
// @Tags portfolio
// @Produce json
// @Param id path string true "Section UUID" format(uuid)
// @Param img_url query string false "Cover image URL to clean up"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/portfolio/sections/{id} [delete]
func (r *Routers) DeleteSection(c echo.Context) error {
	const op = "http.routers.DeleteSection"
	log := r.log.With(slog.String("op", op))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("invalid section id format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	ctx := c.Request().Context()

	// Remote asset first, row second: a crash in between leaves a dangling
	// reference in the database, never an unreferenced remote asset.
	if imgURL := c.QueryParam("img_url"); imgURL != "" {
		r.MediaService.DeleteImageByURL(ctx, imgURL)
	}

	if err := r.PortfolioService.DeleteSection(ctx, id); err != nil {
		log.Error("failed to delete section", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	r.invalidate()
	return c.JSON(http.StatusOK, response.OK())
}

// SaveItem godoc
// @Summary Save a section item
// @Description Upserts the item and returns the persisted row, including generated id and normalized defaults
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body models.SectionItem true "Item"
// @Success 200 {object} models.SectionItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/portfolio/items [post]
func (r *Routers) SaveItem(c echo.Context) error {
	const op = "http.routers.SaveItem"
	log := r.log.With(slog.String("op", op))

	var item models.SectionItem
	if err := c.Bind(&item); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	saved, err := r.PortfolioService.UpsertItem(c.Request().Context(), item)
	if err != nil {
		log.Error("failed to save item", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	r.invalidate()
	return c.JSON(http.StatusOK, saved)
}

// DeleteItem godoc
// @Summary Delete a section item
// @Description Deletes the item image first when img_url is supplied, then the row
// @Tags portfolio
// @Produce json
// @Param id path string true "Item UUID" format(uuid)
// @Param img_url query string false "Item image URL to clean up"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/portfolio/items/{id} [delete]
func (r *Routers) DeleteItem(c echo.Context) error {
	const op = "http.routers.DeleteItem"
	log := r.log.With(slog.String("op", op))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("invalid item id format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	ctx := c.Request().Context()

	if imgURL := c.QueryParam("img_url"); imgURL != "" {
		r.MediaService.DeleteImageByURL(ctx, imgURL)
	}

	if err := r.PortfolioService.DeleteItem(ctx, id); err != nil {
		log.Error("failed to delete item", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	r.invalidate()
	return c.JSON(http.StatusOK, response.OK())
}

// ListNews godoc
// @Summary List news posts
// @Description Posts ordered newest first
// @Tags news
// @Produce json
// @Success 200 {array} models.NewsPost
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/news [get]
func (r *Routers) ListNews(c echo.Context) error {
	const op = "http.routers.ListNews"
	log := r.log.With(slog.String("op", op))

	if v, ok := r.cached(cacheKeyNews); ok {
		return c.JSON(http.StatusOK, v)
	}

	posts, err := r.NewsService.GetAll(c.Request().Context())
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Status: "error",
			Error:  "internal_error",
		})
	}

	r.store(cacheKeyNews, posts)
	return c.JSON(http.StatusOK, posts)
}

// SaveNews godoc
// @Summary Save a news post
// @Tags news
// @Accept json
// @Produce json
// @Param request body models.NewsPatch true "Partial news post"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/news [post]
func (r *Routers) SaveNews(c echo.Context) error {
	const op = "http.routers.SaveNews"
	log := r.log.With(slog.String("op", op))

	var patch models.NewsPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.NewsService.Upsert(c.Request().Context(), patch); err != nil {
		log.Error("failed to save post", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	r.invalidate()
	return c.JSON(http.StatusOK, response.OK())
}

// DeleteNews godoc
// @Summary Delete a news post
// @Description Deletes the post image first when image_url is supplied, then the row
// @Tags news
// @Produce json
// @Param id path string true "Post UUID" format(uuid)
// @Param image_url query string false "Post image URL to clean up"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.Result
// @Router /api/v1/news/{id} [delete]
func (r *Routers) DeleteNews(c echo.Context) error {
	const op = "http.routers.DeleteNews"
	log := r.log.With(slog.String("op", op))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("invalid post id format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	ctx := c.Request().Context()

	if imageURL := c.QueryParam("image_url"); imageURL != "" {
		r.MediaService.DeleteImageByURL(ctx, imageURL)
	}

	if err := r.NewsService.Delete(ctx, id); err != nil {
		log.Error("failed to delete post", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Failed(err))
	}

	r.invalidate()
	return c.JSON(http.StatusOK, response.OK())
}

// DeleteImage godoc
// @Summary Delete a remote image by public ID
// @Description Direct asset cleanup endpoint used by the upload widget
// @Tags media
// @Accept json
// @Produce json
// @Param request body dto.DeleteImageRequest true "Public ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/images/delete [post]
func (r *Routers) DeleteImage(c echo.Context) error {
	const op = "http.routers.DeleteImage"
	log := r.log.With(slog.String("op", op))

	var req dto.DeleteImageRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("missing public_id", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrMissingPublicID)
	}

	if ok := r.MediaService.DeleteImage(c.Request().Context(), req.PublicID); !ok {
		return c.JSON(http.StatusInternalServerError, response.ErrDeletionFailed)
	}

	return c.JSON(http.StatusOK, map[string]string{"result": "ok"})
}
