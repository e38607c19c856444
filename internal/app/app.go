package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "artfolio/internal/app/http"
	"artfolio/internal/config"
	"artfolio/internal/repository"
	aboutservice "artfolio/internal/services/about_service"
	heroservice "artfolio/internal/services/hero_service"
	mediaservice "artfolio/internal/services/media_service"
	newsservice "artfolio/internal/services/news_service"
	portfolioservice "artfolio/internal/services/portfolio_service"
	cldstorage "artfolio/internal/storage/cloudinary"
	httprouters "artfolio/internal/transport/http"

	"github.com/patrickmn/go-cache"
)

type App struct {
	HTTPServer *httpapp.Server
	repo       *repository.Repository
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	imageStorage, err := cldstorage.New(cfg.Cloudinary)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contentCache := cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	routers := httprouters.NewRouter(
		log,
		aboutservice.NewAboutService(log, repo.About),
		heroservice.NewHeroService(log, repo.Hero),
		portfolioservice.NewPortfolioService(log, repo.Portfolio),
		newsservice.NewNewsService(log, repo.News),
		mediaservice.NewMediaService(log, imageStorage),
		contentCache,
	)

	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, routers)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		repo:       repo,
	}, nil
}

func (a *App) Stop() error {
	const op = "app.Stop"

	if err := a.HTTPServer.Stop(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.repo.Close()

	return nil
}
