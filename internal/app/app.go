package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/templui/mediavault/internal/config"
	"github.com/templui/mediavault/internal/db"
	"github.com/templui/mediavault/internal/repository"
	"github.com/templui/mediavault/internal/repository/memory"
	"github.com/templui/mediavault/internal/seed"
	"github.com/templui/mediavault/internal/service"
	"github.com/templui/mediavault/internal/service/payment"
	"github.com/templui/mediavault/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	Store           *repository.Store
	AuthService     *service.AuthService
	UserService     *service.UserService
	EmailService    *service.EmailService
	ContentService  *service.ContentService
	BrowseService   *service.BrowseService
	StatsService    *service.StatsService
	CategoryService *service.CategoryService
	PlanService     *service.PlanService
	FavoriteService *service.FavoriteService
	CheckoutService *service.CheckoutService
	MediaService    *service.MediaService
	PageService     *service.PageService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	var database *sqlx.DB
	var store *repository.Store

	if cfg.UsesSQL() {
		var err error
		database, err = db.Init(ctx, cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		store = repository.NewStore(database)
		if cfg.SeedOnStart {
			err = seedIfEmpty(ctx, store)
			if err != nil {
				_ = database.Close()
				return nil, err
			}
		}
	} else {
		store = memory.New()
		if cfg.SeedOnStart {
			err := seed.Load(ctx, store)
			if err != nil {
				return nil, fmt.Errorf("failed to seed memory store: %w", err)
			}
		}
		slog.Info("using in-memory storage", "seeded", cfg.SeedOnStart)
	}

	var mediaStorage storage.Storage
	if cfg.S3Configured() {
		s3Storage, err := storage.New(ctx, cfg)
		if err != nil {
			if database != nil {
				_ = database.Close()
			}
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		mediaStorage = s3Storage
	} else {
		slog.Info("S3 not configured, media uploads disabled")
	}

	app, err := NewWithStore(cfg, store, mediaStorage)
	if err != nil {
		if database != nil {
			_ = database.Close()
		}
		return nil, err
	}
	app.DB = database

	return app, nil
}

// NewWithStore wires services over an existing store. mediaStorage may be nil.
func NewWithStore(cfg *config.Config, store *repository.Store, mediaStorage storage.Storage) (*App, error) {
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)

	// Initialize payment provider based on config
	paymentProvider, err := payment.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %w", err)
	}

	authService := service.NewAuthService(
		store.Users,
		emailService,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)

	pages := os.DirFS(filepath.Join(cfg.ContentPath, "pages"))

	return &App{
		Cfg:             cfg,
		Store:           store,
		AuthService:     authService,
		UserService:     service.NewUserService(store.Users, emailService),
		EmailService:    emailService,
		ContentService:  service.NewContentService(store.Content),
		BrowseService:   service.NewBrowseService(store.Content, cfg.BrowseIncludeUnpublished),
		StatsService:    service.NewStatsService(store.Content, store.Users),
		CategoryService: service.NewCategoryService(store.Categories),
		PlanService:     service.NewPlanService(store.Plans),
		FavoriteService: service.NewFavoriteService(store.Favorites, store.Content),
		CheckoutService: service.NewCheckoutService(store.Plans, paymentProvider, cfg.AppURL),
		MediaService:    service.NewMediaService(mediaStorage),
		PageService:     service.NewPageService(pages, cfg.IsDevelopment()),
	}, nil
}

// seedIfEmpty loads the demo dataset into a database that has no users yet.
func seedIfEmpty(ctx context.Context, store *repository.Store) error {
	users, err := store.Users.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	err = seed.Load(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	slog.Info("seeded database with demo data")
	return nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return db.Close(a.DB)
	}
	return nil
}
