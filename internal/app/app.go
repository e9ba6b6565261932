package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/vadimbarashkov/url-shortener-web/internal/adapter/auth"
	"github.com/vadimbarashkov/url-shortener-web/internal/config"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
	"github.com/vadimbarashkov/url-shortener-web/internal/usecase"
	"github.com/vadimbarashkov/url-shortener-web/migrations"
	"github.com/vadimbarashkov/url-shortener-web/pkg/postgres"

	backend "github.com/vadimbarashkov/url-shortener-web/internal/adapter/backend/http"
	delivery "github.com/vadimbarashkov/url-shortener-web/internal/adapter/delivery/http"
	memoryRepo "github.com/vadimbarashkov/url-shortener-web/internal/adapter/repository/memory"
	postgresRepo "github.com/vadimbarashkov/url-shortener-web/internal/adapter/repository/postgres"
	redisRepo "github.com/vadimbarashkov/url-shortener-web/internal/adapter/repository/redis"
)

type linkStore interface {
	Append(ctx context.Context, username string, link entity.Link) error
	List(ctx context.Context, username string) ([]entity.Link, error)
	Replace(ctx context.Context, username string, links []entity.Link) error
}

// NewLogger returns the request logger for the configured environment.
func NewLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger("url-shortener-web", httplog.Options{
		JSON:           cfg.Env == config.EnvProd,
		LogLevel:       cfg.Level(),
		Concise:        cfg.Env == config.EnvDev,
		RequestHeaders: cfg.Env != config.EnvProd,
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})
}

// openStore connects the configured link store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (linkStore, func() error, error) {
	const op = "app.openStore"

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := postgres.New(
			ctx,
			cfg.Postgres.DSN(),
			postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
			postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
			postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
			postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
		}

		if err := postgres.RunMigrations(migrations.FS, cfg.Postgres.DSN()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("%s: failed to run migrations: %w", op, err)
		}

		return postgresRepo.NewLinkRepository(db), db.Close, nil
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("%s: failed to connect to redis: %w", op, err)
		}

		return redisRepo.NewLinkRepository(client), client.Close, nil
	default:
		return memoryRepo.NewLinkRepository(), func() error { return nil }, nil
	}
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer closeStore()

	client, err := backend.NewClient(
		cfg.Backend.URL,
		backend.WithAPIToken(cfg.Backend.APIToken),
		backend.WithTimeout(cfg.Backend.Timeout),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to create backend client: %w", op, err)
	}

	forms := usecase.NewFormUseCase(
		usecase.NewRequestBuilder(validator.New()),
		client,
		store,
		auth.ContextUsers{},
		usecase.WithPreviewBaseURL(cfg.BaseURL),
		usecase.WithLogger(logger.Logger),
	)
	links := usecase.NewLinkUseCase(store, client)
	stats := usecase.NewDashboard(store, loc)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var identity interface {
		AuthCodeURL(state string) string
		Identify(ctx context.Context, code string) (string, error)
	}
	if cfg.Auth.GoogleClientID != "" {
		identity = auth.NewGoogleProvider(
			cfg.Auth.GoogleClientID,
			cfg.Auth.GoogleClientSecret,
			cfg.Auth.GoogleRedirectURL,
		)
	} else {
		logger.Warn("google client id is not set, sign-in is disabled")
	}

	r := delivery.NewRouter(
		logger,
		delivery.RouterConfig{
			AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
			SecureCookies:  cfg.Auth.SecureCookies,
		},
		forms,
		links,
		stats,
		tokens,
		identity,
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        r,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "addr", server.Addr, "env", cfg.Env, "storage", cfg.Storage)

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
