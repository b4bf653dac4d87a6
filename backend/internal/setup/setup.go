package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/itchan-dev/forum-api/backend/internal/handler"
	"github.com/itchan-dev/forum-api/backend/internal/service"
	"github.com/itchan-dev/forum-api/backend/internal/storage/memory"
	"github.com/itchan-dev/forum-api/backend/internal/storage/pg"
	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/jwt"
	"github.com/itchan-dev/forum-api/shared/logger"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	rl "github.com/itchan-dev/forum-api/shared/middleware/ratelimiter"
)

// limiterExpiration drops idle buckets
const limiterExpiration = time.Hour

// Storage is everything the services and probes need from a backing store.
type Storage interface {
	service.ThreadStorage
	service.CommentStorage
	service.UserStorage
	handler.HealthChecker
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *mw.Auth
	// nil when disabled in config
	CreateLimiter *rl.UserRateLimiter
	AuthLimiter   *rl.UserRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return build(cfg, storage), nil
}

// WithStorage wires the application around an already opened store.
func WithStorage(cfg *config.Config, storage Storage) *Dependencies {
	return build(cfg, storage)
}

func build(cfg *config.Config, storage Storage) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	thread := service.NewThread(storage, storage, storage)
	comment := service.NewComment(storage, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(thread, comment, auth, storage),
		Jwt:            jwtService,
		AuthMiddleware: mw.NewAuth(jwtService),
		CreateLimiter:  newLimiter(cfg.Public.RateLimit.CreatePerUser, cfg.Public.RateLimit.Burst),
		AuthLimiter:    newLimiter(cfg.Public.RateLimit.AuthPerIP, cfg.Public.RateLimit.Burst),
	}
}

func newStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Public.Storage {
	case config.StorageMemory:
		logger.Log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	case config.StoragePg:
		storage, err := pg.New(ctx, cfg.Private.Pg)
		if err != nil {
			return nil, err
		}
		if cfg.Public.MigrateOnStart {
			logger.Log.Info("applying migrations")
			if err := storage.Migrate(); err != nil {
				storage.Cleanup()
				return nil, err
			}
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Public.Storage)
	}
}

func newLimiter(rate, burst float64) *rl.UserRateLimiter {
	if rate <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rl.New(rate, burst, limiterExpiration)
}

// Cleanup stops the limiters and closes the store.
func (d *Dependencies) Cleanup() error {
	for _, limiter := range []*rl.UserRateLimiter{d.CreateLimiter, d.AuthLimiter} {
		if limiter != nil {
			limiter.Stop()
		}
	}
	return d.Storage.Cleanup()
}
