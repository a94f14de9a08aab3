package app

import (
	"context"
	"time"

	"career-navigator/internal/config"
	"career-navigator/internal/database"
	dbpostgres "career-navigator/internal/database/postgres"
	"career-navigator/internal/infrastructure/cache"
	"career-navigator/internal/infrastructure/llm"
	pgstore "career-navigator/internal/infrastructure/persistence/postgres"
	"career-navigator/internal/usecase"

	"go.uber.org/zap"
)

// Container wires the engine's collaborators. A missing database or Redis
// does not abort startup: the store degrades to safe-fail absences and the
// snapshot cache bypasses itself, mirroring how requests fail per-call
// rather than the process.
type Container struct {
	Config  config.Config
	Log     *zap.Logger
	DB      database.DB
	Store   *pgstore.ProfileStore
	Cache   *cache.Redis
	LLM     *llm.Gemini
	Journey usecase.JourneyUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	log, err := newLogger(cfg.App.Environment)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var db database.DB
	if cfg.Database.DBHost != "" {
		db, err = dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Warn("database unavailable, profile store degraded", zap.Error(err))
			db = nil
		}
	} else {
		log.Warn("DB_HOST not set, profile store degraded")
	}

	store := pgstore.NewProfileStore(db, log)
	if store.Available() {
		if err := store.EnsureSchema(ctx); err != nil {
			log.Warn("schema ensure failed", zap.Error(err))
		}
	}

	snapshots := cache.NewRedis(cfg.Redis, log)
	gemini := llm.NewGemini(ctx, cfg.LLM, log)

	journey := usecase.NewJourneyUsecase(store, gemini, snapshots, log, cfg.Journey.QuestionCacheTTL)

	return &Container{
		Config:  cfg,
		Log:     log,
		DB:      db,
		Store:   store,
		Cache:   snapshots,
		LLM:     gemini,
		Journey: journey,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.Log != nil {
		_ = c.Log.Sync()
	}
	return nil
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" || environment == "dev" || environment == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
