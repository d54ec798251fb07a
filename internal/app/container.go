package app

import (
	"context"
	"time"

	"mentormatch/internal/ai"
	"mentormatch/internal/ai/gemini"
	"mentormatch/internal/config"
	"mentormatch/internal/database"
	"mentormatch/internal/database/migration"
	dbpostgres "mentormatch/internal/database/postgres"
	"mentormatch/internal/infrastructure/cache"
	"mentormatch/internal/ws"

	"go.uber.org/zap"
)

// Container holds the long-lived dependencies shared by the delivery layer.
// Advisor is nil when no Gemini API key is configured; callers fall back to
// their built-in defaults.
type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      database.DB
	Redis   *cache.Redis
	Advisor ai.Advisor
	Hub     *ws.Hub
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: "migrations", Logger: logger}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	var advisor ai.Advisor
	if cfg.Gemini.APIKey != "" {
		generator, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Warn("gemini client unavailable, advisor features degraded", zap.Error(err))
		} else {
			advisor = gemini.NewAdvisor(generator, logger)
		}
	} else {
		logger.Warn("no gemini api key configured, advisor features degraded")
	}

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Redis:   redis,
		Advisor: advisor,
		Hub:     hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
