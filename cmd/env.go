package cmd

import (
	"context"
	"fmt"
	"log"

	"cinereview/internal/data/repository"
	"cinereview/pkg/database"
	"cinereview/pkg/utils"

	"go.uber.org/zap"
)

// env is what every command needs: config, logger and an open store.
type env struct {
	config  *utils.Config
	logger  *zap.Logger
	repo    *repository.Repository
	closers []func()
}

func (rt *env) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	_ = rt.logger.Sync()
}

func bootstrap(ctx context.Context) (*env, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	warnInsecureDefaults(config, logger)

	rt := &env{config: config, logger: logger}
	if err := rt.openStore(ctx); err != nil {
		rt.Close()
		return nil, err
	}
	return rt, nil
}

func warnInsecureDefaults(config *utils.Config, logger *zap.Logger) {
	if config.UsesDefaultSessionSecret() {
		logger.Warn("SESSION_SECRET is not set, flash cookies are signed with the development default")
	}
}

func (rt *env) openStore(ctx context.Context) error {
	switch rt.config.Store.Driver {
	case utils.StoreDriverPostgres:
		db, err := database.InitDB(ctx, rt.config.Database)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		rt.closers = append(rt.closers, db.Close)
		rt.repo = repository.NewRepository(db, rt.logger)
		rt.logger.Info("Database connected successfully", zap.String("driver", rt.config.Store.Driver))

	case utils.StoreDriverMongo:
		db, err := database.InitMongo(ctx, rt.config.Store)
		if err != nil {
			return err
		}
		rt.closers = append(rt.closers, func() {
			_ = db.Client().Disconnect(context.Background())
		})
		rt.repo = repository.NewMongoRepository(db, rt.logger)
		rt.logger.Info("Database connected successfully",
			zap.String("driver", rt.config.Store.Driver),
			zap.String("database", rt.config.Store.MongoDB))

	default:
		return fmt.Errorf("unknown store driver %q", rt.config.Store.Driver)
	}

	client, err := database.InitRedis(ctx, rt.config.Redis)
	if err != nil {
		// The feed still works straight from the store.
		rt.logger.Warn("Redis unavailable, feed cache disabled", zap.Error(err))
		return nil
	}
	if client != nil {
		rt.closers = append(rt.closers, func() { _ = client.Close() })
		rt.repo.Review = repository.WithRecentCache(rt.repo.Review, client, rt.config.Redis.FeedCacheTTL, rt.logger)
		rt.logger.Info("Feed cache enabled", zap.Duration("ttl", rt.config.Redis.FeedCacheTTL))
	}
	return nil
}
