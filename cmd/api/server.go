package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"

	"github.com/gingerprotocol/rewards-backend/api/routes"
	"github.com/gingerprotocol/rewards-backend/internal/config"
	"github.com/gingerprotocol/rewards-backend/internal/handlers"
	"github.com/gingerprotocol/rewards-backend/internal/logging"
	"github.com/gingerprotocol/rewards-backend/internal/lottery"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
	memoryrepo "github.com/gingerprotocol/rewards-backend/internal/repositories/memory"
	mongorepo "github.com/gingerprotocol/rewards-backend/internal/repositories/mongodb"
	redisrepo "github.com/gingerprotocol/rewards-backend/internal/repositories/redis"
	"github.com/gingerprotocol/rewards-backend/internal/services"
	"github.com/gingerprotocol/rewards-backend/pkg/mongodb"
	redisclient "github.com/gingerprotocol/rewards-backend/pkg/redis"
)

// storage bundles the repositories of the selected driver
type storage struct {
	states repositories.PlayerStateRepository
	draws  repositories.DrawHistoryRepository
	close  func(ctx context.Context) error
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		client, err := redisclient.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return &storage{
			states: redisrepo.NewPlayerStateRepository(client),
			draws:  redisrepo.NewDrawHistoryRepository(client, cfg.Lottery.HistoryLimit),
			close:  func(context.Context) error { return client.Close() },
		}, nil
	case config.DriverMongoDB:
		client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		db := client.Database(cfg.MongoDB.Database)
		return &storage{
			states: mongorepo.NewPlayerStateRepository(db, cfg.MongoDB.Collection),
			draws:  mongorepo.NewDrawHistoryRepository(db),
			close:  client.Disconnect,
		}, nil
	default:
		return &storage{
			states: memoryrepo.NewPlayerStateRepository(),
			draws:  memoryrepo.NewDrawHistoryRepository(),
			close:  func(context.Context) error { return nil },
		}, nil
	}
}

func startServer(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(context.Background()); err != nil {
			slog.Error("Error closing storage", "error", err)
		}
	}()

	playerStore, err := services.NewPlayerStore(store.states, cfg.Catalog.CacheSize)
	if err != nil {
		return err
	}
	challengeService := services.NewChallengeService(playerStore)
	lotteryService := services.NewLotteryService(playerStore, store.draws, lottery.DefaultTable(), lottery.NewSource(cfg.Lottery.Seed))

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		ChallengeHandler: handlers.NewChallengeHandler(challengeService),
		LotteryHandler:   handlers.NewLotteryHandler(lotteryService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exiting")
	return nil
}
