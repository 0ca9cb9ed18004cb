package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordermanagement/cmd"
	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(ctx, configs)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager, err := app.CreateJobManager(prometheus.DefaultRegisterer, logger)
	if err != nil {
		return fmt.Errorf("failed to create jobs: %w", err)
	}
	if err := jobManager.StartAll(ctx); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := newWebServer(app, logger, level)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server started", "port", configs.HTTPPort, "storage", configs.StorageDriver)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openDatabase returns nil for the memory driver.
func openDatabase(ctx context.Context, configs cmd.Config) (*gorm.DB, error) {
	if configs.StorageDriver == cmd.StorageDriverMemory {
		slog.Warn("Using in-memory storage, data is lost on restart")
		return nil, nil
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.Migrate(ctx, gormDB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return gormDB, nil
}

func newWebServer(app cmd.CompositionRoot, logger *slog.Logger, level slog.Level) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(level))
	e.Use(middleware.Recover())

	server := httpin.NewServer(app.CreateHTTPHandlers(), logger)
	e.HTTPErrorHandler = server.HTTPErrorHandler
	server.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
