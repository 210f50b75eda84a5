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

	"warehouse/cmd"
	httpadapter "warehouse/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		log.Fatalf("warehouse stopped: %v", err)
	}
}

func run(logger *slog.Logger) error {
	configs, err := getConfigs()
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to release resources", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return cmd.LoadConfig(os.Getenv)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
