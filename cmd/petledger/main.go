package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"petledger/internal/backend"
	"petledger/internal/config"
	"petledger/internal/events"
	apphttp "petledger/internal/http"
	"petledger/internal/ledger"
	"petledger/internal/log"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storeBackend, err := backend.Create(cfg, logger.WithComponent(log.ComponentBackend).Logger)
	if err != nil {
		logger.Error("Failed to initialize backend", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		return err
	}
	if storeBackend.Cleanup != nil {
		defer func() {
			if err := storeBackend.Cleanup(); err != nil {
				logger.Warn("Backend cleanup failed", log.FieldError, err)
			}
		}()
	}

	var publisher ledger.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// The ledger works without the broker; start degraded.
			logger.Warn("AMQP unavailable, continuing without event publishing", log.FieldError, err)
		} else {
			defer client.Close()
			publisher = client
			logger.Info("AMQP event publishing enabled",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	store, err := ledger.Open(ctx, storeBackend.Blobs, ledger.Options{Events: publisher})
	if err != nil {
		logger.Error("Failed to open ledger", log.FieldError, err)
		return err
	}

	srv := apphttp.NewServer(":"+cfg.Port, store, cfg)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting petledger server",
			"port", cfg.Port, log.FieldBackend, cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err)
		return err
	}

	logger.Info("Server stopped gracefully")
	return nil
}
