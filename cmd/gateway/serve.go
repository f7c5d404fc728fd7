package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/paygate/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest/router"
	"github.com/DanielPopoola/paygate/internal/worker"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var withSweeper bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), withSweeper)
		},
	}

	cmd.Flags().BoolVar(&withSweeper, "sweeper", true, "run the pending sweeper in the background")
	return cmd
}

func runServe(ctx context.Context, withSweeper bool) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	logger := a.logger
	logger.Info("starting gateway service",
		"port", a.cfg.Server.Port,
		"env", a.cfg.Primary.Env,
		"log_level", a.cfg.Logger.Level,
	)

	h := handlers.NewHandlers(a.engine, a.engine, a.query, a.db, logger)
	handler, err := router.New(h, a.cfg.Server.RequestTimeout, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + a.cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if withSweeper {
		sweeper := worker.NewPendingSweeper(a.repo, a.engine, a.cfg.Worker, logger)
		go sweeper.Start(workerCtx)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
	}

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
	return nil
}
