// Package worker runs background jobs against the payment engine.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/application/services"
	"github.com/DanielPopoola/paygate/internal/config"
	"golang.org/x/time/rate"
)

type Verifier interface {
	VerifyTransaction(ctx context.Context, transactionRef string) (*services.ReconciliationOutcome, error)
}

// SweepStats summarizes one sweep.
type SweepStats struct {
	Checked  int
	Resolved int
	Failed   int
}

// PendingSweeper asks gateways about transactions that stayed pending too long, which covers
// lost webhooks and ambiguous initiation failures.
type PendingSweeper struct {
	repo       application.TransactionRepository
	verifier   Verifier
	limiter    *rate.Limiter
	interval   time.Duration
	batchSize  int
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewPendingSweeper(
	repo application.TransactionRepository,
	verifier Verifier,
	cfg config.WorkerConfig,
	logger *slog.Logger,
) *PendingSweeper {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	return &PendingSweeper{
		repo:       repo,
		verifier:   verifier,
		limiter:    rate.NewLimiter(limit, 1),
		interval:   cfg.Interval,
		batchSize:  cfg.BatchSize,
		staleAfter: cfg.StaleAfter,
		logger:     logger,
	}
}

func (s *PendingSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("starting pending sweeper",
		"interval", s.interval,
		"batch_size", s.batchSize,
		"stale_after", s.staleAfter,
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping pending sweeper")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce verifies one batch of stale pending transactions, oldest first.
func (s *PendingSweeper) RunOnce(ctx context.Context) SweepStats {
	var stats SweepStats

	stale, err := s.repo.FindStalePending(ctx, s.staleAfter, s.batchSize)
	if err != nil {
		s.logger.Error("failed to fetch stale pending transactions", "error", err)
		return stats
	}

	if len(stale) == 0 {
		return stats
	}

	s.logger.Info("verifying stale pending transactions", "count", len(stale))

	for _, txn := range stale {
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Info("sweep interrupted", "checked", stats.Checked, "error", err)
			return stats
		}

		stats.Checked++
		outcome, err := s.verifier.VerifyTransaction(ctx, txn.TransactionRef)
		if err != nil {
			stats.Failed++
			s.logger.Warn("verification failed",
				"transaction_ref", txn.TransactionRef,
				"gateway", txn.GatewayName,
				"category", application.CategorizeError(err),
				"error", err,
			)
			continue
		}

		if outcome.Status.IsTerminal() {
			stats.Resolved++
		}
	}

	s.logger.Info("sweep finished",
		"checked", stats.Checked,
		"resolved", stats.Resolved,
		"failed", stats.Failed,
	)
	return stats
}
