package worker

import (
	"context"
	"log/slog"
	"time"

	"tiendita/internal/domain"
	"tiendita/internal/gateway"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=reconcile.go -destination=mocks/mock.go
type TransactionStore interface {
	FindStuck(ctx context.Context, olderThan time.Duration) ([]domain.Transaction, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, totalPaid decimal.NullDecimal) error
}

// Reconciler periodically resolves transactions whose settlement outcome is
// unknown (pending rows from interrupted runs, error rows from gateway
// timeouts) against the gateway's own record of what it charged.
type Reconciler struct {
	store      TransactionStore
	gateway    gateway.Gateway
	interval   time.Duration
	stuckAfter time.Duration
	logger     *slog.Logger
}

func NewReconciler(
	logger *slog.Logger,
	store TransactionStore,
	gw gateway.Gateway,
	interval time.Duration,
	stuckAfter time.Duration,
) *Reconciler {
	return &Reconciler{
		store:      store,
		gateway:    gw,
		interval:   interval,
		stuckAfter: stuckAfter,
		logger:     logger,
	}
}

func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciliation worker started",
		slog.Duration("interval", r.interval),
		slog.Duration("stuck_after", r.stuckAfter),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciliation worker stopped")
			return nil
		case <-ticker.C:
			if err := r.process(ctx); err != nil {
				r.logger.Error("reconciliation pass failed", slog.String("error", err.Error()))
			}
		}
	}
}

func (r *Reconciler) process(ctx context.Context) error {
	stuck, err := r.store.FindStuck(ctx, r.stuckAfter)
	if err != nil {
		return err
	}
	if len(stuck) == 0 {
		return nil
	}

	r.logger.Info("found stuck transactions", slog.Int("count", len(stuck)))

	for _, txn := range stuck {
		charged, err := r.gateway.CheckStatus(ctx, txn.ID)
		if err != nil {
			// leave it for the next pass
			r.logger.Warn("failed to check gateway status",
				slog.String("transaction_id", txn.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		switch {
		case charged:
			// ghost charge: the gateway took the money, our row never heard
			if err := r.store.Resolve(ctx, txn.ID, domain.StatusApproved, decimal.NewNullDecimal(txn.Amount)); err != nil {
				return err
			}
			r.logger.Info("resolved ghost charge to approved",
				slog.String("transaction_id", txn.ID.String()))

		case txn.Status == domain.StatusPending:
			// never charged and never settled: close it out
			if err := r.store.Resolve(ctx, txn.ID, domain.StatusError, decimal.NullDecimal{}); err != nil {
				return err
			}
			r.logger.Info("resolved abandoned transaction to error",
				slog.String("transaction_id", txn.ID.String()))
		}
		// error rows the gateway never charged keep their status
	}

	return nil
}
