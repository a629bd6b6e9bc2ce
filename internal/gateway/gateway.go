package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"tiendita/internal/domain"

	"github.com/google/uuid"
)

// Result is the gateway's verdict on one settlement attempt. A transport
// level failure is reported through the error return instead; Result only
// describes answers the gateway actually gave.
type Result struct {
	Approved   bool
	ExternalID string
	Reason     string
}

//go:generate mockgen -source=gateway.go -destination=mocks/mock.go
type Gateway interface {
	// Settle finalizes payment for the transaction. This is the single seam
	// where a real acquirer integration plugs in.
	Settle(ctx context.Context, txn *domain.Transaction) (Result, error)
	// CheckStatus reports whether the gateway charged the given transaction,
	// used by the reconciliation worker to resolve stuck pending rows.
	CheckStatus(ctx context.Context, txnID uuid.UUID) (bool, error)
}

// Approver settles every transaction successfully. It stands in for the
// acquirer until one is integrated.
type Approver struct {
	logger *slog.Logger
}

func NewApprover(logger *slog.Logger) *Approver {
	return &Approver{logger: logger}
}

func (a *Approver) Settle(ctx context.Context, txn *domain.Transaction) (Result, error) {
	externalID := fmt.Sprintf("FP-%s", uuid.NewString())
	a.logger.Debug("settled transaction",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("external_id", externalID),
	)

	return Result{Approved: true, ExternalID: externalID}, nil
}

func (a *Approver) CheckStatus(ctx context.Context, txnID uuid.UUID) (bool, error) {
	return true, nil
}
