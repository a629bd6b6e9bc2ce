package checkout

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tiendita/internal/domain"
	"tiendita/internal/gateway"
	"tiendita/pkg/e"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var transactionsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "checkout_transactions_total",
	Help: "Total number of processed transactions by terminal status",
}, []string{"status"})

//go:generate mockgen -source=processor.go -destination=mocks/processor_mock.go
type TransactionStore interface {
	Save(ctx context.Context, txn *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
}

type IdempotencyCache interface {
	Get(ctx context.Context, key string) (uuid.UUID, error)
	Set(ctx context.Context, key string, id uuid.UUID, exp time.Duration) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.TransactionEvent) error
}

// Processor owns the transaction lifecycle: it creates every transaction in
// pending state, drives it to exactly one terminal status through the
// settlement gateway, and persists it. Nothing else writes transactions.
type Processor struct {
	cart    *Cart
	store   TransactionStore
	gateway gateway.Gateway
	idem    IdempotencyCache
	events  EventPublisher
	idemTTL time.Duration
	logger  *slog.Logger
}

// NewProcessor wires the processor. idem and events may be nil: without a
// cache every resubmission creates a fresh transaction, without a publisher
// no audit events leave the process. Neither affects the checkout contract.
func NewProcessor(
	logger *slog.Logger,
	cart *Cart,
	store TransactionStore,
	gw gateway.Gateway,
	idem IdempotencyCache,
	events EventPublisher,
	idemTTL time.Duration,
) *Processor {
	if idemTTL <= 0 {
		idemTTL = 24 * time.Hour
	}
	return &Processor{
		cart:    cart,
		store:   store,
		gateway: gw,
		idem:    idem,
		events:  events,
		idemTTL: idemTTL,
		logger:  logger,
	}
}

// Process turns a validated submission into a persisted transaction.
// Lookup failures surface before any state is mutated; settlement failures
// are persisted with their terminal status and reported as *SettlementError.
func (p *Processor) Process(ctx context.Context, sub domain.CheckoutSubmission, entry domain.CartEntry, userIP string) (*domain.Transaction, error) {
	lines, total, err := p.cart.Resolve(ctx, []domain.CartEntry{entry})
	if err != nil {
		return nil, err
	}
	line := lines[0]

	if prev, ok := p.replay(ctx, sub.IdempotencyKey); ok {
		return prev, settlementFailure(prev)
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:             uuid.New(),
		ItemID:         line.Item.ID,
		Quantity:       line.Quantity,
		Currency:       sub.Currency,
		Card:           sub.Card,
		Billing:        sub.Billing,
		UserIP:         userIP,
		IdempotencyKey: sub.IdempotencyKey,
		Status:         domain.StatusPending,
		Amount:         total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, settleErr := p.gateway.Settle(ctx, txn)
	switch {
	case settleErr != nil:
		txn.Status = domain.StatusError
	case !result.Approved:
		txn.Status = domain.StatusDeclined
	default:
		txn.Status = domain.StatusApproved
		txn.TotalPaid = decimal.NewNullDecimal(total)
		txn.ExternalID = result.ExternalID
	}
	txn.UpdatedAt = time.Now().UTC()

	if err := p.store.Save(ctx, txn); err != nil {
		p.logger.Error("failed to save transaction",
			slog.String("transaction_id", txn.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, e.Wrap("checkout.Process", err)
	}

	p.remember(ctx, sub.IdempotencyKey, txn.ID)
	p.publish(ctx, txn)
	transactionsCounter.WithLabelValues(txn.Status.String()).Inc()

	switch txn.Status {
	case domain.StatusError:
		return txn, &SettlementError{TransactionID: txn.ID, Status: txn.Status, Reason: settleErr.Error()}
	case domain.StatusDeclined:
		reason := result.Reason
		if reason == "" {
			reason = "payment declined"
		}
		return txn, &SettlementError{TransactionID: txn.ID, Status: txn.Status, Reason: reason}
	}

	p.logger.Info("transaction approved",
		slog.String("transaction_id", txn.ID.String()),
		slog.Int("item_id", txn.ItemID),
		slog.String("total_paid", total.String()),
	)

	return txn, nil
}

// replay answers a duplicate submission with the transaction created the
// first time around. A cache outage degrades to the no-cache behavior rather
// than blocking the checkout.
func (p *Processor) replay(ctx context.Context, key string) (*domain.Transaction, bool) {
	if key == "" || p.idem == nil {
		return nil, false
	}

	id, err := p.idem.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			p.logger.Warn("idempotency lookup failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	txn, err := p.store.GetByID(ctx, id)
	if err != nil {
		p.logger.Warn("idempotency key resolved to a missing transaction, reprocessing",
			slog.String("key", key),
			slog.String("transaction_id", id.String()),
		)
		return nil, false
	}

	p.logger.Info("duplicate submission, replaying original transaction",
		slog.String("key", key),
		slog.String("transaction_id", id.String()),
	)

	return &txn, true
}

// settlementFailure re-signals the outcome of an already settled transaction.
// A replayed submission must fail the same way the original did; the gateway's
// original message is not stored, so replays carry a generic reason.
func settlementFailure(txn *domain.Transaction) error {
	switch txn.Status {
	case domain.StatusDeclined:
		return &SettlementError{TransactionID: txn.ID, Status: txn.Status, Reason: "payment declined"}
	case domain.StatusError:
		return &SettlementError{TransactionID: txn.ID, Status: txn.Status, Reason: "settlement failed"}
	}
	return nil
}

func (p *Processor) remember(ctx context.Context, key string, id uuid.UUID) {
	if key == "" || p.idem == nil {
		return
	}
	if err := p.idem.Set(ctx, key, id, p.idemTTL); err != nil {
		p.logger.Warn("failed to store idempotency key", slog.String("error", err.Error()))
	}
}

func (p *Processor) publish(ctx context.Context, txn *domain.Transaction) {
	if p.events == nil {
		return
	}
	event := domain.TransactionEvent{
		ID:        txn.ID,
		ItemID:    txn.ItemID,
		Status:    txn.Status,
		Currency:  txn.Currency,
		TotalPaid: txn.TotalPaid,
		CreatedAt: txn.CreatedAt,
	}
	if err := p.events.Publish(ctx, event); err != nil {
		p.logger.Warn("failed to publish transaction event",
			slog.String("transaction_id", txn.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
