package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"tiendita/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrCardDeclined = errors.New("card declined")
	ErrTimeout      = errors.New("connection timeout")
)

// Simulator behaves like a flaky acquirer: most charges succeed, some are
// declined, and a few time out on our side after the money already moved on
// theirs. Those last ones are what the reconciliation worker exists for.
type Simulator struct {
	mu      sync.RWMutex
	charged map[string]bool
	logger  *slog.Logger

	ApprovePct int
	DeclinePct int
	Latency    time.Duration
	HangFor    time.Duration
}

func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{
		charged:    make(map[string]bool),
		logger:     logger,
		ApprovePct: 70,
		DeclinePct: 20,
		Latency:    100 * time.Millisecond,
		HangFor:    2 * time.Second,
	}
}

func (s *Simulator) Settle(ctx context.Context, txn *domain.Transaction) (Result, error) {
	key := txn.ID.String()

	// a retried settlement for an already charged transaction must not
	// charge twice
	s.mu.RLock()
	if paid, exists := s.charged[key]; exists {
		s.mu.RUnlock()
		if paid {
			return Result{Approved: true, ExternalID: "FP-" + key}, nil
		}
		return Result{Approved: false, Reason: ErrCardDeclined.Error()}, nil
	}
	s.mu.RUnlock()

	chance := rand.IntN(100)

	switch {
	case chance < s.ApprovePct:
		time.Sleep(s.Latency)
		s.record(key, true)
		return Result{Approved: true, ExternalID: "FP-" + key}, nil

	case chance < s.ApprovePct+s.DeclinePct:
		time.Sleep(s.Latency)
		s.record(key, false)
		return Result{Approved: false, Reason: ErrCardDeclined.Error()}, nil

	default:
		// the acquirer charges the card but we only ever see a timeout
		time.Sleep(s.HangFor)
		s.record(key, true)
		s.logger.Warn("gateway charged but response timed out",
			slog.String("transaction_id", key))
		return Result{}, fmt.Errorf("gateway.Settle: %w", ErrTimeout)
	}
}

func (s *Simulator) CheckStatus(ctx context.Context, txnID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if paid, exists := s.charged[txnID.String()]; exists {
		return paid, nil
	}
	return false, nil
}

func (s *Simulator) record(key string, paid bool) {
	s.mu.Lock()
	s.charged[key] = paid
	s.mu.Unlock()
}
