package gateway

import (
	"context"
	"errors"
	"testing"

	"tiendita/internal/domain"
	"tiendita/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestSimulator() *Simulator {
	s := NewSimulator(logger.SetupPrettySlog())
	s.Latency = 0
	s.HangFor = 0
	return s
}

func Test_SimulatorApproves(t *testing.T) {
	s := newTestSimulator()
	s.ApprovePct = 100
	s.DeclinePct = 0

	txn := &domain.Transaction{ID: uuid.New()}
	result, err := s.Settle(context.Background(), txn)

	assert.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "FP-"+txn.ID.String(), result.ExternalID)

	charged, err := s.CheckStatus(context.Background(), txn.ID)
	assert.NoError(t, err)
	assert.True(t, charged)
}

func Test_SimulatorDeclines(t *testing.T) {
	s := newTestSimulator()
	s.ApprovePct = 0
	s.DeclinePct = 100

	txn := &domain.Transaction{ID: uuid.New()}
	result, err := s.Settle(context.Background(), txn)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, ErrCardDeclined.Error(), result.Reason)

	charged, err := s.CheckStatus(context.Background(), txn.ID)
	assert.NoError(t, err)
	assert.False(t, charged)
}

func Test_SimulatorTimeoutStillCharges(t *testing.T) {
	s := newTestSimulator()
	s.ApprovePct = 0
	s.DeclinePct = 0

	txn := &domain.Transaction{ID: uuid.New()}
	_, err := s.Settle(context.Background(), txn)

	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)

	// the money moved even though we saw a timeout
	charged, err := s.CheckStatus(context.Background(), txn.ID)
	assert.NoError(t, err)
	assert.True(t, charged)
}

func Test_SimulatorNeverChargesTwice(t *testing.T) {
	s := newTestSimulator()
	s.ApprovePct = 100
	s.DeclinePct = 0

	txn := &domain.Transaction{ID: uuid.New()}

	first, err := s.Settle(context.Background(), txn)
	assert.NoError(t, err)
	assert.True(t, first.Approved)

	// flip the odds; the retry must replay the original outcome
	s.ApprovePct = 0
	s.DeclinePct = 100

	second, err := s.Settle(context.Background(), txn)
	assert.NoError(t, err)
	assert.True(t, second.Approved)
	assert.Equal(t, first.ExternalID, second.ExternalID)
}

func Test_SimulatorCheckStatusUnknownTransaction(t *testing.T) {
	s := newTestSimulator()

	charged, err := s.CheckStatus(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.False(t, charged)
}
