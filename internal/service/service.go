package service

import (
	"context"
	"log/slog"

	"tiendita/internal/checkout"
	"tiendita/internal/domain"
	"tiendita/pkg/e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is the facade the HTTP layer talks to: form validation, cart
// resolution, transaction processing and lookup behind one type.
type Service struct {
	forms     *checkout.FormValidator
	cart      *checkout.Cart
	processor *checkout.Processor
	store     checkout.TransactionStore
	logger    *slog.Logger
}

func NewService(
	logger *slog.Logger,
	forms *checkout.FormValidator,
	cart *checkout.Cart,
	processor *checkout.Processor,
	store checkout.TransactionStore,
) *Service {
	return &Service{
		forms:     forms,
		cart:      cart,
		processor: processor,
		store:     store,
		logger:    logger,
	}
}

func (s *Service) ParseForm(form domain.CheckoutForm) (domain.CheckoutSubmission, error) {
	return s.forms.Parse(form)
}

func (s *Service) ResolveCart(ctx context.Context, entries []domain.CartEntry) ([]domain.CartLine, decimal.Decimal, error) {
	return s.cart.Resolve(ctx, entries)
}

func (s *Service) Process(ctx context.Context, sub domain.CheckoutSubmission, entry domain.CartEntry, userIP string) (*domain.Transaction, error) {
	return s.processor.Process(ctx, sub, entry, userIP)
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	txn, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to perform GetTransaction",
			slog.String("transaction_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Transaction{}, e.Wrap("service.GetTransaction", err)
	}

	return txn, nil
}
