package checkout

import (
	"errors"
	"fmt"
	"strings"

	"tiendita/internal/domain"

	"github.com/google/uuid"
)

// ErrItemNotFound is a processing failure, not a validation error: the form
// was fine, the catalog just has no such item. No transaction is created.
var ErrItemNotFound = errors.New("item not found")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SettlementError reports a settlement that did not approve. The transaction
// it references has already been persisted with its terminal status; the
// caller only needs the reason for the failure page.
type SettlementError struct {
	TransactionID uuid.UUID
	Status        domain.TransactionStatus
	Reason        string
}

func (s *SettlementError) Error() string {
	return fmt.Sprintf("settlement %s: %s", s.Status, s.Reason)
}
