package pg

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tiendita/internal/domain"
	"tiendita/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const txnColumns = `id, item_id, quantity, currency,
	pan_1, pan_2, pan_3, pan_4, cvs, exp_m, exp_y, titular, ultimos_4_digitos, marca_tarjeta,
	direccion, ciudad, departamento, codigo_postal, pais,
	user_ip, external_id, idempotency_key, status, amount, total_paid, created_at, updated_at`

// Save inserts the transaction as a single row; there are no partial writes.
// Ids are uuids minted by the processor, so concurrent saves never collide.
func (p *Postgres) Save(ctx context.Context, txn *domain.Transaction) error {
	query := `INSERT INTO transactions (` + txnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`

	_, err := p.pool.Exec(ctx, query, insertArgs(txn)...)
	if err != nil {
		p.logger.Error("failed to insert transaction",
			slog.String("transaction_id", txn.ID.String()),
			slog.String("error", err.Error()),
		)
		return e.Wrap("pg.Save", err)
	}

	return nil
}

func (p *Postgres) GetByID(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransaction(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, e.ErrNotFound
		}
		return domain.Transaction{}, e.Wrap("pg.GetByID", err)
	}

	return txn, nil
}

// FindStuck returns transactions whose settlement outcome is unknown: rows
// still pending, or marked error after a gateway timeout, older than the
// given age. The reconciliation worker resolves them against the gateway.
func (p *Postgres) FindStuck(ctx context.Context, olderThan time.Duration) ([]domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions
		WHERE status IN ($1, $2) AND updated_at < $3
		ORDER BY updated_at`

	rows, err := p.pool.Query(ctx, query,
		domain.StatusPending, domain.StatusError, time.Now().UTC().Add(-olderThan))
	if err != nil {
		return nil, e.Wrap("pg.FindStuck", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, e.Wrap("pg.FindStuck", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap("pg.FindStuck", err)
	}

	return txns, nil
}

// Resolve is the reconciliation fix-up: it moves a stuck row to its real
// terminal status. Regular checkout flow never updates transactions.
func (p *Postgres) Resolve(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, totalPaid decimal.NullDecimal) error {
	query := `UPDATE transactions
		SET status = $2, total_paid = COALESCE($3, total_paid), updated_at = $4
		WHERE id = $1`

	_, err := p.pool.Exec(ctx, query, id, status, totalPaid, time.Now().UTC())
	if err != nil {
		return e.Wrap("pg.Resolve", err)
	}
	return nil
}

// insertArgs lists the bind values in txnColumns order; scanTransaction reads
// the same columns back, so the two must stay in lockstep.
func insertArgs(txn *domain.Transaction) []any {
	return []any{
		txn.ID, txn.ItemID, txn.Quantity, txn.Currency,
		txn.Card.PAN1, txn.Card.PAN2, txn.Card.PAN3, txn.Card.PAN4,
		txn.Card.CVS, txn.Card.ExpM, txn.Card.ExpY, txn.Card.Holder,
		txn.Card.Last4, nullable(txn.Card.Brand),
		txn.Billing.Street, txn.Billing.City, txn.Billing.Department,
		txn.Billing.PostalCode, txn.Billing.Country,
		nullable(txn.UserIP), nullable(txn.ExternalID), nullable(txn.IdempotencyKey),
		txn.Status, txn.Amount, txn.TotalPaid, txn.CreatedAt, txn.UpdatedAt,
	}
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		txn     domain.Transaction
		brand   *string
		userIP  *string
		extID   *string
		idemKey *string
	)

	err := row.Scan(
		&txn.ID, &txn.ItemID, &txn.Quantity, &txn.Currency,
		&txn.Card.PAN1, &txn.Card.PAN2, &txn.Card.PAN3, &txn.Card.PAN4,
		&txn.Card.CVS, &txn.Card.ExpM, &txn.Card.ExpY, &txn.Card.Holder,
		&txn.Card.Last4, &brand,
		&txn.Billing.Street, &txn.Billing.City, &txn.Billing.Department,
		&txn.Billing.PostalCode, &txn.Billing.Country,
		&userIP, &extID, &idemKey,
		&txn.Status, &txn.Amount, &txn.TotalPaid, &txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn.Card.Brand = deref(brand)
	txn.UserIP = deref(userIP)
	txn.ExternalID = deref(extID)
	txn.IdempotencyKey = deref(idemKey)

	return txn, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
