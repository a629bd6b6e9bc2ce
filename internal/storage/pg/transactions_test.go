package pg

import (
	"reflect"
	"testing"
	"time"

	"tiendita/internal/domain"
	"tiendita/tests"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// columnRow plays back bind values as a result row, the way postgres would
// return the columns Save wrote.
type columnRow struct {
	values []any
}

func (r columnRow) Scan(dest ...any) error {
	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()
		sv := reflect.ValueOf(r.values[i])
		if sv.IsValid() {
			dv.Set(sv)
		}
	}
	return nil
}

func Test_TransactionRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	full := domain.Transaction{
		ID:             uuid.New(),
		ItemID:         2,
		Quantity:       3,
		Currency:       domain.CurrencyCOP,
		Card:           tests.ValidSubmission.Card,
		Billing:        tests.ValidSubmission.Billing,
		UserIP:         "10.0.0.1",
		ExternalID:     "FP-ext",
		IdempotencyKey: "key-1",
		Status:         domain.StatusApproved,
		Amount:         decimal.RequireFromString("599.97"),
		TotalPaid:      decimal.NewNullDecimal(decimal.RequireFromString("599.97")),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	bare := domain.Transaction{
		ID:        uuid.New(),
		ItemID:    1,
		Quantity:  1,
		Currency:  domain.CurrencyUSD,
		Card:      tests.ValidSubmission.Card,
		Billing:   tests.ValidSubmission.Billing,
		Status:    domain.StatusDeclined,
		Amount:    decimal.RequireFromString("100"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	bare.Card.Brand = ""

	testCases := []struct {
		name string
		txn  domain.Transaction
	}{
		{name: "all optional fields set", txn: full},
		{name: "optional fields empty", txn: bare},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := scanTransaction(columnRow{values: insertArgs(&testCase.txn)})

			assert.NoError(t, err)
			assert.Equal(t, testCase.txn, got)
			assert.True(t, got.Amount.Equal(testCase.txn.Amount))
			assert.Equal(t, testCase.txn.TotalPaid.Valid, got.TotalPaid.Valid)
		})
	}
}

func Test_NullableColumns(t *testing.T) {
	assert.Nil(t, nullable(""))

	s := nullable("VISA")
	assert.NotNil(t, s)
	assert.Equal(t, "VISA", *s)

	assert.Equal(t, "", deref(nil))
	assert.Equal(t, "VISA", deref(s))
}
