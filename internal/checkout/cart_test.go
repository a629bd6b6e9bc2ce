package checkout

import (
	"context"
	"errors"
	"testing"
	checkout_mocks "tiendita/internal/checkout/mocks"
	"tiendita/internal/domain"
	"tiendita/pkg/e"
	"tiendita/pkg/logger"
	"tiendita/tests"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_CartResolve(t *testing.T) {
	type mockBehavior func(r *checkout_mocks.MockCatalogProvider)
	testCases := []struct {
		name          string
		entries       []domain.CartEntry
		mockBehavior  mockBehavior
		expectedTotal string
		expectedLines int
		expectedErr   error
	}{
		{
			name: "OK two lines",
			entries: []domain.CartEntry{
				{ItemID: 1, Quantity: 2},
				{ItemID: 3, Quantity: 1},
			},
			mockBehavior: func(r *checkout_mocks.MockCatalogProvider) {
				r.EXPECT().Lookup(gomock.Any(), 1).Return(tests.ItemMascaras, nil)
				r.EXPECT().Lookup(gomock.Any(), 3).Return(tests.ItemCamiseta, nil)
			},
			expectedTotal: "250",
			expectedLines: 2,
		},
		{
			name: "missing item fails the whole cart",
			entries: []domain.CartEntry{
				{ItemID: 1, Quantity: 2},
				{ItemID: 99, Quantity: 1},
			},
			mockBehavior: func(r *checkout_mocks.MockCatalogProvider) {
				r.EXPECT().Lookup(gomock.Any(), 1).Return(tests.ItemMascaras, nil)
				r.EXPECT().Lookup(gomock.Any(), 99).Return(domain.Item{}, e.ErrNotFound)
			},
			expectedErr: ErrItemNotFound,
		},
		{
			name:    "zero quantity defaults to one",
			entries: []domain.CartEntry{{ItemID: 3, Quantity: 0}},
			mockBehavior: func(r *checkout_mocks.MockCatalogProvider) {
				r.EXPECT().Lookup(gomock.Any(), 3).Return(tests.ItemCamiseta, nil)
			},
			expectedTotal: "50",
			expectedLines: 1,
		},
		{
			name: "duplicate ids stay separate lines",
			entries: []domain.CartEntry{
				{ItemID: 1, Quantity: 1},
				{ItemID: 1, Quantity: 1},
			},
			mockBehavior: func(r *checkout_mocks.MockCatalogProvider) {
				r.EXPECT().Lookup(gomock.Any(), 1).Return(tests.ItemMascaras, nil).Times(2)
			},
			expectedTotal: "200",
			expectedLines: 2,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCatalog := checkout_mocks.NewMockCatalogProvider(ctrl)
			testCase.mockBehavior(mockCatalog)

			cart := NewCart(logger.SetupPrettySlog(), mockCatalog)

			lines, total, err := cart.Resolve(context.Background(), testCase.entries)

			if testCase.expectedErr != nil {
				assert.True(t, errors.Is(err, testCase.expectedErr), "got %v", err)
				assert.Nil(t, lines)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, lines, testCase.expectedLines)
			assert.True(t, total.Equal(decimal.RequireFromString(testCase.expectedTotal)),
				"expected total %s, got %s", testCase.expectedTotal, total)
		})
	}
}

func Test_CartResolveLineOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := checkout_mocks.NewMockCatalogProvider(ctrl)
	mockCatalog.EXPECT().Lookup(gomock.Any(), 3).Return(tests.ItemCamiseta, nil)
	mockCatalog.EXPECT().Lookup(gomock.Any(), 1).Return(tests.ItemMascaras, nil)

	cart := NewCart(logger.SetupPrettySlog(), mockCatalog)

	lines, _, err := cart.Resolve(context.Background(), []domain.CartEntry{
		{ItemID: 3, Quantity: 1},
		{ItemID: 1, Quantity: 2},
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, lines[0].Item.ID)
	assert.Equal(t, 1, lines[1].Item.ID)
	assert.True(t, lines[1].Subtotal.Equal(decimal.RequireFromString("200")))
}
