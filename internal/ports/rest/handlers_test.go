package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tiendita/internal/checkout"
	"tiendita/internal/domain"
	handler_mocks "tiendita/internal/ports/rest/mocks"
	"tiendita/internal/service/render"
	"tiendita/pkg/e"
	"tiendita/pkg/logger"
	"tiendita/tests"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func checkoutFormBody(form domain.CheckoutForm) string {
	values := url.Values{}
	values.Set("monto", form.Monto)
	values.Set("PAN_1", form.PAN1)
	values.Set("PAN_2", form.PAN2)
	values.Set("PAN_3", form.PAN3)
	values.Set("PAN_4", form.PAN4)
	values.Set("CVS", form.CVS)
	values.Set("EXP_M", form.ExpM)
	values.Set("EXP_Y", form.ExpY)
	values.Set("titular", form.Titular)
	values.Set("ultimos_4_digitos", form.Ultimos4)
	values.Set("marca_tarjeta", form.MarcaTarjeta)
	values.Set("direccion", form.Direccion)
	values.Set("ciudad", form.Ciudad)
	values.Set("departamento", form.Departamento)
	values.Set("codigo_postal", form.CodigoPostal)
	return values.Encode()
}

func Test_PagarHandler(t *testing.T) {
	type mockBehavior func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender)

	approvedTxn := &domain.Transaction{
		ID:     uuid.New(),
		ItemID: 1,
		Status: domain.StatusApproved,
	}
	declinedTxn := &domain.Transaction{
		ID:     uuid.New(),
		ItemID: 1,
		Status: domain.StatusDeclined,
	}

	testCases := []struct {
		name               string
		requestURL         string
		body               string
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedLocation   string
	}{
		{
			name:       "OK redirects to success page",
			requestURL: "/pagar",
			body:       checkoutFormBody(tests.ValidForm),
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				s.EXPECT().ParseForm(gomock.Any()).Return(tests.ValidSubmission, nil)
				s.EXPECT().Process(gomock.Any(), tests.ValidSubmission, domain.CartEntry{ItemID: 1}, gomock.Any()).Return(approvedTxn, nil)
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/pagoexitoso",
		},
		{
			name:       "item id from query wins over monto",
			requestURL: "/pagar?item_id=3",
			body:       checkoutFormBody(tests.ValidForm),
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				s.EXPECT().ParseForm(gomock.Any()).Return(tests.ValidSubmission, nil)
				s.EXPECT().Process(gomock.Any(), tests.ValidSubmission, domain.CartEntry{ItemID: 3}, gomock.Any()).Return(approvedTxn, nil)
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/pagoexitoso",
		},
		{
			name:       "validation errors re-render the form",
			requestURL: "/pagar",
			body:       checkoutFormBody(tests.ValidForm),
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				fieldErrs := checkout.FieldErrors{{Field: "CVS", Message: "must be exactly 3 characters"}}
				s.EXPECT().ParseForm(gomock.Any()).Return(domain.CheckoutSubmission{}, fieldErrs)
				s.EXPECT().ResolveCart(gomock.Any(), []domain.CartEntry{{ItemID: 1}}).Return(
					[]domain.CartLine{{Item: tests.ItemMascaras, Quantity: 1}},
					decimal.RequireFromString("100"),
					nil,
				)
				r.EXPECT().CheckoutForm(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:       "unknown item renders the failure page",
			requestURL: "/pagar",
			body:       checkoutFormBody(tests.ValidForm),
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				s.EXPECT().ParseForm(gomock.Any()).Return(tests.ValidSubmission, nil)
				s.EXPECT().Process(gomock.Any(), tests.ValidSubmission, domain.CartEntry{ItemID: 1}, gomock.Any()).
					Return(nil, fmt.Errorf("%w: item 1", checkout.ErrItemNotFound))
				r.EXPECT().Failure(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:       "declined settlement redirects to the failure page",
			requestURL: "/pagar",
			body:       checkoutFormBody(tests.ValidForm),
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				s.EXPECT().ParseForm(gomock.Any()).Return(tests.ValidSubmission, nil)
				s.EXPECT().Process(gomock.Any(), tests.ValidSubmission, domain.CartEntry{ItemID: 1}, gomock.Any()).
					Return(declinedTxn, &checkout.SettlementError{
						TransactionID: declinedTxn.ID,
						Status:        domain.StatusDeclined,
						Reason:        "card declined",
					})
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/errorpago?mensaje=card+declined",
		},
		{
			name:       "non numeric item reference",
			requestURL: "/pagar?item_id=abc",
			body:       "monto=abc",
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				r.EXPECT().Failure(gomock.Any(), defaultErrorMsg)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := handler_mocks.NewMockCheckoutService(ctrl)
			mockRender := handler_mocks.NewMockServiceRender(ctrl)
			testCase.mockBehavior(mockService, mockRender)

			handler := NewHandler(logger.SetupPrettySlog(), mockService, mockRender)

			r := gin.Default()
			r.POST("/pagar", handler.Pagar)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", testCase.requestURL, strings.NewReader(testCase.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.expectedStatusCode, w.Code)
			if testCase.expectedLocation != "" {
				assert.Equal(t, testCase.expectedLocation, w.Header().Get("Location"))
			}
		})
	}
}

func Test_PagarFormHandler(t *testing.T) {
	type mockBehavior func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender)

	testCases := []struct {
		name               string
		requestURL         string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:       "OK",
			requestURL: "/pagar?item_id=1",
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				s.EXPECT().ResolveCart(gomock.Any(), []domain.CartEntry{{ItemID: 1}}).Return(
					[]domain.CartLine{{Item: tests.ItemMascaras, Quantity: 1}},
					decimal.RequireFromString("100"),
					nil,
				)
				r.EXPECT().CheckoutForm(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:       "unknown item",
			requestURL: "/pagar?item_id=99",
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				s.EXPECT().ResolveCart(gomock.Any(), []domain.CartEntry{{ItemID: 99}}).Return(
					nil, decimal.Zero, fmt.Errorf("%w: item 99", checkout.ErrItemNotFound),
				)
				r.EXPECT().Failure(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:       "missing item id",
			requestURL: "/pagar",
			mockBehavior: func(s *handler_mocks.MockCheckoutService, r *handler_mocks.MockServiceRender) {
				r.EXPECT().Failure(gomock.Any(), defaultErrorMsg)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := handler_mocks.NewMockCheckoutService(ctrl)
			mockRender := handler_mocks.NewMockServiceRender(ctrl)
			testCase.mockBehavior(mockService, mockRender)

			handler := NewHandler(logger.SetupPrettySlog(), mockService, mockRender)

			r := gin.Default()
			r.GET("/pagar", handler.PagarForm)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", testCase.requestURL, nil)

			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.expectedStatusCode, w.Code)
		})
	}
}

func Test_CarritoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := handler_mocks.NewMockCheckoutService(ctrl)
	mockRender := handler_mocks.NewMockServiceRender(ctrl)

	lines := []domain.CartLine{
		{Item: tests.ItemMascaras, Quantity: 2, UnitPrice: tests.ItemMascaras.Price, Subtotal: decimal.RequireFromString("200")},
		{Item: tests.ItemCamiseta, Quantity: 1, UnitPrice: tests.ItemCamiseta.Price, Subtotal: decimal.RequireFromString("50")},
	}
	total := decimal.RequireFromString("250")

	mockService.EXPECT().ResolveCart(gomock.Any(), demoCart).Return(lines, total, nil)
	mockRender.EXPECT().Cart(gomock.Any(), render.CartView{Lines: lines, Total: total})

	handler := NewHandler(logger.SetupPrettySlog(), mockService, mockRender)

	r := gin.Default()
	r.GET("/carrito", handler.Carrito)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/carrito", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_GetTransactionHandler(t *testing.T) {
	type mockBehavior func(s *handler_mocks.MockCheckoutService, id uuid.UUID)

	txnID := uuid.New()

	testCases := []struct {
		name               string
		requestURL         string
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:       "OK",
			requestURL: "/transacciones/" + txnID.String(),
			mockBehavior: func(s *handler_mocks.MockCheckoutService, id uuid.UUID) {
				s.EXPECT().GetTransaction(gomock.Any(), id).Return(domain.Transaction{
					ID:     id,
					ItemID: 1,
					Status: domain.StatusApproved,
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:       "Not Found",
			requestURL: "/transacciones/" + txnID.String(),
			mockBehavior: func(s *handler_mocks.MockCheckoutService, id uuid.UUID) {
				s.EXPECT().GetTransaction(gomock.Any(), id).Return(domain.Transaction{}, e.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       fmt.Sprintf(`{"error":"%s"}`, e.ErrNotFound.Error()),
		},
		{
			name:               "Invalid id - not a uuid",
			requestURL:         "/transacciones/abc",
			mockBehavior:       func(s *handler_mocks.MockCheckoutService, id uuid.UUID) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"invalid id"}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := handler_mocks.NewMockCheckoutService(ctrl)
			mockRender := handler_mocks.NewMockServiceRender(ctrl)
			testCase.mockBehavior(mockService, txnID)

			handler := NewHandler(logger.SetupPrettySlog(), mockService, mockRender)

			r := gin.Default()
			r.GET("/transacciones/:id", handler.GetTransaction)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", testCase.requestURL, nil)

			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.expectedStatusCode, w.Code)
			if testCase.expectedBody != "" {
				assert.Equal(t, testCase.expectedBody, w.Body.String())
			}
			if testCase.expectedStatusCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), txnID.String())
			}
		})
	}
}

func Test_ErrorPagoHandler(t *testing.T) {
	testCases := []struct {
		name        string
		requestURL  string
		expectedMsg string
	}{
		{
			name:        "message from query",
			requestURL:  "/errorpago?mensaje=card+declined",
			expectedMsg: "card declined",
		},
		{
			name:        "default message",
			requestURL:  "/errorpago",
			expectedMsg: defaultErrorMsg,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := handler_mocks.NewMockCheckoutService(ctrl)
			mockRender := handler_mocks.NewMockServiceRender(ctrl)
			mockRender.EXPECT().Failure(gomock.Any(), testCase.expectedMsg)

			handler := NewHandler(logger.SetupPrettySlog(), mockService, mockRender)

			r := gin.Default()
			r.GET("/errorpago", handler.ErrorPago)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", testCase.requestURL, nil)

			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
