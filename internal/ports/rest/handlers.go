package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"tiendita/internal/checkout"
	"tiendita/internal/domain"
	"tiendita/internal/service/render"
	"tiendita/pkg/e"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// @title Tiendita Checkout Api
// @version 1
//
//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CheckoutService interface {
	ParseForm(form domain.CheckoutForm) (domain.CheckoutSubmission, error)
	ResolveCart(ctx context.Context, entries []domain.CartEntry) ([]domain.CartLine, decimal.Decimal, error)
	Process(ctx context.Context, sub domain.CheckoutSubmission, entry domain.CartEntry, userIP string) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
}

type ServiceRender interface {
	Home(w io.Writer)
	Cart(w io.Writer, view render.CartView)
	CheckoutForm(w io.Writer, view render.CheckoutView)
	Success(w io.Writer)
	Failure(w io.Writer, msg string)
}

// demoCart backs GET /carrito; the storefront has always shipped this fixed
// two line demonstration cart.
var demoCart = []domain.CartEntry{
	{ItemID: 1, Quantity: 2},
	{ItemID: 3, Quantity: 1},
}

const defaultErrorMsg = "Error al procesar la tarjeta"

type Handler struct {
	checkout CheckoutService
	render   ServiceRender
	logger   *slog.Logger
}

func NewHandler(logger *slog.Logger, checkoutService CheckoutService, render ServiceRender) *Handler {
	return &Handler{
		checkout: checkoutService,
		render:   render,
		logger:   logger,
	}
}

func (h *Handler) Homepage(c *gin.Context) {
	h.render.Home(c.Writer)
}

// Carrito godoc
// @Summary Demonstration cart
// @Description Resolve the fixed demo cart against the catalog and render lines plus total.
// @ID get-carrito
// @Produce html
// @Success 200
// @Failure 404
// @Router /carrito [get]
func (h *Handler) Carrito(c *gin.Context) {
	lines, total, err := h.checkout.ResolveCart(c, demoCart)
	if err != nil {
		if errors.Is(err, checkout.ErrItemNotFound) {
			c.Status(http.StatusNotFound)
			h.render.Failure(c.Writer, err.Error())
			return
		}
		h.logger.Error("failed to resolve demo cart", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve cart"})
		return
	}

	h.render.Cart(c.Writer, render.CartView{Lines: lines, Total: total})
}

// PagarForm godoc
// @Summary Checkout form
// @Description Render the checkout form pre-populated with the item's total.
// @ID get-pagar
// @Param item_id query int true "Item ID"
// @Produce html
// @Success 200
// @Failure 404
// @Router /pagar [get]
func (h *Handler) PagarForm(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Query("item_id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		h.render.Failure(c.Writer, defaultErrorMsg)
		return
	}

	lines, total, err := h.checkout.ResolveCart(c, []domain.CartEntry{{ItemID: itemID}})
	if err != nil {
		h.itemFailure(c, itemID, err)
		return
	}

	h.render.CheckoutForm(c.Writer, render.CheckoutView{Item: lines[0].Item, Total: total})
}

// Pagar godoc
// @Summary Submit a checkout
// @Description Validate the submission, process the transaction and redirect to the outcome page.
// @ID post-pagar
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 302
// @Failure 400
// @Failure 404
// @Router /pagar [post]
func (h *Handler) Pagar(c *gin.Context) {
	var form domain.CheckoutForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Error("failed to bind checkout form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the item reference travels as ?item_id= or as the form's monto field
	rawID := c.Query("item_id")
	if rawID == "" {
		rawID = form.Monto
	}
	itemID, err := strconv.Atoi(rawID)
	if err != nil {
		c.Status(http.StatusNotFound)
		h.render.Failure(c.Writer, defaultErrorMsg)
		return
	}

	sub, err := h.checkout.ParseForm(form)
	if err != nil {
		var fieldErrs checkout.FieldErrors
		if !errors.As(err, &fieldErrs) {
			h.logger.Error("form validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate form"})
			return
		}
		h.rerenderForm(c, itemID, form, fieldErrs)
		return
	}

	txn, err := h.checkout.Process(c, sub, domain.CartEntry{ItemID: itemID}, c.ClientIP())
	if err != nil {
		var settleErr *checkout.SettlementError
		switch {
		case errors.Is(err, checkout.ErrItemNotFound):
			c.Status(http.StatusNotFound)
			h.render.Failure(c.Writer, err.Error())
		case errors.As(err, &settleErr):
			c.Redirect(http.StatusFound, "/errorpago?mensaje="+url.QueryEscape(settleErr.Reason))
		default:
			h.logger.Error("failed to process transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process transaction"})
		}
		return
	}

	h.logger.Info("checkout completed",
		slog.String("transaction_id", txn.ID.String()),
		slog.Int("item_id", txn.ItemID),
	)
	c.Redirect(http.StatusFound, "/pagoexitoso")
}

// PagoExitoso godoc
// @Summary Payment success page
// @ID get-pagoexitoso
// @Produce html
// @Success 200
// @Router /pagoexitoso [get]
func (h *Handler) PagoExitoso(c *gin.Context) {
	h.render.Success(c.Writer)
}

// ErrorPago godoc
// @Summary Payment failure page
// @ID get-errorpago
// @Param mensaje query string false "Failure reason"
// @Produce html
// @Success 200
// @Router /errorpago [get]
func (h *Handler) ErrorPago(c *gin.Context) {
	h.render.Failure(c.Writer, c.DefaultQuery("mensaje", defaultErrorMsg))
}

// GetTransaction godoc
// @Summary Get transaction by id
// @Description Get a stored transaction by its uuid.
// @ID get-transaction-by-id
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} domain.Transaction "Successful operation"
// @Failure 400 {object} map[string]string "Invalid id supplied"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /transacciones/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.logger.Error("invalid transaction id", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	txn, err := h.checkout.GetTransaction(c, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": e.ErrNotFound.Error()})
			return
		}
		h.logger.Error("failed to get transaction",
			slog.String("id", id.String()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to perform GetTransaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Response": txn})
}

// rerenderForm shows the checkout form again with field errors; no state was
// mutated by the rejected submission.
func (h *Handler) rerenderForm(c *gin.Context, itemID int, form domain.CheckoutForm, fieldErrs checkout.FieldErrors) {
	lines, total, err := h.checkout.ResolveCart(c, []domain.CartEntry{{ItemID: itemID}})
	if err != nil {
		h.itemFailure(c, itemID, err)
		return
	}

	c.Status(http.StatusBadRequest)
	h.render.CheckoutForm(c.Writer, render.CheckoutView{
		Item:   lines[0].Item,
		Total:  total,
		Form:   form,
		Errors: fieldErrs,
	})
}

func (h *Handler) itemFailure(c *gin.Context, itemID int, err error) {
	if errors.Is(err, checkout.ErrItemNotFound) {
		c.Status(http.StatusNotFound)
		h.render.Failure(c.Writer, err.Error())
		return
	}
	h.logger.Error("failed to resolve item",
		slog.Int("item_id", itemID),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve item"})
}
