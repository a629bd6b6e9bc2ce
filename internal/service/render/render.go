package render

import (
	"html/template"
	"io"
	"log/slog"

	"tiendita/internal/checkout"
	"tiendita/internal/domain"

	"github.com/shopspring/decimal"
)

type CartView struct {
	Lines []domain.CartLine
	Total decimal.Decimal
}

type CheckoutView struct {
	Item   domain.Item
	Total  decimal.Decimal
	Form   domain.CheckoutForm
	Errors checkout.FieldErrors
}

type Render struct {
	tmpl   *template.Template
	logger *slog.Logger
}

func New(dir string, logger *slog.Logger) *Render {
	tmpl, err := template.ParseGlob(dir + "/*.html")
	if err != nil {
		logger.Error("failed to parse templates", slog.String("error", err.Error()))
	}

	return &Render{
		tmpl:   tmpl,
		logger: logger,
	}
}

func (r *Render) Home(w io.Writer) {
	r.execute(w, "index.html", nil)
}

func (r *Render) Cart(w io.Writer, view CartView) {
	r.execute(w, "carrito.html", view)
}

func (r *Render) CheckoutForm(w io.Writer, view CheckoutView) {
	r.execute(w, "pago.html", view)
}

func (r *Render) Success(w io.Writer) {
	r.execute(w, "exito.html", nil)
}

func (r *Render) Failure(w io.Writer, msg string) {
	r.execute(w, "error.html", map[string]string{"Message": msg})
}

func (r *Render) execute(w io.Writer, name string, data any) {
	if r.tmpl == nil {
		r.logger.Error("templates not loaded", slog.String("template", name))
		return
	}
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.logger.Error("failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
	}
}
