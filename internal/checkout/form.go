package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"tiendita/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var formRejectionsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "checkout_form_rejections_total",
	Help: "Total number of checkout forms rejected by validation",
})

const msgLast4 = "must contain only the last 4 digits of the card"

type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	validate := validator.New()

	// report errors under the names the form actually posts
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &FormValidator{validate: validate}
}

// Parse validates the raw form and types it into a CheckoutSubmission.
// It has no side effects; on failure the returned error is a FieldErrors.
func (v *FormValidator) Parse(form domain.CheckoutForm) (domain.CheckoutSubmission, error) {
	var fieldErrs FieldErrors

	if err := v.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.CheckoutSubmission{}, err
		}
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: tagMessage(fe)})
		}
	}

	// an empty field is already reported by the required tag
	if form.Ultimos4 != "" && (!isDigits(form.Ultimos4) || len(form.Ultimos4) != 4) {
		fieldErrs = append(fieldErrs, FieldError{Field: "ultimos_4_digitos", Message: msgLast4})
	}

	if month, err := strconv.Atoi(form.ExpM); err == nil && (month < 1 || month > 12) {
		fieldErrs = append(fieldErrs, FieldError{Field: "EXP_M", Message: "month must be between 01 and 12"})
	}

	if len(fieldErrs) > 0 {
		formRejectionsCounter.Inc()
		return domain.CheckoutSubmission{}, fieldErrs
	}

	currency := domain.Currency(form.Moneda)
	if currency == "" {
		currency = domain.CurrencyCOP
	}
	country := form.Pais
	if country == "" {
		country = "Colombia"
	}

	return domain.CheckoutSubmission{
		Card: domain.CardDetails{
			PAN1:   form.PAN1,
			PAN2:   form.PAN2,
			PAN3:   form.PAN3,
			PAN4:   form.PAN4,
			CVS:    form.CVS,
			ExpM:   form.ExpM,
			ExpY:   form.ExpY,
			Holder: form.Titular,
			Last4:  form.Ultimos4,
			Brand:  form.MarcaTarjeta,
		},
		Billing: domain.BillingAddress{
			Street:     form.Direccion,
			City:       form.Ciudad,
			Department: form.Departamento,
			PostalCode: form.CodigoPostal,
			Country:    country,
		},
		Currency:       currency,
		IdempotencyKey: form.IdempotencyKey,
	}, nil
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "number":
		return "must contain only digits"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
