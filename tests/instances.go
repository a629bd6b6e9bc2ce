package tests

import (
	"tiendita/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ItemMascaras = domain.Item{
		ID:    1,
		Name:  "Mascaras",
		Price: decimal.RequireFromString("100"),
	}

	ItemAudifonos = domain.Item{
		ID:    2,
		Name:  "Audifonos",
		Price: decimal.RequireFromString("199.99"),
	}

	ItemCamiseta = domain.Item{
		ID:    3,
		Name:  "Camiseta",
		Price: decimal.RequireFromString("50"),
	}

	ValidForm = domain.CheckoutForm{
		Monto:        "1",
		PAN1:         "4111",
		PAN2:         "1111",
		PAN3:         "1111",
		PAN4:         "1111",
		CVS:          "123",
		ExpM:         "12",
		ExpY:         "27",
		Titular:      "Juan Perez",
		Ultimos4:     "1111",
		MarcaTarjeta: "VISA",
		Direccion:    "Calle 10 # 5-23",
		Ciudad:       "Bogota",
		Departamento: "Cundinamarca",
		CodigoPostal: "110111",
	}

	ValidSubmission = domain.CheckoutSubmission{
		Card: domain.CardDetails{
			PAN1:   "4111",
			PAN2:   "1111",
			PAN3:   "1111",
			PAN4:   "1111",
			CVS:    "123",
			ExpM:   "12",
			ExpY:   "27",
			Holder: "Juan Perez",
			Last4:  "1111",
			Brand:  "VISA",
		},
		Billing: domain.BillingAddress{
			Street:     "Calle 10 # 5-23",
			City:       "Bogota",
			Department: "Cundinamarca",
			PostalCode: "110111",
			Country:    "Colombia",
		},
		Currency: domain.CurrencyCOP,
	}
)
