package domain

// CheckoutForm is the raw POST /pagar payload. Field names match the form
// the storefront has always submitted, so the tags are the wire contract.
// Monto carries the item id (a quirk kept from the storefront: the field the
// form calls "monto" is the catalog reference, never an amount - the amount
// is computed server side and is not accepted from the client).
type CheckoutForm struct {
	Monto          string `form:"monto"`
	PAN1           string `form:"PAN_1" validate:"required,len=4,number"`
	PAN2           string `form:"PAN_2" validate:"required,len=4,number"`
	PAN3           string `form:"PAN_3" validate:"required,len=4,number"`
	PAN4           string `form:"PAN_4" validate:"required,len=4,number"`
	CVS            string `form:"CVS" validate:"required,len=3,number"`
	ExpM           string `form:"EXP_M" validate:"required,len=2,number"`
	ExpY           string `form:"EXP_Y" validate:"required,len=2,number"`
	Titular        string `form:"titular" validate:"required,max=100"`
	Ultimos4       string `form:"ultimos_4_digitos" validate:"required"`
	MarcaTarjeta   string `form:"marca_tarjeta" validate:"omitempty,max=20"`
	Direccion      string `form:"direccion" validate:"required,max=255"`
	Ciudad         string `form:"ciudad" validate:"required,max=100"`
	Departamento   string `form:"departamento" validate:"required,max=100"`
	CodigoPostal   string `form:"codigo_postal" validate:"required,max=20"`
	Pais           string `form:"pais" validate:"omitempty,max=255"`
	Moneda         string `form:"moneda" validate:"omitempty,oneof=COP USD"`
	IdempotencyKey string `form:"idempotency_key" validate:"omitempty,max=100"`
}

// CheckoutSubmission is a CheckoutForm that passed validation. The last-4
// field is validated on shape only; it is deliberately not cross-checked
// against PAN4 (the systems feeding this service disagree on whether they
// must match).
type CheckoutSubmission struct {
	Card           CardDetails
	Billing        BillingAddress
	Currency       Currency
	IdempotencyKey string
}
