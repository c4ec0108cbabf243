package enums

// Payment method labels carried on orders. Free text by contract (the
// storefront sends human-readable labels), so these are conventions rather
// than an enforced enum.
const (
	PaymentMethodOnline         = "Online Payment (GPay)"
	PaymentMethodCashOnDelivery = "Cash on Delivery"
)
