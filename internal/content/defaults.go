package content

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// defaultExtra carries the storefront presentation blocks served before an
// admin has saved anything. The backend never reads these keys.
const defaultExtra = `{
  "hero": {
    "title": "Weaving Heritage",
    "subtitle": "Authentic Elampillai silk sarees, woven with passion and tradition. Direct from the loom to your home.",
    "backgroundImage": "/hero-saree.png"
  },
  "footer": {
    "address": "Elampillai, Salem District, Tamil Nadu - 637502",
    "contactEmail": "info@nammaelampillai.com",
    "contactPhone": "+91 98765 43210"
  },
  "logo": "",
  "paymentQR": "/gpay-qr.png"
}`

// Defaults returns the compiled-in site configuration used whenever the
// content store has no row or is unreachable.
func Defaults() *Document {
	var extra map[string]json.RawMessage
	// compile-time constant, cannot fail
	_ = json.Unmarshal([]byte(defaultExtra), &extra)

	return &Document{
		SiteName: "Namma Elampillai",
		NotificationEmails: []string{
			"info.nammaelampillai@gmail.com",
			"ragavan.aero27@gmail.com",
		},
		PartnerEmails: []string{"partner@namma.com"},
		SareeTypes: []string{
			"Pure Silk",
			"Art Silk",
			"Soft Silk",
			"Cotton",
			"Cotton Mix",
			"Marriage Silk",
			"Fancy Silk",
			"Tissue Silk",
		},
		CheckoutSettings: CheckoutSettings{
			IsCODEnabled:          true,
			FreeShippingThreshold: decimal.NewFromInt(2000),
			ShippingCharge:        decimal.NewFromInt(100),
			EstimatedDeliveryDays: "5-7 Days",
		},
		Extra: extra,
	}
}
