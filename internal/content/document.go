package content

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CheckoutSettings are the storefront checkout rules the backend consumes.
type CheckoutSettings struct {
	IsCODEnabled          bool            `json:"isCodEnabled"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	ShippingCharge        decimal.Decimal `json:"shippingCharge"`
	EstimatedDeliveryDays string          `json:"estimatedDeliveryDays"`
}

// Document is the full site-content configuration. The typed fields are the
// ones the backend reads; every other key the admin UI stores (hero, footer,
// pages, media, feeds) round-trips through Extra untouched.
type Document struct {
	SiteName           string           `json:"-"`
	NotificationEmails []string         `json:"-"`
	PartnerEmails      []string         `json:"-"`
	SareeTypes         []string         `json:"-"`
	CheckoutSettings   CheckoutSettings `json:"-"`

	Extra map[string]json.RawMessage `json:"-"`
}

type documentCore struct {
	SiteName           string           `json:"siteName"`
	NotificationEmails []string         `json:"notificationEmails"`
	PartnerEmails      []string         `json:"partnerEmails"`
	SareeTypes         []string         `json:"sareeTypes"`
	CheckoutSettings   CheckoutSettings `json:"checkoutSettings"`
}

var coreKeys = map[string]bool{
	"siteName":           true,
	"notificationEmails": true,
	"partnerEmails":      true,
	"sareeTypes":         true,
	"checkoutSettings":   true,
}

// MarshalJSON merges the typed fields with the passthrough keys.
func (d Document) MarshalJSON() ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(d.Extra)+5)
	for key, value := range d.Extra {
		if !coreKeys[key] {
			merged[key] = value
		}
	}

	core := documentCore{
		SiteName:           d.SiteName,
		NotificationEmails: d.NotificationEmails,
		PartnerEmails:      d.PartnerEmails,
		SareeTypes:         d.SareeTypes,
		CheckoutSettings:   d.CheckoutSettings,
	}
	coreJSON, err := json.Marshal(core)
	if err != nil {
		return nil, err
	}
	var coreMap map[string]json.RawMessage
	if err := json.Unmarshal(coreJSON, &coreMap); err != nil {
		return nil, err
	}
	for key, value := range coreMap {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// UnmarshalJSON splits the incoming document into typed fields plus the
// passthrough remainder.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var core documentCore
	if err := json.Unmarshal(data, &core); err != nil {
		return err
	}

	extra := make(map[string]json.RawMessage)
	for key, value := range raw {
		if !coreKeys[key] {
			extra[key] = value
		}
	}

	d.SiteName = core.SiteName
	d.NotificationEmails = core.NotificationEmails
	d.PartnerEmails = core.PartnerEmails
	d.SareeTypes = core.SareeTypes
	d.CheckoutSettings = core.CheckoutSettings
	d.Extra = extra
	return nil
}
