package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SiteContent is the single-document site configuration. The columns below
// are the fields the backend itself consumes; everything the storefront UI
// renders (hero, footer, pages, media) passes through untouched in Document.
type SiteContent struct {
	ID                    string          `gorm:"column:id;primaryKey"`
	SiteName              string          `gorm:"column:site_name;not null"`
	NotificationEmails    pq.StringArray  `gorm:"column:notification_emails;type:text[]"`
	PartnerEmails         pq.StringArray  `gorm:"column:partner_emails;type:text[]"`
	SareeTypes            pq.StringArray  `gorm:"column:saree_types;type:text[]"`
	CODEnabled            bool            `gorm:"column:cod_enabled;not null;default:true"`
	FreeShippingThreshold decimal.Decimal `gorm:"column:free_shipping_threshold;type:numeric(12,2);not null"`
	ShippingCharge        decimal.Decimal `gorm:"column:shipping_charge;type:numeric(12,2);not null"`
	EstimatedDeliveryDays string          `gorm:"column:estimated_delivery_days;not null"`
	Document              []byte          `gorm:"column:document;type:jsonb"`
	CreatedAt             time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
