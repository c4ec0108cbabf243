package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is a saree listing owned by exactly one manufacturer. The first
// image is the main one shown on listing cards.
type Product struct {
	ID             string          `gorm:"column:id;primaryKey" json:"id"`
	Name           string          `gorm:"column:name;not null" json:"name"`
	Description    string          `gorm:"column:description;not null" json:"description"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Images         pq.StringArray  `gorm:"column:images;type:text[]" json:"images"`
	Material       string          `gorm:"column:material;not null" json:"material"`
	ManufacturerID string          `gorm:"column:manufacturer_id;index;not null" json:"manufacturerId"`
	ShopName       *string         `gorm:"column:shop_name" json:"shopName,omitempty"`
	Colors         pq.StringArray  `gorm:"column:colors;type:text[]" json:"colors"`
	IsVerified     bool            `gorm:"column:is_verified;not null;default:false" json:"isVerified"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
