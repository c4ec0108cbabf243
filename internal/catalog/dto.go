package catalog

import "github.com/shopspring/decimal"

// Filter narrows a product listing. A SellerID switches the listing into
// portal mode where unverified drafts are visible.
type Filter struct {
	SellerID string
	Material string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// CreateInput carries a new listing from the portal.
type CreateInput struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Images         []string        `json:"images"`
	Material       string          `json:"material" validate:"required"`
	ManufacturerID string          `json:"manufacturerId" validate:"required"`
	ShopName       *string         `json:"shopName"`
	Colors         []string        `json:"colors"`
	IsVerified     bool            `json:"isVerified"`
}

// UpdateInput is a partial patch. Nil fields are left untouched.
type UpdateInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Images      *[]string        `json:"images"`
	Material    *string          `json:"material"`
	ShopName    *string          `json:"shopName"`
	Colors      *[]string        `json:"colors"`
	IsVerified  *bool            `json:"isVerified"`
}
