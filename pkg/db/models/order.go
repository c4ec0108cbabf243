package models

import (
	"strings"
	"time"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	"github.com/shopspring/decimal"
)

// OfflineIDPrefix marks orders that were persisted to the local fallback store
// instead of the primary database.
const OfflineIDPrefix = "offline_"

// Order is a customer order. The same shape is persisted to the primary
// database and, when the primary is unreachable, serialized into the fallback
// JSON file.
type Order struct {
	ID            string            `gorm:"column:id;primaryKey" json:"id"`
	CustomerName  string            `gorm:"column:customer_name;not null" json:"customerName"`
	CustomerEmail string            `gorm:"column:customer_email" json:"customerEmail"`
	CustomerPhone string            `gorm:"column:customer_phone;not null" json:"customerPhone"`
	Address       string            `gorm:"column:address;not null" json:"address"`
	Items         []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null" json:"totalAmount"`
	PaymentMethod string            `gorm:"column:payment_method;not null" json:"paymentMethod"`
	Status        enums.OrderStatus `gorm:"column:status;not null;default:pending" json:"status"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// OrderItem is a single line of an order. Price is captured at purchase time
// and never recomputed against the live catalog.
type OrderItem struct {
	ID              string          `gorm:"column:id;primaryKey" json:"-"`
	OrderID         string          `gorm:"column:order_id;index;not null" json:"-"`
	Position        int             `gorm:"column:position;not null" json:"-"`
	ProductID       string          `gorm:"column:product_id;not null" json:"product"`
	Quantity        int             `gorm:"column:quantity;not null;default:1" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"column:price_at_purchase;type:numeric(12,2);not null" json:"priceAtPurchase"`
}

// IsOffline reports whether the order was persisted to the fallback store.
func (o Order) IsOffline() bool {
	return strings.HasPrefix(o.ID, OfflineIDPrefix)
}
