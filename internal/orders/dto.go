package orders

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
)

// ItemInput is one cart line as submitted at checkout. The price is the
// purchase-time price and is persisted as given.
type ItemInput struct {
	ProductID       string
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// The storefront checkout posts items as {id, price, quantity}; the portal
// uses {product, priceAtPurchase, quantity}. Both spellings decode.
func (in *ItemInput) UnmarshalJSON(data []byte) error {
	var wire struct {
		Product         string          `json:"product"`
		ID              string          `json:"id"`
		Quantity        int             `json:"quantity"`
		PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
		Price           decimal.Decimal `json:"price"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	in.ProductID = wire.Product
	if in.ProductID == "" {
		in.ProductID = wire.ID
	}
	in.Quantity = wire.Quantity
	in.PriceAtPurchase = wire.PriceAtPurchase
	if in.PriceAtPurchase.IsZero() {
		in.PriceAtPurchase = wire.Price
	}
	return nil
}

// CreateInput is a checkout submission.
type CreateInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	Items         []ItemInput
	TotalAmount   decimal.Decimal
	PaymentMethod string
}

// The storefront checkout posts total and shippingAddress; totalAmount and
// address are accepted as well.
func (in *CreateInput) UnmarshalJSON(data []byte) error {
	var wire struct {
		CustomerName    string          `json:"customerName"`
		CustomerEmail   string          `json:"customerEmail"`
		CustomerPhone   string          `json:"customerPhone"`
		Address         string          `json:"address"`
		ShippingAddress string          `json:"shippingAddress"`
		Items           []ItemInput     `json:"items"`
		TotalAmount     decimal.Decimal `json:"totalAmount"`
		Total           decimal.Decimal `json:"total"`
		PaymentMethod   string          `json:"paymentMethod"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	in.CustomerName = wire.CustomerName
	in.CustomerEmail = wire.CustomerEmail
	in.CustomerPhone = wire.CustomerPhone
	in.Address = wire.Address
	if in.Address == "" {
		in.Address = wire.ShippingAddress
	}
	in.Items = wire.Items
	in.TotalAmount = wire.TotalAmount
	if in.TotalAmount.IsZero() {
		in.TotalAmount = wire.Total
	}
	in.PaymentMethod = wire.PaymentMethod
	return nil
}

// missingFields lists the required fields absent from the submission, in the
// order the storefront displays them.
func (in CreateInput) missingFields() []string {
	var missing []string
	if in.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if in.CustomerPhone == "" {
		missing = append(missing, "customerPhone")
	}
	if len(in.Items) == 0 {
		missing = append(missing, "items")
	}
	if in.TotalAmount.IsZero() {
		missing = append(missing, "totalAmount")
	}
	if in.PaymentMethod == "" {
		missing = append(missing, "paymentMethod")
	}
	return missing
}

// toOrder normalizes the submission into the persisted shape. Item order is
// preserved and prices are never recomputed.
func (in CreateInput) toOrder(id string) *models.Order {
	address := in.Address
	if address == "" {
		address = "No Address Provided"
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for i, item := range in.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, models.OrderItem{
			OrderID:         id,
			Position:        i,
			ProductID:       item.ProductID,
			Quantity:        quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return &models.Order{
		ID:            id,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Address:       address,
		Items:         items,
		TotalAmount:   in.TotalAmount,
		PaymentMethod: in.PaymentMethod,
		Status:        enums.OrderStatusPending,
	}
}

// ListFilter narrows an order listing to one seller's products.
type ListFilter struct {
	SellerID string
}

// ListResult tags the listing with the store that served it so the HTTP layer
// can surface a degraded-mode note.
type ListResult struct {
	Orders []models.Order
	Source string
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalOrders   int             `json:"totalOrders"`
	PendingOrders int             `json:"pendingOrders"`
	TotalProducts int64           `json:"totalProducts"`
	Revenue       decimal.Decimal `json:"revenue"`
}
