package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
)

const createOrderTables = `
CREATE TABLE orders (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL DEFAULT '',
  customer_phone TEXT NOT NULL,
  address TEXT NOT NULL,
  total_amount TEXT NOT NULL,
  payment_method TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME NOT NULL,
  updated_at DATETIME NOT NULL
);
CREATE TABLE order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  price_at_purchase TEXT NOT NULL
);`

func newOrderRepo(t *testing.T, name string) Repo {
	t.Helper()

	cfg := config.DBConfig{SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}
	client, err := db.New(context.Background(), cfg, config.FeatureFlagsConfig{UseSQLite: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.DB().Exec(createOrderTables).Error)
	return NewRepo(client)
}

func buildOrder(id string, createdAt time.Time, productIDs ...string) *models.Order {
	items := make([]models.OrderItem, 0, len(productIDs))
	for i, pid := range productIDs {
		items = append(items, models.OrderItem{
			Position:        i,
			ProductID:       pid,
			Quantity:        i + 1,
			PriceAtPurchase: decimal.NewFromInt(int64(500 + i*100)),
		})
	}
	return &models.Order{
		ID:            id,
		CustomerName:  "Priya",
		CustomerPhone: "9876543210",
		Address:       "Elampillai",
		Items:         items,
		TotalAmount:   decimal.NewFromInt(1600),
		PaymentMethod: enums.PaymentMethodCashOnDelivery,
		Status:        enums.OrderStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestRepoCreateThenListPreservesItemsNewestFirst(t *testing.T) {
	repo := newOrderRepo(t, "orders_list")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), buildOrder("o1", base, "p1", "p2", "p3")))
	require.NoError(t, repo.Create(context.Background(), buildOrder("o2", base.Add(time.Minute), "p9")))

	orders, err := repo.List(context.Background(), nil, false)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)

	items := orders[1].Items
	require.Len(t, items, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{items[0].ProductID, items[1].ProductID, items[2].ProductID})
	assert.True(t, items[1].PriceAtPurchase.Equal(decimal.NewFromInt(600)))
}

func TestRepoListFiltersBySellerProducts(t *testing.T) {
	repo := newOrderRepo(t, "orders_seller")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), buildOrder("o1", base, "p1")))
	require.NoError(t, repo.Create(context.Background(), buildOrder("o2", base.Add(time.Minute), "p9")))

	orders, err := repo.List(context.Background(), []string{"p1"}, true)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)

	none, err := repo.List(context.Background(), []string{}, true)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepoUpdateStatusRoundTripKeepsCreatedAt(t *testing.T) {
	repo := newOrderRepo(t, "orders_update")
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), buildOrder("o1", created, "p1")))

	updated, err := repo.UpdateStatus(context.Background(), "o1", enums.OrderStatusShipped)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, enums.OrderStatusShipped, updated.Status)

	orders, err := repo.List(context.Background(), nil, false)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, enums.OrderStatusShipped, orders[0].Status)
	assert.True(t, orders[0].CreatedAt.Equal(created), "created_at must not move on status updates")
	require.Len(t, orders[0].Items, 1)
}

func TestRepoUpdateStatusMissingOrder(t *testing.T) {
	repo := newOrderRepo(t, "orders_missing")
	order, err := repo.UpdateStatus(context.Background(), "nope", enums.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Nil(t, order)
}
