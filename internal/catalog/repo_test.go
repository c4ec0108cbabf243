package catalog

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
)

const createProductsTable = `
CREATE TABLE products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL,
  images TEXT NOT NULL DEFAULT '{}',
  material TEXT NOT NULL DEFAULT '',
  manufacturer_id TEXT NOT NULL,
  shop_name TEXT,
  colors TEXT NOT NULL DEFAULT '{}',
  is_verified BOOLEAN NOT NULL DEFAULT FALSE,
  created_at DATETIME NOT NULL,
  updated_at DATETIME NOT NULL
)`

func newTestRepo(t *testing.T, name string) Repo {
	t.Helper()

	cfg := config.DBConfig{SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}
	client, err := db.New(context.Background(), cfg, config.FeatureFlagsConfig{UseSQLite: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.DB().Exec(createProductsTable).Error)
	return NewRepo(client)
}

func seedProduct(t *testing.T, repo Repo, id, sellerID, material string, price int64, verified bool, createdAt time.Time) {
	t.Helper()
	product := &models.Product{
		ID:             id,
		Name:           "Saree " + id,
		Price:          decimal.NewFromInt(price),
		Material:       material,
		ManufacturerID: sellerID,
		IsVerified:     verified,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), product))
}

func TestListPublicShowsVerifiedOnlyNewestFirst(t *testing.T) {
	repo := newTestRepo(t, "catalog_public")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedProduct(t, repo, "p1", "seller-a", "Pure Silk", 1500, true, base)
	seedProduct(t, repo, "p2", "seller-a", "Cotton", 800, false, base.Add(time.Minute))
	seedProduct(t, repo, "p3", "seller-b", "Pure Silk", 3200, true, base.Add(2*time.Minute))

	products, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p3", products[0].ID)
	assert.Equal(t, "p1", products[1].ID)
}

func TestListSellerIncludesDrafts(t *testing.T) {
	repo := newTestRepo(t, "catalog_seller")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedProduct(t, repo, "p1", "seller-a", "Pure Silk", 1500, true, base)
	seedProduct(t, repo, "p2", "seller-a", "Cotton", 800, false, base.Add(time.Minute))
	seedProduct(t, repo, "p3", "seller-b", "Pure Silk", 3200, true, base.Add(2*time.Minute))

	products, err := repo.List(context.Background(), Filter{SellerID: "seller-a"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p2", products[0].ID)
	assert.False(t, products[0].IsVerified)
}

func TestListFiltersMaterialAndPriceInclusive(t *testing.T) {
	repo := newTestRepo(t, "catalog_filters")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedProduct(t, repo, "p1", "seller-a", "Pure Silk", 1000, true, base)
	seedProduct(t, repo, "p2", "seller-a", "Pure Silk", 2000, true, base.Add(time.Minute))
	seedProduct(t, repo, "p3", "seller-a", "Cotton", 1500, true, base.Add(2*time.Minute))

	minPrice := decimal.NewFromInt(1000)
	maxPrice := decimal.NewFromInt(2000)
	products, err := repo.List(context.Background(), Filter{
		Material: "Pure Silk",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Pure Silk", p.Material)
	}
}

func TestUpdatePatchesOnlyGivenColumns(t *testing.T) {
	repo := newTestRepo(t, "catalog_update")
	seedProduct(t, repo, "p1", "seller-a", "Pure Silk", 1000, false, time.Now().UTC())

	updated, err := repo.Update(context.Background(), "p1", map[string]any{"is_verified": true})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, "Saree p1", updated.Name)

	missing, err := repo.Update(context.Background(), "nope", map[string]any{"is_verified": true})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteMissingProductReturnsNotFound(t *testing.T) {
	repo := newTestRepo(t, "catalog_delete")
	seedProduct(t, repo, "p1", "seller-a", "Pure Silk", 1000, true, time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), "p1"))
	require.Error(t, repo.Delete(context.Background(), "p1"))
}

func TestSellerProductIDs(t *testing.T) {
	repo := newTestRepo(t, "catalog_ids")
	base := time.Now().UTC()
	seedProduct(t, repo, "p1", "seller-a", "Pure Silk", 1000, true, base)
	seedProduct(t, repo, "p2", "seller-a", "Cotton", 900, false, base)
	seedProduct(t, repo, "p3", "seller-b", "Cotton", 900, true, base)

	ids, err := repo.SellerProductIDs(context.Background(), "seller-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids)
}
