package catalog

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
)

// Repo is the product persistence surface.
type Repo interface {
	List(ctx context.Context, filter Filter) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, columns map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	SellerProductIDs(ctx context.Context, sellerID string) ([]string, error)
	Count(ctx context.Context, sellerID string) (int64, error)
}

type gormRepo struct {
	client *db.Client
}

// NewRepo builds the GORM-backed product repository.
func NewRepo(client *db.Client) Repo {
	return &gormRepo{client: client}
}

func (r *gormRepo) List(ctx context.Context, filter Filter) ([]models.Product, error) {
	query := r.client.DB().WithContext(ctx).Model(&models.Product{})

	// a seller sees their own drafts; the public listing is verified only
	if filter.SellerID != "" {
		query = query.Where("manufacturer_id = ?", filter.SellerID)
	} else {
		query = query.Where("is_verified = ?", true)
	}
	if filter.Material != "" {
		query = query.Where("material = ?", filter.Material)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

func (r *gormRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.client.DB().WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("loading product %s: %w", id, err)
	}
	return &product, nil
}

func (r *gormRepo) Create(ctx context.Context, product *models.Product) error {
	if product.Images == nil {
		product.Images = pq.StringArray{}
	}
	if product.Colors == nil {
		product.Colors = pq.StringArray{}
	}
	if err := r.client.DB().WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

func (r *gormRepo) Update(ctx context.Context, id string, columns map[string]any) (*models.Product, error) {
	result := r.client.DB().WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return nil, fmt.Errorf("updating product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *gormRepo) Delete(ctx context.Context, id string) error {
	result := r.client.DB().WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepo) SellerProductIDs(ctx context.Context, sellerID string) ([]string, error) {
	var ids []string
	err := r.client.DB().WithContext(ctx).
		Model(&models.Product{}).
		Where("manufacturer_id = ?", sellerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("listing seller product ids: %w", err)
	}
	return ids, nil
}

func (r *gormRepo) Count(ctx context.Context, sellerID string) (int64, error) {
	query := r.client.DB().WithContext(ctx).Model(&models.Product{})
	if sellerID != "" {
		query = query.Where("manufacturer_id = ?", sellerID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}
