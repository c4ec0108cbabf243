package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
)

// Repo is the primary order store.
type Repo interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, productIDs []string, filterBySeller bool) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (*models.Order, error)
}

type gormRepo struct {
	client *db.Client
}

// NewRepo builds the GORM-backed primary order repository.
func NewRepo(client *db.Client) Repo {
	return &gormRepo{client: client}
}

func (r *gormRepo) Create(ctx context.Context, order *models.Order) error {
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
	}
	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}
	return nil
}

func (r *gormRepo) List(ctx context.Context, productIDs []string, filterBySeller bool) ([]models.Order, error) {
	query := r.client.DB().WithContext(ctx).Model(&models.Order{})
	if filterBySeller {
		query = query.Where(
			"id IN (?)",
			r.client.DB().Model(&models.OrderItem{}).
				Select("order_id").
				Where("product_id IN ?", productIDs),
		)
	}

	var orders []models.Order
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

func (r *gormRepo) UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (*models.Order, error) {
	result := r.client.DB().WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("updating order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var order models.Order
	err := r.client.DB().WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&order, "id = ?", orderID).Error
	if err != nil {
		return nil, fmt.Errorf("reloading order %s: %w", orderID, err)
	}
	return &order, nil
}
