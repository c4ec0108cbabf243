// Package catalog is the product listing and filter engine.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	apperrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

type Service struct {
	repo Repo
	logg *logger.Logger
}

func NewService(repo Repo, logg *logger.Logger) *Service {
	return &Service{repo: repo, logg: logg}
}

// List returns products newest first, filtered per the portal/public rules.
func (s *Service) List(ctx context.Context, filter Filter) ([]models.Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "listing products")
	}
	return products, nil
}

// Get loads one product by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "loading product")
	}
	if product == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "product not found")
	}
	return product, nil
}

// Create persists a new listing.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Product, error) {
	if input.Price.IsNegative() {
		return nil, apperrors.New(apperrors.CodeValidation, "price must not be negative")
	}

	product := &models.Product{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Images:         pq.StringArray(input.Images),
		Material:       input.Material,
		ManufacturerID: input.ManufacturerID,
		ShopName:       input.ShopName,
		Colors:         pq.StringArray(input.Colors),
		IsVerified:     input.IsVerified,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "creating product")
	}

	s.logg.Info(s.logg.WithField(ctx, "product_id", product.ID), "product created")
	return product, nil
}

// Update applies a partial patch to a listing.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*models.Product, error) {
	columns := map[string]any{}
	if input.Name != nil {
		columns["name"] = *input.Name
	}
	if input.Description != nil {
		columns["description"] = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.New(apperrors.CodeValidation, "price must not be negative")
		}
		columns["price"] = *input.Price
	}
	if input.Images != nil {
		columns["images"] = pq.StringArray(*input.Images)
	}
	if input.Material != nil {
		columns["material"] = *input.Material
	}
	if input.ShopName != nil {
		columns["shop_name"] = *input.ShopName
	}
	if input.Colors != nil {
		columns["colors"] = pq.StringArray(*input.Colors)
	}
	if input.IsVerified != nil {
		columns["is_verified"] = *input.IsVerified
	}
	if len(columns) == 0 {
		return s.Get(ctx, id)
	}

	product, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "updating product")
	}
	if product == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "product not found")
	}
	return product, nil
}

// Delete removes a listing.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "product not found")
		}
		return apperrors.Wrap(apperrors.CodeDependency, err, "deleting product")
	}
	return nil
}

// SellerProductIDs exposes the ID set used by order filtering.
func (s *Service) SellerProductIDs(ctx context.Context, sellerID string) ([]string, error) {
	return s.repo.SellerProductIDs(ctx, sellerID)
}

// Count reports how many listings a seller has (all sellers when empty).
func (s *Service) Count(ctx context.Context, sellerID string) (int64, error) {
	return s.repo.Count(ctx, sellerID)
}
