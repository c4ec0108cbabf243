// Package orders implements the order store abstraction: a primary database
// write with a local JSON file fallback, plus the notification hooks around
// order creation and status changes.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/nammaelampillai-official/namma-elampillai/internal/mailer"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	apperrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/metrics"
)

// SellerCatalog resolves a seller's product ID set for order filtering.
type SellerCatalog interface {
	SellerProductIDs(ctx context.Context, sellerID string) ([]string, error)
	Count(ctx context.Context, sellerID string) (int64, error)
}

// Notifier is the outbound notification surface.
type Notifier interface {
	Dispatch(ctx context.Context, kind enums.NotificationKind, payload mailer.Payload) mailer.DeliveryResult
}

// persistResult tags a successful write with the store that accepted it.
type persistResult struct {
	order *models.Order
	store string
}

type Service struct {
	primary  Repo
	fallback *FileStore
	catalog  SellerCatalog
	notifier Notifier
	metrics  *metrics.OrderMetrics
	logg     *logger.Logger

	now func() time.Time
}

func NewService(primary Repo, fallback *FileStore, catalog SellerCatalog, notifier Notifier, m *metrics.OrderMetrics, logg *logger.Logger) *Service {
	return &Service{
		primary:  primary,
		fallback: fallback,
		catalog:  catalog,
		notifier: notifier,
		metrics:  m,
		logg:     logg,
		now:      time.Now,
	}
}

// Create validates and persists a checkout submission. The primary store is
// always tried first; on any primary failure the same normalized order goes to
// the fallback file under an offline ID. Exactly one store ends up with the
// order. Creation emails are awaited but their failure never fails the order.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Order, error) {
	if missing := input.missingFields(); len(missing) > 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "missing required order fields").
			WithDetails(map[string]any{"missingFields": missing})
	}

	result, err := s.persist(ctx, input)
	if err != nil {
		return nil, err
	}
	s.metrics.IncPersisted(result.store)

	ctx = s.logg.WithOrderID(ctx, result.order.ID)
	s.logg.Info(s.logg.WithField(ctx, "store", result.store), "order persisted")

	// awaited on purpose: the storefront confirmation page reads the
	// response only after the admin notice had its chance to go out
	s.notifier.Dispatch(ctx, enums.NotificationOrderCreated, mailer.Payload{Order: result.order})

	return result.order, nil
}

func (s *Service) persist(ctx context.Context, input CreateInput) (persistResult, error) {
	order := input.toOrder(uuid.NewString())
	primaryErr := s.primary.Create(ctx, order)
	if primaryErr == nil {
		return persistResult{order: order, store: metrics.StorePrimary}, nil
	}

	s.logg.Warn(
		s.logg.WithField(ctx, "error", primaryErr.Error()),
		"primary order write failed, using fallback store",
	)

	now := s.now()
	offline := input.toOrder(fmt.Sprintf("%s%d", models.OfflineIDPrefix, now.UnixMilli()))
	offline.CreatedAt = now
	offline.UpdatedAt = now

	if fallbackErr := s.fallback.Create(offline); fallbackErr != nil {
		return persistResult{}, apperrors.Wrap(
			apperrors.CodeDependency,
			multierr.Combine(primaryErr, fallbackErr),
			"order could not be persisted to any store",
		)
	}
	return persistResult{order: offline, store: metrics.StoreFallback}, nil
}

// List returns orders newest first. A seller filter restricts the listing to
// orders containing that seller's products. When the primary store fails,
// including the seller product lookup it needs, the fallback file is served
// instead, tagged so the caller can say so.
func (s *Service) List(ctx context.Context, filter ListFilter) (*ListResult, error) {
	bySeller := filter.SellerID != ""
	var productIDs []string
	var primaryErr error
	if bySeller {
		productIDs, primaryErr = s.catalog.SellerProductIDs(ctx, filter.SellerID)
		if primaryErr != nil {
			s.logg.Warn(
				s.logg.WithField(ctx, "error", primaryErr.Error()),
				"seller product lookup failed, serving fallback store",
			)
		}
	}

	if primaryErr == nil {
		var orders []models.Order
		orders, primaryErr = s.primary.List(ctx, productIDs, bySeller)
		if primaryErr == nil {
			return &ListResult{Orders: orders, Source: metrics.StorePrimary}, nil
		}
		s.logg.Warn(
			s.logg.WithField(ctx, "error", primaryErr.Error()),
			"primary order listing failed, serving fallback store",
		)
	}

	fallbackOrders, fallbackErr := s.fallback.List()
	if fallbackErr != nil {
		return nil, apperrors.Wrap(
			apperrors.CodeDependency,
			multierr.Combine(primaryErr, fallbackErr),
			"orders unavailable from any store",
		)
	}
	if bySeller {
		fallbackOrders = filterBySellerProducts(fallbackOrders, productIDs)
	}
	return &ListResult{Orders: fallbackOrders, Source: metrics.StoreFallback}, nil
}

// filterBySellerProducts keeps orders containing at least one of the given
// product IDs. Used on the fallback path where there is no query engine. An
// unresolvable product set matches nothing rather than leaking other sellers'
// orders.
func filterBySellerProducts(orders []models.Order, productIDs []string) []models.Order {
	idSet := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		idSet[id] = true
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		for _, item := range order.Items {
			if idSet[item.ProductID] {
				filtered = append(filtered, order)
				break
			}
		}
	}
	return filtered
}

// UpdateStatus persists a status change, trying the primary store first and
// the fallback file second. The status value is persisted as given. The
// status email goes out fire-and-forget.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (*models.Order, error) {
	ctx = s.logg.WithOrderID(ctx, orderID)

	order, primaryErr := s.primary.UpdateStatus(ctx, orderID, status)
	if primaryErr != nil {
		s.logg.Warn(
			s.logg.WithField(ctx, "error", primaryErr.Error()),
			"primary status update failed, trying fallback store",
		)
	}
	if primaryErr == nil && order != nil {
		s.notifyStatusChange(ctx, order)
		return order, nil
	}

	fallbackOrder, found, fallbackErr := s.fallback.UpdateStatus(orderID, status)
	if fallbackErr != nil {
		if primaryErr != nil {
			return nil, apperrors.Wrap(
				apperrors.CodeDependency,
				multierr.Combine(primaryErr, fallbackErr),
				"status update failed in every store",
			)
		}
		return nil, apperrors.Wrap(apperrors.CodeDependency, fallbackErr, "updating fallback order")
	}
	if !found {
		return nil, apperrors.New(apperrors.CodeNotFound, "order not found")
	}

	s.notifyStatusChange(ctx, fallbackOrder)
	return fallbackOrder, nil
}

func (s *Service) notifyStatusChange(ctx context.Context, order *models.Order) {
	detached := context.WithoutCancel(ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logg.Warn(detached, "status notification panicked")
			}
		}()
		s.notifier.Dispatch(detached, enums.NotificationOrderStatusChange, mailer.Payload{
			Order:  order,
			Status: order.Status,
		})
	}()
}

// Stats aggregates the admin dashboard numbers through the same
// fallback-aware listing path.
func (s *Service) Stats(ctx context.Context, sellerID string) (*Stats, error) {
	result, err := s.List(ctx, ListFilter{SellerID: sellerID})
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalOrders: len(result.Orders)}
	for _, order := range result.Orders {
		switch order.Status {
		case enums.OrderStatusPending:
			stats.PendingOrders++
		case enums.OrderStatusConfirmed, enums.OrderStatusShipped, enums.OrderStatusDelivered:
			stats.Revenue = stats.Revenue.Add(order.TotalAmount)
		}
	}

	count, err := s.catalog.Count(ctx, sellerID)
	if err != nil {
		s.logg.Warn(
			s.logg.WithField(ctx, "error", err.Error()),
			"product count unavailable, reporting zero",
		)
		count = 0
	}
	stats.TotalProducts = count
	return stats, nil
}
