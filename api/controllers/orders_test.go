package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nammaelampillai-official/namma-elampillai/internal/mailer"
	ordersvc "github.com/nammaelampillai-official/namma-elampillai/internal/orders"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

type stubOrderRepo struct {
	createErr error
	listErr   error
	orders    []models.Order
	created   *models.Order
}

func (s *stubOrderRepo) Create(_ context.Context, order *models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = order
	return nil
}

func (s *stubOrderRepo) List(context.Context, []string, bool) ([]models.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

func (s *stubOrderRepo) UpdateStatus(context.Context, string, enums.OrderStatus) (*models.Order, error) {
	return nil, nil
}

type stubSellerCatalog struct{}

func (stubSellerCatalog) SellerProductIDs(context.Context, string) ([]string, error) {
	return nil, nil
}

func (stubSellerCatalog) Count(context.Context, string) (int64, error) { return 0, nil }

type noopNotifier struct{}

func (noopNotifier) Dispatch(_ context.Context, kind enums.NotificationKind, _ mailer.Payload) mailer.DeliveryResult {
	return mailer.DeliveryResult{Kind: kind, Delivered: true}
}

func newOrdersService(t *testing.T, repo ordersvc.Repo) *ordersvc.Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled})
	fallback := ordersvc.NewFileStore(filepath.Join(t.TempDir(), "offline_orders.json"))
	return ordersvc.NewService(repo, fallback, stubSellerCatalog{}, noopNotifier{}, nil, logg)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled})
}

func orderBody() map[string]any {
	return map[string]any{
		"customerName":  "Priya",
		"customerPhone": "9876543210",
		"items": []map[string]any{
			{"product": "p1", "quantity": 1, "priceAtPurchase": 750},
		},
		"totalAmount":   850,
		"paymentMethod": "Cash on Delivery",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestOrdersCreateSuccess(t *testing.T) {
	svc := newOrdersService(t, &stubOrderRepo{})
	rec := postJSON(t, OrdersCreate(svc, testLogger()), http.MethodPost, "/api/orders", orderBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Success bool         `json:"success"`
		Data    models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Equal(t, enums.OrderStatusPending, envelope.Data.Status)
}

func TestOrdersCreateAcceptsStorefrontFieldNames(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newOrdersService(t, repo)
	body := map[string]any{
		"customerName":    "Priya",
		"customerEmail":   "priya@example.com",
		"customerPhone":   "9876543210",
		"shippingAddress": "12 Weaver Street, Elampillai, Tamil Nadu - 637502",
		"items": []map[string]any{
			{"id": "p1", "name": "Soft Silk Saree", "price": 750, "quantity": 2},
		},
		"total":         1600,
		"paymentMethod": "Online Payment (GPay)",
	}

	rec := postJSON(t, OrdersCreate(svc, testLogger()), http.MethodPost, "/api/orders", body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.created)
	require.Len(t, repo.created.Items, 1)
	assert.Equal(t, "p1", repo.created.Items[0].ProductID)
	assert.True(t, repo.created.Items[0].PriceAtPurchase.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, 2, repo.created.Items[0].Quantity)
	assert.True(t, repo.created.TotalAmount.Equal(decimal.NewFromInt(1600)))
	assert.Equal(t, "12 Weaver Street, Elampillai, Tamil Nadu - 637502", repo.created.Address)
}

func TestOrdersCreateMissingFields(t *testing.T) {
	svc := newOrdersService(t, &stubOrderRepo{})
	body := orderBody()
	delete(body, "customerPhone")
	delete(body, "paymentMethod")

	rec := postJSON(t, OrdersCreate(svc, testLogger()), http.MethodPost, "/api/orders", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details struct {
				MissingFields []string `json:"missingFields"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.ElementsMatch(t, []string{"customerPhone", "paymentMethod"}, envelope.Error.Details.MissingFields)
}

func TestOrdersCreateFallsBackWithOfflineID(t *testing.T) {
	svc := newOrdersService(t, &stubOrderRepo{createErr: errors.New("connection refused")})
	rec := postJSON(t, OrdersCreate(svc, testLogger()), http.MethodPost, "/api/orders", orderBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.IsOffline())
}

func TestOrdersListCarriesFallbackNote(t *testing.T) {
	svc := newOrdersService(t, &stubOrderRepo{listErr: errors.New("connection refused")})
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	OrdersList(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Success bool   `json:"success"`
		Note    string `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, fallbackNote, envelope.Note)
}

func TestOrdersListPrimaryHasNoNote(t *testing.T) {
	svc := newOrdersService(t, &stubOrderRepo{orders: []models.Order{{ID: "o1", TotalAmount: decimal.NewFromInt(100)}}})
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	OrdersList(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	_, hasNote := raw["note"]
	assert.False(t, hasNote)
}

func TestOrdersUpdateStatusUnknownOrder(t *testing.T) {
	svc := newOrdersService(t, &stubOrderRepo{})
	rec := postJSON(t, OrdersUpdateStatus(svc, testLogger()), http.MethodPatch, "/api/orders", map[string]any{
		"orderId": "nope",
		"status":  "shipped",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestOrdersUpdateStatusRequiresBodyFields(t *testing.T) {
	svc := newOrdersService(t, &stubOrderRepo{})
	rec := postJSON(t, OrdersUpdateStatus(svc, testLogger()), http.MethodPatch, "/api/orders", map[string]any{
		"orderId": "o1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
