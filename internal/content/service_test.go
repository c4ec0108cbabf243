package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/rs/zerolog"
)

type stubRepo struct {
	doc     *Document
	err     error
	saved   *Document
	saveErr error
	calls   int
}

func (s *stubRepo) Latest(ctx context.Context) (*Document, error) {
	s.calls++
	return s.doc, s.err
}

func (s *stubRepo) Save(ctx context.Context, doc *Document) error {
	s.saved = doc
	return s.saveErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled})
}

func TestGetReturnsDefaultsWhenStoreEmpty(t *testing.T) {
	svc := NewService(&stubRepo{}, testLogger())

	doc := svc.Get(context.Background())
	if doc.SiteName != "Namma Elampillai" {
		t.Fatalf("expected default site name, got %q", doc.SiteName)
	}
	if len(doc.SareeTypes) != 8 {
		t.Fatalf("expected 8 default saree types, got %d", len(doc.SareeTypes))
	}
	if !doc.CheckoutSettings.IsCODEnabled {
		t.Fatal("expected COD enabled by default")
	}
	if !doc.CheckoutSettings.FreeShippingThreshold.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected default threshold: %s", doc.CheckoutSettings.FreeShippingThreshold)
	}
}

func TestGetReturnsDefaultsWhenStoreFails(t *testing.T) {
	svc := NewService(&stubRepo{err: errors.New("connection refused")}, testLogger())

	doc := svc.Get(context.Background())
	if doc.SiteName != "Namma Elampillai" {
		t.Fatalf("expected defaults on store failure, got %q", doc.SiteName)
	}
}

func TestGetCachesStoredDocument(t *testing.T) {
	repo := &stubRepo{doc: &Document{SiteName: "Custom"}}
	svc := NewService(repo, testLogger())

	first := svc.Get(context.Background())
	second := svc.Get(context.Background())
	if first.SiteName != "Custom" || second.SiteName != "Custom" {
		t.Fatalf("expected stored document, got %q / %q", first.SiteName, second.SiteName)
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single store read, got %d", repo.calls)
	}
}

func TestSaveRefreshesCacheAndInvalidateDropsIt(t *testing.T) {
	repo := &stubRepo{doc: &Document{SiteName: "Old"}}
	svc := NewService(repo, testLogger())
	svc.Get(context.Background())

	if err := svc.Save(context.Background(), &Document{SiteName: "New"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if repo.saved == nil || repo.saved.SiteName != "New" {
		t.Fatal("expected document to be persisted")
	}
	if got := svc.Get(context.Background()).SiteName; got != "New" {
		t.Fatalf("expected cache refresh, got %q", got)
	}

	repo.doc = &Document{SiteName: "Reloaded"}
	svc.Invalidate()
	if got := svc.Get(context.Background()).SiteName; got != "Reloaded" {
		t.Fatalf("expected reload after invalidate, got %q", got)
	}
}

func TestSaveRejectsNilDocument(t *testing.T) {
	svc := NewService(&stubRepo{}, testLogger())
	if err := svc.Save(context.Background(), nil); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDocumentJSONRoundTripPreservesUnknownKeys(t *testing.T) {
	input := []byte(`{
		"siteName": "Namma Elampillai",
		"notificationEmails": ["a@b.com"],
		"partnerEmails": ["partner@namma.com"],
		"sareeTypes": ["Pure Silk"],
		"checkoutSettings": {
			"isCodEnabled": false,
			"freeShippingThreshold": 1500,
			"shippingCharge": 50,
			"estimatedDeliveryDays": "3-5 Days"
		},
		"hero": {"title": "Weaving Heritage"},
		"paymentQR": "/gpay-qr.png"
	}`)

	var doc Document
	if err := json.Unmarshal(input, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.CheckoutSettings.IsCODEnabled {
		t.Fatal("expected COD disabled")
	}
	if !doc.CheckoutSettings.FreeShippingThreshold.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected threshold: %s", doc.CheckoutSettings.FreeShippingThreshold)
	}
	if _, ok := doc.Extra["hero"]; !ok {
		t.Fatal("expected hero block in passthrough keys")
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round map[string]json.RawMessage
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	for _, key := range []string{"siteName", "checkoutSettings", "hero", "paymentQR"} {
		if _, ok := round[key]; !ok {
			t.Fatalf("missing %q after round trip", key)
		}
	}
}
