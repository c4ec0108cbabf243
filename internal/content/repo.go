package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
)

// SingletonID keys the single configuration row.
const SingletonID = "site-content"

// Repo persists the site configuration document.
type Repo interface {
	Latest(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

type gormRepo struct {
	client *db.Client
}

// NewRepo builds the GORM-backed configuration repository.
func NewRepo(client *db.Client) Repo {
	return &gormRepo{client: client}
}

func (r *gormRepo) Latest(ctx context.Context) (*Document, error) {
	var row models.SiteContent
	err := r.client.DB().WithContext(ctx).
		Order("updated_at DESC").
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("loading site content: %w", err)
	}
	return fromModel(&row)
}

func (r *gormRepo) Save(ctx context.Context, doc *Document) error {
	row, err := toModel(doc)
	if err != nil {
		return err
	}
	err = r.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
	if err != nil {
		return fmt.Errorf("saving site content: %w", err)
	}
	return nil
}

func fromModel(row *models.SiteContent) (*Document, error) {
	doc := &Document{
		SiteName:           row.SiteName,
		NotificationEmails: []string(row.NotificationEmails),
		PartnerEmails:      []string(row.PartnerEmails),
		SareeTypes:         []string(row.SareeTypes),
		CheckoutSettings: CheckoutSettings{
			IsCODEnabled:          row.CODEnabled,
			FreeShippingThreshold: row.FreeShippingThreshold,
			ShippingCharge:        row.ShippingCharge,
			EstimatedDeliveryDays: row.EstimatedDeliveryDays,
		},
	}
	if len(row.Document) > 0 {
		var extra map[string]json.RawMessage
		if err := json.Unmarshal(row.Document, &extra); err != nil {
			return nil, fmt.Errorf("decoding site content document: %w", err)
		}
		doc.Extra = extra
	}
	return doc, nil
}

func toModel(doc *Document) (*models.SiteContent, error) {
	var blob []byte
	if len(doc.Extra) > 0 {
		encoded, err := json.Marshal(doc.Extra)
		if err != nil {
			return nil, fmt.Errorf("encoding site content document: %w", err)
		}
		blob = encoded
	}
	return &models.SiteContent{
		ID:                    SingletonID,
		SiteName:              doc.SiteName,
		NotificationEmails:    pq.StringArray(doc.NotificationEmails),
		PartnerEmails:         pq.StringArray(doc.PartnerEmails),
		SareeTypes:            pq.StringArray(doc.SareeTypes),
		CODEnabled:            doc.CheckoutSettings.IsCODEnabled,
		FreeShippingThreshold: doc.CheckoutSettings.FreeShippingThreshold,
		ShippingCharge:        doc.CheckoutSettings.ShippingCharge,
		EstimatedDeliveryDays: doc.CheckoutSettings.EstimatedDeliveryDays,
		Document:              blob,
	}, nil
}
