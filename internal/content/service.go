package content

import (
	"context"
	"sync"

	apperrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

// Service serves the site configuration with a read-through cache. Reads
// never fail: when the store has no row or is unreachable the compiled
// defaults are returned instead.
type Service struct {
	repo Repo
	logg *logger.Logger

	mu     sync.RWMutex
	cached *Document
}

func NewService(repo Repo, logg *logger.Logger) *Service {
	return &Service{repo: repo, logg: logg}
}

// Get returns the current configuration, falling back to defaults when the
// store is empty or unavailable.
func (s *Service) Get(ctx context.Context) *Document {
	s.mu.RLock()
	if s.cached != nil {
		doc := s.cached
		s.mu.RUnlock()
		return doc
	}
	s.mu.RUnlock()

	doc, err := s.repo.Latest(ctx)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "site content unavailable, serving defaults")
		return Defaults()
	}
	if doc == nil {
		return Defaults()
	}

	s.mu.Lock()
	s.cached = doc
	s.mu.Unlock()
	return doc
}

// Save replaces the configuration document and refreshes the cache.
func (s *Service) Save(ctx context.Context, doc *Document) error {
	if doc == nil {
		return apperrors.New(apperrors.CodeValidation, "content document is required")
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return apperrors.Wrap(apperrors.CodeDependency, err, "persisting site content")
	}

	s.mu.Lock()
	s.cached = doc
	s.mu.Unlock()
	return nil
}

// Invalidate drops the cached document so the next read hits the store.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// NotificationRecipients lists the inboxes that receive operational mail.
func (s *Service) NotificationRecipients(ctx context.Context) []string {
	return s.Get(ctx).NotificationEmails
}

// PartnerEmails lists the addresses allowed to sign in as partners.
func (s *Service) PartnerEmails(ctx context.Context) []string {
	return s.Get(ctx).PartnerEmails
}

// SareeTypes lists the catalog material categories.
func (s *Service) SareeTypes(ctx context.Context) []string {
	return s.Get(ctx).SareeTypes
}

// Checkout returns the active checkout rules.
func (s *Service) Checkout(ctx context.Context) CheckoutSettings {
	return s.Get(ctx).CheckoutSettings
}
