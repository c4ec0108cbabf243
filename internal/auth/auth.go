// Package auth implements the portal access gate. It is a capability gate for
// the admin/partner back-office, not a real authentication system: one shared
// password, an allow-list of partner addresses, and a static seller mapping.
package auth

import (
	"context"
	"strings"

	"github.com/nammaelampillai-official/namma-elampillai/internal/mailer"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	apperrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

// DefaultPartnerSellers maps partner login addresses to their seller IDs.
// Partners without a mapping authenticate fine but see an empty catalog.
var DefaultPartnerSellers = map[string]string{
	"partner@namma.com": "mock_id_1",
}

// Credentials is a portal login attempt.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Grant is a successful authorization outcome.
type Grant struct {
	Role     enums.Role `json:"role"`
	SellerID string     `json:"sellerId,omitempty"`
	Token    string     `json:"token"`
}

// PartnerSource supplies the live partner allow-list.
type PartnerSource interface {
	PartnerEmails(ctx context.Context) []string
}

// Notifier is the outbound notification surface the gate uses.
type Notifier interface {
	Dispatch(ctx context.Context, kind enums.NotificationKind, payload mailer.Payload) mailer.DeliveryResult
}

// Service evaluates portal credentials and mints session tokens.
type Service struct {
	cfg      config.AuthConfig
	tokens   *TokenIssuer
	partners PartnerSource
	sellers  map[string]string
	notifier Notifier
	logg     *logger.Logger
}

func NewService(cfg config.AuthConfig, tokens *TokenIssuer, partners PartnerSource, notifier Notifier, logg *logger.Logger) *Service {
	return &Service{
		cfg:      cfg,
		tokens:   tokens,
		partners: partners,
		sellers:  DefaultPartnerSellers,
		notifier: notifier,
		logg:     logg,
	}
}

// Authorize checks the credentials against the gate rules and, on success,
// returns a grant with a session token. A login notice is fired in the
// background; its outcome never affects the login.
func (s *Service) Authorize(ctx context.Context, creds Credentials) (*Grant, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "email and password are required")
	}
	if creds.Password != s.cfg.SharedPassword {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "invalid credentials")
	}

	var role enums.Role
	switch {
	case strings.EqualFold(email, s.cfg.AdminEmail):
		role = enums.RoleAdmin
	case s.isPartner(ctx, email):
		role = enums.RolePartner
	default:
		return nil, apperrors.New(apperrors.CodeUnauthorized, "invalid credentials")
	}

	sellerID := s.sellers[email]
	token, err := s.tokens.Mint(email, role, sellerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "minting session token")
	}

	s.notifyLogin(ctx, email, role)

	ctx = s.logg.WithActorRole(ctx, string(role))
	s.logg.Info(s.logg.WithField(ctx, "email", email), "portal login granted")

	return &Grant{Role: role, SellerID: sellerID, Token: token}, nil
}

func (s *Service) isPartner(ctx context.Context, email string) bool {
	for _, allowed := range s.partners.PartnerEmails(ctx) {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return false
}

func (s *Service) notifyLogin(ctx context.Context, email string, role enums.Role) {
	if s.notifier == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logg.Warn(context.Background(), "login notification panicked")
			}
		}()
		s.notifier.Dispatch(context.WithoutCancel(ctx), enums.NotificationAdminLogin, mailer.Payload{
			Email: email,
			Role:  role,
		})
	}()
}
