package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
)

// SessionClaims is the portal session token payload.
type SessionClaims struct {
	Role     string `json:"role"`
	SellerID string `json:"sellerId,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies portal session tokens.
type TokenIssuer struct {
	cfg config.JWTConfig
	now func() time.Time
}

func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	return &TokenIssuer{cfg: cfg, now: time.Now}
}

// Mint signs a session token for the granted identity.
func (t *TokenIssuer) Mint(email string, role enums.Role, sellerID string) (string, error) {
	now := t.now()
	claims := SessionClaims{
		Role:     string(role),
		SellerID: sellerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.Expiration())),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns its claims.
func (t *TokenIssuer) Verify(raw string) (*SessionClaims, error) {
	var claims SessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(t.cfg.Secret), nil
	}, jwt.WithIssuer(t.cfg.Issuer), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}
	if _, err := enums.ParseRole(claims.Role); err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}
	return &claims, nil
}
