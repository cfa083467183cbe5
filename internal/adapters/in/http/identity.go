package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenExpiry is the lifetime of tokens minted by IssueToken.
const TokenExpiry = 24 * time.Hour

// Claims carries the acting user in the registered "sub" claim and the
// platform role in "role".
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var _ ports.IdentityProvider = (*JWTIdentityProvider)(nil)

// JWTIdentityProvider resolves actors from HS256 signed bearer tokens.
type JWTIdentityProvider struct {
	secret []byte
	now    func() time.Time
}

func NewJWTIdentityProvider(secret string) (*JWTIdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTIdentityProvider{secret: []byte(secret), now: time.Now}, nil
}

func (p *JWTIdentityProvider) ResolveActor(_ context.Context, bearerToken string) (workflow.Actor, error) {
	token, err := jwt.ParseWithClaims(bearerToken, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if err != nil {
		return workflow.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return workflow.Actor{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return workflow.Actor{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	role, err := workflow.ParseRole(claims.Role)
	if err != nil {
		return workflow.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return workflow.NewActor(id, role)
}

// IssueToken signs a token for actor. Token issuance belongs to the account
// service; this exists for local development and tests.
func (p *JWTIdentityProvider) IssueToken(actor workflow.Actor, ttl time.Duration) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}
	now := p.now()
	claims := Claims{
		Role: actor.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
