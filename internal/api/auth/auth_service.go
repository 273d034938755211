package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/petdirectory/demo-pet-api/config"
	"github.com/petdirectory/demo-pet-api/internal/api"
)

var _ AuthService = (*AuthServiceImpl)(nil)

// AuthService authenticates credentials and issues/verifies bearer tokens.
type AuthService interface {
	// Login authenticates the credential pair and mints an access token.
	Login(ctx context.Context, username, password string) (string, error)

	// IssueToken mints a signed, time-limited token for a verified identity.
	IssueToken(user *User) (string, error)

	// VerifyToken checks signature, expiry, issuer and audience. It is pure
	// over (token, key, clock) and safe for concurrent use.
	VerifyToken(tokenString string) (*Claims, error)
}

type AuthServiceImpl struct {
	logger *slog.Logger
	store  CredentialStore
	jwtCfg config.JWTConfig
}

func NewAuthService(store CredentialStore, jwtCfg config.JWTConfig, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger: logger,
		store:  store,
		jwtCfg: jwtCfg,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.WarnContext(ctx, "Credential check failed", slog.String("username", username))
		return "", fmt.Errorf("login failed: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

func (s *AuthServiceImpl) IssueToken(user *User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthServiceImpl) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, fmt.Errorf("token validation failed: %w", err)
		}
	}
	if !token.Valid {
		return nil, ErrTokenSignatureInvalid
	}

	if claims.Issuer != s.jwtCfg.Issuer {
		return nil, ErrTokenIssuerMismatch
	}
	if !api.VerifyAudience(claims.Audience, s.jwtCfg.Audience) {
		return nil, ErrTokenAudienceMismatch
	}

	return claims, nil
}
