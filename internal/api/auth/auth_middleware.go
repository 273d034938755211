package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/petdirectory/demo-pet-api/app/observability/metrics"
	"github.com/petdirectory/demo-pet-api/internal/api"
)

// Define typed context keys
type contextKey string

const SubjectKey contextKey = "subject"
const RoleKey contextKey = "role"

// TokenVerifier is the part of AuthService the middleware needs.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*Claims, error)
}

// Authenticate is middleware to validate JWT access tokens on protected
// operations. Each verification failure maps to its own 401 message.
func Authenticate(logger *slog.Logger, verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := logger.With(slog.String("middleware", "Authenticate"))

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				l.WarnContext(ctx, "Missing Authorization header")
				api.ErrorResponse(w, r, http.StatusUnauthorized, "Authorization header required")
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				l.WarnContext(ctx, "Invalid Authorization header format")
				api.ErrorResponse(w, r, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
				return
			}
			tokenString := headerParts[1]

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				l.WarnContext(ctx, "Token verification failed", slog.Any("error", err))
				metrics.Get().TokenVerifyFailedTotal.Add(ctx, 1, metric.WithAttributes(
					attribute.String("reason", verifyFailureReason(err)),
				))
				api.ErrorResponse(w, r, http.StatusUnauthorized, verifyFailureMessage(err))
				return
			}

			ctx = context.WithValue(ctx, SubjectKey, claims.Subject)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			l.DebugContext(ctx, "Authentication successful", slog.String("subject", claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, ErrTokenSignatureInvalid):
		return "Invalid token signature"
	case errors.Is(err, ErrTokenMalformed):
		return "Malformed token"
	case errors.Is(err, ErrTokenIssuerMismatch):
		return "Invalid token issuer"
	case errors.Is(err, ErrTokenAudienceMismatch):
		return "Invalid token audience"
	default:
		return "Invalid or expired token"
	}
}

func verifyFailureReason(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenSignatureInvalid):
		return "signature"
	case errors.Is(err, ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, ErrTokenIssuerMismatch):
		return "issuer"
	case errors.Is(err, ErrTokenAudienceMismatch):
		return "audience"
	default:
		return "other"
	}
}

// Helper functions to get claims from context
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
