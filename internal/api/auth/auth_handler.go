package auth

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/petdirectory/demo-pet-api/app/observability/metrics"
	"github.com/petdirectory/demo-pet-api/internal/api"
)

type AuthHandler struct {
	AuthService AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		AuthService: authService,
	}
}

// Login handles POST /api/Auth/JWT. Invalid credentials yield 404 with a
// "user not found" body; clients depend on that exact shape.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Login")
	defer span.End()

	l := h.logger.With(slog.String("method", "Login"))

	var req LoginRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode login request", slog.Any("error", err))
		span.SetStatus(codes.Error, "Bad request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		l.WarnContext(ctx, "Login rejected", slog.String("username", req.Username))
		span.SetStatus(codes.Error, "Invalid credentials")
		metrics.Get().LoginRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "rejected")))
		api.WriteJSONResponse(w, r, http.StatusNotFound, "user not found")
		return
	}

	l.InfoContext(ctx, "Login successful", slog.String("username", req.Username))
	span.SetStatus(codes.Ok, "Login successful")
	metrics.Get().LoginRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "accepted")))
	api.WriteJSONResponse(w, r, http.StatusOK, LoginResponse{Token: token})
}
