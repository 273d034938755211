package petadmin

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/petdirectory/demo-pet-api/app/observability/metrics"
	"github.com/petdirectory/demo-pet-api/internal/api"
	"github.com/petdirectory/demo-pet-api/internal/api/auth"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewAdminHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Submit handles POST /api/PetAdmin/Submit. The request is validated and
// acknowledged but never persisted.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AdminHandler").Start(r.Context(), "Submit")
	defer span.End()

	l := h.logger.With(slog.String("method", "Submit"))

	var req SubmitRequest
	if err := api.DecodeJSONBodyLenient(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode submission", slog.Any("error", err))
		span.SetStatus(codes.Error, "Bad request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if reasons := h.service.ValidateSubmission(req); len(reasons) > 0 {
		l.WarnContext(ctx, "Submission failed validation", slog.Int("failures", len(reasons)))
		span.SetStatus(codes.Error, "Validation failed")
		metrics.Get().SubmissionsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", "submit"), attribute.String("outcome", "rejected")))
		api.WriteJSONResponse(w, r, http.StatusBadRequest, reasons)
		return
	}

	l.InfoContext(ctx, "Submission accepted", slog.String("name", req.Name))
	span.SetStatus(codes.Ok, "Submission accepted")
	metrics.Get().SubmissionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", "submit"), attribute.String("outcome", "accepted")))
	api.WriteJSONResponse(w, r, http.StatusOK, ConfirmationResponse{
		Message:   fmt.Sprintf("Thank you for submitting '%s'.", req.Name),
		Reference: uuid.NewString(),
	})
}

// Update handles PUT /api/PetAdmin/Update. The auth middleware has already
// verified the bearer token; any authenticated role may update.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AdminHandler").Start(r.Context(), "Update")
	defer span.End()

	l := h.logger.With(slog.String("method", "Update"))
	if subject, ok := auth.GetSubjectFromContext(ctx); ok {
		l = l.With(slog.String("subject", subject))
	}

	var req UpdateRequest
	if err := api.DecodeJSONBodyLenient(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode update", slog.Any("error", err))
		span.SetStatus(codes.Error, "Bad request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if reasons := h.service.ValidateUpdate(req); len(reasons) > 0 {
		l.WarnContext(ctx, "Update failed validation", slog.Int("failures", len(reasons)))
		span.SetStatus(codes.Error, "Validation failed")
		metrics.Get().SubmissionsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", "update"), attribute.String("outcome", "rejected")))
		api.WriteJSONResponse(w, r, http.StatusBadRequest, reasons)
		return
	}

	l.InfoContext(ctx, "Update acknowledged", slog.String("petID", req.PetID))
	span.SetStatus(codes.Ok, "Update acknowledged")
	metrics.Get().SubmissionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", "update"), attribute.String("outcome", "accepted")))
	api.WriteJSONResponse(w, r, http.StatusOK, ConfirmationResponse{
		Message: fmt.Sprintf("You have requested to update '%s'.", req.PetID),
	})
}
