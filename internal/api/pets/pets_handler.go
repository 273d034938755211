package pets

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/petdirectory/demo-pet-api/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewPetHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetByPetID handles GET .../GetByPetID?petID=X000000
func (h *Handler) GetByPetID(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, FieldPetID, PatternPetID, r.URL.Query().Get("petID"))
}

// GetByPetIDPath handles GET .../GetByPetID/{petID} in the secondary test
// domain, where IDs are bare 6-digit numbers.
func (h *Handler) GetByPetIDPath(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, FieldPetID, PatternPetIDNumeric, chi.URLParam(r, "petID"))
}

// GetByName handles GET .../GetByName?name=...
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, FieldName, PatternName, r.URL.Query().Get("name"))
}

// GetByNamePath handles GET .../GetByName/{name} in the test domain.
func (h *Handler) GetByNamePath(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, FieldName, PatternName, chi.URLParam(r, "name"))
}

// GetByBreed handles GET .../GetByBreed?breed=...
func (h *Handler) GetByBreed(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, FieldBreed, PatternBreed, r.URL.Query().Get("breed"))
}

// GetByLocation handles GET .../GetByLocation?location=...
func (h *Handler) GetByLocation(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, FieldLocation, PatternLocation, r.URL.Query().Get("location"))
}

// GetByAge handles GET .../GetByAge?age=N. Lookup age carries no range
// constraint; only integer parsing is enforced.
func (h *Handler) GetByAge(w http.ResponseWriter, r *http.Request) {
	h.ageLookup(w, r, r.URL.Query().Get("age"))
}

// GetByAgePath handles GET .../GetByAge/{age} in the test domain.
func (h *Handler) GetByAgePath(w http.ResponseWriter, r *http.Request) {
	h.ageLookup(w, r, chi.URLParam(r, "age"))
}

func (h *Handler) ageLookup(w http.ResponseWriter, r *http.Request, raw string) {
	ctx, span := otel.Tracer("PetHandler").Start(r.Context(), "GetByAge")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetByAge"), slog.String("species", string(h.service.Species())))

	if _, err := strconv.Atoi(raw); err != nil {
		l.WarnContext(ctx, "Age parameter is not an integer", slog.String("age", raw))
		span.SetStatus(codes.Error, "Validation failed")
		api.WriteJSONResponse(w, r, http.StatusBadRequest, []string{"Age must be an integer"})
		return
	}

	h.respond(w, r.WithContext(ctx), l, FieldAge, raw)
	span.SetStatus(codes.Ok, "Lookup completed")
}

// GetAll handles GET .../GetAllCats and .../GetAllDogs.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PetHandler").Start(r.Context(), "GetAll")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetAll"), slog.String("species", string(h.service.Species())))

	records, err := h.service.ListAll(ctx)
	if err != nil {
		var noMatches *NoMatchesError
		if errors.As(err, &noMatches) {
			l.InfoContext(ctx, "Table is empty")
			span.SetStatus(codes.Ok, "Empty table")
			api.WriteJSONResponse(w, r, http.StatusNotFound, map[string]string{"Message": noMatches.Message})
			return
		}
		l.ErrorContext(ctx, "Failed to list records", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list records")
		return
	}

	key := "All" + h.service.Species().Plural()
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]PetRecord{key: records})
	span.SetStatus(codes.Ok, "Listing completed")
}

// lookup validates only the field relevant to this endpoint and then runs
// the query. Validation failures never reach the query engine.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request, field Field, patternKey, value string) {
	ctx, span := otel.Tracer("PetHandler").Start(r.Context(), "GetBy"+string(field))
	defer span.End()

	l := h.logger.With(
		slog.String("method", "GetBy"+string(field)),
		slog.String("species", string(h.service.Species())),
	)

	if err := ValidateField(patternKey, value); err != nil {
		l.WarnContext(ctx, "Query parameter failed validation",
			slog.String("field", string(field)), slog.String("reason", err.Error()))
		span.SetStatus(codes.Error, "Validation failed")
		api.WriteJSONResponse(w, r, http.StatusBadRequest, []string{err.Error()})
		return
	}

	h.respond(w, r.WithContext(ctx), l, field, value)
	span.SetStatus(codes.Ok, "Lookup completed")
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, l *slog.Logger, field Field, value string) {
	ctx := r.Context()

	records, err := h.service.FindBy(ctx, field, value)
	if err != nil {
		var noMatches *NoMatchesError
		if errors.As(err, &noMatches) {
			l.InfoContext(ctx, "Lookup matched no records",
				slog.String("field", string(field)), slog.String("value", value))
			api.WriteJSONResponse(w, r, http.StatusNotFound, map[string]string{"Message": noMatches.Message})
			return
		}
		l.ErrorContext(ctx, "Lookup failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Lookup failed")
		return
	}

	l.InfoContext(ctx, "Lookup completed", slog.Int("count", len(records)))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]PetRecord{h.service.Species().Plural(): records})
}
