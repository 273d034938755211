package pets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/petdirectory/demo-pet-api/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the query engine over one species table.
type Service interface {
	FindBy(ctx context.Context, field Field, value string) ([]PetRecord, error)
	ListAll(ctx context.Context) ([]PetRecord, error)
	Species() Species
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	cache  *cache.Cache
}

// NewPetService creates a query service. The backing table is immutable,
// so cached results never go stale.
func NewPetService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  cache.New(24*time.Hour, 1*time.Hour),
	}
}

func (s *ServiceImpl) Species() Species {
	return s.repo.Species()
}

func (s *ServiceImpl) FindBy(ctx context.Context, field Field, value string) ([]PetRecord, error) {
	start := time.Now()
	m := metrics.Get()
	attrs := metric.WithAttributes(
		attribute.String("species", string(s.repo.Species())),
		attribute.String("field", string(field)),
	)
	m.LookupRequestsTotal.Add(ctx, 1, attrs)
	defer func() {
		m.LookupDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	key := s.cacheKey(field, value)
	if cached, found := s.cache.Get(key); found {
		s.logger.DebugContext(ctx, "Lookup served from cache", slog.String("key", key))
		return cached.([]PetRecord), nil
	}

	matches, err := s.repo.FindBy(ctx, field, value)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, matches, cache.DefaultExpiration)
	return matches, nil
}

func (s *ServiceImpl) ListAll(ctx context.Context) ([]PetRecord, error) {
	return s.repo.ListAll(ctx)
}

func (s *ServiceImpl) cacheKey(field Field, value string) string {
	// name/breed/location match case-insensitively, so fold the key too
	switch field {
	case FieldName, FieldBreed, FieldLocation:
		value = strings.ToLower(value)
	}
	return fmt.Sprintf("%s|%s|%s", s.repo.Species(), field, value)
}
