package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	LookupRequestsTotal    metric.Int64Counter
	LookupDurationSeconds  metric.Float64Histogram
	LoginRequestsTotal     metric.Int64Counter
	TokenVerifyFailedTotal metric.Int64Counter
	SubmissionsTotal       metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("DemoPetAPI")
		var err error
		m := &AppMetrics{}

		m.LookupRequestsTotal, err = meter.Int64Counter(
			"pet_lookup_requests_total",
			metric.WithDescription("Total number of pet lookup requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pet_lookup_requests_total: %v", err)
		}

		m.LookupDurationSeconds, err = meter.Float64Histogram(
			"pet_lookup_duration_seconds",
			metric.WithDescription("Duration of pet lookup requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pet_lookup_duration_seconds: %v", err)
		}

		m.LoginRequestsTotal, err = meter.Int64Counter(
			"login_requests_total",
			metric.WithDescription("Total number of login attempts"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create login_requests_total: %v", err)
		}

		m.TokenVerifyFailedTotal, err = meter.Int64Counter(
			"token_verify_failed_total",
			metric.WithDescription("Total number of rejected bearer tokens"),
			metric.WithUnit("{token}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create token_verify_failed_total: %v", err)
		}

		m.SubmissionsTotal, err = meter.Int64Counter(
			"pet_submissions_total",
			metric.WithDescription("Total number of pet submission/update requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pet_submissions_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics instance. InitAppMetrics must run first.
func Get() *AppMetrics {
	if appMetrics == nil {
		InitAppMetrics()
	}
	return appMetrics
}
