package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the cache is down but content is still served.
	Degraded Status = "degraded"
	// Unhealthy indicates content cannot be served.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	cache  CachePinger
	source SourceChecker
}

// New creates a Service. Either checker can be nil.
func New(cache CachePinger, source SourceChecker) *Service {
	return &Service{cache: cache, source: source}
}

// Check runs health checks against all components.
// A failing source is fatal; a failing cache only degrades service.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
			status = Degraded
		} else {
			checks["cache"] = CheckOK
		}
	}

	if s.source != nil {
		if err := s.source.HealthCheck(ctx); err != nil {
			checks["source"] = CheckError
			status = Unhealthy
		} else {
			checks["source"] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
