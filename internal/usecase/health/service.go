package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the document store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckOpen indicates a tripped circuit breaker.
	CheckOpen CheckResult = "open"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	storage StoragePinger
	breaker BreakerProbe
}

// New creates a Service. storage and breaker can be nil.
func New(db DBPinger, storage StoragePinger, breaker BreakerProbe) *Service {
	return &Service{db: db, storage: storage, breaker: breaker}
}

// Check runs health checks against all components. A failing document store
// makes the service unhealthy; anything else only degrades it.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	dbOK := s.db.Ping(ctx) == nil
	if dbOK {
		checks["database"] = CheckOK
	} else {
		checks["database"] = CheckError
	}

	if s.storage != nil {
		if err := s.storage.Ping(ctx); err != nil {
			checks["object_storage"] = CheckError
		} else {
			checks["object_storage"] = CheckOK
		}
	}

	if s.breaker != nil {
		if s.breaker.Open() {
			checks["store_breaker"] = CheckOpen
		} else {
			checks["store_breaker"] = CheckOK
		}
	}

	if !dbOK {
		return Report{Status: Unhealthy, Checks: checks}
	}

	status := Healthy
	for _, v := range checks {
		if v != CheckOK {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
