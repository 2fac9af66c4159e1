package health

import (
	"context"
	"os"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
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
	cache       CachePinger
	interpreter InterpreterChecker
	outputDir   string
}

// New creates a Service. cache and interpreter can be nil.
func New(cache CachePinger, interpreter InterpreterChecker, outputDir string) *Service {
	return &Service{cache: cache, interpreter: interpreter, outputDir: outputDir}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if info, err := os.Stat(s.outputDir); err != nil || !info.IsDir() {
		checks["output"] = CheckError
	} else {
		checks["output"] = CheckOK
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	if s.interpreter != nil {
		if err := s.interpreter.HealthCheck(ctx); err != nil {
			checks["interpreter"] = CheckError
		} else {
			checks["interpreter"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
