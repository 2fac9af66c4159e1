package health

import "context"

// CachePinger checks cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// InterpreterChecker checks the description interpreter backend.
type InterpreterChecker interface {
	HealthCheck(ctx context.Context) error
}
