package domain

import (
	"context"

	"patrolstats/internal/core/report"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context, in FilterInput) (report.Summary, error)
	Series(ctx context.Context, in FilterInput) (report.Series, error)
}
