package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Cases(ctx context.Context, in FilterInput) ([]CaseOutput, error)
	Rankings(ctx context.Context, in FilterInput) (RankingsOutput, error)
	Histograms(ctx context.Context, in FilterInput) (Histograms, error)
	Trend(ctx context.Context, in FilterInput) (TrendOutput, error)
}
