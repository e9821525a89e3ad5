package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	KPIs(ctx context.Context, gymID int, p Period) (*KPIs, error)
	MonthlyRevenue(ctx context.Context, gymID int, from time.Time) ([]MonthRevenue, error)
	RiskCandidates(ctx context.Context, gymID int, today, horizon time.Time) ([]Candidate, error)
}
