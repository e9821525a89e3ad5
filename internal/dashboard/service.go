package dashboard

import (
	"context"
	"math"
	"sort"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/insights"
)

type Service interface {
	Overview(ctx context.Context, gymID int) (*Overview, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Overview(ctx context.Context, gymID int) (*Overview, error) {
	p := NewPeriod(s.now())

	kpis, err := s.repo.KPIs(ctx, gymID, p)
	if err != nil {
		return nil, api.NewInternalError("Failed to compute dashboard KPIs", err)
	}

	monthly, err := s.repo.MonthlyRevenue(ctx, gymID, p.SeriesStart)
	if err != nil {
		return nil, api.NewInternalError("Failed to compute revenue", err)
	}
	series := fillMonths(monthly, p.SeriesStart, revenueMonths)

	values := make([]float64, len(series))
	for i, m := range series {
		values[i] = m.Revenue
	}

	candidates, err := s.repo.RiskCandidates(ctx, gymID, p.Today, p.Today.AddDate(0, 0, riskHorizonDays))
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch at-risk clients", err)
	}

	return &Overview{
		KPIs:       *kpis,
		Revenue:    series,
		Projection: insights.ProjectNextMonth(values),
		Insights: insights.GenerateInsights(insights.KPIs{
			ActiveClients:    kpis.ActiveClients,
			ExpiredClients:   kpis.ExpiredClients,
			PendingPayments:  kpis.PendingCount,
			RevenueThisMonth: kpis.RevenueThisMonth,
			RevenueLastMonth: kpis.RevenueLastMonth,
		}),
		AtRisk: rankAtRisk(candidates, p.Today),
	}, nil
}

// fillMonths returns n consecutive months from start with zero revenue for
// months that had no payments.
func fillMonths(rows []MonthRevenue, start time.Time, n int) []MonthRevenue {
	byMonth := make(map[string]float64, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r.Revenue
	}

	out := make([]MonthRevenue, n)
	for i := 0; i < n; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		out[i] = MonthRevenue{Month: key, Revenue: byMonth[key]}
	}
	return out
}

var riskOrder = map[insights.RiskLevel]int{
	insights.RiskHigh:   0,
	insights.RiskMedium: 1,
	insights.RiskLow:    2,
}

// rankAtRisk scores candidates and keeps the riskiest, soonest-expiring ones.
// Low-risk clients are left out.
func rankAtRisk(candidates []Candidate, today time.Time) []AtRiskClient {
	out := []AtRiskClient{}
	for _, c := range candidates {
		days := int(c.SubscriptionEnd.Sub(today).Hours() / 24)
		balance := math.Max(0, c.TotalAmount-c.PaidAmount)
		risk := insights.ChurnRiskScore(&days, balance > 0)
		if risk == insights.RiskLow {
			continue
		}
		out = append(out, AtRiskClient{Candidate: c, DaysUntilExpiry: days, Balance: balance, ChurnRisk: risk})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if riskOrder[out[i].ChurnRisk] != riskOrder[out[j].ChurnRisk] {
			return riskOrder[out[i].ChurnRisk] < riskOrder[out[j].ChurnRisk]
		}
		return out[i].DaysUntilExpiry < out[j].DaysUntilExpiry
	})

	if len(out) > maxAtRisk {
		out = out[:maxAtRisk]
	}
	return out
}
