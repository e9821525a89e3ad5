package dashboard

import (
	"time"

	"fitdesk/internal/insights"
)

const (
	revenueMonths   = 6
	expiringWindow  = 7
	riskHorizonDays = 30
	maxAtRisk       = 5
)

type KPIs struct {
	TotalClients         int     `db:"total_clients" json:"total_clients"`
	ActiveClients        int     `db:"active_clients" json:"active_clients"`
	ExpiredClients       int     `db:"expired_clients" json:"expired_clients"`
	ExpiringSoon         int     `db:"expiring_soon" json:"expiring_soon"`
	RevenueThisMonth     float64 `db:"revenue_this_month" json:"revenue_this_month"`
	RevenueLastMonth     float64 `db:"revenue_last_month" json:"revenue_last_month"`
	PendingAmount        float64 `db:"pending_amount" json:"pending_amount"`
	PendingCount         int     `db:"pending_count" json:"pending_count"`
	TrainersPresentToday int     `db:"trainers_present_today" json:"trainers_present_today"`
}

type MonthRevenue struct {
	Month   string  `db:"month" json:"month"`
	Revenue float64 `db:"revenue" json:"revenue"`
}

// Candidate is a client that may be at risk of not renewing.
type Candidate struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Phone           string    `db:"phone" json:"phone"`
	SubscriptionEnd time.Time `db:"subscription_end" json:"subscription_end"`
	TotalAmount     float64   `db:"total_amount" json:"-"`
	PaidAmount      float64   `db:"paid_amount" json:"-"`
}

type AtRiskClient struct {
	Candidate
	DaysUntilExpiry int                `json:"days_until_expiry"`
	Balance         float64            `json:"balance"`
	ChurnRisk       insights.RiskLevel `json:"churn_risk"`
}

type Overview struct {
	KPIs       KPIs                `json:"kpis"`
	Revenue    []MonthRevenue      `json:"revenue"`
	Projection insights.Projection `json:"projection"`
	Insights   []string            `json:"insights"`
	AtRisk     []AtRiskClient      `json:"at_risk"`
}

// Period anchors the overview queries on one calendar day.
type Period struct {
	Today          time.Time
	ExpiringBy     time.Time
	MonthStart     time.Time
	LastMonthStart time.Time
	SeriesStart    time.Time
}

// NewPeriod anchors every window on the UTC calendar day of now.
func NewPeriod(now time.Time) Period {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Today:          today,
		ExpiringBy:     today.AddDate(0, 0, expiringWindow),
		MonthStart:     monthStart,
		LastMonthStart: monthStart.AddDate(0, -1, 0),
		SeriesStart:    monthStart.AddDate(0, -(revenueMonths - 1), 0),
	}
}
