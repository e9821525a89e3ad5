// Package insights holds the derived metrics shown on the gym dashboard:
// revenue regression and projection, churn risk and short insight texts.
package insights

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// LinearRegression fits y = slope*x + intercept by least squares.
// An empty input yields (0, 0).
func LinearRegression(points []Point) (slope, intercept float64) {
	n := float64(len(points))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		denominator = 1
	}

	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

type Projection struct {
	Value         float64 `json:"value"`
	GrowthPercent float64 `json:"growth_percent"`
	Slope         float64 `json:"slope"`
}

// ProjectNextMonth regresses values over their indexes and evaluates the
// line one step past the last sample.
func ProjectNextMonth(values []float64) Projection {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: float64(i), Y: v}
	}

	slope, intercept := LinearRegression(points)
	projected := math.Max(0, slope*float64(len(values))+intercept)

	var growth float64
	if len(values) > 0 {
		if last := values[len(values)-1]; last != 0 {
			growth = (projected - last) / last * 100
		}
	}

	return Projection{
		Value:         round2(projected),
		GrowthPercent: round2(growth),
		Slope:         round2(slope),
	}
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ChurnRiskScore classifies a client by days left on the subscription and
// whether money is still owed. Already expired clients (negative days) are high.
func ChurnRiskScore(daysUntilExpiry *int, hasUnpaidBalance bool) RiskLevel {
	if daysUntilExpiry != nil {
		switch d := *daysUntilExpiry; {
		case d <= 7:
			return RiskHigh
		case d <= 30:
			return RiskMedium
		}
	}
	if hasUnpaidBalance {
		return RiskMedium
	}
	return RiskLow
}

type KPIs struct {
	ActiveClients    int
	ExpiredClients   int
	PendingPayments  int
	RevenueThisMonth float64
	RevenueLastMonth float64
}

const (
	maxInsights        = 3
	revenueDropPercent = 15
)

// GenerateInsights returns up to three short messages about the gym's state.
func GenerateInsights(k KPIs) []string {
	var out []string
	warned := false

	change := percentChange(k.RevenueLastMonth, k.RevenueThisMonth)
	switch {
	case k.RevenueLastMonth > 0 && change < -revenueDropPercent:
		out = append(out, fmt.Sprintf("Revenue dropped %.0f%% compared to last month. Consider a renewal campaign.", -change))
		warned = true
	case change > 0:
		out = append(out, fmt.Sprintf("Revenue is up %.0f%% compared to last month. Keep it going!", change))
	default:
		out = append(out, "Revenue is stable compared to last month.")
	}

	if k.ExpiredClients > 0 {
		out = append(out, fmt.Sprintf("%d %s expired subscriptions. Send renewal reminders.", k.ExpiredClients, plural(k.ExpiredClients, "client has", "clients have")))
		warned = true
	}

	if k.PendingPayments > 0 {
		out = append(out, fmt.Sprintf("%d %s pending payments to follow up on.", k.PendingPayments, plural(k.PendingPayments, "client has", "clients have")))
		warned = true
	}

	if !warned && k.ActiveClients > 0 {
		out = append(out, fmt.Sprintf("All good! %d active %s and no outstanding issues.", k.ActiveClients, plural(k.ActiveClients, "member", "members")))
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

func percentChange(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
