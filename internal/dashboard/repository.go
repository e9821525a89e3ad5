package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) KPIs(ctx context.Context, gymID int, p Period) (*KPIs, error) {
	query := `
SELECT
  COUNT(*)                                                            AS total_clients,
  COUNT(*) FILTER (WHERE subscription_start <= $2 AND subscription_end >= $2) AS active_clients,
  COUNT(*) FILTER (WHERE subscription_end < $2)                       AS expired_clients,
  COUNT(*) FILTER (WHERE subscription_end BETWEEN $2 AND $3)          AS expiring_soon,
  COALESCE(SUM(GREATEST(total_amount - paid_amount, 0)), 0)           AS pending_amount,
  COUNT(*) FILTER (WHERE total_amount > paid_amount)                  AS pending_count,
  (SELECT COALESCE(SUM(amount), 0) FROM payments
    WHERE gym_id = $1 AND payment_date >= $4)                         AS revenue_this_month,
  (SELECT COALESCE(SUM(amount), 0) FROM payments
    WHERE gym_id = $1 AND payment_date >= $5 AND payment_date < $4)   AS revenue_last_month,
  (SELECT COUNT(*) FROM trainer_attendance
    WHERE gym_id = $1 AND date = $2 AND status = 'present')           AS trainers_present_today
FROM clients
WHERE gym_id = $1;
`
	var k KPIs
	if err := r.db.GetContext(ctx, &k, query, gymID, p.Today, p.ExpiringBy, p.MonthStart, p.LastMonthStart); err != nil {
		return nil, err
	}
	return &k, nil
}

// MonthlyRevenue sums payments per calendar month from the given month on.
// Months without payments are absent.
func (r *PostgresRepository) MonthlyRevenue(ctx context.Context, gymID int, from time.Time) ([]MonthRevenue, error) {
	query := `
SELECT
  TO_CHAR(DATE_TRUNC('month', payment_date), 'YYYY-MM') AS month,
  SUM(amount)                                           AS revenue
FROM payments
WHERE gym_id = $1 AND payment_date >= $2
GROUP BY DATE_TRUNC('month', payment_date)
ORDER BY month;
`
	stats := []MonthRevenue{}
	if err := r.db.SelectContext(ctx, &stats, query, gymID, from); err != nil {
		return nil, err
	}
	return stats, nil
}

// RiskCandidates returns current clients that end soon or still owe money.
func (r *PostgresRepository) RiskCandidates(ctx context.Context, gymID int, today, horizon time.Time) ([]Candidate, error) {
	query := `
SELECT id, name, phone, subscription_end, total_amount, paid_amount
FROM clients
WHERE gym_id = $1
  AND subscription_end >= $2
  AND (subscription_end <= $3 OR total_amount > paid_amount)
ORDER BY subscription_end
LIMIT 50;
`
	candidates := []Candidate{}
	if err := r.db.SelectContext(ctx, &candidates, query, gymID, today, horizon); err != nil {
		return nil, err
	}
	return candidates, nil
}
