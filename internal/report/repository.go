package report

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// within appends inclusive bounds on column for whichever ends of r are set.
func within(column string, r Range, args []interface{}) (string, []interface{}) {
	clause := ""
	if r.Start != nil {
		args = append(args, *r.Start)
		clause += fmt.Sprintf(" AND %s >= $%d", column, len(args))
	}
	if r.End != nil {
		args = append(args, *r.End)
		clause += fmt.Sprintf(" AND %s <= $%d", column, len(args))
	}
	return clause, args
}

// Clients lists the gym's clients whose subscription started in the range.
func (r *PostgresRepository) Clients(ctx context.Context, gymID int, rng Range) ([]ClientRecord, error) {
	where, args := within("subscription_start", rng, []interface{}{gymID})
	query := `
SELECT name, phone, COALESCE(email, '') AS email, COALESCE(plan_name, '') AS plan_name,
       subscription_start, subscription_end, total_amount, paid_amount
FROM clients
WHERE gym_id = $1` + where + `
ORDER BY subscription_start, name;
`
	records := []ClientRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Payments(ctx context.Context, gymID int, rng Range) ([]PaymentRecord, error) {
	where, args := within("p.payment_date", rng, []interface{}{gymID})
	query := `
SELECT p.invoice_number, c.name AS client_name, p.amount, p.method, p.payment_date,
       COALESCE(p.note, '') AS note
FROM payments p
JOIN clients c ON c.id = p.client_id
WHERE p.gym_id = $1` + where + `
ORDER BY p.payment_date, p.id;
`
	records := []PaymentRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Attendance(ctx context.Context, gymID int, rng Range) ([]AttendanceRecord, error) {
	where, args := within("a.date", rng, []interface{}{gymID})
	query := `
SELECT a.date, t.name AS trainer_name, a.status
FROM trainer_attendance a
JOIN trainers t ON t.id = a.trainer_id
WHERE a.gym_id = $1` + where + `
ORDER BY a.date, t.name;
`
	records := []AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}
