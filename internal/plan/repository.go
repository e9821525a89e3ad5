package plan

import (
	"context"
	"database/sql"
	"strings"

	"fitdesk/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const selectPlan = `
	SELECT p.id, p.name, p.price, p.duration_days, p.features, p.created_at, p.updated_at,
	       (SELECT COUNT(*) FROM gyms g WHERE g.plan_id = p.id) AS gym_count
	FROM subscription_plans p
`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Plan, error) {
	plans := []Plan{}
	err := r.db.SelectContext(ctx, &plans, selectPlan+`ORDER BY p.price ASC, p.id ASC`)
	return plans, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Plan, error) {
	var p Plan
	if err := r.db.GetContext(ctx, &p, selectPlan+`WHERE p.id = $1`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	query := `
		INSERT INTO subscription_plans (name, price, duration_days, features)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, price, duration_days, features, created_at, updated_at
	`

	features := req.Features
	if features == nil {
		features = []string{}
	}

	var p Plan
	err := r.db.GetContext(ctx, &p, query, strings.TrimSpace(req.Name), *req.Price, req.DurationDays, pq.StringArray(features))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	var set db.SetClause
	if req.Name != nil {
		set.Add("name", strings.TrimSpace(*req.Name))
	}
	if req.Price != nil {
		set.Add("price", *req.Price)
	}
	if req.DurationDays != nil {
		set.Add("duration_days", *req.DurationDays)
	}
	if req.Features != nil {
		set.Add("features", pq.StringArray(*req.Features))
	}

	query := `UPDATE subscription_plans SET ` + set.SQL() + `, updated_at = NOW() WHERE id = ` + set.Arg(id)

	res, err := r.db.ExecContext(ctx, query, set.Args()...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscription_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) CountGyms(ctx context.Context, id int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM gyms WHERE plan_id = $1`, id)
	return count, err
}
