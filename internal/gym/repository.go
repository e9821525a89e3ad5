package gym

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"fitdesk/internal/auth"
	"fitdesk/internal/db"
	"fitdesk/internal/user"

	"github.com/jmoiron/sqlx"
)

const gymColumns = `g.id, g.name, g.owner_id, g.plan_id, g.is_active, g.address, g.phone,
	g.subscription_start, g.subscription_end, g.invoice_prefix, g.invoice_footer,
	g.tax_rate, g.gst_number, g.created_at, g.updated_at`

const selectSummary = `
	SELECT ` + gymColumns + `,
	       u.name AS owner_name, u.email AS owner_email,
	       p.name AS plan_name, p.price AS plan_price,
	       (SELECT COUNT(*) FROM clients c WHERE c.gym_id = g.id) AS client_count
	FROM gyms g
	LEFT JOIN users u ON u.id = g.owner_id
	LEFT JOIN subscription_plans p ON p.id = g.plan_id
`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Summary, error) {
	gyms := []Summary{}
	err := r.db.SelectContext(ctx, &gyms, selectSummary+`ORDER BY g.created_at DESC`)
	return gyms, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Summary, error) {
	return getSummary(ctx, r.db, id)
}

func getSummary(ctx context.Context, q sqlx.QueryerContext, id int) (*Summary, error) {
	var g Summary
	if err := sqlx.GetContext(ctx, q, &g, selectSummary+`WHERE g.id = $1`, id); err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateWithOwner inserts the owner account and the gym and links them in
// one transaction.
func (r *PostgresRepository) CreateWithOwner(ctx context.Context, req CreateGymRequest, passwordHash string, window *Window) (*Summary, error) {
	var created *Summary

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		owner, err := user.Insert(ctx, tx, strings.TrimSpace(req.OwnerName), req.OwnerEmail, passwordHash, auth.RoleGymOwner)
		if err != nil {
			return err
		}

		var planID *int
		var start, end *time.Time
		if window != nil {
			planID, start, end = &window.PlanID, &window.Start, &window.End
		}

		var gymID int
		err = tx.GetContext(ctx, &gymID, `
			INSERT INTO gyms (name, owner_id, plan_id, address, phone, subscription_start, subscription_end)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, strings.TrimSpace(req.GymName), owner.ID, planID, req.Address, req.Phone, start, end)
		if err != nil {
			return err
		}

		if err := user.AttachGym(ctx, tx, owner.ID, gymID); err != nil {
			return err
		}

		created, err = getSummary(ctx, tx, gymID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, req UpdateGymRequest, window *Window) error {
	var set db.SetClause
	if req.Name != nil {
		set.Add("name", strings.TrimSpace(*req.Name))
	}
	if req.Address != nil {
		set.Add("address", *req.Address)
	}
	if req.Phone != nil {
		set.Add("phone", *req.Phone)
	}
	if req.IsActive != nil {
		set.Add("is_active", *req.IsActive)
	}
	if window != nil {
		set.Add("plan_id", window.PlanID)
		set.Add("subscription_start", window.Start)
		set.Add("subscription_end", window.End)
	}

	query := `UPDATE gyms SET ` + set.SQL() + `, updated_at = NOW() WHERE id = ` + set.Arg(id)
	return execOne(ctx, r.db, query, set.Args()...)
}

func (r *PostgresRepository) ToggleActive(ctx context.Context, id int) error {
	return execOne(ctx, r.db, `UPDATE gyms SET is_active = NOT is_active, updated_at = NOW() WHERE id = $1`, id)
}

// Delete removes the gym, its tenant data (by cascade) and the owner account.
func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var ownerID int
		if err := tx.GetContext(ctx, &ownerID, `SELECT owner_id FROM gyms WHERE id = $1`, id); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM gyms WHERE id = $1`, id); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1 AND role = $2`, ownerID, auth.RoleGymOwner)
		return err
	})
}

func (r *PostgresRepository) PlanDuration(ctx context.Context, planID int) (int, error) {
	var days int
	err := r.db.GetContext(ctx, &days, `SELECT duration_days FROM subscription_plans WHERE id = $1`, planID)
	return days, err
}

func (r *PostgresRepository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM gyms) AS total_gyms,
			(SELECT COUNT(*) FROM gyms WHERE is_active) AS active_gyms,
			(SELECT COUNT(*) FROM subscription_plans) AS total_plans,
			(SELECT COUNT(*) FROM clients) AS total_clients,
			(SELECT COALESCE(SUM(p.price * 30.0 / p.duration_days), 0)
			   FROM gyms g JOIN subscription_plans p ON p.id = g.plan_id
			  WHERE g.is_active) AS monthly_revenue
	`

	var s Stats
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) GetSettings(ctx context.Context, gymID int) (*Gym, error) {
	var g Gym
	err := r.db.GetContext(ctx, &g, `SELECT `+gymColumns+` FROM gyms g WHERE g.id = $1`, gymID)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) UpdateSettings(ctx context.Context, gymID int, req UpdateSettingsRequest) (*Gym, error) {
	var set db.SetClause
	if req.Name != nil {
		set.Add("name", strings.TrimSpace(*req.Name))
	}
	if req.Address != nil {
		set.Add("address", *req.Address)
	}
	if req.Phone != nil {
		set.Add("phone", *req.Phone)
	}
	if req.InvoicePrefix != nil {
		set.Add("invoice_prefix", strings.ToUpper(*req.InvoicePrefix))
	}
	if req.InvoiceFooter != nil {
		set.Add("invoice_footer", *req.InvoiceFooter)
	}
	if req.TaxRate != nil {
		set.Add("tax_rate", *req.TaxRate)
	}
	if req.GSTNumber != nil {
		set.Add("gst_number", strings.ToUpper(strings.TrimSpace(*req.GSTNumber)))
	}

	query := `UPDATE gyms SET ` + set.SQL() + `, updated_at = NOW() WHERE id = ` + set.Arg(gymID)
	if err := execOne(ctx, r.db, query, set.Args()...); err != nil {
		return nil, err
	}

	return r.GetSettings(ctx, gymID)
}

// IsActive is false for a switched-off gym and for one that no longer exists.
func (r *PostgresRepository) IsActive(ctx context.Context, gymID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM gyms WHERE id = $1 AND is_active)`, gymID)
}

// DeactivateLapsed switches off gyms whose paid period ended before today.
func (r *PostgresRepository) DeactivateLapsed(ctx context.Context, today time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gyms SET is_active = FALSE, updated_at = NOW()
		WHERE is_active AND subscription_end IS NOT NULL AND subscription_end < $1
	`, today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func execOne(ctx context.Context, e sqlx.ExecerContext, query string, args ...interface{}) error {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
