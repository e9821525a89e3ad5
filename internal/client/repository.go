package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fitdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const clientColumns = `id, gym_id, name, phone, email, gender, plan_name,
	subscription_start, subscription_end, total_amount, paid_amount,
	status, notes, created_at, updated_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, gymID int, filter ListFilter, today time.Time) ([]Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE gym_id = $1`
	args := []interface{}{gymID}

	if filter.Status != "" {
		args = append(args, today, filter.Status)
		query += ` AND ` + StatusSQL("$2") + ` = $3`
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := fmt.Sprintf("$%d", len(args))
		query += ` AND (name ILIKE ` + n + ` OR phone ILIKE ` + n + ` OR email ILIKE ` + n + `)`
	}
	query += ` ORDER BY created_at DESC`

	clients := []Client{}
	err := r.db.SelectContext(ctx, &clients, query, args...)
	return clients, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, gymID, id int) (*Client, error) {
	var c Client
	err := r.db.GetContext(ctx, &c, `SELECT `+clientColumns+` FROM clients WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, gymID int, req CreateClientRequest, start, end time.Time, status string) (*Client, error) {
	query := `
		INSERT INTO clients (gym_id, name, phone, email, gender, plan_name,
			subscription_start, subscription_end, total_amount, paid_amount, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + clientColumns

	var c Client
	err := r.db.GetContext(ctx, &c, query,
		gymID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone), req.Email, req.Gender, req.PlanName,
		start, end, req.TotalAmount, req.PaidAmount, status, req.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, gymID, id int, ch Changes) (*Client, error) {
	var set db.SetClause
	if ch.Name != nil {
		set.Add("name", strings.TrimSpace(*ch.Name))
	}
	if ch.Phone != nil {
		set.Add("phone", strings.TrimSpace(*ch.Phone))
	}
	if ch.Email != nil {
		set.Add("email", *ch.Email)
	}
	if ch.Gender != nil {
		set.Add("gender", *ch.Gender)
	}
	if ch.PlanName != nil {
		set.Add("plan_name", *ch.PlanName)
	}
	if ch.TotalAmount != nil {
		set.Add("total_amount", *ch.TotalAmount)
	}
	if ch.PaidAmount != nil {
		set.Add("paid_amount", *ch.PaidAmount)
	}
	if ch.Notes != nil {
		set.Add("notes", *ch.Notes)
	}
	set.Add("subscription_start", ch.Start)
	set.Add("subscription_end", ch.End)
	set.Add("status", ch.Status)

	query := `UPDATE clients SET ` + set.SQL() + `, updated_at = NOW() WHERE id = ` + set.Arg(id) +
		` AND gym_id = ` + set.Arg(gymID) + ` RETURNING ` + clientColumns

	var c Client
	if err := r.db.GetContext(ctx, &c, query, set.Args()...); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, gymID, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) GymName(ctx context.Context, gymID int) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, `SELECT name FROM gyms WHERE id = $1`, gymID)
	return name, err
}

func (r *PostgresRepository) LogReminder(ctx context.Context, log *ReminderLog) error {
	query := `
		INSERT INTO reminder_logs (gym_id, client_id, channel, message, status, provider_sid, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, sent_at
	`
	return r.db.QueryRowxContext(ctx, query,
		log.GymID, log.ClientID, log.Channel, log.Message, log.Status, log.ProviderSID, log.ErrorMessage,
	).Scan(&log.ID, &log.SentAt)
}

func (r *PostgresRepository) ListReminders(ctx context.Context, gymID, clientID int) ([]ReminderLog, error) {
	logs := []ReminderLog{}
	err := r.db.SelectContext(ctx, &logs, `
		SELECT id, gym_id, client_id, channel, message, status, provider_sid, error_message, sent_at
		FROM reminder_logs
		WHERE gym_id = $1 AND client_id = $2
		ORDER BY sent_at DESC
	`, gymID, clientID)
	return logs, err
}

// RefreshStatuses rewrites the stored status of every client whose dates
// now place it elsewhere: pending clients that started, active ones that lapsed.
func (r *PostgresRepository) RefreshStatuses(ctx context.Context, today time.Time) (int64, error) {
	status := StatusSQL("$1")
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET status = `+status+`, updated_at = NOW()
		WHERE status <> `+status, today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
