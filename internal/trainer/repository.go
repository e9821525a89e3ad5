package trainer

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"fitdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const trainerColumns = `id, gym_id, name, phone, specialization, salary, is_active, created_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, gymID int) ([]Trainer, error) {
	trainers := []Trainer{}
	err := r.db.SelectContext(ctx, &trainers,
		`SELECT `+trainerColumns+` FROM trainers WHERE gym_id = $1 ORDER BY name`, gymID)
	return trainers, err
}

func (r *PostgresRepository) Create(ctx context.Context, gymID int, req CreateTrainerRequest) (*Trainer, error) {
	query := `
		INSERT INTO trainers (gym_id, name, phone, specialization, salary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + trainerColumns

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, gymID, strings.TrimSpace(req.Name), req.Phone, req.Specialization, req.Salary)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, gymID, id int, req UpdateTrainerRequest) (*Trainer, error) {
	var set db.SetClause
	if req.Name != nil {
		set.Add("name", strings.TrimSpace(*req.Name))
	}
	if req.Phone != nil {
		set.Add("phone", *req.Phone)
	}
	if req.Specialization != nil {
		set.Add("specialization", *req.Specialization)
	}
	if req.Salary != nil {
		set.Add("salary", *req.Salary)
	}
	if req.IsActive != nil {
		set.Add("is_active", *req.IsActive)
	}

	query := `UPDATE trainers SET ` + set.SQL() + ` WHERE id = ` + set.Arg(id) +
		` AND gym_id = ` + set.Arg(gymID) + ` RETURNING ` + trainerColumns

	var t Trainer
	if err := r.db.GetContext(ctx, &t, query, set.Args()...); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, gymID, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Day lists every trainer of the gym with the status marked for date.
func (r *PostgresRepository) Day(ctx context.Context, gymID int, date time.Time) ([]DayRow, error) {
	query := `
		SELECT t.id AS trainer_id, t.name AS trainer_name, t.specialization, a.status
		FROM trainers t
		LEFT JOIN trainer_attendance a ON a.trainer_id = t.id AND a.date = $2
		WHERE t.gym_id = $1
		ORDER BY t.name
	`

	rows := []DayRow{}
	err := r.db.SelectContext(ctx, &rows, query, gymID, date)
	return rows, err
}

// Mark upserts the trainer's status for the day. Trainers of other gyms
// produce no row and sql.ErrNoRows.
func (r *PostgresRepository) Mark(ctx context.Context, gymID, trainerID int, date time.Time, status string) (*Attendance, error) {
	query := `
		INSERT INTO trainer_attendance (gym_id, trainer_id, date, status)
		SELECT t.gym_id, t.id, $3, $4 FROM trainers t WHERE t.id = $2 AND t.gym_id = $1
		ON CONFLICT (trainer_id, date) DO UPDATE SET status = EXCLUDED.status
		RETURNING id, gym_id, trainer_id, date, status
	`

	var a Attendance
	if err := r.db.GetContext(ctx, &a, query, gymID, trainerID, date, status); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) Summary(ctx context.Context, gymID int, from, to time.Time) ([]MonthSummary, error) {
	query := `
		SELECT t.id AS trainer_id, t.name AS trainer_name,
		       COUNT(a.id) FILTER (WHERE a.status = 'present') AS present,
		       COUNT(a.id) FILTER (WHERE a.status = 'absent') AS absent,
		       COUNT(a.id) FILTER (WHERE a.status = 'leave') AS leave,
		       COUNT(a.id) FILTER (WHERE a.status = 'half_day') AS half_day
		FROM trainers t
		LEFT JOIN trainer_attendance a ON a.trainer_id = t.id AND a.date >= $2 AND a.date < $3
		WHERE t.gym_id = $1
		GROUP BY t.id, t.name
		ORDER BY t.name
	`

	rows := []MonthSummary{}
	err := r.db.SelectContext(ctx, &rows, query, gymID, from, to)
	return rows, err
}
