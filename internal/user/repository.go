package user

import (
	"context"
	"strings"

	"fitdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const selectUser = `
	SELECT u.id, u.name, u.email, u.password_hash, u.role, u.gym_id, u.created_at,
	       g.name AS gym_name, g.is_active AS gym_active
	FROM users u
	LEFT JOIN gyms g ON g.id = u.gym_id
`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, selectUser+`WHERE LOWER(u.email) = $1`, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, selectUser+`WHERE u.id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = $1)`, normalizeEmail(email))
}

// Insert creates a user with q, which may be a transaction.
func Insert(ctx context.Context, q sqlx.QueryerContext, name, email, passwordHash, role string) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, gym_id, created_at
	`

	var user User
	err := sqlx.GetContext(ctx, q, &user, query, name, normalizeEmail(email), passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// AttachGym links an owner to the gym created for them.
func AttachGym(ctx context.Context, e sqlx.ExecerContext, userID, gymID int) error {
	_, err := e.ExecContext(ctx, `UPDATE users SET gym_id = $1 WHERE id = $2`, gymID, userID)
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
