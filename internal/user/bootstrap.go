package user

import (
	"context"

	"fitdesk/internal/auth"

	"github.com/jmoiron/sqlx"
)

// EnsureSuperAdmin creates the platform admin on first start. It reports
// whether an account was created; an existing email is left untouched.
func EnsureSuperAdmin(ctx context.Context, db *sqlx.DB, name, email, password string) (bool, error) {
	exists, err := NewRepository(db).EmailExists(ctx, email)
	if err != nil || exists {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	if _, err := Insert(ctx, db, name, email, hash, auth.RoleSuperAdmin); err != nil {
		return false, err
	}
	return true, nil
}
