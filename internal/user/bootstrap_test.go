package user

import (
	"context"
	"testing"
	"time"

	"fitdesk/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSuperAdmin_Creates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("admin@fitdesk.me").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Admin", "admin@fitdesk.me", sqlmock.AnyArg(), auth.RoleSuperAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "gym_id", "created_at"}).
			AddRow(1, "Admin", "admin@fitdesk.me", "hash", auth.RoleSuperAdmin, nil, time.Now()))

	created, err := EnsureSuperAdmin(context.Background(), sqlx.NewDb(db, "sqlmock"), "Admin", " Admin@FitDesk.me ", "s3cret-pass")

	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSuperAdmin_Existing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	created, err := EnsureSuperAdmin(context.Background(), sqlx.NewDb(db, "sqlmock"), "Admin", "admin@fitdesk.me", "s3cret-pass")

	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
