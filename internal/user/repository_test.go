package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role", "gym_id", "created_at", "gym_name", "gym_active"}

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func TestFindByEmail(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT u.id, u.name, u.email.* FROM users u LEFT JOIN gyms g.* WHERE LOWER\(u.email\) = \$1`).
		WithArgs("owner@gym.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Owner", "owner@gym.com", "hash", "GYM_OWNER", 3, time.Now(), "Iron Temple", true))

	user, err := repo.FindByEmail(context.Background(), "  Owner@Gym.com ")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, 3, user.TenantID())
	assert.Equal(t, "Iron Temple", *user.GymName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT u.id`).
		WithArgs("ghost@gym.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "ghost@gym.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, user)
}

func TestFindByID_SuperAdmin(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT u.id.* WHERE u.id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(9, "Root", "root@fitdesk.me", "hash", "SUPER_ADMIN", nil, time.Now(), nil, nil))

	user, err := repo.FindByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, user.GymID)
	assert.Equal(t, 0, user.TenantID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE LOWER\(email\) = \$1\)`).
		WithArgs("taken@gym.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "Taken@gym.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAndAttachGym(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	dbx := sqlx.NewDb(db, "sqlmock")

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Owner", "owner@gym.com", "hash", "GYM_OWNER").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "gym_id", "created_at"}).
			AddRow(5, "Owner", "owner@gym.com", "hash", "GYM_OWNER", nil, time.Now()))
	mock.ExpectExec(`UPDATE users SET gym_id = \$1 WHERE id = \$2`).
		WithArgs(11, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := Insert(context.Background(), dbx, "Owner", "Owner@Gym.com", "hash", "GYM_OWNER")
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)

	require.NoError(t, AttachGym(context.Background(), dbx, user.ID, 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}
