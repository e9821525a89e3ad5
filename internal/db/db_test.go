package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestWithTx_Commits(t *testing.T) {
	dbx, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE clients`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), dbx, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(`UPDATE clients SET paid_amount = paid_amount + 1`)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	dbx, mock := newMock(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := WithTx(context.Background(), dbx, func(tx *sqlx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFails(t *testing.T) {
	dbx, mock := newMock(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := WithTx(context.Background(), dbx, func(tx *sqlx.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestExists(t *testing.T) {
	dbx, mock := newMock(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := Exists(context.Background(), dbx, `SELECT EXISTS(SELECT 1 FROM gyms WHERE id = $1)`, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert user: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestSetClause(t *testing.T) {
	var set SetClause
	assert.True(t, set.Empty())

	set.Add("name", "Gold")
	set.Add("price", 999.0)
	where := set.Arg(7)

	assert.False(t, set.Empty())
	assert.Equal(t, "name = $1, price = $2", set.SQL())
	assert.Equal(t, "$3", where)
	assert.Equal(t, []interface{}{"Gold", 999.0, 7}, set.Args())
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://fitdesk@127.0.0.1:1/fitdesk?sslmode=disable&connect_timeout=1", Pool{MaxOpen: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping database")
}
