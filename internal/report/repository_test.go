package report

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestWithin(t *testing.T) {
	start, end := day("2024-04-01"), day("2024-04-30")

	clause, args := within("p.payment_date", Range{Start: &start, End: &end}, []interface{}{3})
	assert.Equal(t, " AND p.payment_date >= $2 AND p.payment_date <= $3", clause)
	assert.Equal(t, []interface{}{3, start, end}, args)

	clause, args = within("a.date", Range{End: &end}, []interface{}{3})
	assert.Equal(t, " AND a.date <= $2", clause)
	assert.Len(t, args, 2)

	clause, _ = within("a.date", Range{}, []interface{}{3})
	assert.Empty(t, clause)
}

func TestClients(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := day("2024-04-01")

	mock.ExpectQuery(`FROM clients WHERE gym_id = \$1 AND subscription_start >= \$2 ORDER BY`).
		WithArgs(3, start).
		WillReturnRows(sqlmock.NewRows([]string{
			"name", "phone", "email", "plan_name", "subscription_start", "subscription_end",
			"total_amount", "paid_amount",
		}).AddRow("Ravi", "+919800000000", "", "Monthly", day("2024-04-02"), day("2024-05-01"), 1000.0, 1000.0))

	records, err := repo.Clients(ctx, 3, Range{Start: &start})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ravi", records[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayments_ScopedToGym(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM payments p JOIN clients c ON c.id = p.client_id WHERE p.gym_id = \$1 ORDER BY`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_number", "client_name", "amount", "method", "payment_date", "note"}))

	records, err := repo.Payments(ctx, 3, Range{})

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendance(t *testing.T) {
	repo, mock := newMockRepo(t)
	start, end := day("2024-05-01"), day("2024-05-31")

	mock.ExpectQuery(`FROM trainer_attendance a JOIN trainers t ON t.id = a.trainer_id`).
		WithArgs(3, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"date", "trainer_name", "status"}).
			AddRow(day("2024-05-02"), "Meera", "present"))

	records, err := repo.Attendance(ctx, 3, Range{Start: &start, End: &end})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Meera", records[0].TrainerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
