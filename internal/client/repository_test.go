package client

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "gym_id", "name", "phone", "email", "gender", "plan_name",
	"subscription_start", "subscription_end", "total_amount", "paid_amount",
	"status", "notes", "created_at", "updated_at",
}

func clientRow(id, gymID int, name, start, end string, total, paid float64, status string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, gymID, name, "+919800000000", "", "", "Monthly",
		day(start), day(end), total, paid, status, "", now, now,
	}
}

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestList_ScopedToGym(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id.*FROM clients WHERE gym_id = \$1 ORDER BY created_at DESC`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(clientRow(1, 3, "Ravi", "2024-05-01", "2024-06-01", 3000, 3000, StatusActive)...))

	clients, err := repo.List(context.Background(), 3, ListFilter{}, day("2024-05-10"))
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ravi", clients[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Filters(t *testing.T) {
	repo, mock := newMockRepo(t)

	today := day("2024-05-10")
	mock.ExpectQuery(`WHERE gym_id = \$1 AND \(CASE WHEN subscription_end < \$2 THEN 'expired' WHEN subscription_start > \$2 THEN 'pending' ELSE 'active' END\) = \$3 AND \(name ILIKE \$4 OR phone ILIKE \$4 OR email ILIKE \$4\)`).
		WithArgs(3, today, StatusExpired, "%ravi%").
		WillReturnRows(sqlmock.NewRows(columns))

	clients, err := repo.List(context.Background(), 3, ListFilter{Status: StatusExpired, Search: " ravi "}, today)
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.NotNil(t, clients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_SearchOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE gym_id = \$1 AND \(name ILIKE \$2`).
		WithArgs(3, "%98%").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.List(context.Background(), 3, ListFilter{Search: "98"}, day("2024-05-10"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_OtherTenant(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM clients WHERE id = \$1 AND gym_id = \$2`).
		WithArgs(7, 3).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 3, 7)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	req := CreateClientRequest{Name: " Ravi ", Phone: "+919800000000", PlanName: "Monthly", TotalAmount: 3000, PaidAmount: 1000}

	mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs(3, "Ravi", "+919800000000", "", "", "Monthly",
			day("2024-05-01"), day("2024-06-01"), 3000.0, 1000.0, StatusActive, "").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(clientRow(9, 3, "Ravi", "2024-05-01", "2024-06-01", 3000, 1000, StatusActive)...))

	c, err := repo.Create(context.Background(), 3, req, day("2024-05-01"), day("2024-06-01"), StatusActive)
	require.NoError(t, err)
	assert.Equal(t, 9, c.ID)
	assert.Equal(t, 1000.0, c.PaidAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)
	notes := "Knee injury"

	mock.ExpectQuery(`UPDATE clients SET notes = \$1, subscription_start = \$2, subscription_end = \$3, status = \$4, updated_at = NOW\(\) WHERE id = \$5 AND gym_id = \$6 RETURNING`).
		WithArgs(notes, day("2024-05-01"), day("2024-06-01"), StatusActive, 9, 3).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(clientRow(9, 3, "Ravi", "2024-05-01", "2024-06-01", 3000, 1000, StatusActive)...))

	c, err := repo.Update(context.Background(), 3, 9, Changes{
		UpdateClientRequest: UpdateClientRequest{Notes: &notes},
		Start:               day("2024-05-01"),
		End:                 day("2024-06-01"),
		Status:              StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Missing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM clients WHERE id = \$1 AND gym_id = \$2`).
		WithArgs(9, 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3, 9), sql.ErrNoRows)
}

func TestLogReminder(t *testing.T) {
	repo, mock := newMockRepo(t)
	sentAt := time.Now()
	log := &ReminderLog{GymID: 3, ClientID: 9, Channel: "sms", Message: "Hi", Status: ReminderFailed, ErrorMessage: "boom"}

	mock.ExpectQuery(`INSERT INTO reminder_logs`).
		WithArgs(3, 9, "sms", "Hi", ReminderFailed, "", "boom").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sent_at"}).AddRow(4, sentAt))

	require.NoError(t, repo.LogReminder(context.Background(), log))
	assert.Equal(t, 4, log.ID)
	assert.Equal(t, sentAt, log.SentAt)
}

func TestRefreshStatuses(t *testing.T) {
	repo, mock := newMockRepo(t)
	today := day("2024-05-10")

	mock.ExpectExec(`UPDATE clients SET status = \(CASE WHEN subscription_end < \$1 THEN 'expired' WHEN subscription_start > \$1 THEN 'pending' ELSE 'active' END\), updated_at = NOW\(\) WHERE status <> \(CASE`).
		WithArgs(today).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.RefreshStatuses(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
