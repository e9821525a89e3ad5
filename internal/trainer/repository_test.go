package trainer

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

var trainerCols = []string{"id", "gym_id", "name", "phone", "specialization", "salary", "is_active", "created_at"}

var may10 = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO trainers`).
		WithArgs(3, "Kiran", "+91", "Strength", 25000.0).
		WillReturnRows(sqlmock.NewRows(trainerCols).AddRow(1, 3, "Kiran", "+91", "Strength", 25000.0, true, time.Now()))

	tr, err := repo.Create(context.Background(), 3, CreateTrainerRequest{Name: " Kiran ", Phone: "+91", Specialization: "Strength", Salary: 25000})
	require.NoError(t, err)
	assert.True(t, tr.IsActive)
}

func TestUpdate_OtherTenant(t *testing.T) {
	repo, mock := newMockRepo(t)
	active := false

	mock.ExpectQuery(`UPDATE trainers SET is_active = \$1 WHERE id = \$2 AND gym_id = \$3 RETURNING`).
		WithArgs(false, 1, 4).
		WillReturnRows(sqlmock.NewRows(trainerCols))

	_, err := repo.Update(context.Background(), 4, 1, UpdateTrainerRequest{IsActive: &active})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDay(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM trainers t LEFT JOIN trainer_attendance a ON a.trainer_id = t.id AND a.date = \$2 WHERE t.gym_id = \$1`).
		WithArgs(3, may10).
		WillReturnRows(sqlmock.NewRows([]string{"trainer_id", "trainer_name", "specialization", "status"}).
			AddRow(1, "Kiran", "Strength", "present").
			AddRow(2, "Meera", "Yoga", nil))

	rows, err := repo.Day(context.Background(), 3, may10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, StatusPresent, *rows[0].Status)
	assert.Nil(t, rows[1].Status)
}

func TestMark_Upserts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO trainer_attendance.*ON CONFLICT \(trainer_id, date\) DO UPDATE SET status = EXCLUDED.status`).
		WithArgs(3, 1, may10, StatusLeave).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_id", "trainer_id", "date", "status"}).
			AddRow(7, 3, 1, may10, StatusLeave))

	a, err := repo.Mark(context.Background(), 3, 1, may10, StatusLeave)
	require.NoError(t, err)
	assert.Equal(t, StatusLeave, a.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMark_ForeignTrainer(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO trainer_attendance`).
		WithArgs(3, 99, may10, StatusPresent).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_id", "trainer_id", "date", "status"}))

	_, err := repo.Mark(context.Background(), 3, 99, may10, StatusPresent)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSummary(t *testing.T) {
	repo, mock := newMockRepo(t)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`COUNT\(a.id\) FILTER \(WHERE a.status = 'present'\) AS present.*GROUP BY t.id, t.name`).
		WithArgs(3, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"trainer_id", "trainer_name", "present", "absent", "leave", "half_day"}).
			AddRow(1, "Kiran", 20, 2, 1, 3))

	rows, err := repo.Summary(context.Background(), 3, from, to)
	require.NoError(t, err)
	assert.Equal(t, MonthSummary{TrainerID: 1, TrainerName: "Kiran", Present: 20, Absent: 2, Leave: 1, HalfDay: 3}, rows[0])
}
