package trainer

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"fitdesk/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, gymID int) ([]Trainer, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Trainer), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, gymID int, req CreateTrainerRequest) (*Trainer, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, gymID, id int, req UpdateTrainerRequest) (*Trainer, error) {
	args := m.Called(ctx, gymID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, gymID, id int) error {
	return m.Called(ctx, gymID, id).Error(0)
}

func (m *MockRepository) Day(ctx context.Context, gymID int, date time.Time) ([]DayRow, error) {
	args := m.Called(ctx, gymID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DayRow), args.Error(1)
}

func (m *MockRepository) Mark(ctx context.Context, gymID, trainerID int, date time.Time, status string) (*Attendance, error) {
	args := m.Called(ctx, gymID, trainerID, date, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attendance), args.Error(1)
}

func (m *MockRepository) Summary(ctx context.Context, gymID int, from, to time.Time) ([]MonthSummary, error) {
	args := m.Called(ctx, gymID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MonthSummary), args.Error(1)
}

func newTestService(repo Repository) *service {
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_DayDefaultsToToday(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Day", mock.Anything, 3, may10).Return([]DayRow{}, nil)

	_, err := newTestService(repo).Day(context.Background(), 3, nil)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Mark(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Mark", mock.Anything, 3, 1, may10, StatusHalfDay).Return(&Attendance{ID: 7, Status: StatusHalfDay}, nil)
	repo.On("Mark", mock.Anything, 3, 99, may10, StatusPresent).Return(nil, sql.ErrNoRows)

	a, err := svc.Mark(context.Background(), 3, MarkAttendanceRequest{TrainerID: 1, Date: "2024-05-10", Status: StatusHalfDay})
	require.NoError(t, err)
	assert.Equal(t, StatusHalfDay, a.Status)

	_, err = svc.Mark(context.Background(), 3, MarkAttendanceRequest{TrainerID: 99, Date: "2024-05-10", Status: StatusPresent})
	assert.Equal(t, ErrTrainerNotFound, err)
}

func TestService_Summary(t *testing.T) {
	t.Run("explicit month", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Summary", mock.Anything, 3,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		).Return([]MonthSummary{}, nil)

		_, err := newTestService(repo).Summary(context.Background(), 3, "2024-02")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("defaults to current month", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Summary", mock.Anything, 3,
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		).Return([]MonthSummary{}, nil)

		_, err := newTestService(repo).Summary(context.Background(), 3, "")
		require.NoError(t, err)
	})

	t.Run("bad month", func(t *testing.T) {
		_, err := newTestService(new(MockRepository)).Summary(context.Background(), 3, "May 2024")
		assert.Equal(t, ErrBadMonth, err)
	})
}

func TestService_Update(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 3, 1, UpdateTrainerRequest{})
	assert.True(t, api.IsType(err, api.ErrorTypeValidation))

	salary := 30000.0
	repo.On("Update", mock.Anything, 3, 1, UpdateTrainerRequest{Salary: &salary}).Return(&Trainer{ID: 1, Salary: salary}, nil)

	tr, err := svc.Update(context.Background(), 3, 1, UpdateTrainerRequest{Salary: &salary})
	require.NoError(t, err)
	assert.Equal(t, salary, tr.Salary)
}
