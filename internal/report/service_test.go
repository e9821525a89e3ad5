package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Clients(ctx context.Context, gymID int, r Range) ([]ClientRecord, error) {
	args := m.Called(ctx, gymID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ClientRecord), args.Error(1)
}

func (m *MockRepository) Payments(ctx context.Context, gymID int, r Range) ([]PaymentRecord, error) {
	args := m.Called(ctx, gymID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentRecord), args.Error(1)
}

func (m *MockRepository) Attendance(ctx context.Context, gymID int, r Range) ([]AttendanceRecord, error) {
	args := m.Called(ctx, gymID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AttendanceRecord), args.Error(1)
}

func newTestService(repo Repository) *service {
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return day("2024-05-10") }
	return svc
}

func TestService_ExportDefaultsToCSV(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Clients", ctx, 3, Range{}).Return([]ClientRecord{
		{Name: "Ravi", Phone: "+919800000000", PlanName: "Monthly", SubscriptionStart: day("2024-05-01"), SubscriptionEnd: day("2024-05-31"), TotalAmount: 1000, PaidAmount: 400},
	}, nil)
	before := testutil.ToFloat64(metrics.ReportsTotal.WithLabelValues("clients", "csv"))

	export, err := newTestService(repo).Export(ctx, 3, KindClients, "", Range{})

	require.NoError(t, err)
	assert.Equal(t, "clients_report_2024-05-10.csv", export.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", export.ContentType)
	assert.Equal(t,
		"Name,Phone,Email,Plan,Start,End,Total,Paid,Balance,Status\n"+
			"Ravi,+919800000000,,Monthly,2024-05-01,2024-05-31,1000.00,400.00,600.00,active\n",
		string(export.Body))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ReportsTotal.WithLabelValues("clients", "csv")))
	repo.AssertExpectations(t)
}

func TestService_ExportXLSX(t *testing.T) {
	repo := new(MockRepository)
	r := Range{Start: ptr(day("2024-05-01")), End: ptr(day("2024-05-31"))}
	repo.On("Attendance", ctx, 3, r).Return([]AttendanceRecord{}, nil)

	export, err := newTestService(repo).Export(ctx, 3, KindAttendance, FormatXLSX, r)

	require.NoError(t, err)
	assert.Equal(t, "attendance_report_2024-05-01_to_2024-05-31.xlsx", export.Filename)
	assert.Equal(t, contentTypes[FormatXLSX], export.ContentType)
	assert.NotEmpty(t, export.Body)
}

func TestService_BuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		r       Range
		errType api.ErrorType
	}{
		{"unknown kind", "trainers", Range{}, api.ErrorTypeNotFound},
		{"start after end", KindPayments, Range{Start: ptr(day("2024-05-10")), End: ptr(day("2024-05-01"))}, api.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)

			_, err := newTestService(repo).Build(ctx, 3, tt.kind, tt.r)

			assert.True(t, api.IsType(err, tt.errType))
			repo.AssertNotCalled(t, "Payments", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_BuildRepoError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Payments", ctx, 3, Range{}).Return(nil, errors.New("db down"))

	_, err := newTestService(repo).Build(ctx, 3, KindPayments, Range{})

	assert.True(t, api.IsType(err, api.ErrorTypeInternal))
}
