package report

import (
	"bytes"
	"context"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/logger"
	"fitdesk/internal/metrics"
)

var (
	ErrUnknownReport = api.NewNotFoundError("Unknown report")
	ErrBadRange      = api.NewValidationError("start must be on or before end")
)

// Export is a rendered report.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

type Service interface {
	Build(ctx context.Context, gymID int, kind string, r Range) (*Table, error)
	Export(ctx context.Context, gymID int, kind, format string, r Range) (*Export, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Build(ctx context.Context, gymID int, kind string, r Range) (*Table, error) {
	if !kinds[kind] {
		return nil, ErrUnknownReport
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return nil, ErrBadRange
	}

	switch kind {
	case KindClients:
		records, err := s.repo.Clients(ctx, gymID, r)
		if err != nil {
			return nil, api.NewInternalError("Failed to load clients", err)
		}
		return clientTable(records, s.now()), nil
	case KindPayments:
		records, err := s.repo.Payments(ctx, gymID, r)
		if err != nil {
			return nil, api.NewInternalError("Failed to load payments", err)
		}
		return paymentTable(records), nil
	default:
		records, err := s.repo.Attendance(ctx, gymID, r)
		if err != nil {
			return nil, api.NewInternalError("Failed to load attendance", err)
		}
		return attendanceTable(records), nil
	}
}

func (s *service) Export(ctx context.Context, gymID int, kind, format string, r Range) (*Export, error) {
	if format == "" {
		format = FormatCSV
	}

	table, err := s.Build(ctx, gymID, kind, r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Write(&buf, table, format); err != nil {
		return nil, api.NewInternalError("Failed to render report", err)
	}

	metrics.RecordReport(kind, format)
	logger.Info("report exported", "gym_id", gymID, "kind", kind, "format", format, "rows", len(table.Rows))

	return &Export{
		Filename:    r.Filename(kind, format, s.now()),
		ContentType: contentTypes[format],
		Body:        buf.Bytes(),
	}, nil
}
