package trainer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/logger"
)

var (
	ErrTrainerNotFound = api.NewNotFoundError("Trainer not found")
	ErrBadMonth        = api.NewValidationError("month must be in YYYY-MM format")
)

type Service interface {
	List(ctx context.Context, gymID int) ([]Trainer, error)
	Create(ctx context.Context, gymID int, req CreateTrainerRequest) (*Trainer, error)
	Update(ctx context.Context, gymID, id int, req UpdateTrainerRequest) (*Trainer, error)
	Delete(ctx context.Context, gymID, id int) error

	Day(ctx context.Context, gymID int, date *time.Time) ([]DayRow, error)
	Mark(ctx context.Context, gymID int, req MarkAttendanceRequest) (*Attendance, error)
	Summary(ctx context.Context, gymID int, month string) ([]MonthSummary, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context, gymID int) ([]Trainer, error) {
	trainers, err := s.repo.List(ctx, gymID)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch trainers", err)
	}
	return trainers, nil
}

func (s *service) Create(ctx context.Context, gymID int, req CreateTrainerRequest) (*Trainer, error) {
	t, err := s.repo.Create(ctx, gymID, req)
	if err != nil {
		return nil, api.NewInternalError("Failed to create trainer", err)
	}
	logger.Info("trainer created", "gym_id", gymID, "trainer_id", t.ID)
	return t, nil
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdateTrainerRequest) (*Trainer, error) {
	if req.Empty() {
		return nil, api.NewValidationError("No fields to update")
	}

	t, err := s.repo.Update(ctx, gymID, id, req)
	if err != nil {
		return nil, mapErr(err, "Failed to update trainer")
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	if err := s.repo.Delete(ctx, gymID, id); err != nil {
		return mapErr(err, "Failed to delete trainer")
	}
	return nil
}

// Day defaults to today when no date is given.
func (s *service) Day(ctx context.Context, gymID int, date *time.Time) ([]DayRow, error) {
	d := s.today()
	if date != nil {
		d = *date
	}

	rows, err := s.repo.Day(ctx, gymID, d)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch attendance", err)
	}
	return rows, nil
}

func (s *service) Mark(ctx context.Context, gymID int, req MarkAttendanceRequest) (*Attendance, error) {
	date, err := time.Parse(api.DateLayout, req.Date)
	if err != nil {
		return nil, api.NewValidationError("Date must be a date in format " + api.DateLayout)
	}

	a, err := s.repo.Mark(ctx, gymID, req.TrainerID, date, req.Status)
	if err != nil {
		return nil, mapErr(err, "Failed to mark attendance")
	}
	logger.Debug("attendance marked", "gym_id", gymID, "trainer_id", req.TrainerID, "status", req.Status)
	return a, nil
}

func (s *service) Summary(ctx context.Context, gymID int, month string) ([]MonthSummary, error) {
	if month == "" {
		month = s.today().Format(MonthLayout)
	}
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, ErrBadMonth
	}

	rows, err := s.repo.Summary(ctx, gymID, from, to)
	if err != nil {
		return nil, api.NewInternalError("Failed to summarise attendance", err)
	}
	return rows, nil
}

func (s *service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

func mapErr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTrainerNotFound
	}
	return api.NewInternalError(msg, err)
}
