package trainer

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, gymID int) ([]Trainer, error)
	Create(ctx context.Context, gymID int, req CreateTrainerRequest) (*Trainer, error)
	Update(ctx context.Context, gymID, id int, req UpdateTrainerRequest) (*Trainer, error)
	Delete(ctx context.Context, gymID, id int) error

	Day(ctx context.Context, gymID int, date time.Time) ([]DayRow, error)
	Mark(ctx context.Context, gymID, trainerID int, date time.Time, status string) (*Attendance, error)
	Summary(ctx context.Context, gymID int, from, to time.Time) ([]MonthSummary, error)
}
