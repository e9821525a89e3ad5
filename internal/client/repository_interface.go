package client

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, gymID int, filter ListFilter, today time.Time) ([]Client, error)
	GetByID(ctx context.Context, gymID, id int) (*Client, error)
	Create(ctx context.Context, gymID int, req CreateClientRequest, start, end time.Time, status string) (*Client, error)
	Update(ctx context.Context, gymID, id int, ch Changes) (*Client, error)
	Delete(ctx context.Context, gymID, id int) error

	GymName(ctx context.Context, gymID int) (string, error)
	LogReminder(ctx context.Context, log *ReminderLog) error
	ListReminders(ctx context.Context, gymID, clientID int) ([]ReminderLog, error)

	RefreshStatuses(ctx context.Context, today time.Time) (int64, error)
}
