package gym

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	GetByID(ctx context.Context, id int) (*Summary, error)
	CreateWithOwner(ctx context.Context, req CreateGymRequest, passwordHash string, window *Window) (*Summary, error)
	Update(ctx context.Context, id int, req UpdateGymRequest, window *Window) error
	ToggleActive(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	PlanDuration(ctx context.Context, planID int) (int, error)
	Stats(ctx context.Context) (*Stats, error)

	GetSettings(ctx context.Context, gymID int) (*Gym, error)
	UpdateSettings(ctx context.Context, gymID int, req UpdateSettingsRequest) (*Gym, error)

	DeactivateLapsed(ctx context.Context, today time.Time) (int64, error)
}
