package gym

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/auth"
	"fitdesk/internal/db"
	"fitdesk/internal/logger"
)

var (
	ErrGymNotFound  = api.NewNotFoundError("Gym not found")
	ErrPlanNotFound = api.NewValidationError("Selected plan does not exist")
	ErrEmailTaken   = api.NewConflictError("A user with this email already exists")
)

// Mailer queues the welcome message for a new owner.
type Mailer interface {
	SendOwnerWelcome(ctx context.Context, email, name, gymName string) error
}

// EmailChecker reports whether an account already uses the address.
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int) (*Summary, error)
	Create(ctx context.Context, req CreateGymRequest) (*Summary, error)
	Update(ctx context.Context, id int, req UpdateGymRequest) (*Summary, error)
	Toggle(ctx context.Context, id int) (*Summary, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context) (*Stats, error)

	GetSettings(ctx context.Context, gymID int) (*Gym, error)
	UpdateSettings(ctx context.Context, gymID int, req UpdateSettingsRequest) (*Gym, error)
}

type service struct {
	repo   Repository
	users  EmailChecker
	mailer Mailer
	now    func() time.Time
}

func NewService(repo Repository, users EmailChecker, mailer Mailer) Service {
	return &service{
		repo:   repo,
		users:  users,
		mailer: mailer,
		now:    time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]Summary, error) {
	gyms, err := s.repo.List(ctx)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch gyms", err)
	}
	return gyms, nil
}

func (s *service) Get(ctx context.Context, id int) (*Summary, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err, "Failed to fetch gym")
	}
	return g, nil
}

func (s *service) Create(ctx context.Context, req CreateGymRequest) (*Summary, error) {
	exists, err := s.users.EmailExists(ctx, req.OwnerEmail)
	if err != nil {
		return nil, api.NewInternalError("Failed to check owner email", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	window, err := s.window(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.OwnerPassword)
	if err != nil {
		return nil, api.NewInternalError("Failed to hash password", err)
	}

	g, err := s.repo.CreateWithOwner(ctx, req, hash, window)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, api.NewInternalError("Failed to create gym", err)
	}

	logger.Info("gym created", "gym_id", g.ID, "owner_id", g.OwnerID)

	if s.mailer != nil {
		if err := s.mailer.SendOwnerWelcome(ctx, req.OwnerEmail, req.OwnerName, g.Name); err != nil {
			logger.Warn("failed to queue welcome email", "gym_id", g.ID, "error", err)
		}
	}

	return g, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateGymRequest) (*Summary, error) {
	if req.Empty() {
		return nil, api.NewValidationError("No fields to update")
	}

	window, err := s.window(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, req, window); err != nil {
		return nil, mapErr(err, "Failed to update gym")
	}
	return s.Get(ctx, id)
}

func (s *service) Toggle(ctx context.Context, id int) (*Summary, error) {
	if err := s.repo.ToggleActive(ctx, id); err != nil {
		return nil, mapErr(err, "Failed to toggle gym")
	}

	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("gym toggled", "gym_id", id, "is_active", g.IsActive)
	return g, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapErr(err, "Failed to delete gym")
	}
	logger.Info("gym deleted", "gym_id", id)
	return nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	st, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, api.NewInternalError("Failed to compute stats", err)
	}
	return st, nil
}

func (s *service) GetSettings(ctx context.Context, gymID int) (*Gym, error) {
	g, err := s.repo.GetSettings(ctx, gymID)
	if err != nil {
		return nil, mapErr(err, "Failed to fetch settings")
	}
	return g, nil
}

func (s *service) UpdateSettings(ctx context.Context, gymID int, req UpdateSettingsRequest) (*Gym, error) {
	if req.Empty() {
		return nil, api.NewValidationError("No fields to update")
	}

	g, err := s.repo.UpdateSettings(ctx, gymID, req)
	if err != nil {
		return nil, mapErr(err, "Failed to update settings")
	}
	return g, nil
}

// window starts a new subscription period on the plan, or returns nil when
// no plan was chosen.
func (s *service) window(ctx context.Context, planID *int) (*Window, error) {
	if planID == nil {
		return nil, nil
	}

	days, err := s.repo.PlanDuration(ctx, *planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, api.NewInternalError("Failed to fetch plan", err)
	}

	w := NewWindow(*planID, days, s.now())
	return &w, nil
}

func mapErr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGymNotFound
	}
	return api.NewInternalError(msg, err)
}
