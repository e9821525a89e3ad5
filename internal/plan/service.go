package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitdesk/internal/api"
	"fitdesk/internal/db"
	"fitdesk/internal/logger"
)

var ErrPlanNotFound = api.NewNotFoundError("Plan not found")

type Service interface {
	List(ctx context.Context) ([]Plan, error)
	Get(ctx context.Context, id int) (*Plan, error)
	Create(ctx context.Context, req CreatePlanRequest) (*Plan, error)
	Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Plan, error) {
	plans, err := s.repo.List(ctx)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch plans", err)
	}
	return plans, nil
}

func (s *service) Get(ctx context.Context, id int) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err, "Failed to fetch plan")
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	p, err := s.repo.Create(ctx, req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, api.NewConflictError("A plan with this name already exists")
		}
		return nil, api.NewInternalError("Failed to create plan", err)
	}

	logger.Info("plan created", "plan_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	if req.Empty() {
		return nil, api.NewValidationError("No fields to update")
	}

	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, api.NewConflictError("A plan with this name already exists")
		}
		return nil, mapErr(err, "Failed to update plan")
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	count, err := s.repo.CountGyms(ctx, id)
	if err != nil {
		return api.NewInternalError("Failed to check plan usage", err)
	}
	if count > 0 {
		return api.NewConflictError(fmt.Sprintf("Plan is assigned to %d gym(s) and cannot be deleted", count))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapErr(err, "Failed to delete plan")
	}
	return nil
}

func mapErr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlanNotFound
	}
	return api.NewInternalError(msg, err)
}
