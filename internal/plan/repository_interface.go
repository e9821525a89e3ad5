package plan

import "context"

type Repository interface {
	List(ctx context.Context) ([]Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
	Create(ctx context.Context, req CreatePlanRequest) (*Plan, error)
	Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id int) error
	CountGyms(ctx context.Context, id int) (int, error)
}
