package plan

import (
	"time"

	"github.com/lib/pq"
)

type Plan struct {
	ID           int            `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Price        float64        `db:"price" json:"price"`
	DurationDays int            `db:"duration_days" json:"duration_days"`
	Features     pq.StringArray `db:"features" json:"features" swaggertype:"array,string"`
	GymCount     int            `db:"gym_count" json:"gym_count"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

type CreatePlanRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	DurationDays int      `json:"duration_days" binding:"required,gte=1"`
	Features     []string `json:"features"`
}

// UpdatePlanRequest only touches the fields that are present.
type UpdatePlanRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=1,max=100"`
	Price        *float64  `json:"price" binding:"omitempty,gte=0"`
	DurationDays *int      `json:"duration_days" binding:"omitempty,gte=1"`
	Features     *[]string `json:"features"`
}

func (r UpdatePlanRequest) Empty() bool {
	return r.Name == nil && r.Price == nil && r.DurationDays == nil && r.Features == nil
}
