package trainer

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
	StatusHalfDay = "half_day"
)

const MonthLayout = "2006-01"

type Trainer struct {
	ID             int       `db:"id" json:"id"`
	GymID          int       `db:"gym_id" json:"gym_id"`
	Name           string    `db:"name" json:"name"`
	Phone          string    `db:"phone" json:"phone"`
	Specialization string    `db:"specialization" json:"specialization"`
	Salary         float64   `db:"salary" json:"salary"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateTrainerRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Phone          string  `json:"phone" binding:"max=20"`
	Specialization string  `json:"specialization" binding:"max=100"`
	Salary         float64 `json:"salary" binding:"gte=0"`
}

type UpdateTrainerRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Phone          *string  `json:"phone" binding:"omitempty,max=20"`
	Specialization *string  `json:"specialization" binding:"omitempty,max=100"`
	Salary         *float64 `json:"salary" binding:"omitempty,gte=0"`
	IsActive       *bool    `json:"is_active"`
}

func (r UpdateTrainerRequest) Empty() bool {
	return r.Name == nil && r.Phone == nil && r.Specialization == nil && r.Salary == nil && r.IsActive == nil
}

type Attendance struct {
	ID        int       `db:"id" json:"id"`
	GymID     int       `db:"gym_id" json:"gym_id"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	Date      time.Time `db:"date" json:"date"`
	Status    string    `db:"status" json:"status"`
}

// DayRow is one trainer's status for a day; Status is nil when unmarked.
type DayRow struct {
	TrainerID      int     `db:"trainer_id" json:"trainer_id"`
	TrainerName    string  `db:"trainer_name" json:"trainer_name"`
	Specialization string  `db:"specialization" json:"specialization"`
	Status         *string `db:"status" json:"status"`
}

type MarkAttendanceRequest struct {
	TrainerID int    `json:"trainer_id" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,oneof=present absent leave half_day"`
}

type MonthSummary struct {
	TrainerID   int    `db:"trainer_id" json:"trainer_id"`
	TrainerName string `db:"trainer_name" json:"trainer_name"`
	Present     int    `db:"present" json:"present"`
	Absent      int    `db:"absent" json:"absent"`
	Leave       int    `db:"leave" json:"leave"`
	HalfDay     int    `db:"half_day" json:"half_day"`
}

// MonthRange returns [first day, first day of next month) for a YYYY-MM value.
func MonthRange(month string) (from, to time.Time, err error) {
	from, err = time.Parse(MonthLayout, month)
	if err != nil {
		return from, to, err
	}
	return from, from.AddDate(0, 1, 0), nil
}
