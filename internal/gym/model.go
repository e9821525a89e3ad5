package gym

import "time"

type Gym struct {
	ID                int        `db:"id" json:"id"`
	Name              string     `db:"name" json:"name"`
	OwnerID           int        `db:"owner_id" json:"owner_id"`
	PlanID            *int       `db:"plan_id" json:"plan_id"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	Address           string     `db:"address" json:"address"`
	Phone             string     `db:"phone" json:"phone"`
	SubscriptionStart *time.Time `db:"subscription_start" json:"subscription_start"`
	SubscriptionEnd   *time.Time `db:"subscription_end" json:"subscription_end"`
	InvoicePrefix     string     `db:"invoice_prefix" json:"invoice_prefix"`
	InvoiceFooter     string     `db:"invoice_footer" json:"invoice_footer"`
	TaxRate           float64    `db:"tax_rate" json:"tax_rate"`
	GSTNumber         string     `db:"gst_number" json:"gst_number"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// Summary is a gym as the admin console lists it.
type Summary struct {
	Gym
	OwnerName   *string  `db:"owner_name" json:"owner_name"`
	OwnerEmail  *string  `db:"owner_email" json:"owner_email"`
	PlanName    *string  `db:"plan_name" json:"plan_name"`
	PlanPrice   *float64 `db:"plan_price" json:"plan_price"`
	ClientCount int      `db:"client_count" json:"client_count"`
}

// Window is a gym's paid subscription period.
type Window struct {
	PlanID int
	Start  time.Time
	End    time.Time
}

func NewWindow(planID, durationDays int, from time.Time) Window {
	from = from.UTC()
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	return Window{PlanID: planID, Start: start, End: start.AddDate(0, 0, durationDays)}
}

type CreateGymRequest struct {
	GymName       string `json:"gym_name" binding:"required,max=150"`
	OwnerName     string `json:"owner_name" binding:"required,max=100"`
	OwnerEmail    string `json:"owner_email" binding:"required,email"`
	OwnerPassword string `json:"owner_password" binding:"required,min=6"`
	PlanID        *int   `json:"plan_id" binding:"omitempty,gt=0"`
	Address       string `json:"address" binding:"max=300"`
	Phone         string `json:"phone" binding:"max=20"`
}

type UpdateGymRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=150"`
	Address  *string `json:"address" binding:"omitempty,max=300"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	PlanID   *int    `json:"plan_id" binding:"omitempty,gt=0"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateGymRequest) Empty() bool {
	return r.Name == nil && r.Address == nil && r.Phone == nil && r.PlanID == nil && r.IsActive == nil
}

type UpdateSettingsRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=150"`
	Address       *string  `json:"address" binding:"omitempty,max=300"`
	Phone         *string  `json:"phone" binding:"omitempty,max=20"`
	InvoicePrefix *string  `json:"invoice_prefix" binding:"omitempty,min=1,max=10,alphanum"`
	InvoiceFooter *string  `json:"invoice_footer" binding:"omitempty,max=500"`
	TaxRate       *float64 `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
	GSTNumber     *string  `json:"gst_number" binding:"omitempty,max=20"`
}

func (r UpdateSettingsRequest) Empty() bool {
	return r.Name == nil && r.Address == nil && r.Phone == nil && r.InvoicePrefix == nil &&
		r.InvoiceFooter == nil && r.TaxRate == nil && r.GSTNumber == nil
}

type Stats struct {
	TotalGyms      int     `db:"total_gyms" json:"total_gyms"`
	ActiveGyms     int     `db:"active_gyms" json:"active_gyms"`
	TotalPlans     int     `db:"total_plans" json:"total_plans"`
	TotalClients   int     `db:"total_clients" json:"total_clients"`
	MonthlyRevenue float64 `db:"monthly_revenue" json:"monthly_revenue"`
}
