package client

import (
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/insights"
)

const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusPending = "pending"
)

type Client struct {
	ID                int       `db:"id" json:"id"`
	GymID             int       `db:"gym_id" json:"gym_id"`
	Name              string    `db:"name" json:"name"`
	Phone             string    `db:"phone" json:"phone"`
	Email             string    `db:"email" json:"email"`
	Gender            string    `db:"gender" json:"gender"`
	PlanName          string    `db:"plan_name" json:"plan_name"`
	SubscriptionStart time.Time `db:"subscription_start" json:"subscription_start"`
	SubscriptionEnd   time.Time `db:"subscription_end" json:"subscription_end"`
	TotalAmount       float64   `db:"total_amount" json:"total_amount"`
	PaidAmount        float64   `db:"paid_amount" json:"paid_amount"`
	Status            string    `db:"status" json:"status"`
	Notes             string    `db:"notes" json:"notes"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Balance is what the client still owes; overpayment counts as zero.
func (c Client) Balance() float64 {
	if b := c.TotalAmount - c.PaidAmount; b > 0 {
		return b
	}
	return 0
}

// DaysUntilExpiry counts whole days from today to the subscription end.
// Negative once the subscription has lapsed.
func (c Client) DaysUntilExpiry(today time.Time) int {
	return int(dateOf(c.SubscriptionEnd).Sub(dateOf(today)).Hours() / 24)
}

// Row is a client as the dashboard lists it.
type Row struct {
	Client
	DaysUntilExpiry int                `json:"days_until_expiry"`
	Balance         float64            `json:"balance"`
	ChurnRisk       insights.RiskLevel `json:"churn_risk"`
}

// NewRow derives the status from the subscription dates, so the stored
// column never leaks a value the nightly refresh has not caught up with.
func NewRow(c Client, today time.Time) Row {
	c.Status = DeriveStatus(c.SubscriptionStart, c.SubscriptionEnd, today)
	days := c.DaysUntilExpiry(today)
	balance := c.Balance()
	return Row{
		Client:          c,
		DaysUntilExpiry: days,
		Balance:         balance,
		ChurnRisk:       insights.ChurnRiskScore(&days, balance > 0),
	}
}

// DeriveStatus places today against the subscription period.
func DeriveStatus(start, end, today time.Time) string {
	today = dateOf(today)
	switch {
	case dateOf(end).Before(today):
		return StatusExpired
	case dateOf(start).After(today):
		return StatusPending
	default:
		return StatusActive
	}
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StatusSQL is DeriveStatus as a SQL expression over the subscription dates,
// with today bound to the given placeholder.
func StatusSQL(today string) string {
	return `(CASE WHEN subscription_end < ` + today + ` THEN 'expired'` +
		` WHEN subscription_start > ` + today + ` THEN 'pending'` +
		` ELSE 'active' END)`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=active expired pending"`
	Search string `form:"search" binding:"max=100"`
}

type CreateClientRequest struct {
	Name              string  `json:"name" binding:"required,max=100"`
	Phone             string  `json:"phone" binding:"required,max=20"`
	Email             string  `json:"email" binding:"omitempty,email"`
	Gender            string  `json:"gender" binding:"omitempty,oneof=male female other"`
	PlanName          string  `json:"plan_name" binding:"max=100"`
	SubscriptionStart string  `json:"subscription_start" binding:"required,datetime=2006-01-02"`
	SubscriptionEnd   string  `json:"subscription_end" binding:"required,datetime=2006-01-02"`
	TotalAmount       float64 `json:"total_amount" binding:"gte=0"`
	PaidAmount        float64 `json:"paid_amount" binding:"gte=0"`
	Notes             string  `json:"notes" binding:"max=1000"`
}

// Period parses the subscription dates and checks their order.
func (r CreateClientRequest) Period() (start, end time.Time, err error) {
	return parsePeriod(r.SubscriptionStart, r.SubscriptionEnd)
}

type UpdateClientRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Phone             *string  `json:"phone" binding:"omitempty,max=20"`
	Email             *string  `json:"email" binding:"omitempty,email"`
	Gender            *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	PlanName          *string  `json:"plan_name" binding:"omitempty,max=100"`
	SubscriptionStart *string  `json:"subscription_start" binding:"omitempty,datetime=2006-01-02"`
	SubscriptionEnd   *string  `json:"subscription_end" binding:"omitempty,datetime=2006-01-02"`
	TotalAmount       *float64 `json:"total_amount" binding:"omitempty,gte=0"`
	PaidAmount        *float64 `json:"paid_amount" binding:"omitempty,gte=0"`
	Notes             *string  `json:"notes" binding:"omitempty,max=1000"`
}

func (r UpdateClientRequest) Empty() bool {
	return r.Name == nil && r.Phone == nil && r.Email == nil && r.Gender == nil &&
		r.PlanName == nil && r.SubscriptionStart == nil && r.SubscriptionEnd == nil &&
		r.TotalAmount == nil && r.PaidAmount == nil && r.Notes == nil
}

// Changes is an update with its dates resolved against the stored client.
type Changes struct {
	UpdateClientRequest
	Start  time.Time
	End    time.Time
	Status string
}

func parsePeriod(rawStart, rawEnd string) (start, end time.Time, err error) {
	if start, err = time.Parse(api.DateLayout, rawStart); err != nil {
		return start, end, api.NewValidationError("SubscriptionStart must be a date in format " + api.DateLayout)
	}
	if end, err = time.Parse(api.DateLayout, rawEnd); err != nil {
		return start, end, api.NewValidationError("SubscriptionEnd must be a date in format " + api.DateLayout)
	}
	if end.Before(start) {
		return start, end, ErrBadPeriod
	}
	return start, end, nil
}

type ReminderRequest struct {
	Channel string `json:"channel" binding:"required,oneof=sms whatsapp"`
}

const (
	ReminderSent   = "sent"
	ReminderFailed = "failed"
)

type ReminderLog struct {
	ID           int       `db:"id" json:"id"`
	GymID        int       `db:"gym_id" json:"gym_id"`
	ClientID     int       `db:"client_id" json:"client_id"`
	Channel      string    `db:"channel" json:"channel"`
	Message      string    `db:"message" json:"message"`
	Status       string    `db:"status" json:"status"`
	ProviderSID  string    `db:"provider_sid" json:"provider_sid"`
	ErrorMessage string    `db:"error_message" json:"error_message,omitempty"`
	SentAt       time.Time `db:"sent_at" json:"sent_at"`
}
