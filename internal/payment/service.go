package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/db"
	"fitdesk/internal/logger"
	"fitdesk/internal/metrics"
	"fitdesk/internal/notification"
)

var (
	ErrPaymentNotFound = api.NewNotFoundError("Payment not found")
	ErrClientNotFound  = api.NewNotFoundError("Client not found")
	ErrBadRange        = api.NewValidationError("start must be on or before end")
)

// Mailer queues the payment receipt for the client.
type Mailer interface {
	SendPaymentReceipt(ctx context.Context, email, name, gymName, invoiceNumber string, amount float64, paidOn time.Time) error
}

type Notifier interface {
	Publish(gymID int, eventType, message string) notification.Event
}

type Service interface {
	List(ctx context.Context, gymID int, filter ListFilter) ([]Payment, error)
	Create(ctx context.Context, gymID int, req CreatePaymentRequest) (*Payment, error)
	Delete(ctx context.Context, gymID, id int) error
	Invoice(ctx context.Context, gymID, id int) (*Invoice, error)
}

type service struct {
	repo       Repository
	mailer     Mailer
	notifier   Notifier
	now        func() time.Time
	newInvoice func(prefix string, date time.Time) (string, error)
}

func NewService(repo Repository, mailer Mailer, notifier Notifier) Service {
	return &service{
		repo:       repo,
		mailer:     mailer,
		notifier:   notifier,
		now:        time.Now,
		newInvoice: NewInvoiceNumber,
	}
}

func (s *service) List(ctx context.Context, gymID int, filter ListFilter) ([]Payment, error) {
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return nil, ErrBadRange
	}

	payments, err := s.repo.List(ctx, gymID, filter)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch payments", err)
	}
	return payments, nil
}

func (s *service) Create(ctx context.Context, gymID int, req CreatePaymentRequest) (*Payment, error) {
	paidOn := s.now().UTC().Truncate(24 * time.Hour)
	if req.PaymentDate != "" {
		d, err := time.Parse(api.DateLayout, req.PaymentDate)
		if err != nil {
			return nil, api.NewValidationError("PaymentDate must be a date in format " + api.DateLayout)
		}
		paidOn = d
	}

	gym, err := s.repo.InvoiceSettings(ctx, gymID)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch invoice settings", err)
	}

	number, err := s.newInvoice(gym.InvoicePrefix, paidOn)
	if err != nil {
		return nil, api.NewInternalError("Failed to generate invoice number", err)
	}

	p, err := s.repo.Create(ctx, gymID, req, number, paidOn)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrClientNotFound
		case db.IsUniqueViolation(err):
			return nil, api.NewConflictError("Invoice number already in use, please retry")
		}
		return nil, api.NewInternalError("Failed to record payment", err)
	}

	metrics.RecordPayment(p.Method, p.Amount)
	logger.Info("payment recorded",
		"gym_id", gymID,
		"client_id", p.ClientID,
		"invoice", p.InvoiceNumber,
		"amount", p.Amount,
	)

	if s.notifier != nil {
		s.notifier.Publish(gymID, notification.TypePaymentCreated,
			fmt.Sprintf("Payment of %.2f received from %s", p.Amount, p.ClientName))
	}

	if s.mailer != nil && p.ClientEmail != "" {
		err := s.mailer.SendPaymentReceipt(ctx, p.ClientEmail, p.ClientName, gym.Name, p.InvoiceNumber, p.Amount, p.PaymentDate)
		if err != nil {
			logger.Warn("failed to queue receipt", "invoice", p.InvoiceNumber, "error", err)
		}
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	if err := s.repo.Delete(ctx, gymID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPaymentNotFound
		}
		return api.NewInternalError("Failed to delete payment", err)
	}
	logger.Info("payment deleted", "gym_id", gymID, "payment_id", id)
	return nil
}

func (s *service) Invoice(ctx context.Context, gymID, id int) (*Invoice, error) {
	rec, err := s.repo.InvoiceRecord(ctx, gymID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, api.NewInternalError("Failed to fetch payment", err)
	}

	gym, err := s.repo.InvoiceSettings(ctx, gymID)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch invoice settings", err)
	}

	inv := BuildInvoice(*rec, *gym)
	return &inv, nil
}
