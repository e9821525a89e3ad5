package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/logger"
	"fitdesk/internal/messaging"
	"fitdesk/internal/metrics"
	"fitdesk/internal/notification"
)

var (
	ErrClientNotFound    = api.NewNotFoundError("Client not found")
	ErrBadPeriod         = api.NewValidationError("Subscription end date must be on or after the start date")
	ErrNotExpired        = api.NewValidationError("Reminders can only be sent to clients with an expired subscription")
	ErrNoPhone           = api.NewValidationError("Client has no phone number")
	ErrMessagingDisabled = api.NewUpstreamError("Messaging provider is not configured", nil)
)

// Notifier publishes tenant events to the dashboard.
type Notifier interface {
	Publish(gymID int, eventType, message string) notification.Event
}

type Service interface {
	List(ctx context.Context, gymID int, filter ListFilter) ([]Row, error)
	Get(ctx context.Context, gymID, id int) (*Row, error)
	Create(ctx context.Context, gymID int, req CreateClientRequest) (*Row, error)
	Update(ctx context.Context, gymID, id int, req UpdateClientRequest) (*Row, error)
	Delete(ctx context.Context, gymID, id int) error

	SendReminder(ctx context.Context, gymID, id int, channel string) (*ReminderLog, error)
	Reminders(ctx context.Context, gymID, id int) ([]ReminderLog, error)
}

type service struct {
	repo     Repository
	sender   messaging.Sender
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, sender messaging.Sender, notifier Notifier) Service {
	return &service{
		repo:     repo,
		sender:   sender,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) List(ctx context.Context, gymID int, filter ListFilter) ([]Row, error) {
	today := s.now()
	clients, err := s.repo.List(ctx, gymID, filter, dateOf(today))
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch clients", err)
	}

	rows := make([]Row, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, NewRow(c, today))
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, gymID, id int) (*Row, error) {
	c, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, mapErr(err, "Failed to fetch client")
	}
	row := NewRow(*c, s.now())
	return &row, nil
}

func (s *service) Create(ctx context.Context, gymID int, req CreateClientRequest) (*Row, error) {
	start, end, err := req.Period()
	if err != nil {
		return nil, err
	}

	today := s.now()
	c, err := s.repo.Create(ctx, gymID, req, start, end, DeriveStatus(start, end, today))
	if err != nil {
		return nil, api.NewInternalError("Failed to create client", err)
	}

	logger.Info("client created", "gym_id", gymID, "client_id", c.ID)
	s.publish(gymID, notification.TypeClientCreated, fmt.Sprintf("New client %s added", c.Name))

	row := NewRow(*c, today)
	return &row, nil
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdateClientRequest) (*Row, error) {
	if req.Empty() {
		return nil, api.NewValidationError("No fields to update")
	}

	current, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, mapErr(err, "Failed to fetch client")
	}

	rawStart := current.SubscriptionStart.Format(api.DateLayout)
	if req.SubscriptionStart != nil {
		rawStart = *req.SubscriptionStart
	}
	rawEnd := current.SubscriptionEnd.Format(api.DateLayout)
	if req.SubscriptionEnd != nil {
		rawEnd = *req.SubscriptionEnd
	}
	start, end, err := parsePeriod(rawStart, rawEnd)
	if err != nil {
		return nil, err
	}

	today := s.now()
	c, err := s.repo.Update(ctx, gymID, id, Changes{
		UpdateClientRequest: req,
		Start:               start,
		End:                 end,
		Status:              DeriveStatus(start, end, today),
	})
	if err != nil {
		return nil, mapErr(err, "Failed to update client")
	}

	row := NewRow(*c, today)
	return &row, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	if err := s.repo.Delete(ctx, gymID, id); err != nil {
		return mapErr(err, "Failed to delete client")
	}
	logger.Info("client deleted", "gym_id", gymID, "client_id", id)
	return nil
}

// SendReminder texts an expired client a renewal reminder. Provider failures
// are recorded in the reminder log before being reported.
func (s *service) SendReminder(ctx context.Context, gymID, id int, channel string) (*ReminderLog, error) {
	c, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, mapErr(err, "Failed to fetch client")
	}

	if DeriveStatus(c.SubscriptionStart, c.SubscriptionEnd, s.now()) != StatusExpired {
		return nil, ErrNotExpired
	}
	if strings.TrimSpace(c.Phone) == "" {
		return nil, ErrNoPhone
	}
	if s.sender == nil {
		return nil, ErrMessagingDisabled
	}

	gymName, err := s.repo.GymName(ctx, gymID)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch gym", err)
	}

	log := &ReminderLog{
		GymID:    gymID,
		ClientID: c.ID,
		Channel:  channel,
		Message:  messaging.ExpiredReminder(c.Name, gymName, c.SubscriptionEnd),
	}

	sid, err := s.sender.Send(ctx, channel, c.Phone, log.Message)
	switch {
	case errors.Is(err, messaging.ErrNotConfigured):
		return nil, ErrMessagingDisabled
	case err != nil:
		metrics.RecordReminder(channel, ReminderFailed)
		log.Status = ReminderFailed
		log.ErrorMessage = err.Error()
		if logErr := s.repo.LogReminder(ctx, log); logErr != nil {
			logger.Error("failed to record reminder", "client_id", c.ID, "error", logErr)
		}
		return nil, api.NewUpstreamError("Failed to send reminder", err)
	}

	metrics.RecordReminder(channel, ReminderSent)
	log.Status = ReminderSent
	log.ProviderSID = sid
	if err := s.repo.LogReminder(ctx, log); err != nil {
		return nil, api.NewInternalError("Failed to record reminder", err)
	}

	logger.Info("reminder sent", "gym_id", gymID, "client_id", c.ID, "channel", channel)
	s.publish(gymID, notification.TypeReminderSent, fmt.Sprintf("Reminder sent to %s via %s", c.Name, channel))
	return log, nil
}

func (s *service) Reminders(ctx context.Context, gymID, id int) ([]ReminderLog, error) {
	if _, err := s.repo.GetByID(ctx, gymID, id); err != nil {
		return nil, mapErr(err, "Failed to fetch client")
	}

	logs, err := s.repo.ListReminders(ctx, gymID, id)
	if err != nil {
		return nil, api.NewInternalError("Failed to fetch reminders", err)
	}
	return logs, nil
}

func (s *service) publish(gymID int, eventType, message string) {
	if s.notifier != nil {
		s.notifier.Publish(gymID, eventType, message)
	}
}

func mapErr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrClientNotFound
	}
	return api.NewInternalError(msg, err)
}
