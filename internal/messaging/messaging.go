// Package messaging sends one-way SMS and WhatsApp texts through Twilio.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"

	whatsappPrefix = "whatsapp:"
)

var (
	ErrNotConfigured = errors.New("messaging provider is not configured")
	ErrNoRecipient   = errors.New("recipient phone number is empty")
	ErrBadChannel    = errors.New("unsupported channel")
)

// Sender delivers a text message and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, channel, to, body string) (string, error)
}

type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioSender struct {
	api          messageAPI
	smsFrom      string
	whatsappFrom string
}

// NewTwilioSender returns nil when the account credentials are missing so
// callers can report the provider as unavailable.
func NewTwilioSender(accountSID, authToken, smsFrom, whatsappFrom string) *TwilioSender {
	if accountSID == "" || authToken == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		api:          client.Api,
		smsFrom:      smsFrom,
		whatsappFrom: whatsappFrom,
	}
}

func (s *TwilioSender) Send(ctx context.Context, channel, to, body string) (string, error) {
	if s == nil || s.api == nil {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(to) == "" {
		return "", ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	switch channel {
	case ChannelSMS:
		if s.smsFrom == "" {
			return "", ErrNotConfigured
		}
		params.SetTo(to)
		params.SetFrom(s.smsFrom)
	case ChannelWhatsApp:
		if s.whatsappFrom == "" {
			return "", ErrNotConfigured
		}
		params.SetTo(whatsappPrefix + strings.TrimPrefix(to, whatsappPrefix))
		params.SetFrom(whatsappPrefix + strings.TrimPrefix(s.whatsappFrom, whatsappPrefix))
	default:
		return "", fmt.Errorf("%w: %s", ErrBadChannel, channel)
	}

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio create message: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

func ExpiredReminder(clientName, gymName string, expiredOn time.Time) string {
	return fmt.Sprintf(
		"Hi %s, your %s membership expired on %s. Renew today to keep your training on track!",
		clientName, gymName, expiredOn.Format("02 Jan 2006"),
	)
}
