package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"fitdesk/internal/logger"
	"fitdesk/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
	retryDelay     = 5 * time.Second
)

const (
	TypeGeneric = "generic"
	TypeWelcome = "welcome"
	TypeReceipt = "receipt"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string

	sendMail   sendFunc
	retryDelay time.Duration
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:       fromEmail,
		fromName:   fromName,
		smtpHost:   smtpHost,
		smtpPort:   smtpPort,
		smtpUser:   smtpUser,
		smtpPass:   smtpPass,
		sendMail:   smtp.SendMail,
		retryDelay: retryDelay,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, EmailJob{Type: TypeGeneric, To: to, Name: name, Subject: subject, Body: body})
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	job.Tries = 0
	job.Created = time.Now()

	data, err := json.Marshal(job)
	if err != nil {
		logger.Error("failed to marshal email job", "error", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Error("failed to queue email", "to", job.To, "error", err)
		return err
	}

	logger.Info("email queued", "type", job.Type, "to", job.To)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("bad email payload", "error", err)
		return
	}

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Error("failed to send email", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			time.Sleep(s.retryDelay)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, string(data))
		} else {
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "success")
	logger.Info("email sent", "type", job.Type, "to", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "Content-Type: text/plain; charset=UTF-8\r\n"
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return s.sendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, string(data))
	logger.Warn("email moved to failed queue", "to", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func (s *Service) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendOwnerWelcome(ctx context.Context, email, name, gymName string) error {
	body := fmt.Sprintf(`Hi %s,

Your gym %s is now set up on FitDesk.

Sign in with this email address to manage clients, payments,
trainer attendance and invoices from your dashboard.

- FitDesk Team`, name, gymName)

	return s.enqueue(ctx, EmailJob{
		Type:    TypeWelcome,
		To:      email,
		Name:    name,
		Subject: "Welcome to FitDesk - " + gymName,
		Body:    body,
	})
}

func (s *Service) SendPaymentReceipt(ctx context.Context, email, name, gymName, invoiceNumber string, amount float64, paidOn time.Time) error {
	body := fmt.Sprintf(`Hi %s,

We received your payment. Thank you!

Invoice: %s
Amount: %.2f
Date: %s

- %s`, name, invoiceNumber, amount, paidOn.Format("Jan 2, 2006"), gymName)

	return s.enqueue(ctx, EmailJob{
		Type:    TypeReceipt,
		To:      email,
		Name:    name,
		Subject: "Payment receipt " + invoiceNumber,
		Body:    body,
	})
}
