package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitdesk_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitdesk_payments_total",
			Help: "Total number of recorded payments",
		},
		[]string{"method"},
	)

	PaymentAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitdesk_payment_amount_total",
			Help: "Sum of recorded payment amounts",
		},
	)

	RemindersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitdesk_reminders_total",
			Help: "Total number of client reminders",
		},
		[]string{"channel", "status"},
	)

	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitdesk_reports_total",
			Help: "Total number of exported reports",
		},
		[]string{"kind", "format"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitdesk_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitdesk_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	NotificationSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitdesk_notification_subscribers",
			Help: "Number of open notification streams",
		},
	)

	ExpirySweepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitdesk_expiry_sweep_rows_total",
			Help: "Rows changed by the scheduled expiry sweep",
		},
		[]string{"entity"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordLogin(result string) {
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func RecordPayment(method string, amount float64) {
	PaymentsTotal.WithLabelValues(method).Inc()
	PaymentAmountTotal.Add(amount)
}

func RecordReminder(channel, status string) {
	RemindersTotal.WithLabelValues(channel, status).Inc()
}

func RecordReport(kind, format string) {
	ReportsTotal.WithLabelValues(kind, format).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordSweep(entity string, rows int64) {
	ExpirySweepsTotal.WithLabelValues(entity).Add(float64(rows))
}
