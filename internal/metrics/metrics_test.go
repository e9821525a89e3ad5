package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/dashboard/clients", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/dashboard/clients", "200"))
	assert.Equal(t, float64(1), count)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/api/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/api/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordLogin(t *testing.T) {
	LoginAttemptsTotal.Reset()

	RecordLogin("success")
	RecordLogin("invalid_credentials")
	RecordLogin("invalid_credentials")

	assert.Equal(t, float64(1), testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("invalid_credentials")))
}

func TestRecordPayment(t *testing.T) {
	PaymentsTotal.Reset()

	testCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fitdesk_payment_amount_total_test",
		Help: "Sum of recorded payment amounts",
	})
	oldCounter := PaymentAmountTotal
	PaymentAmountTotal = testCounter
	defer func() { PaymentAmountTotal = oldCounter }()

	RecordPayment("cash", 500)
	RecordPayment("upi", 250.5)
	RecordPayment("cash", 100)

	assert.Equal(t, float64(2), testutil.ToFloat64(PaymentsTotal.WithLabelValues("cash")))
	assert.Equal(t, float64(1), testutil.ToFloat64(PaymentsTotal.WithLabelValues("upi")))
	assert.Equal(t, 850.5, testutil.ToFloat64(testCounter))
}

func TestRecordReminder(t *testing.T) {
	RemindersTotal.Reset()

	RecordReminder("sms", "sent")
	RecordReminder("whatsapp", "failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(RemindersTotal.WithLabelValues("sms", "sent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(RemindersTotal.WithLabelValues("whatsapp", "failed")))
	assert.Equal(t, float64(0), testutil.ToFloat64(RemindersTotal.WithLabelValues("sms", "failed")))
}

func TestRecordReport(t *testing.T) {
	ReportsTotal.Reset()

	RecordReport("clients", "csv")
	RecordReport("clients", "xlsx")

	assert.Equal(t, float64(1), testutil.ToFloat64(ReportsTotal.WithLabelValues("clients", "csv")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ReportsTotal.WithLabelValues("clients", "xlsx")))
}

func TestRecordEmailMultipleTypes(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("welcome", "success")
	RecordEmail("welcome", "failed")
	RecordEmail("receipt", "success")

	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("welcome", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("welcome", "failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("receipt", "success")))
}

func TestRecordSweep(t *testing.T) {
	ExpirySweepsTotal.Reset()

	RecordSweep("clients", 4)
	RecordSweep("clients", 0)
	RecordSweep("gyms", 1)

	assert.Equal(t, float64(4), testutil.ToFloat64(ExpirySweepsTotal.WithLabelValues("clients")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ExpirySweepsTotal.WithLabelValues("gyms")))
}

func TestGauges(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))

	NotificationSubscribers.Set(0)
	NotificationSubscribers.Inc()
	NotificationSubscribers.Inc()
	NotificationSubscribers.Dec()
	assert.Equal(t, float64(1), testutil.ToFloat64(NotificationSubscribers))
}
