package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func ptr(t time.Time) *time.Time { return &t }

func TestRange_Filename(t *testing.T) {
	today := day("2024-05-10")

	tests := []struct {
		name   string
		r      Range
		kind   string
		format string
		want   string
	}{
		{"bounded", Range{Start: ptr(day("2024-04-01")), End: ptr(day("2024-04-30"))}, KindPayments, FormatCSV, "payments_report_2024-04-01_to_2024-04-30.csv"},
		{"open", Range{}, KindClients, FormatXLSX, "clients_report_2024-05-10.xlsx"},
		{"start only", Range{Start: ptr(day("2024-04-01"))}, KindAttendance, FormatCSV, "attendance_report_2024-05-10.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Filename(tt.kind, tt.format, today))
		})
	}
}

func TestClientTable_BalanceFloorsAtZero(t *testing.T) {
	table := clientTable([]ClientRecord{
		{Name: "Ravi", TotalAmount: 1000, PaidAmount: 600},
		{Name: "Asha", TotalAmount: 1000, PaidAmount: 1200},
	}, day("2024-05-10"))

	assert.Equal(t, "Balance", table.Headers[8])
	assert.Equal(t, 400.0, table.Rows[0][8])
	assert.Equal(t, 0.0, table.Rows[1][8])
}

func TestClientTable_StatusAsOfToday(t *testing.T) {
	records := []ClientRecord{
		{Name: "Ravi", SubscriptionStart: day("2024-05-10"), SubscriptionEnd: day("2024-06-10")},
		{Name: "Asha", SubscriptionStart: day("2024-03-01"), SubscriptionEnd: day("2024-04-01")},
		{Name: "Meena", SubscriptionStart: day("2024-06-01"), SubscriptionEnd: day("2024-07-01")},
	}

	table := clientTable(records, day("2024-05-20"))

	assert.Equal(t, "Status", table.Headers[9])
	assert.Equal(t, "active", table.Rows[0][9])
	assert.Equal(t, "expired", table.Rows[1][9])
	assert.Equal(t, "pending", table.Rows[2][9])
}
