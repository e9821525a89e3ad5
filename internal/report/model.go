package report

import (
	"fmt"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/client"
)

const (
	KindClients    = "clients"
	KindPayments   = "payments"
	KindAttendance = "attendance"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var kinds = map[string]bool{
	KindClients:    true,
	KindPayments:   true,
	KindAttendance: true,
}

type Query struct {
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx"`
}

// Range bounds a report by date. Either side may be open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Filename names the export after its kind and range, or after today when
// the range is not fully bounded.
func (r Range) Filename(kind, format string, today time.Time) string {
	prefix := kind + "_report"
	if r.Start != nil && r.End != nil {
		return fmt.Sprintf("%s_%s_to_%s.%s", prefix, r.Start.Format(api.DateLayout), r.End.Format(api.DateLayout), format)
	}
	return fmt.Sprintf("%s_%s.%s", prefix, today.Format(api.DateLayout), format)
}

type ClientRecord struct {
	Name              string    `db:"name"`
	Phone             string    `db:"phone"`
	Email             string    `db:"email"`
	PlanName          string    `db:"plan_name"`
	SubscriptionStart time.Time `db:"subscription_start"`
	SubscriptionEnd   time.Time `db:"subscription_end"`
	TotalAmount       float64   `db:"total_amount"`
	PaidAmount        float64   `db:"paid_amount"`
}

type PaymentRecord struct {
	InvoiceNumber string    `db:"invoice_number"`
	ClientName    string    `db:"client_name"`
	Amount        float64   `db:"amount"`
	Method        string    `db:"method"`
	PaymentDate   time.Time `db:"payment_date"`
	Note          string    `db:"note"`
}

type AttendanceRecord struct {
	Date        time.Time `db:"date"`
	TrainerName string    `db:"trainer_name"`
	Status      string    `db:"status"`
}

// Table is a report ready to be written in any format.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]interface{}
}

// clientTable reports each client's status as of today, not the stored column.
func clientTable(records []ClientRecord, today time.Time) *Table {
	t := &Table{
		Sheet:   "Clients",
		Headers: []string{"Name", "Phone", "Email", "Plan", "Start", "End", "Total", "Paid", "Balance", "Status"},
	}
	for _, r := range records {
		balance := r.TotalAmount - r.PaidAmount
		if balance < 0 {
			balance = 0
		}
		t.Rows = append(t.Rows, []interface{}{
			r.Name, r.Phone, r.Email, r.PlanName, r.SubscriptionStart, r.SubscriptionEnd,
			r.TotalAmount, r.PaidAmount, balance,
			client.DeriveStatus(r.SubscriptionStart, r.SubscriptionEnd, today),
		})
	}
	return t
}

func paymentTable(records []PaymentRecord) *Table {
	t := &Table{
		Sheet:   "Payments",
		Headers: []string{"Invoice", "Client", "Amount", "Method", "Date", "Note"},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []interface{}{r.InvoiceNumber, r.ClientName, r.Amount, r.Method, r.PaymentDate, r.Note})
	}
	return t
}

func attendanceTable(records []AttendanceRecord) *Table {
	t := &Table{
		Sheet:   "Attendance",
		Headers: []string{"Date", "Trainer", "Status"},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []interface{}{r.Date, r.TrainerName, r.Status})
	}
	return t
}
