package payment

import "time"

const (
	MethodCash         = "cash"
	MethodUPI          = "upi"
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodOther        = "other"
)

type Payment struct {
	ID            int       `db:"id" json:"id"`
	GymID         int       `db:"gym_id" json:"gym_id"`
	ClientID      int       `db:"client_id" json:"client_id"`
	ClientName    string    `db:"client_name" json:"client_name"`
	ClientEmail   string    `db:"client_email" json:"-"`
	Amount        float64   `db:"amount" json:"amount"`
	PaymentDate   time.Time `db:"payment_date" json:"payment_date"`
	Method        string    `db:"method" json:"method"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	Note          string    `db:"note" json:"note"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type ListFilter struct {
	ClientID int        `form:"client_id" binding:"omitempty,gt=0"`
	Start    *time.Time `form:"-"`
	End      *time.Time `form:"-"`
}

type CreatePaymentRequest struct {
	ClientID    int     `json:"client_id" binding:"required,gt=0"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Method      string  `json:"method" binding:"required,oneof=cash upi card bank_transfer other"`
	PaymentDate string  `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Note        string  `json:"note" binding:"max=500"`
}

// GymInvoiceSettings is the part of a gym profile printed on invoices.
type GymInvoiceSettings struct {
	Name          string  `db:"name" json:"name"`
	Address       string  `db:"address" json:"address"`
	Phone         string  `db:"phone" json:"phone"`
	InvoicePrefix string  `db:"invoice_prefix" json:"invoice_prefix"`
	InvoiceFooter string  `db:"invoice_footer" json:"invoice_footer"`
	TaxRate       float64 `db:"tax_rate" json:"tax_rate"`
	GSTNumber     string  `db:"gst_number" json:"gst_number"`
}

// InvoiceRecord is a payment joined with the client fields an invoice needs.
type InvoiceRecord struct {
	Payment
	ClientPhone string `db:"client_phone"`
	PlanName    string `db:"plan_name"`
}
