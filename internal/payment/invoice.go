package payment

import (
	"math"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultInvoicePrefix = "INV"
	invoiceAlphabet      = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	invoiceIDLength      = 6
)

// NewInvoiceNumber builds PREFIX-YYYYMMDD-XXXXXX.
func NewInvoiceNumber(prefix string, date time.Time) (string, error) {
	id, err := gonanoid.Generate(invoiceAlphabet, invoiceIDLength)
	if err != nil {
		return "", err
	}

	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = defaultInvoicePrefix
	}
	return prefix + "-" + date.Format("20060102") + "-" + id, nil
}

type InvoiceParty struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	GST     string `json:"gst_number,omitempty"`
}

type InvoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice is the printable view of a payment. Amounts paid are tax
// inclusive; the tax is split evenly into CGST and SGST when the gym is
// registered for GST.
type Invoice struct {
	Number    string        `json:"number"`
	Date      string        `json:"date"`
	Gym       InvoiceParty  `json:"gym"`
	Client    InvoiceParty  `json:"client"`
	Method    string        `json:"method"`
	Lines     []InvoiceLine `json:"lines"`
	Subtotal  float64       `json:"subtotal"`
	TaxRate   float64       `json:"tax_rate"`
	TaxAmount float64       `json:"tax_amount"`
	CGST      float64       `json:"cgst,omitempty"`
	SGST      float64       `json:"sgst,omitempty"`
	Total     float64       `json:"total"`
	Footer    string        `json:"footer,omitempty"`
}

func BuildInvoice(rec InvoiceRecord, gym GymInvoiceSettings) Invoice {
	total := round2(rec.Amount)
	subtotal := total
	if gym.TaxRate > 0 {
		subtotal = round2(total / (1 + gym.TaxRate/100))
	}
	tax := round2(total - subtotal)

	description := "Membership payment"
	if rec.PlanName != "" {
		description = rec.PlanName + " membership"
	}

	inv := Invoice{
		Number: rec.InvoiceNumber,
		Date:   rec.PaymentDate.Format("2006-01-02"),
		Gym: InvoiceParty{
			Name:    gym.Name,
			Address: gym.Address,
			Phone:   gym.Phone,
			GST:     gym.GSTNumber,
		},
		Client: InvoiceParty{
			Name:  rec.ClientName,
			Phone: rec.ClientPhone,
			Email: rec.ClientEmail,
		},
		Method:    rec.Method,
		Lines:     []InvoiceLine{{Description: description, Amount: subtotal}},
		Subtotal:  subtotal,
		TaxRate:   gym.TaxRate,
		TaxAmount: tax,
		Total:     total,
		Footer:    gym.InvoiceFooter,
	}

	if gym.GSTNumber != "" && tax > 0 {
		inv.CGST = round2(tax / 2)
		inv.SGST = round2(tax - inv.CGST)
	}
	return inv
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
