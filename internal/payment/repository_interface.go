package payment

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, gymID int, filter ListFilter) ([]Payment, error)
	Create(ctx context.Context, gymID int, req CreatePaymentRequest, invoiceNumber string, paidOn time.Time) (*Payment, error)
	Delete(ctx context.Context, gymID, id int) error
	InvoiceSettings(ctx context.Context, gymID int) (*GymInvoiceSettings, error)
	InvoiceRecord(ctx context.Context, gymID, id int) (*InvoiceRecord, error)
}
