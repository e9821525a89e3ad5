package payment

import (
	"context"
	"fmt"
	"time"

	"fitdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const selectPayment = `
	SELECT p.id, p.gym_id, p.client_id, c.name AS client_name, c.email AS client_email,
	       p.amount, p.payment_date, p.method, p.invoice_number, p.note, p.created_at
	FROM payments p
	JOIN clients c ON c.id = p.client_id
`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, gymID int, filter ListFilter) ([]Payment, error) {
	query := selectPayment + `WHERE p.gym_id = $1`
	args := []interface{}{gymID}

	if filter.ClientID > 0 {
		args = append(args, filter.ClientID)
		query += fmt.Sprintf(` AND p.client_id = $%d`, len(args))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		query += fmt.Sprintf(` AND p.payment_date >= $%d`, len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		query += fmt.Sprintf(` AND p.payment_date <= $%d`, len(args))
	}
	query += ` ORDER BY p.payment_date DESC, p.id DESC`

	payments := []Payment{}
	err := r.db.SelectContext(ctx, &payments, query, args...)
	return payments, err
}

// Create records the payment and credits the client's paid amount in one
// transaction. The client row is locked so concurrent payments add up.
func (r *PostgresRepository) Create(ctx context.Context, gymID int, req CreatePaymentRequest, invoiceNumber string, paidOn time.Time) (*Payment, error) {
	var p Payment

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx,
			`SELECT name, email FROM clients WHERE id = $1 AND gym_id = $2 FOR UPDATE`,
			req.ClientID, gymID,
		).Scan(&p.ClientName, &p.ClientEmail)
		if err != nil {
			return err
		}

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO payments (gym_id, client_id, amount, payment_date, method, invoice_number, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, gym_id, client_id, amount, payment_date, method, invoice_number, note, created_at
		`, gymID, req.ClientID, req.Amount, paidOn, req.Method, invoiceNumber, req.Note,
		).Scan(&p.ID, &p.GymID, &p.ClientID, &p.Amount, &p.PaymentDate, &p.Method, &p.InvoiceNumber, &p.Note, &p.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE clients SET paid_amount = paid_amount + $1, updated_at = NOW()
			WHERE id = $2 AND gym_id = $3
		`, req.Amount, req.ClientID, gymID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Delete removes the payment and takes its amount back off the client.
func (r *PostgresRepository) Delete(ctx context.Context, gymID, id int) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var clientID int
		var amount float64
		err := tx.QueryRowxContext(ctx,
			`DELETE FROM payments WHERE id = $1 AND gym_id = $2 RETURNING client_id, amount`,
			id, gymID,
		).Scan(&clientID, &amount)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE clients SET paid_amount = GREATEST(paid_amount - $1, 0), updated_at = NOW()
			WHERE id = $2 AND gym_id = $3
		`, amount, clientID, gymID)
		return err
	})
}

func (r *PostgresRepository) InvoiceSettings(ctx context.Context, gymID int) (*GymInvoiceSettings, error) {
	var s GymInvoiceSettings
	err := r.db.GetContext(ctx, &s, `
		SELECT name, address, phone, invoice_prefix, invoice_footer, tax_rate, gst_number
		FROM gyms WHERE id = $1
	`, gymID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) InvoiceRecord(ctx context.Context, gymID, id int) (*InvoiceRecord, error) {
	query := `
		SELECT p.id, p.gym_id, p.client_id, c.name AS client_name, c.email AS client_email,
		       p.amount, p.payment_date, p.method, p.invoice_number, p.note, p.created_at,
		       c.phone AS client_phone, c.plan_name
		FROM payments p
		JOIN clients c ON c.id = p.client_id
		WHERE p.id = $1 AND p.gym_id = $2
	`

	var rec InvoiceRecord
	if err := r.db.GetContext(ctx, &rec, query, id, gymID); err != nil {
		return nil, err
	}
	return &rec, nil
}
