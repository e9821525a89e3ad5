package report

import "context"

type Repository interface {
	Clients(ctx context.Context, gymID int, r Range) ([]ClientRecord, error)
	Payments(ctx context.Context, gymID int, r Range) ([]PaymentRecord, error)
	Attendance(ctx context.Context, gymID int, r Range) ([]AttendanceRecord, error)
}
