package payroll

import (
	"context"
	"time"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
)

// GeneratePreviousMonth produces statements for the month before now.
// Generation skips users who already have one, so the job is safe to run on
// any interval.
func GeneratePreviousMonth(ctx context.Context, svc payroll.PayrollService, now time.Time) error {
	previous := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	_, err := svc.GenerateMonthly(ctx, payroll.GenerateMonthlyRequest{
		Month: int(previous.Month()),
		Year:  previous.Year(),
	})
	return err
}
