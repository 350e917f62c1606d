package payroll

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/config"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
)

// OvertimeSplit divides worked hours into regular and overtime portions and
// prices the overtime portion. Site-specific labor rules plug in here.
type OvertimeSplit func(hours, effectiveRate decimal.Decimal) (regularHours, overtimeHours, overtimeRate decimal.Decimal)

// NoOvertime treats every worked hour as regular time.
func NoOvertime(hours, effectiveRate decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	return hours, decimal.Zero, effectiveRate
}

// MultiplierForShift resolves the pay multiplier from the shift's name.
// Vietnamese and English labels are both recognized.
func MultiplierForShift(shiftName string, cfg config.PayrollConfig) decimal.Decimal {
	name := strings.ToLower(shiftName)

	switch {
	case strings.Contains(name, "holiday") || strings.Contains(name, "lễ"):
		return cfg.HolidayMultiplier
	case strings.Contains(name, "night") || strings.Contains(name, "đêm"):
		return cfg.NightMultiplier
	default:
		return decimal.NewFromInt(1)
	}
}

// HoursBetween converts a check-in/check-out pair to fractional hours.
func HoursBetween(checkIn, checkOut time.Time) decimal.Decimal {
	seconds := checkOut.Sub(checkIn) / time.Second
	return decimal.NewFromInt(int64(seconds)).Div(decimal.NewFromInt(3600))
}

// ComputeLine prices one completed attendance. WorkDate is the calendar date
// of the check-in.
func ComputeLine(attendanceID, userID string, checkIn, checkOut time.Time, salaryRate, multiplier decimal.Decimal, split OvertimeSplit) payroll.Line {
	hours := HoursBetween(checkIn, checkOut)
	effectiveRate := salaryRate.Mul(multiplier)

	regularHours, overtimeHours, overtimeRate := split(hours, effectiveRate)

	regularAmount := regularHours.Mul(effectiveRate)
	overtimeAmount := overtimeHours.Mul(overtimeRate)

	return payroll.Line{
		AttendanceID:    attendanceID,
		UserID:          userID,
		WorkDate:        time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC),
		SalaryRate:      salaryRate,
		ShiftMultiplier: multiplier,
		EffectiveRate:   effectiveRate,
		HoursWorked:     hours,
		OvertimeHours:   overtimeHours,
		OvertimeRate:    overtimeRate,
		RegularAmount:   regularAmount,
		OvertimeAmount:  overtimeAmount,
		TotalAmount:     regularAmount.Add(overtimeAmount),
	}
}
