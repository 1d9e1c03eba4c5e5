package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
	leaveservice "github.com/planilla-cr/planilla-backend-go/internal/service/leave"
)

// Payroll months are 30 nominal days regardless of calendar length.
const nominalDaysPerMonth = 30

var two = decimal.NewFromInt(2)

// Compute runs one employee's month. The leave records passed in must
// cover every case touching the month, including pieces recorded under
// earlier months, so the half-pay window of an illness case that
// crosses a month boundary is positioned correctly. For daily-paid
// employees the worked-day count comes from input.DaysWorked; monthly
// employees always start from the 30-day nominal month.
func Compute(emp *employee.Employee, period payroll.Period, records []*leave.Record, charges *rates.SocialCharges, input payroll.RunInput) payroll.Computation {
	dailyRate := emp.BaseDailyRate()

	monthStart := period.Start()
	monthEnd := period.End()

	nominalDays := nominalDaysPerMonth
	if emp.PayType == employee.PayTypeDaily {
		nominalDays = input.DaysWorked
	}
	if emp.ContractEndDate != nil {
		switch endDate := *emp.ContractEndDate; {
		case endDate.Before(monthStart):
			nominalDays = 0
		case payroll.PeriodOf(endDate) == period:
			if endDay := endDate.Day(); endDay < nominalDays {
				nominalDays = endDay
			}
		}
	}

	deductedDays := 0
	halfPayDays := 0
	blocks := leaveservice.BlocksForMonth(leaveservice.MergeBlocks(records), monthStart, monthEnd)
	for _, block := range blocks {
		alloc := leaveservice.AllocateMonth(block, monthStart, monthEnd)
		deductedDays += alloc.UnpaidDays
		halfPayDays += alloc.HalfPayDays
	}

	payableDays := nominalDays - deductedDays - halfPayDays
	if payableDays < 0 {
		payableDays = 0
	}

	gross := dailyRate.Mul(decimal.NewFromInt(int64(payableDays))).
		Add(dailyRate.Mul(decimal.NewFromInt(int64(halfPayDays))).Div(two)).
		Add(input.Extras)
	if gross.IsNegative() {
		gross = decimal.Zero
	}

	// Social charges only apply to salaried employees. A daily-paid
	// employee is settled on the gross amount as-is.
	employeeCharge := decimal.Zero
	employerCharge := decimal.Zero
	if emp.PayType == employee.PayTypeMonthly {
		employeeCharge = gross.Mul(charges.EmployeeRate)
		employerCharge = gross.Mul(charges.EmployerRate)
	}

	return payroll.Computation{
		DailyRate:      dailyRate,
		NominalDays:    nominalDays,
		DeductedDays:   deductedDays,
		HalfPayDays:    halfPayDays,
		DaysWorked:     payableDays,
		Gross:          gross,
		EmployeeCharge: employeeCharge,
		EmployerCharge: employerCharge,
		Net:            gross.Sub(employeeCharge),
	}
}
