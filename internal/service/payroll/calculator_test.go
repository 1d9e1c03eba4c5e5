package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func monthlyEmployee(salary int64) *employee.Employee {
	return &employee.Employee{
		ID:            "emp-1",
		CompanyID:     "co-1",
		FullName:      "Carlos Jimenez",
		HireDate:      day("2023-01-01"),
		PayType:       employee.PayTypeMonthly,
		MonthlySalary: decimal.NewFromInt(salary),
		ContractType:  employee.ContractTypeIndefinite,
	}
}

func leaveRecord(category leave.Category, caseNumber, start, end string) *leave.Record {
	startDate := day(start)
	endDate := day(end)
	return &leave.Record{
		EmployeeID: "emp-1",
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       leave.CountDays(category, startDate, endDate),
		Month:      startDate.Format("2006-01"),
		Category:   category,
		CaseNumber: caseNumber,
	}
}

func period(month string) payroll.Period {
	p, err := payroll.ParsePeriod(month)
	if err != nil {
		panic(err)
	}
	return p
}

func defaultRates() *rates.SocialCharges {
	return rates.Defaults("co-1")
}

func fullMonth() payroll.RunInput {
	return payroll.RunInput{DaysWorked: 30}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual.String())
}

func TestCompute_MonthlyNoLeave(t *testing.T) {
	t.Parallel()

	comp := Compute(monthlyEmployee(900000), period("2025-03"), nil, defaultRates(), fullMonth())

	assert.Equal(t, 30, comp.NominalDays)
	assert.Equal(t, 30, comp.DaysWorked)
	assertDecimal(t, "30000", comp.DailyRate)
	assertDecimal(t, "900000", comp.Gross)
	assertDecimal(t, "87030", comp.EmployeeCharge)
	assertDecimal(t, "132030", comp.EmployerCharge)
	assertDecimal(t, "812970", comp.Net)
}

func TestCompute_FiveDayIllness(t *testing.T) {
	t.Parallel()

	records := []*leave.Record{
		leaveRecord(leave.CategoryIllness, "INC-001", "2025-03-10", "2025-03-14"),
	}
	comp := Compute(monthlyEmployee(900000), period("2025-03"), records, defaultRates(), fullMonth())

	assert.Equal(t, 3, comp.HalfPayDays)
	assert.Equal(t, 2, comp.DeductedDays)
	assert.Equal(t, 25, comp.DaysWorked)
	assertDecimal(t, "795000", comp.Gross)
	assertDecimal(t, "76876.5", comp.EmployeeCharge)
	assertDecimal(t, "718123.5", comp.Net)
}

func TestCompute_IllnessCrossingMonthBoundary(t *testing.T) {
	t.Parallel()

	records := []*leave.Record{
		leaveRecord(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
		leaveRecord(leave.CategoryIllness, "INC-001", "2025-02-01", "2025-02-05"),
	}

	january := Compute(monthlyEmployee(900000), period("2025-01"), records, defaultRates(), fullMonth())
	assert.Equal(t, 2, january.HalfPayDays)
	assert.Equal(t, 0, january.DeductedDays)
	assertDecimal(t, "870000", january.Gross)

	february := Compute(monthlyEmployee(900000), period("2025-02"), records, defaultRates(), fullMonth())
	assert.Equal(t, 1, february.HalfPayDays)
	assert.Equal(t, 4, february.DeductedDays)
	assertDecimal(t, "765000", february.Gross)
}

func TestCompute_AccidentFullyDeducted(t *testing.T) {
	t.Parallel()

	records := []*leave.Record{
		leaveRecord(leave.CategoryAccident, "ACC-001", "2025-03-10", "2025-03-14"),
	}
	comp := Compute(monthlyEmployee(900000), period("2025-03"), records, defaultRates(), fullMonth())

	assert.Equal(t, 0, comp.HalfPayDays)
	assert.Equal(t, 5, comp.DeductedDays)
	assertDecimal(t, "750000", comp.Gross)
}

func TestCompute_PaternityDoesNotAffectPay(t *testing.T) {
	t.Parallel()

	records := []*leave.Record{
		leaveRecord(leave.CategoryPaternity, "", "2025-03-10", "2025-03-14"),
	}
	comp := Compute(monthlyEmployee(900000), period("2025-03"), records, defaultRates(), fullMonth())

	assertDecimal(t, "900000", comp.Gross)
}

func TestCompute_ContractEndsMidMonth(t *testing.T) {
	t.Parallel()

	endDate := day("2025-03-15")
	emp := monthlyEmployee(900000)
	emp.ContractType = employee.ContractTypeFixedTerm
	emp.ContractEndDate = &endDate

	comp := Compute(emp, period("2025-03"), nil, defaultRates(), fullMonth())

	assert.Equal(t, 15, comp.NominalDays)
	assertDecimal(t, "450000", comp.Gross)
}

func TestCompute_ContractEndsInLaterMonth(t *testing.T) {
	t.Parallel()

	endDate := day("2025-06-15")
	emp := monthlyEmployee(900000)
	emp.ContractType = employee.ContractTypeFixedTerm
	emp.ContractEndDate = &endDate

	comp := Compute(emp, period("2025-03"), nil, defaultRates(), fullMonth())

	assert.Equal(t, 30, comp.NominalDays)
	assertDecimal(t, "900000", comp.Gross)
}

func TestCompute_ContractEndedBeforeMonth(t *testing.T) {
	t.Parallel()

	endDate := day("2025-01-15")
	emp := monthlyEmployee(900000)
	emp.ContractType = employee.ContractTypeFixedTerm
	emp.ContractEndDate = &endDate

	comp := Compute(emp, period("2025-03"), nil, defaultRates(), fullMonth())

	assert.Equal(t, 0, comp.NominalDays)
	assert.Equal(t, 0, comp.DaysWorked)
	assertDecimal(t, "0", comp.Gross)
	assertDecimal(t, "0", comp.Net)
}

func TestCompute_DailyPaid(t *testing.T) {
	t.Parallel()

	emp := &employee.Employee{
		ID:           "emp-2",
		CompanyID:    "co-1",
		FullName:     "Luis Vargas",
		HireDate:     day("2024-06-01"),
		PayType:      employee.PayTypeDaily,
		DailyRate:    decimal.NewFromInt(25000),
		ContractType: employee.ContractTypeIndefinite,
	}

	comp := Compute(emp, period("2025-03"), nil, defaultRates(), payroll.RunInput{DaysWorked: 22})

	assert.Equal(t, 22, comp.NominalDays)
	assertDecimal(t, "25000", comp.DailyRate)
	assertDecimal(t, "550000", comp.Gross)
	assertDecimal(t, "0", comp.EmployeeCharge)
	assertDecimal(t, "0", comp.EmployerCharge)
	assertDecimal(t, "550000", comp.Net)
}

func TestCompute_DailyPaidContractTruncation(t *testing.T) {
	t.Parallel()

	endDate := day("2025-03-10")
	emp := &employee.Employee{
		ID:              "emp-2",
		CompanyID:       "co-1",
		FullName:        "Luis Vargas",
		HireDate:        day("2024-06-01"),
		PayType:         employee.PayTypeDaily,
		DailyRate:       decimal.NewFromInt(25000),
		ContractType:    employee.ContractTypeFixedTerm,
		ContractEndDate: &endDate,
	}

	comp := Compute(emp, period("2025-03"), nil, defaultRates(), fullMonth())

	assert.Equal(t, 10, comp.NominalDays)
	assertDecimal(t, "250000", comp.Gross)
	assertDecimal(t, "250000", comp.Net)
}

func TestCompute_ExtrasAddedToGross(t *testing.T) {
	t.Parallel()

	input := payroll.RunInput{DaysWorked: 30, Extras: decimal.NewFromInt(50000)}
	comp := Compute(monthlyEmployee(900000), period("2025-03"), nil, defaultRates(), input)

	assertDecimal(t, "950000", comp.Gross)
	assertDecimal(t, "91865", comp.EmployeeCharge)
	assertDecimal(t, "858135", comp.Net)
}

func TestCompute_CustomRates(t *testing.T) {
	t.Parallel()

	charges := &rates.SocialCharges{
		CompanyID:    "co-1",
		EmployeeRate: decimal.RequireFromString("0.10"),
		EmployerRate: decimal.RequireFromString("0.15"),
	}
	comp := Compute(monthlyEmployee(900000), period("2025-03"), nil, charges, fullMonth())

	assertDecimal(t, "90000", comp.EmployeeCharge)
	assertDecimal(t, "135000", comp.EmployerCharge)
	assertDecimal(t, "810000", comp.Net)
}

func TestCompute_GrossNeverNegative(t *testing.T) {
	t.Parallel()

	records := []*leave.Record{
		leaveRecord(leave.CategoryMaternity, "MAT-001", "2025-03-01", "2025-03-31"),
	}
	comp := Compute(monthlyEmployee(900000), period("2025-03"), records, defaultRates(), fullMonth())

	assert.Equal(t, 0, comp.DaysWorked)
	assertDecimal(t, "0", comp.Gross)
	assertDecimal(t, "0", comp.Net)
}
