package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
)

type fakePayrollRepo struct {
	runs    map[string]*payroll.Run
	deleted []string
}

func newFakePayrollRepo(runs ...*payroll.Run) *fakePayrollRepo {
	repo := &fakePayrollRepo{runs: make(map[string]*payroll.Run)}
	for _, run := range runs {
		repo.runs[run.ID] = run
	}
	return repo
}

func (f *fakePayrollRepo) CreateRun(ctx context.Context, run *payroll.Run) error {
	for _, existing := range f.runs {
		if existing.CompanyID == run.CompanyID && existing.Month == run.Month {
			return payroll.ErrRunExistsForMonth
		}
	}
	f.runs[run.ID] = run
	return nil
}

func (f *fakePayrollRepo) GetRunByID(ctx context.Context, id string) (*payroll.Run, error) {
	run, ok := f.runs[id]
	if !ok {
		return nil, payroll.ErrRunNotFound
	}
	return run, nil
}

func (f *fakePayrollRepo) FindByMonth(ctx context.Context, companyID, month string) (*payroll.Run, error) {
	for _, run := range f.runs {
		if run.CompanyID == companyID && run.Month == month {
			return run, nil
		}
	}
	return nil, payroll.ErrRunNotFound
}

func (f *fakePayrollRepo) ListByCompany(ctx context.Context, companyID string) ([]*payroll.Run, error) {
	var runs []*payroll.Run
	for _, run := range f.runs {
		if run.CompanyID == companyID {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

func (f *fakePayrollRepo) ListByYear(ctx context.Context, companyID string, year int) ([]*payroll.Run, error) {
	prefix := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006-")
	var runs []*payroll.Run
	for _, run := range f.runs {
		if run.CompanyID == companyID && len(run.Month) >= len(prefix) && run.Month[:len(prefix)] == prefix {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.runs[id]; !ok {
		return payroll.ErrRunNotFound
	}
	delete(f.runs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees []*employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error            { return nil }
func (f *fakeEmployeeRepo) ExistsByIdentityNumber(ctx context.Context, companyID, identityNumber, excludeID string) (bool, error) {
	return false, nil
}

type fakeLeaveRepo struct{}

func (f *fakeLeaveRepo) CreateAll(ctx context.Context, records []*leave.Record) error { return nil }
func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (*leave.Record, error) {
	return nil, leave.ErrRecordNotFound
}
func (f *fakeLeaveRepo) ListByCompany(ctx context.Context, companyID string) ([]*leave.Record, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Record, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]*leave.Record, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeRatesRepo struct{}

func (f *fakeRatesRepo) GetByCompany(ctx context.Context, companyID string) (*rates.SocialCharges, error) {
	return nil, nil
}
func (f *fakeRatesRepo) Upsert(ctx context.Context, charges *rates.SocialCharges) error { return nil }
func (f *fakeRatesRepo) AppendHistory(ctx context.Context, entry *rates.HistoryEntry) error {
	return nil
}
func (f *fakeRatesRepo) ListHistory(ctx context.Context, companyID string) ([]*rates.HistoryEntry, error) {
	return nil, nil
}

func authedContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-1",
		"company_id": companyID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testService(repo *fakePayrollRepo, now time.Time) *ServiceImpl {
	svc := NewService(nil, repo, nil, nil, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateRun_SecondRunForMonthConflicts(t *testing.T) {
	t.Parallel()

	repo := newFakePayrollRepo()
	employees := &fakeEmployeeRepo{employees: []*employee.Employee{{
		ID:            "emp-1",
		CompanyID:     "co-1",
		FullName:      "Carlos Jimenez",
		PayType:       employee.PayTypeMonthly,
		MonthlySalary: decimal.NewFromInt(900000),
		ContractType:  employee.ContractTypeIndefinite,
	}}}
	svc := NewService(nil, repo, employees, &fakeLeaveRepo{}, &fakeRatesRepo{})
	svc.now = func() time.Time { return day("2025-03-15") }

	ctx := authedContext(t, "co-1")
	req := payroll.CreateRunRequest{Month: "2025-03"}

	first, err := svc.CreateRun(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "812970", first.TotalNet)

	_, err = svc.CreateRun(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrRunExistsForMonth)
	assert.Len(t, repo.runs, 1)
}

func TestDeleteRun_WithinWindow(t *testing.T) {
	t.Parallel()

	run := &payroll.Run{ID: "run-1", CompanyID: "co-1", Month: "2025-02", CreatedAt: day("2025-03-01")}
	repo := newFakePayrollRepo(run)
	svc := testService(repo, day("2025-03-15"))

	err := svc.DeleteRun(authedContext(t, "co-1"), "run-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"run-1"}, repo.deleted)
}

func TestDeleteRun_OldMonthFiledRecently(t *testing.T) {
	t.Parallel()

	// The window follows when the run was filed, not which month it
	// covers: a months-old payroll filed last week is still fresh.
	run := &payroll.Run{ID: "run-1", CompanyID: "co-1", Month: "2024-10", CreatedAt: day("2025-03-10")}
	repo := newFakePayrollRepo(run)
	svc := testService(repo, day("2025-03-15"))

	err := svc.DeleteRun(authedContext(t, "co-1"), "run-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"run-1"}, repo.deleted)
}

func TestDeleteRun_WindowClosed(t *testing.T) {
	t.Parallel()

	run := &payroll.Run{ID: "run-1", CompanyID: "co-1", Month: "2025-01", CreatedAt: day("2025-01-05")}
	repo := newFakePayrollRepo(run)
	svc := testService(repo, day("2025-03-15"))

	err := svc.DeleteRun(authedContext(t, "co-1"), "run-1")
	assert.ErrorIs(t, err, payroll.ErrRunDeletionWindowClosed)
	assert.Empty(t, repo.deleted)
}

func TestDeleteRun_OtherCompany(t *testing.T) {
	t.Parallel()

	run := &payroll.Run{ID: "run-1", CompanyID: "co-2", Month: "2025-03"}
	svc := testService(newFakePayrollRepo(run), day("2025-03-15"))

	err := svc.DeleteRun(authedContext(t, "co-1"), "run-1")
	assert.ErrorIs(t, err, payroll.ErrUnauthorized)
}

func TestDeleteRun_NotFound(t *testing.T) {
	t.Parallel()

	svc := testService(newFakePayrollRepo(), day("2025-03-15"))

	err := svc.DeleteRun(authedContext(t, "co-1"), "missing")
	assert.ErrorIs(t, err, payroll.ErrRunNotFound)
}

func TestBonusEstimates_TwelfthOfYearNet(t *testing.T) {
	t.Parallel()

	lineFor := func(net int64) *payroll.RunLine {
		return &payroll.RunLine{
			EmployeeID:   "emp-1",
			EmployeeName: "Carlos Jimenez",
			NetPay:       decimal.NewFromInt(net),
		}
	}
	repo := newFakePayrollRepo(
		&payroll.Run{ID: "r1", CompanyID: "co-1", Month: "2025-01", Lines: []*payroll.RunLine{lineFor(812970)}},
		&payroll.Run{ID: "r2", CompanyID: "co-1", Month: "2025-02", Lines: []*payroll.RunLine{lineFor(812970)}},
		&payroll.Run{ID: "r3", CompanyID: "co-1", Month: "2024-12", Lines: []*payroll.RunLine{lineFor(500000)}},
	)
	svc := testService(repo, day("2025-03-15"))

	estimates, err := svc.BonusEstimates(authedContext(t, "co-1"), 2025)
	require.NoError(t, err)
	require.Len(t, estimates, 1)

	assert.Equal(t, "emp-1", estimates[0].EmployeeID)
	assert.Equal(t, "1625940", estimates[0].YearNetTotal)
	assert.Equal(t, "135495", estimates[0].Estimate)
}
