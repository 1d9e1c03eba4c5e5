package main

import (
	"fmt"
	"net/http"

	"github.com/planilla-cr/planilla-backend-go/internal/config"
	appHTTP "github.com/planilla-cr/planilla-backend-go/internal/handler/http"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/jwt"
	"github.com/planilla-cr/planilla-backend-go/internal/repository/postgresql"
	authService "github.com/planilla-cr/planilla-backend-go/internal/service/auth"
	employeeService "github.com/planilla-cr/planilla-backend-go/internal/service/employee"
	financeService "github.com/planilla-cr/planilla-backend-go/internal/service/finance"
	leaveService "github.com/planilla-cr/planilla-backend-go/internal/service/leave"
	payrollService "github.com/planilla-cr/planilla-backend-go/internal/service/payroll"
	ratesService "github.com/planilla-cr/planilla-backend-go/internal/service/rates"
	vacationService "github.com/planilla-cr/planilla-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	financeRepo := postgresql.NewFinanceRepository(db)
	ratesRepo := postgresql.NewRatesRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewService(db, userRepo, companyRepo, jwtService)
	employeeSvc := employeeService.NewService(db, employeeRepo)
	leaveSvc := leaveService.NewService(db, leaveRepo, employeeRepo, payrollRepo)
	payrollSvc := payrollService.NewService(db, payrollRepo, employeeRepo, leaveRepo, ratesRepo)
	vacationSvc := vacationService.NewService(db, vacationRepo, employeeRepo)
	financeSvc := financeService.NewService(db, financeRepo)
	ratesSvc := ratesService.NewService(db, ratesRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewVacationHandler(vacationSvc),
		appHTTP.NewFinanceHandler(financeSvc),
		appHTTP.NewRatesHandler(ratesSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
