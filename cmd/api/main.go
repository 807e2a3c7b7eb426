package main

import (
	"fmt"
	"net/http"

	"github.com/folhacerta/payroll-backend-go/internal/config"
	appHTTP "github.com/folhacerta/payroll-backend-go/internal/handler/http"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/database"
	"github.com/folhacerta/payroll-backend-go/internal/repository/postgresql"
	contractService "github.com/folhacerta/payroll-backend-go/internal/service/contract"
	holidayService "github.com/folhacerta/payroll-backend-go/internal/service/holiday"
	overtimeService "github.com/folhacerta/payroll-backend-go/internal/service/overtime"
	payrollService "github.com/folhacerta/payroll-backend-go/internal/service/payroll"
	policyService "github.com/folhacerta/payroll-backend-go/internal/service/policy"
	timesheetService "github.com/folhacerta/payroll-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	contractRepo := postgresql.NewContractRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	contractSvc := contractService.NewContractService(contractRepo)
	policySvc := policyService.NewPolicyService(contractRepo, policyRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	timesheetSvc := timesheetService.NewTimesheetService(contractRepo, timesheetRepo)
	overtimeSvc := overtimeService.NewOvertimeService(contractRepo, policyRepo, holidayRepo, timesheetRepo)
	payrollSvc := payrollService.NewPayrollService(contractRepo, payrollRepo, overtimeSvc, cfg.Payroll.MileageRateCents)

	contractHandler := appHTTP.NewContractHandler(contractSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		contractHandler,
		policyHandler,
		holidayHandler,
		timesheetHandler,
		overtimeHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
