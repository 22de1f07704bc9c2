package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sawithr/sawit-hr-backend-go/internal/config"
	appHTTP "github.com/sawithr/sawit-hr-backend-go/internal/handler/http"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/cron"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/database"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/jwt"
	"github.com/sawithr/sawit-hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sawithr/sawit-hr-backend-go/internal/service/attendance"
	serviceAuth "github.com/sawithr/sawit-hr-backend-go/internal/service/auth"
	calendarService "github.com/sawithr/sawit-hr-backend-go/internal/service/calendar"
	employeeService "github.com/sawithr/sawit-hr-backend-go/internal/service/employee"
	holidayService "github.com/sawithr/sawit-hr-backend-go/internal/service/holiday"
	leaveService "github.com/sawithr/sawit-hr-backend-go/internal/service/leave"
	"github.com/sawithr/sawit-hr-backend-go/internal/service/master"
	transferService "github.com/sawithr/sawit-hr-backend-go/internal/service/transfer"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	divisionRepo := postgresql.NewDivisionRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	transferRepo := postgresql.NewTransferRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calendarSvc := calendarService.NewService(holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, calendarSvc)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, attendanceSvc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, calendarSvc, attendanceSvc)
	transferSvc := transferService.NewTransferService(db, transferRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, divisionRepo, positionRepo)
	divisionSvc := master.NewDivisionService(divisionRepo)
	positionSvc := master.NewPositionService(positionRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	transferHandler := appHTTP.NewTransferHandler(transferSvc)
	masterHandler := appHTTP.NewMasterHandler(divisionSvc, positionSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		holidayHandler,
		leaveHandler,
		transferHandler,
		masterHandler,
	)

	// Due transfers also complete on list views; the cron sweep covers
	// deployments where nobody opens the transfer screen.
	scheduler := cron.NewScheduler()
	interval, err := time.ParseDuration(cfg.Cron.TransferAutoCompleteInterval)
	if err != nil {
		fmt.Println("Invalid CRON_TRANSFER_AUTO_COMPLETE_INTERVAL:", err)
		return
	}
	scheduler.AddJob("transfer-auto-complete", interval, func(ctx context.Context) error {
		_, err := transferSvc.AutoCompleteDue(ctx, time.Now())
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
