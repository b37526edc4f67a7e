package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/config"
	appHTTP "github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/clock"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/database"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/jwt"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/scancache"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/storage"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tabacalera-hn/asistencia-backend-go/internal/service/attendance"
	serviceAuth "github.com/tabacalera-hn/asistencia-backend-go/internal/service/auth"
	dashboardService "github.com/tabacalera-hn/asistencia-backend-go/internal/service/dashboard"
	employeeService "github.com/tabacalera-hn/asistencia-backend-go/internal/service/employee"
	maintenanceService "github.com/tabacalera-hn/asistencia-backend-go/internal/service/maintenance"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/service/payroll"
	reportService "github.com/tabacalera-hn/asistencia-backend-go/internal/service/report"
	userService "github.com/tabacalera-hn/asistencia-backend-go/internal/service/user"
)

const (
	scanDedupTTL      = 10 * time.Second
	scanSweepInterval = time.Minute
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
	defer db.Close()

	businessClock, err := clock.New(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	maintenanceRepo := postgresql.NewMaintenanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	scanCache := scancache.New(scanDedupTTL)
	scanCache.StartJanitor(context.Background(), scanSweepInterval)

	calculator := payroll.NewCalculator()

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, calculator, businessClock, scanCache)
	reportSvc := reportService.NewReportService(reportRepo, employeeRepo, businessClock)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, businessClock)
	maintenanceSvc := maintenanceService.NewMaintenanceService(maintenanceRepo)

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(JWTService, authSvc),
		User:        appHTTP.NewUserHandler(userSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc, reportSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
		Maintenance: appHTTP.NewMaintenanceHandler(maintenanceSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
