package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/livehost-agency/agency-backend-go/internal/config"
	appHTTP "github.com/livehost-agency/agency-backend-go/internal/handler/http"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/cron"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/jwt"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/storage"
	"github.com/livehost-agency/agency-backend-go/internal/repository/postgresql"
	attendanceService "github.com/livehost-agency/agency-backend-go/internal/service/attendance"
	authService "github.com/livehost-agency/agency-backend-go/internal/service/auth"
	dashboardService "github.com/livehost-agency/agency-backend-go/internal/service/dashboard"
	"github.com/livehost-agency/agency-backend-go/internal/service/file"
	payrollService "github.com/livehost-agency/agency-backend-go/internal/service/payroll"
	sellerService "github.com/livehost-agency/agency-backend-go/internal/service/seller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	timeSlotRepo := postgresql.NewTimeSlotRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	loc := cfg.Location()

	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, activityRepo, jwtService)
	sellerSvc := sellerService.NewSellerService(db, userRepo, attendanceRepo, activityRepo, fileService)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceService.Options{
			SchedulingEnabled: cfg.Attendance.SchedulingEnabled,
			MaxAdvanceDays:    cfg.Attendance.MaxAdvanceDays,
			Location:          loc,
		},
		attendanceRepo,
		timeSlotRepo,
		activityRepo,
		fileService,
	)
	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(attendanceRepo, refreshTokenRepo, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	payrollSvc := payrollService.NewPayrollService(loc, dashboardRepo)
	dashboardSvc := dashboardService.NewDashboardService(loc, dashboardRepo, userRepo, attendanceRepo, activityRepo, fileService)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	sellerHandler := appHTTP.NewSellerHandler(sellerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		sellerHandler,
		attendanceHandler,
		dashboardHandler,
		payrollHandler,
		appHTTP.RouterOptions{
			Env:             cfg.App.Env,
			StorageBasePath: cfg.Storage.BasePath,
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Server running at http://localhost%s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server error: ", err)
	}
}
