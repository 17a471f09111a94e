package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/hrms-labs/hrms-backend-go/internal/config"
	appHTTP "github.com/hrms-labs/hrms-backend-go/internal/handler/http"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/cron"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/email"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/oauth"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-labs/hrms-backend-go/internal/service/attendance"
	authService "github.com/hrms-labs/hrms-backend-go/internal/service/auth"
	employeeService "github.com/hrms-labs/hrms-backend-go/internal/service/employee"
	jobService "github.com/hrms-labs/hrms-backend-go/internal/service/job"
	leaveService "github.com/hrms-labs/hrms-backend-go/internal/service/leave"
	reportService "github.com/hrms-labs/hrms-backend-go/internal/service/report"
	userService "github.com/hrms-labs/hrms-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	jobRepo := postgresql.NewJobRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	adminSvc := userService.NewAdminService(db, userRepo, employeeRepo, emailService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, emailService)
	jobSvc := jobService.NewJobService(jobRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, leaveRepo, employeeRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Admin:      appHTTP.NewAdminHandler(adminSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Job:        appHTTP.NewJobHandler(jobSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
