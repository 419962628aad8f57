package main

import (
	"fmt"
	"net/http"

	"github.com/oa-project/office-backend-go/internal/config"
	appHTTP "github.com/oa-project/office-backend-go/internal/handler/http"
	"github.com/oa-project/office-backend-go/internal/pkg/database"
	"github.com/oa-project/office-backend-go/internal/pkg/email"
	"github.com/oa-project/office-backend-go/internal/pkg/jwt"
	"github.com/oa-project/office-backend-go/internal/repository/postgresql"
	attendanceService "github.com/oa-project/office-backend-go/internal/service/attendance"
	authService "github.com/oa-project/office-backend-go/internal/service/auth"
	informService "github.com/oa-project/office-backend-go/internal/service/inform"
	staffService "github.com/oa-project/office-backend-go/internal/service/staff"
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
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendanceTypeRepo := postgresql.NewAttendanceTypeRepository(db)
	informRepo := postgresql.NewInformRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	mailer := email.NewMailer(cfg.SMTP)
	defer mailer.Close()

	auth := authService.NewAuthService(userRepo, jwtService)
	attendance := attendanceService.NewAttendanceService(db, attendanceRepo, attendanceTypeRepo, userRepo, departmentRepo, mailer)
	staff := staffService.NewStaffService(userRepo, departmentRepo, jwtService, mailer, cfg.App.FrontendURL)
	inform := informService.NewInformService(informRepo)

	router := appHTTP.NewRouter(cfg.App, auth, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(auth),
		Attendance: appHTTP.NewAttendanceHandler(attendance),
		Staff:      appHTTP.NewStaffHandler(staff),
		Department: appHTTP.NewDepartmentHandler(departmentRepo, staff),
		Inform:     appHTTP.NewInformHandler(inform),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
