package main

import (
	"fmt"
	"net/http"

	"github.com/tempohq/tempo-backend-go/internal/config"
	appHTTP "github.com/tempohq/tempo-backend-go/internal/handler/http"
	"github.com/tempohq/tempo-backend-go/internal/pkg/cron"
	"github.com/tempohq/tempo-backend-go/internal/pkg/database"
	"github.com/tempohq/tempo-backend-go/internal/pkg/jwt"
	"github.com/tempohq/tempo-backend-go/internal/pkg/timezone"
	"github.com/tempohq/tempo-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tempohq/tempo-backend-go/internal/service/attendance"
	policyService "github.com/tempohq/tempo-backend-go/internal/service/policy"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	zoneResolver := timezone.NewResolver()

	timekeepingSvc := attendanceService.NewTimekeepingService(
		attendanceRepo,
		employeeRepo,
		organizationRepo,
		policyRepo,
		zoneResolver,
	)
	policySvc := policyService.NewPolicyService(policyRepo)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(timekeepingSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		policyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
