package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/clockwork-hr/attendance-backend-go/internal/handler/http"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/cron"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clockwork-hr/attendance-backend-go/internal/service/attendance"
	correctionService "github.com/clockwork-hr/attendance-backend-go/internal/service/correction"
	exceptionService "github.com/clockwork-hr/attendance-backend-go/internal/service/exception"
	ledgerService "github.com/clockwork-hr/attendance-backend-go/internal/service/ledger"
	punchService "github.com/clockwork-hr/attendance-backend-go/internal/service/punch"
	scheduleService "github.com/clockwork-hr/attendance-backend-go/internal/service/schedule"
	settingsService "github.com/clockwork-hr/attendance-backend-go/internal/service/settings"
	summaryService "github.com/clockwork-hr/attendance-backend-go/internal/service/summary"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	timetableRepo := postgresql.NewTimetableRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	overrideRepo := postgresql.NewOverrideRepository(db)
	dayRecordRepo := postgresql.NewDayRecordRepository(db)
	exceptionRepo := postgresql.NewExceptionRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	validationRepo := postgresql.NewValidationRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	resolver := scheduleService.NewResolverService(timetableRepo)
	cascade := summaryService.NewCascade(summaryRepo, validationRepo)

	punchSvc := punchService.NewPunchService(db, punchRepo, employeeRepo, cascade)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		resolver,
		punchRepo,
		overrideRepo,
		dayRecordRepo,
		settingsRepo,
		cascade,
	)
	summarySvc := summaryService.NewSummaryService(
		db,
		resolver,
		punchRepo,
		overrideRepo,
		settingsRepo,
		summaryRepo,
		validationRepo,
		ledgerRepo,
		employeeRepo,
	)
	correctionSvc := correctionService.NewCorrectionService(
		db,
		resolver,
		punchRepo,
		overrideRepo,
		settingsRepo,
		employeeRepo,
		cascade,
	)
	exceptionSvc := exceptionService.NewExceptionService(
		db,
		exceptionRepo,
		overrideRepo,
		punchRepo,
		employeeRepo,
		cascade,
	)

	ledgerSvc := ledgerService.NewLedgerService(db, ledgerRepo, employeeRepo, cascade)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	correctionHandler := appHTTP.NewCorrectionHandler(correctionSvc)
	exceptionHandler := appHTTP.NewExceptionHandler(exceptionSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(resolver)

	scheduler := cron.NewScheduler()
	punchJobs := cron.NewPunchJobs(punchSvc, time.Duration(cfg.App.PunchResolveIntervalMinutes)*time.Minute)
	punchJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		punchHandler,
		attendanceHandler,
		summaryHandler,
		correctionHandler,
		exceptionHandler,
		ledgerHandler,
		settingsHandler,
		scheduleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
