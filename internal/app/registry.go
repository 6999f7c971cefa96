package app

import (
	"os"
	"strconv"

	"hr-ops/internal/auth"
	"hr-ops/internal/boardmeeting"
	"hr-ops/internal/dashboard"
	"hr-ops/internal/employee"
	"hr-ops/internal/feedback"
	"hr-ops/internal/messaging/kafka"
	"hr-ops/internal/middleware"
	"hr-ops/internal/payroll"
	"hr-ops/internal/performance"
	"hr-ops/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.FlashID())

	flashStore := flash.NewStore(rdb)

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	performanceRepo := performance.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	meetingRepo := boardmeeting.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(employeeRepo)
	performanceService := performance.NewService(performanceRepo)
	feedbackService := feedback.NewService(feedbackRepo, performanceService)
	payrollService := payroll.NewService(payrollRepo, payroll.NewFixedRateSource(hourlyRateFromEnv()), employeeService)
	meetingService := boardmeeting.NewService(meetingRepo, outboxRepo)
	dashboardService := dashboard.NewService(employeeService, meetingService, payrollService, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, flashStore)
	employeeHandler := employee.NewHandler(employeeService, flashStore, payroll.NewHistorySource(payrollService))
	feedbackHandler := feedback.NewHandler(feedbackService, flashStore)
	performanceHandler := performance.NewHandler(performanceService, flashStore)
	payrollHandler := payroll.NewHandler(payrollService, flashStore)
	meetingHandler := boardmeeting.NewHandler(meetingService, flashStore)
	dashboardHandler := dashboard.NewHandler(dashboardService, flashStore)

	// --- Routes ---
	auth.RegisterRoutes(router, authHandler)
	dashboard.RegisterRoutes(router, dashboardHandler)
	employee.RegisterRoutes(router, employeeHandler)
	feedback.RegisterRoutes(router, feedbackHandler)
	performance.RegisterRoutes(router, performanceHandler)
	payroll.RegisterRoutes(router, payrollHandler)
	boardmeeting.RegisterRoutes(router, meetingHandler)

	return nil
}

func hourlyRateFromEnv() float64 {
	rate, err := strconv.ParseFloat(os.Getenv("HOURLY_RATE"), 64)
	if err != nil {
		return payroll.DefaultHourlyRate
	}
	return rate
}
