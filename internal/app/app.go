package app

import (
	"context"
	"os"

	"hr-ops/internal/auth"
	"hr-ops/internal/boardmeeting"
	"hr-ops/internal/employee"
	"hr-ops/internal/feedback"
	"hr-ops/internal/performance"
	"hr-ops/internal/payroll"
	"hr-ops/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	if err := registerModules(router, db, redisClient); err != nil {
		return err
	}

	if err := seedAdmin(db); err != nil {
		return err
	}

	return nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&feedback.Feedback{},
		&performance.Performance{},
		&payroll.Payroll{},
		&boardmeeting.BoardMeeting{},
	)
	if err != nil {
		return err
	}

	// The outbox table is accessed over database/sql, outside gorm's
	// model migration.
	if err := db.Exec(outboxTableDDL).Error; err != nil {
		return err
	}
	return db.Exec(outboxIndexDDL).Error
}

const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
    id UUID PRIMARY KEY,
    request_id TEXT,
    aggregate_type TEXT NOT NULL,
    aggregate_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    topic TEXT NOT NULL,
    payload JSONB NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    retry_count INT NOT NULL DEFAULT 0,
    error_message TEXT,
    next_retry_at TIMESTAMPTZ,
    processed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const outboxIndexDDL = `
CREATE INDEX IF NOT EXISTS idx_outbox_events_status
    ON outbox_events (status, created_at)`

// seedAdmin provisions the first login from the environment so a fresh
// deployment is reachable. No-op once any user exists.
func seedAdmin(db *gorm.DB) error {
	authService := auth.NewService(auth.NewRepository(db))
	err := authService.SeedAdmin(
		context.Background(),
		os.Getenv("ADMIN_USERNAME"),
		os.Getenv("ADMIN_PASSWORD"),
	)
	if err != nil {
		zap.L().Error("admin seed failed", zap.Error(err))
		return err
	}
	return nil
}
