package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"hr-ops/internal/boardmeeting"
	"hr-ops/internal/employee"
	"hr-ops/internal/payroll"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	SummaryCacheKey = "dashboard:summary"
	summaryCacheTTL = time.Minute
	recentLimit     = 5
)

type Summary struct {
	EmployeeCount  int                            `json:"employee_count"`
	Employees      []employee.EmployeeResponse    `json:"employees"`
	RecentMeetings []boardmeeting.MeetingResponse `json:"recent_meetings"`
	RecentPayrolls []payroll.PayrollResponse      `json:"recent_payrolls"`
}

type EmployeeSource interface {
	GetAll(ctx context.Context) ([]employee.EmployeeResponse, error)
}

type MeetingSource interface {
	GetRecent(ctx context.Context, limit int) ([]boardmeeting.MeetingResponse, error)
}

type PayrollSource interface {
	GetRecent(ctx context.Context, limit int) ([]payroll.PayrollResponse, error)
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

type service struct {
	employees EmployeeSource
	meetings  MeetingSource
	payrolls  PayrollSource
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	employees EmployeeSource,
	meetings MeetingSource,
	payrolls PayrollSource,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		employees: employees,
		meetings:  meetings,
		payrolls:  payrolls,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// Summary serves the dashboard data from redis when fresh, collapsing
// concurrent cache misses through singleflight. Cache trouble degrades
// to the database, never to an error.
func (s *service) Summary(ctx context.Context) (Summary, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SummaryCacheKey).Result(); err == nil {
			var summary Summary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return summary, nil
			}
		}
	}

	v, err, _ := s.sf.Do(SummaryCacheKey, func() (interface{}, error) {
		summary, err := s.buildSummary(ctx)
		if err != nil {
			return Summary{}, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(summary); err == nil {
				if err := s.rdb.Set(ctx, SummaryCacheKey, data, summaryCacheTTL).Err(); err != nil {
					s.logger.Warn("dashboard summary cache write failed", zap.Error(err))
				}
			}
		}

		return summary, nil
	})
	if err != nil {
		return Summary{}, err
	}

	return v.(Summary), nil
}

func (s *service) buildSummary(ctx context.Context) (Summary, error) {
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		s.logger.Error("dashboard employee load failed", zap.Error(err))
		return Summary{}, err
	}

	meetings, err := s.meetings.GetRecent(ctx, recentLimit)
	if err != nil {
		s.logger.Error("dashboard meeting load failed", zap.Error(err))
		return Summary{}, err
	}

	payrolls, err := s.payrolls.GetRecent(ctx, recentLimit)
	if err != nil {
		s.logger.Error("dashboard payroll load failed", zap.Error(err))
		return Summary{}, err
	}

	return Summary{
		EmployeeCount:  len(employees),
		Employees:      employees,
		RecentMeetings: meetings,
		RecentPayrolls: payrolls,
	}, nil
}
