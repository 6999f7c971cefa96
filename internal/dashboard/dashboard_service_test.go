package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hr-ops/internal/boardmeeting"
	"hr-ops/internal/dashboard"
	"hr-ops/internal/employee"
	"hr-ops/internal/payroll"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeSource struct {
	GetAllFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
}

func (f *fakeEmployeeSource) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}

type fakeMeetingSource struct {
	GetRecentFn func(ctx context.Context, limit int) ([]boardmeeting.MeetingResponse, error)
}

func (f *fakeMeetingSource) GetRecent(ctx context.Context, limit int) ([]boardmeeting.MeetingResponse, error) {
	return f.GetRecentFn(ctx, limit)
}

type fakePayrollSource struct {
	GetRecentFn func(ctx context.Context, limit int) ([]payroll.PayrollResponse, error)
}

func (f *fakePayrollSource) GetRecent(ctx context.Context, limit int) ([]payroll.PayrollResponse, error) {
	return f.GetRecentFn(ctx, limit)
}

func testSummary() dashboard.Summary {
	return dashboard.Summary{
		EmployeeCount: 1,
		Employees: []employee.EmployeeResponse{
			{ID: uuid.NewString(), Name: "Ada", EmployeeNumber: "EMP1001"},
		},
		RecentMeetings: []boardmeeting.MeetingResponse{
			{ID: uuid.NewString(), Title: "Q3 Review", Details: "Results", Date: "2026-09-15 10:00:00"},
		},
		RecentPayrolls: []payroll.PayrollResponse{
			{ID: uuid.NewString(), EmployeeID: uuid.NewString(), HoursWorked: 8, PaymentAmount: 160},
		},
	}
}

func sourcesFor(t *testing.T, summary dashboard.Summary) (*fakeEmployeeSource, *fakeMeetingSource, *fakePayrollSource) {
	t.Helper()
	return &fakeEmployeeSource{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return summary.Employees, nil
			},
		}, &fakeMeetingSource{
			GetRecentFn: func(ctx context.Context, limit int) ([]boardmeeting.MeetingResponse, error) {
				assert.Equal(t, 5, limit)
				return summary.RecentMeetings, nil
			},
		}, &fakePayrollSource{
			GetRecentFn: func(ctx context.Context, limit int) ([]payroll.PayrollResponse, error) {
				return summary.RecentPayrolls, nil
			},
		}
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("serves from cache without touching sources", func(t *testing.T) {
		want := testSummary()
		cached, err := json.Marshal(want)
		require.NoError(t, err)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(dashboard.SummaryCacheKey).SetVal(string(cached))

		employees := &fakeEmployeeSource{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				t.Fatal("must not hit the database on a cache hit")
				return nil, nil
			},
		}
		svc := dashboard.NewService(employees, nil, nil, rdb)

		got, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss builds and stores the summary", func(t *testing.T) {
		want := testSummary()
		data, err := json.Marshal(want)
		require.NoError(t, err)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(dashboard.SummaryCacheKey).RedisNil()
		mock.ExpectSet(dashboard.SummaryCacheKey, data, time.Minute).SetVal("OK")

		employees, meetings, payrolls := sourcesFor(t, want)
		svc := dashboard.NewService(employees, meetings, payrolls, rdb)

		got, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache write failure degrades to the database", func(t *testing.T) {
		want := testSummary()
		data, err := json.Marshal(want)
		require.NoError(t, err)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(dashboard.SummaryCacheKey).RedisNil()
		mock.ExpectSet(dashboard.SummaryCacheKey, data, time.Minute).SetErr(errors.New("redis down"))

		employees, meetings, payrolls := sourcesFor(t, want)
		svc := dashboard.NewService(employees, meetings, payrolls, rdb)

		got, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("works without redis", func(t *testing.T) {
		want := testSummary()
		employees, meetings, payrolls := sourcesFor(t, want)
		svc := dashboard.NewService(employees, meetings, payrolls, nil)

		got, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, want.EmployeeCount, got.EmployeeCount)
	})

	t.Run("source failure surfaces", func(t *testing.T) {
		employees := &fakeEmployeeSource{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := dashboard.NewService(employees, nil, nil, nil)

		_, err := svc.Summary(ctx)
		assert.Error(t, err)
	})
}
