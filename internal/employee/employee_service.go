package employee

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	employeeerrors "hr-ops/internal/employee/errors"
	"hr-ops/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timeLayout is the fixed wall-clock format accepted on time-log forms.
const timeLayout = "2006-01-02 15:04:05"

// maxNumberAttempts bounds regeneration when a random employee number
// collides with an existing row.
const maxNumberAttempts = 5

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)

	// LogTime parses both timestamps with the fixed layout, computes
	// elapsed hours and adds them cumulatively to the employee's
	// HoursWorked. Negative intervals (end before start) are accepted
	// and applied as-is.
	LogTime(ctx context.Context, id string, req LogTimeRequest) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	var empl *Employee
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		empl = &Employee{
			ID:             uuid.New(),
			Name:           req.Name,
			EmployeeNumber: randomEmployeeNumber(),
			HoursWorked:    0,
		}

		err := mapRepositoryError(s.repo.Create(ctx, empl))
		if err == nil {
			break
		}
		if errors.Is(err, employeeerrors.ErrEmployeeNumberTaken) {
			s.logger.Warn("employee number collision, regenerating",
				zap.String("employee_number", empl.EmployeeNumber),
				zap.Int("attempt", attempt),
			)
			if attempt == maxNumberAttempts {
				return EmployeeResponse{}, employeeerrors.ErrEmployeeNumberExhausted
			}
			continue
		}
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) LogTime(ctx context.Context, id string, req LogTimeRequest) (EmployeeResponse, error) {
	s.logger.Debug("log time requested",
		zap.String("employee_id", id),
		zap.String("start_time", req.StartTime),
		zap.String("end_time", req.EndTime),
	)

	start, err := time.Parse(timeLayout, req.StartTime)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidTimeFormat
	}
	end, err := time.Parse(timeLayout, req.EndTime)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidTimeFormat
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	hours := end.Sub(start).Seconds() / 3600
	empl.HoursWorked += hours

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("log time persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("log time success",
		zap.String("employee_id", id),
		zap.Float64("hours", hours),
		zap.Float64("hours_worked_total", empl.HoursWorked),
	)
	return mapToResponse(*empl), nil
}

// randomEmployeeNumber returns "EMP" plus a random 4-digit suffix.
// Uniqueness is enforced by the storage layer; Create regenerates on
// collision.
func randomEmployeeNumber() string {
	return fmt.Sprintf("EMP%d", 1000+rand.Intn(9000))
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               empl.ID.String(),
		Name:             empl.Name,
		EmployeeNumber:   empl.EmployeeNumber,
		HoursWorked:      empl.HoursWorked,
		Benefits:         empl.Benefits,
		EquityAllocation: empl.EquityAllocation,
	}
}
