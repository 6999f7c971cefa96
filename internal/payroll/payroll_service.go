package payroll

import (
	"context"
	"strconv"
	"time"

	"hr-ops/internal/employee"
	employeeerrors "hr-ops/internal/employee/errors"
	payrollerrors "hr-ops/internal/payroll/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeFinder confirms the paid employee exists; satisfied by the
// employee service.
type EmployeeFinder interface {
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

type Service interface {
	// Process computes payment_amount = hourly rate * hours worked and
	// persists a payroll record stamped with the current time.
	Process(ctx context.Context, req ProcessPayrollRequest) (PayrollResponse, error)
	GetRecent(ctx context.Context, limit int) ([]PayrollResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error)
}

type service struct {
	repo      Repository
	rates     RateSource
	employees EmployeeFinder
	logger    *zap.Logger
}

func NewService(repo Repository, rates RateSource, employees EmployeeFinder, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, rates: rates, employees: employees, logger: l}
}

func (s *service) Process(ctx context.Context, req ProcessPayrollRequest) (PayrollResponse, error) {
	s.logger.Debug("process payroll requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("hours_worked", req.HoursWorked),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	hours, err := strconv.ParseFloat(req.HoursWorked, 64)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidHoursWorked
	}

	if s.employees != nil {
		if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
			return PayrollResponse{}, err
		}
	}

	rate, err := s.rates.RateFor(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("rate lookup failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return PayrollResponse{}, payrollerrors.ErrRateUnavailable
	}

	p := &Payroll{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		HoursWorked:   hours,
		PaymentAmount: rate * hours,
		ProcessedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("process payroll persist failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("process payroll success",
		zap.String("payroll_id", p.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("payment_amount", p.PaymentAmount),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetRecent(ctx context.Context, limit int) ([]PayrollResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	ps, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(ps), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	ps, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(ps), nil
}

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:            p.ID.String(),
		EmployeeID:    p.EmployeeID.String(),
		HoursWorked:   p.HoursWorked,
		PaymentAmount: p.PaymentAmount,
		ProcessedAt:   p.ProcessedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(ps []Payroll) []PayrollResponse {
	res := make([]PayrollResponse, len(ps))
	for i, p := range ps {
		res[i] = mapToResponse(p)
	}
	return res
}
