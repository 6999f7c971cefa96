package performance

import (
	"context"
	"errors"
	"time"

	employeeerrors "hr-ops/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreatePerformanceRequest) (PerformanceResponse, error)

	// AppendFeedback adds content to the feedback list of the
	// employee's most recent review, creating the list when absent.
	// Without any review this is a silent no-op, not an error.
	AppendFeedback(ctx context.Context, employeeID, content string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePerformanceRequest) (PerformanceResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PerformanceResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	perf := &Performance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Metrics:    Metrics{Ratings: req.Ratings},
	}
	if err := s.repo.Create(ctx, perf); err != nil {
		s.logger.Error("create performance persist failed", zap.Error(err))
		return PerformanceResponse{}, err
	}

	s.logger.Info("create performance success",
		zap.String("performance_id", perf.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*perf), nil
}

func (s *service) AppendFeedback(ctx context.Context, employeeID, content string) error {
	perf, err := s.repo.FindLatestByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("no performance record to link feedback",
				zap.String("employee_id", employeeID))
			return nil
		}
		return err
	}

	perf.Metrics.Feedback = append(perf.Metrics.Feedback, content)

	if err := s.repo.Update(ctx, perf); err != nil {
		return err
	}

	s.logger.Info("feedback linked to performance record",
		zap.String("performance_id", perf.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return nil
}

func mapToResponse(perf Performance) PerformanceResponse {
	return PerformanceResponse{
		ID:         perf.ID.String(),
		EmployeeID: perf.EmployeeID.String(),
		Ratings:    perf.Metrics.Ratings,
		Feedback:   perf.Metrics.Feedback,
		CreatedAt:  perf.CreatedAt.Format(time.RFC3339),
	}
}
