package feedback

import (
	"context"
	"time"

	employeeerrors "hr-ops/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PerformanceLinker appends feedback content to the employee's most
// recent performance record; a no-op when none exists.
type PerformanceLinker interface {
	AppendFeedback(ctx context.Context, employeeID, content string) error
}

type Service interface {
	Create(ctx context.Context, req CreateFeedbackRequest) (FeedbackResponse, error)
}

type service struct {
	repo   Repository
	linker PerformanceLinker
	logger *zap.Logger
}

func NewService(repo Repository, linker PerformanceLinker, logger ...*zap.Logger) Service {
	l := zap.L().Named("feedback.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.service")
	}
	return &service{repo: repo, linker: linker, logger: l}
}

// Create persists the feedback, then links it to the latest
// performance record as a second, separate commit. A crash between
// the two leaves the feedback stored but unlinked; that is accepted
// behavior, so a link failure is logged rather than returned.
func (s *service) Create(ctx context.Context, req CreateFeedbackRequest) (FeedbackResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return FeedbackResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	fb := &Feedback{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Content:    req.Content,
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		s.logger.Error("create feedback persist failed", zap.Error(err))
		return FeedbackResponse{}, err
	}

	if s.linker != nil {
		if err := s.linker.AppendFeedback(ctx, req.EmployeeID, req.Content); err != nil {
			s.logger.Error("link feedback to performance failed",
				zap.String("feedback_id", fb.ID.String()),
				zap.String("employee_id", req.EmployeeID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("create feedback success",
		zap.String("feedback_id", fb.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*fb), nil
}

func mapToResponse(fb Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:         fb.ID.String(),
		EmployeeID: fb.EmployeeID.String(),
		Content:    fb.Content,
		CreatedAt:  fb.CreatedAt.Format(time.RFC3339),
	}
}
