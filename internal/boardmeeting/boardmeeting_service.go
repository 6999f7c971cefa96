package boardmeeting

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	boardmeetingerrors "hr-ops/internal/boardmeeting/errors"
	"hr-ops/internal/events"
	"hr-ops/internal/messaging/kafka"
	"hr-ops/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// dateLayout matches the wall-clock format used on time-log forms.
const dateLayout = "2006-01-02 15:04:05"

type Service interface {
	Create(ctx context.Context, req CreateMeetingRequest) (MeetingResponse, error)
	GetByID(ctx context.Context, id string) (MeetingResponse, error)
	RecordMinutes(ctx context.Context, id string, req RecordMinutesRequest) (MeetingResponse, error)
	GetRecent(ctx context.Context, limit int) ([]MeetingResponse, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("boardmeeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("boardmeeting.service")
	}
	return &service{repo: repo, outbox: outbox, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateMeetingRequest) (MeetingResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create meeting requested",
		zap.String("request_id", rid),
		zap.String("title", req.Title),
	)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return MeetingResponse{}, boardmeetingerrors.ErrInvalidDateFormat
	}

	m := &BoardMeeting{
		ID:      uuid.New(),
		Title:   req.Title,
		Details: req.Details,
		Date:    date,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("create meeting persist failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	s.notifyParticipants(ctx, rid, m)

	s.logger.Info("create meeting success",
		zap.String("request_id", rid),
		zap.String("meeting_id", m.ID.String()),
	)
	return mapToResponse(*m), nil
}

// notifyParticipants queues a meeting-created event for the
// notification worker. Delivery is best-effort: an enqueue failure is
// logged, never surfaced, and never rolls back the meeting.
func (s *service) notifyParticipants(ctx context.Context, rid string, m *BoardMeeting) {
	if s.outbox == nil {
		return
	}

	event := events.MeetingCreatedEvent{
		EventType:  "board_meeting_created",
		RequestID:  rid,
		MeetingID:  m.ID.String(),
		Title:      m.Title,
		Details:    m.Details,
		Date:       m.Date,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal meeting event failed", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "board_meeting",
		AggregateID:   m.ID.String(),
		EventType:     event.EventType,
		Topic:         events.MeetingCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("meeting notification enqueue failed",
			zap.String("meeting_id", m.ID.String()),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("meeting notification queued", zap.String("meeting_id", m.ID.String()))
}

func (s *service) GetByID(ctx context.Context, id string) (MeetingResponse, error) {
	m, err := s.findMeeting(ctx, id)
	if err != nil {
		return MeetingResponse{}, err
	}
	return mapToResponse(*m), nil
}

func (s *service) RecordMinutes(ctx context.Context, id string, req RecordMinutesRequest) (MeetingResponse, error) {
	m, err := s.findMeeting(ctx, id)
	if err != nil {
		return MeetingResponse{}, err
	}

	minutes := req.Minutes
	m.Minutes = &minutes
	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Error("record minutes persist failed", zap.String("meeting_id", id), zap.Error(err))
		return MeetingResponse{}, err
	}

	if err := s.linkMinutesToBoardRecords(ctx, id, minutes); err != nil {
		return MeetingResponse{}, err
	}

	s.logger.Info("record minutes success", zap.String("meeting_id", id))
	return mapToResponse(*m), nil
}

// linkMinutesToBoardRecords re-reads the meeting and writes the same
// minutes again. The second write is idempotent; it exists to keep the
// board-records linkage step explicit and separately replaceable.
func (s *service) linkMinutesToBoardRecords(ctx context.Context, id, minutes string) error {
	m, err := s.findMeeting(ctx, id)
	if err != nil {
		return err
	}
	m.Minutes = &minutes
	return s.repo.Update(ctx, m)
}

func (s *service) GetRecent(ctx context.Context, limit int) ([]MeetingResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	ms, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	res := make([]MeetingResponse, len(ms))
	for i, m := range ms {
		res[i] = mapToResponse(m)
	}
	return res, nil
}

func (s *service) findMeeting(ctx context.Context, id string) (*BoardMeeting, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, boardmeetingerrors.ErrInvalidMeetingID
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, boardmeetingerrors.ErrMeetingNotFound
		}
		return nil, err
	}
	return m, nil
}

func mapToResponse(m BoardMeeting) MeetingResponse {
	return MeetingResponse{
		ID:      m.ID.String(),
		Title:   m.Title,
		Details: m.Details,
		Date:    m.Date.Format(dateLayout),
		Minutes: m.Minutes,
	}
}
