package events

import "time"

const MeetingCreatedTopic = "hr.board.meeting.v1"

// MeetingCreatedEvent asks the notification worker to inform
// participants about a newly scheduled board meeting.
type MeetingCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	MeetingID  string    `json:"meeting_id"`
	Title      string    `json:"title"`
	Details    string    `json:"details"`
	Date       time.Time `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}
