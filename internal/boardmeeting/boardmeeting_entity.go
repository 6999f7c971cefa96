package boardmeeting

import (
	"time"

	"github.com/google/uuid"
)

type BoardMeeting struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title   string    `gorm:"type:varchar(150);not null"`
	Details string    `gorm:"type:text;not null"`
	Date    time.Time `gorm:"not null;index"`
	// Minutes stays NULL until the meeting is recorded.
	Minutes   *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BoardMeeting) TableName() string {
	return "board_meetings"
}
