package feedback

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time // defaults to creation time
	UpdatedAt  time.Time
}

func (Feedback) TableName() string {
	return "feedbacks"
}
