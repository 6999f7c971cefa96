package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex:uq_user_username;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt hash, never plaintext
	Role      string    `gorm:"type:varchar(50);not null;default:'STAFF'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
