package payroll

import (
	"time"

	"github.com/google/uuid"
)

type Payroll struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	HoursWorked float64   `gorm:"not null"`
	// PaymentAmount = hourly rate * HoursWorked at processing time.
	PaymentAmount float64   `gorm:"not null"`
	ProcessedAt   time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Payroll) TableName() string {
	return "payrolls"
}
