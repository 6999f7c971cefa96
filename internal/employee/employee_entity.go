package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(150);not null"`
	EmployeeNumber   string    `gorm:"type:varchar(50);uniqueIndex:uq_employee_number;not null"` // immutable once assigned
	HoursWorked      float64   `gorm:"not null;default:0"`
	Benefits         string    `gorm:"type:varchar(150)"`
	EquityAllocation float64   `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Employee) TableName() string {
	return "employees"
}
