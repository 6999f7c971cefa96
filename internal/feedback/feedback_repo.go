package feedback

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, fb *Feedback) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Feedback, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, fb *Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Feedback, error) {
	var fbs []Feedback
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&fbs).Error
	return fbs, err
}
