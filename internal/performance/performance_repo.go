package performance

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, perf *Performance) error
	// FindLatestByEmployee returns the most recent review for the
	// employee, gorm.ErrRecordNotFound when none exists.
	FindLatestByEmployee(ctx context.Context, employeeID string) (*Performance, error)
	Update(ctx context.Context, perf *Performance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, perf *Performance) error {
	return r.db.WithContext(ctx).Create(perf).Error
}

func (r *repository) FindLatestByEmployee(ctx context.Context, employeeID string) (*Performance, error) {
	var perf Performance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		First(&perf).Error
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

func (r *repository) Update(ctx context.Context, perf *Performance) error {
	return r.db.WithContext(ctx).Save(perf).Error
}
