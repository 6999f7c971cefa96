package payroll

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Payroll) error
	FindRecent(ctx context.Context, limit int) ([]Payroll, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]Payroll, error) {
	var ps []Payroll
	err := r.db.WithContext(ctx).
		Order("processed_at DESC").
		Limit(limit).
		Find(&ps).Error
	return ps, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var ps []Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("processed_at DESC").
		Find(&ps).Error
	return ps, err
}
