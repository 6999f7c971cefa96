package boardmeeting

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m *BoardMeeting) error
	FindByID(ctx context.Context, id string) (*BoardMeeting, error)
	FindRecent(ctx context.Context, limit int) ([]BoardMeeting, error)
	Update(ctx context.Context, m *BoardMeeting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *BoardMeeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*BoardMeeting, error) {
	var m BoardMeeting
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]BoardMeeting, error) {
	var ms []BoardMeeting
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&ms).Error
	return ms, err
}

func (r *repository) Update(ctx context.Context, m *BoardMeeting) error {
	return r.db.WithContext(ctx).Save(m).Error
}
