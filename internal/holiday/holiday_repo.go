package holiday

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	// FindByYear returns the holidays dated in year plus every recurring
	// holiday regardless of the year it was declared in.
	FindByYear(ctx context.Context, year int) ([]Holiday, error)
	Create(ctx context.Context, h *Holiday) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("EXTRACT(YEAR FROM date) = ?", year).
		Or("is_recurring = ?", true).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}
