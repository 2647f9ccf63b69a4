package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/model"
)

// FoodRepository defines the data access contract for food items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type FoodRepository interface {
	Create(ctx context.Context, f *model.Food) error
	List(ctx context.Context) ([]model.Food, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Food, error)
	Update(ctx context.Context, f *model.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type foodRepo struct{ db *gorm.DB }

func NewFoodRepository(db *gorm.DB) FoodRepository { return &foodRepo{db: db} }

func (r *foodRepo) Create(ctx context.Context, f *model.Food) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *foodRepo) List(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	err := r.db.WithContext(ctx).Order("name asc").Find(&foods).Error
	return foods, err
}

func (r *foodRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Food, error) {
	var f model.Food
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *foodRepo) Update(ctx context.Context, f *model.Food) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *foodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Food{}, "id = ?", id).Error
}
