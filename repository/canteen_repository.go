package repository

import (
	"context"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"gorm.io/gorm"
)

type CanteenRepository struct {
	DB *gorm.DB
}

func NewCanteenRepository(db *gorm.DB) *CanteenRepository {
	return &CanteenRepository{DB: db}
}

// all canteens, oldest first
func (r *CanteenRepository) FindAll(ctx context.Context) ([]entity.Canteen, error) {
	canteens := []entity.Canteen{}
	err := r.DB.WithContext(ctx).Order("id asc").Find(&canteens).Error
	return canteens, err
}

func (r *CanteenRepository) Create(ctx context.Context, canteen *entity.Canteen) error {
	return r.DB.WithContext(ctx).Create(canteen).Error
}

// Delete returns the number of rows removed; items go with it through the
// foreign key cascade.
func (r *CanteenRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Canteen{}, id)
	return res.RowsAffected, res.Error
}
