package repository

import (
	"context"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) InTx(ctx context.Context, fn func(tx ItemGateway) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewItemRepository(tx))
	})
}

func (r *ItemRepository) CanteenExists(ctx context.Context, canteenID int64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Canteen{}).Where("id = ?", canteenID).Count(&count).Error
	return count > 0, err
}

// items of one canteen ordered by id
func (r *ItemRepository) ListByCanteen(ctx context.Context, canteenID int64) ([]entity.Item, error) {
	items := []entity.Item{}
	err := r.DB.WithContext(ctx).
		Where("canteen_id = ?", canteenID).
		Order("id asc").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// UpdateFields applies a sparse column map to the row matching both id and
// canteen_id, and reports how many rows matched.
func (r *ItemRepository) UpdateFields(ctx context.Context, canteenID, id int64, fields map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&entity.Item{}).
		Where("id = ? AND canteen_id = ?", id, canteenID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	var item entity.Item
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, canteenID, id int64) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND canteen_id = ?", id, canteenID).
		Delete(&entity.Item{})
	return res.RowsAffected, res.Error
}
