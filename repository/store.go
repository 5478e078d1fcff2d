package repository

import (
	"context"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"gorm.io/gorm"
)

// CanteenGateway is the store surface the canteen service depends on.
type CanteenGateway interface {
	FindAll(ctx context.Context) ([]entity.Canteen, error)
	Create(ctx context.Context, canteen *entity.Canteen) error
	Delete(ctx context.Context, id int64) (int64, error)
}

// ItemGateway covers items and the parent lookup they are guarded by.
// InTx runs fn against a gateway bound to a single transaction.
type ItemGateway interface {
	InTx(ctx context.Context, fn func(tx ItemGateway) error) error
	CanteenExists(ctx context.Context, canteenID int64) (bool, error)
	ListByCanteen(ctx context.Context, canteenID int64) ([]entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	UpdateFields(ctx context.Context, canteenID, id int64, fields map[string]any) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Item, error)
	Delete(ctx context.Context, canteenID, id int64) (int64, error)
}

type StudentGateway interface {
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)
	FindByID(ctx context.Context, id int64) (*entity.Student, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, student *entity.Student) error
}

// Store bundles the repositories over one *gorm.DB.
type Store struct {
	Canteens *CanteenRepository
	Items    *ItemRepository
	Students *StudentRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Canteens: NewCanteenRepository(db),
		Items:    NewItemRepository(db),
		Students: NewStudentRepository(db),
	}
}
