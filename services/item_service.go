// services/item_service.go
package services

import (
	"context"
	"errors"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
	"github.com/23CSE311-SeeFood/seeFood-Backend/repository"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"gorm.io/gorm"
)

var (
	errCanteenNotFound = apperr.NotFound("Canteen not found")
	errItemNotFound    = apperr.NotFound("Item not found")
	errItemIDInvalid   = apperr.Validation("id must be an integer")
)

// ItemService runs every item operation behind the parent-existence guard.
// Guard and operation share one transaction, and the foreign key still
// rejects a write whose canteen disappeared underneath it.
type ItemService struct {
	Repo repository.ItemGateway
}

func NewItemService(repo repository.ItemGateway) *ItemService {
	return &ItemService{Repo: repo}
}

func (s *ItemService) List(ctx context.Context, canteenID int64) ([]entity.Item, error) {
	const failMsg = "Failed to fetch items"

	var items []entity.Item
	err := s.Repo.InTx(ctx, func(tx repository.ItemGateway) error {
		if err := ensureCanteen(ctx, tx, canteenID, failMsg); err != nil {
			return err
		}
		var err error
		if items, err = tx.ListByCanteen(ctx, canteenID); err != nil {
			return apperr.Internal(failMsg, err)
		}
		return nil
	})
	return items, asAppErr(err, failMsg)
}

func (s *ItemService) Create(ctx context.Context, canteenID int64, req validators.ItemRequest) (*entity.Item, error) {
	const failMsg = "Failed to create item"

	var item *entity.Item
	err := s.Repo.InTx(ctx, func(tx repository.ItemGateway) error {
		if err := ensureCanteen(ctx, tx, canteenID, failMsg); err != nil {
			return err
		}
		in, err := req.ForCreate()
		if err != nil {
			return err
		}

		item = &entity.Item{
			Name:      in.Name,
			Price:     in.Price,
			Rating:    in.Rating,
			IsVeg:     in.IsVeg,
			CanteenID: canteenID,
		}
		if err := tx.Create(ctx, item); err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return errCanteenNotFound
			}
			return apperr.Internal(failMsg, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err, failMsg)
	}
	return item, nil
}

// Update applies only the fields present in req, to the row matching both
// id and canteenID, then reads the row back. rawID is parsed only once the
// canteen is known to exist.
func (s *ItemService) Update(ctx context.Context, canteenID int64, rawID string, req validators.ItemRequest) (*entity.Item, error) {
	const failMsg = "Failed to update item"

	var item *entity.Item
	err := s.Repo.InTx(ctx, func(tx repository.ItemGateway) error {
		if err := ensureCanteen(ctx, tx, canteenID, failMsg); err != nil {
			return err
		}
		id, ok := validators.ParseID(rawID)
		if !ok {
			return errItemIDInvalid
		}
		fields, err := req.ForUpdate()
		if err != nil {
			return err
		}

		n, err := tx.UpdateFields(ctx, canteenID, id, fields)
		if err != nil {
			return apperr.Internal(failMsg, err)
		}
		if n == 0 {
			return errItemNotFound
		}

		if item, err = tx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errItemNotFound
			}
			return apperr.Internal(failMsg, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err, failMsg)
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, canteenID int64, rawID string) error {
	const failMsg = "Failed to delete item"

	err := s.Repo.InTx(ctx, func(tx repository.ItemGateway) error {
		if err := ensureCanteen(ctx, tx, canteenID, failMsg); err != nil {
			return err
		}
		id, ok := validators.ParseID(rawID)
		if !ok {
			return errItemIDInvalid
		}
		n, err := tx.Delete(ctx, canteenID, id)
		if err != nil {
			return apperr.Internal(failMsg, err)
		}
		if n == 0 {
			return errItemNotFound
		}
		return nil
	})
	return asAppErr(err, failMsg)
}

func ensureCanteen(ctx context.Context, tx repository.ItemGateway, canteenID int64, failMsg string) error {
	ok, err := tx.CanteenExists(ctx, canteenID)
	if err != nil {
		return apperr.Internal(failMsg, err)
	}
	if !ok {
		return errCanteenNotFound
	}
	return nil
}

// asAppErr makes sure nothing but an apperr leaves the service, e.g. a
// failed commit.
func asAppErr(err error, failMsg string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	return apperr.Internal(failMsg, err)
}
