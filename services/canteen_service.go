// services/canteen_service.go
package services

import (
	"context"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
	"github.com/23CSE311-SeeFood/seeFood-Backend/repository"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
)

type CanteenService struct {
	Repo repository.CanteenGateway
}

func NewCanteenService(repo repository.CanteenGateway) *CanteenService {
	return &CanteenService{Repo: repo}
}

func (s *CanteenService) List(ctx context.Context) ([]entity.Canteen, error) {
	canteens, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch canteens", err)
	}
	return canteens, nil
}

func (s *CanteenService) Create(ctx context.Context, req validators.CanteenRequest) (*entity.Canteen, error) {
	in, err := req.ForCreate()
	if err != nil {
		return nil, err
	}

	canteen := &entity.Canteen{Name: in.Name, Ratings: in.Ratings}
	if err := s.Repo.Create(ctx, canteen); err != nil {
		return nil, apperr.Internal("Failed to create canteen", err)
	}
	return canteen, nil
}

// Delete removes the canteen and, through the cascade, its items. A missing
// row is 404; any other store failure is a 500.
func (s *CanteenService) Delete(ctx context.Context, id int64) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperr.Internal("Failed to delete canteen", err)
	}
	if n == 0 {
		return apperr.NotFound("Canteen not found")
	}
	return nil
}
