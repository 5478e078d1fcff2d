package validators

import "github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"

type CanteenRequest struct {
	Name    Field `json:"name"`
	Ratings Field `json:"ratings"`
}

type CanteenInput struct {
	Name    string
	Ratings *float64
}

func (r CanteenRequest) ForCreate() (CanteenInput, error) {
	var in CanteenInput

	name, ok := nonEmptyString(r.Name)
	if !ok {
		return in, apperr.Validation("name is required")
	}
	in.Name = name

	if r.Ratings.Present && !r.Ratings.IsNull() {
		ratings, ok := r.Ratings.AsNumber()
		if !ok {
			return in, apperr.Validation("ratings must be a number")
		}
		in.Ratings = &ratings
	}
	return in, nil
}
