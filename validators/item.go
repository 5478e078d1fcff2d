package validators

import (
	"strings"

	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
)

// ItemRequest is the body of POST and PUT /canteens/:canteenId/items.
type ItemRequest struct {
	Name   Field `json:"name"`
	Price  Field `json:"price"`
	Rating Field `json:"rating"`
	IsVeg  Field `json:"isVeg"`
}

type ItemInput struct {
	Name   string
	Price  float64
	Rating *float64
	IsVeg  bool
}

// ForCreate checks name, price, rating and isVeg in that order and stops at
// the first bad field. An omitted or null rating is stored as null.
func (r ItemRequest) ForCreate() (ItemInput, error) {
	var in ItemInput

	name, ok := nonEmptyString(r.Name)
	if !ok {
		return in, apperr.Validation("name is required")
	}
	in.Name = name

	price, ok := r.Price.AsNumber()
	if !ok {
		return in, apperr.Validation("price is required")
	}
	in.Price = price

	if r.Rating.Present && !r.Rating.IsNull() {
		rating, ok := r.Rating.AsNumber()
		if !ok {
			return in, apperr.Validation("rating must be a number")
		}
		in.Rating = &rating
	}

	isVeg, ok := r.IsVeg.AsBool()
	if !ok {
		return in, apperr.Validation("isVeg must be boolean")
	}
	in.IsVeg = isVeg

	return in, nil
}

// ForUpdate builds the sparse column map for a partial update. Omitted fields
// are left out; a null rating clears the column.
func (r ItemRequest) ForUpdate() (map[string]any, error) {
	fields := map[string]any{}

	if r.Name.Present {
		name, ok := nonEmptyString(r.Name)
		if !ok {
			return nil, apperr.Validation("name must be a non-empty string")
		}
		fields["name"] = name
	}
	if r.Price.Present {
		price, ok := r.Price.AsNumber()
		if !ok {
			return nil, apperr.Validation("price must be a number")
		}
		fields["price"] = price
	}
	if r.Rating.Present {
		if r.Rating.IsNull() {
			fields["rating"] = nil
		} else {
			rating, ok := r.Rating.AsNumber()
			if !ok {
				return nil, apperr.Validation("rating must be a number")
			}
			fields["rating"] = rating
		}
	}
	if r.IsVeg.Present {
		isVeg, ok := r.IsVeg.AsBool()
		if !ok {
			return nil, apperr.Validation("isVeg must be boolean")
		}
		fields["is_veg"] = isVeg
	}

	if len(fields) == 0 {
		return nil, apperr.Validation("no fields to update")
	}
	return fields, nil
}

func nonEmptyString(f Field) (string, bool) {
	s, ok := f.AsString()
	s = strings.TrimSpace(s)
	return s, ok && s != ""
}
