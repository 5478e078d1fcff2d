package validators

import (
	"strings"

	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
)

type RegisterRequest struct {
	Name       Field `json:"name"`
	Email      Field `json:"email"`
	Number     Field `json:"number"`
	Password   Field `json:"password"`
	Branch     Field `json:"branch"`
	RollNumber Field `json:"rollNumber"`
}

type RegisterInput struct {
	Name       string
	Email      string
	Number     string
	Password   string
	Branch     *string
	RollNumber *string
}

func (r RegisterRequest) Validate() (RegisterInput, error) {
	var in RegisterInput
	missing := apperr.Validation("name, email, number, password required")

	var ok bool
	if in.Name, ok = requiredText(r.Name); !ok {
		return in, missing
	}
	if in.Email, ok = requiredText(r.Email); !ok {
		return in, missing
	}
	in.Email = NormalizeEmail(in.Email)
	if in.Number, ok = requiredText(r.Number); !ok {
		return in, missing
	}
	if in.Password, ok = r.Password.AsString(); !ok || in.Password == "" {
		return in, missing
	}
	in.Branch = optionalText(r.Branch)
	in.RollNumber = optionalText(r.RollNumber)
	return in, nil
}

type LoginRequest struct {
	Email    Field `json:"email"`
	Password Field `json:"password"`
}

func (r LoginRequest) Validate() (email, password string, err error) {
	missing := apperr.Validation("email and password required")

	email, ok := requiredText(r.Email)
	if !ok {
		return "", "", missing
	}
	password, ok = r.Password.AsString()
	if !ok || password == "" {
		return "", "", missing
	}
	return NormalizeEmail(email), password, nil
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func requiredText(f Field) (string, bool) {
	s, ok := f.AsText()
	return s, ok && s != ""
}

func optionalText(f Field) *string {
	s, ok := f.AsText()
	if !ok || s == "" {
		return nil
	}
	return &s
}
