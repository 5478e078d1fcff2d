package services

import (
	"context"
	"errors"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
	"github.com/23CSE311-SeeFood/seeFood-Backend/repository"
	"github.com/23CSE311-SeeFood/seeFood-Backend/utils"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const PasswordHashCost = 10

var (
	errJWTNotConfigured   = apperr.Configuration("JWT secret not configured")
	errInvalidCredentials = apperr.Unauthorized("invalid credentials")
)

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	Token   string          `json:"token"`
	Student *entity.Student `json:"student"`
}

// AuthService handles student registration and login.
type AuthService struct {
	studentRepo repository.StudentGateway
	tokens      *utils.TokenIssuer
}

func NewAuthService(repo repository.StudentGateway, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{
		studentRepo: repo,
		tokens:      tokens,
	}
}

// Register creates a student; a taken email is a conflict.
func (s *AuthService) Register(ctx context.Context, req validators.RegisterRequest) (*AuthResult, error) {
	const failMsg = "Failed to register"

	in, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if !s.tokens.Configured() {
		return nil, errJWTNotConfigured
	}

	count, err := s.studentRepo.CountByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordHashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.Validation("password must be at most 72 bytes")
		}
		return nil, apperr.Internal(failMsg, err)
	}

	student := &entity.Student{
		Name:       in.Name,
		Email:      in.Email,
		Number:     in.Number,
		Branch:     in.Branch,
		RollNumber: in.RollNumber,
		Password:   string(hashed),
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		// lost a race with another registration for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, apperr.Internal(failMsg, err)
	}

	token, err := s.tokens.GenerateToken(student)
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	return &AuthResult{Token: token, Student: student}, nil
}

// Login never says whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, req validators.LoginRequest) (*AuthResult, error) {
	const failMsg = "Failed to login"

	email, password, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if !s.tokens.Configured() {
		return nil, errJWTNotConfigured
	}

	student, err := s.studentRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, apperr.Internal(failMsg, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(student)
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	return &AuthResult{Token: token, Student: student}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, studentID int64) (*entity.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("student not found")
		}
		return nil, apperr.Internal("Failed to load profile", err)
	}
	return student, nil
}

// ParseToken is used by the bearer middleware.
func (s *AuthService) ParseToken(token string) (*utils.Claims, error) {
	if !s.tokens.Configured() {
		return nil, errJWTNotConfigured
	}
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("invalid token")
	}
	return claims, nil
}
