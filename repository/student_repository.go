package repository

import (
	"context"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"gorm.io/gorm"
)

// StudentRepository only talks to the students table.
type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

// email is expected to be normalized already
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var student entity.Student
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*entity.Student, error) {
	var student entity.Student
	if err := r.DB.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&entity.Student{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StudentRepository) Create(ctx context.Context, student *entity.Student) error {
	return r.DB.WithContext(ctx).Create(student).Error
}
