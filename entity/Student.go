package entity

import "time"

type Student struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Email      string  `gorm:"uniqueIndex;not null" json:"email"`
	Number     string  `gorm:"not null" json:"number"`
	Branch     *string `json:"branch"`
	RollNumber *string `json:"rollNumber"`
	Password   string  `gorm:"not null" json:"-"` // bcrypt hash only, never serialized

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
