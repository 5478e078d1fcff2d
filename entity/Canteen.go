package entity

import "time"

type Canteen struct {
	ID      int64    `gorm:"primaryKey" json:"id"`
	Name    string   `gorm:"not null" json:"name"`
	Ratings *float64 `json:"ratings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
