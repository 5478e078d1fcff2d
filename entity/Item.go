package entity

import "time"

// Item is a menu entry that always belongs to exactly one canteen.
type Item struct {
	ID     int64    `gorm:"primaryKey" json:"id"`
	Name   string   `gorm:"not null" json:"name"`
	Price  float64  `gorm:"not null" json:"price"`
	Rating *float64 `json:"rating"`
	IsVeg  bool     `gorm:"not null" json:"isVeg"`

	// fixed at creation; deleting the canteen deletes its items
	CanteenID int64    `gorm:"not null;index" json:"canteenId"`
	Canteen   *Canteen `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Item) TableName() string { return "canteen_items" }
