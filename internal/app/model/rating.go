package model

import (
	"time"
)

// Rating is a single user's score for a single store. The composite unique
// index keeps at most one row per (user, store) pair; resubmissions update
// the existing row in place.
type Rating struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_ratings_user_store,unique" json:"user_id"`
	StoreID   uint      `gorm:"not null;index:idx_ratings_user_store,unique" json:"store_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Store Store `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}
