package model

import (
	"time"
)

type Store struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Store) TableName() string {
	return "stores"
}

// StoreRating is the read-only aggregate view over stores and ratings.
// average_rating is rounded to 2 decimal places and 0 when no ratings exist;
// it is recomputed by the database on every read, never cached.
type StoreRating struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	OwnerID       uint    `json:"owner_id"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

func (StoreRating) TableName() string {
	return "store_ratings"
}
