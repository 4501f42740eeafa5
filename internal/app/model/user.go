package model

import (
	"time"
)

// UserRole is the closed set of account roles
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleUser       UserRole = "user"
	RoleStoreOwner UserRole = "store_owner"
)

// Valid reports whether the role is one of the enumerated values
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(60);not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Address      string    `gorm:"type:text" json:"address"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Stores []Store `gorm:"foreignKey:OwnerID" json:"stores,omitempty"`
}

func (User) TableName() string {
	return "users"
}
