package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType represents the two human identity roles. Orthogonal to tenancy:
// a user identity never grants project or admin rights by itself.
type UserType string

const (
	UserTypeDeveloper UserType = "developer"
	UserTypeUser      UserType = "user"
)

// User represents a human account for the dashboard login path.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex:idx_users_email"`
	Password  string    `json:"-" gorm:"not null"`
	Username  string    `json:"username"`
	UserType  UserType  `json:"userType" gorm:"type:varchar(16);not null;default:'user'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the user ID before insert.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
