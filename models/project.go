package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a tenant: an external application with its own
// isolated waitlist. The API token is the tenant's write credential.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"size:50;not null;uniqueIndex:idx_projects_slug"`
	Description string    `json:"description" gorm:"not null"`
	APIToken    string    `json:"-" gorm:"column:api_token;size:64;not null;uniqueIndex:idx_projects_api_token"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the project ID before insert.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
