package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistEntry represents a single signup on a project's waitlist.
// Entries are created and deleted, never updated. The same email may sit on
// several projects' waitlists but only once per project, enforced by the
// composite unique index so concurrent duplicate submissions are decided by
// the database rather than a check-then-insert.
type WaitlistEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex:idx_waitlist_email_project"`
	Name      string    `json:"name" gorm:"not null"`
	Extra     string    `json:"extra,omitempty" gorm:"size:500"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_waitlist_email_project;index"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the table name explicit.
func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

// BeforeCreate assigns the entry ID before insert.
func (e *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
