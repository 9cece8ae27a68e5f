package dto

import (
	"time"

	"github.com/waitlist-simple/models"
)

// AddWaitlistRequest represents a signup submitted by a tenant's front-end.
// The owning project comes from the authenticated token, never the body.
type AddWaitlistRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Extra string `json:"extra" binding:"omitempty,max=500"`
}

// ProjectRef is the small project summary embedded in entry responses.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// WaitlistEntryResponse represents one signup in API responses.
type WaitlistEntryResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Extra     string     `json:"extra,omitempty"`
	Project   ProjectRef `json:"project"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewWaitlistEntryResponse maps an entry and its owning project.
func NewWaitlistEntryResponse(entry models.WaitlistEntry, project models.Project) WaitlistEntryResponse {
	return WaitlistEntryResponse{
		ID:    entry.ID,
		Email: entry.Email,
		Name:  entry.Name,
		Extra: entry.Extra,
		Project: ProjectRef{
			ID:   project.ID,
			Name: project.Name,
			Slug: project.Slug,
		},
		CreatedAt: entry.CreatedAt,
	}
}

// WaitlistFilter represents list criteria for a project's waitlist.
type WaitlistFilter struct {
	ProjectID string
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// PaginationMeta is computed from the filtered total, not the tenant total.
type PaginationMeta struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalCount      int64 `json:"totalCount"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// DailyStat is one calendar-day signup bucket (UTC date string).
type DailyStat struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// WaitlistStatsResponse represents aggregate signup statistics.
type WaitlistStatsResponse struct {
	TotalEntries  int64       `json:"totalEntries"`
	RecentEntries int64       `json:"recentEntries"`
	DailyStats    []DailyStat `json:"dailyStats"`
}
