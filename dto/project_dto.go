package dto

import (
	"time"

	"github.com/waitlist-simple/models"
)

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Slug        string `json:"slug" binding:"required,min=2,max=50,slug"`
	Description string `json:"description" binding:"required,min=10,max=500"`
}

// UpdateProjectRequest represents a partial update. Nil fields are left
// untouched.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=2,max=50,slug"`
	Description *string `json:"description" binding:"omitempty,min=10,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// ProjectResponse represents the standard response format for a project.
// APIToken is populated only by the create path; WaitlistCount only by reads.
type ProjectResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	APIToken      string    `json:"apiToken,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	WaitlistCount *int64    `json:"waitlistCount,omitempty"`
}

// NewProjectResponse maps a model to the read response shape.
func NewProjectResponse(project models.Project, waitlistCount *int64) ProjectResponse {
	return ProjectResponse{
		ID:            project.ID,
		Name:          project.Name,
		Slug:          project.Slug,
		Description:   project.Description,
		IsActive:      project.IsActive,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
		WaitlistCount: waitlistCount,
	}
}

// NewCreatedProjectResponse maps a freshly created project, including the
// one-time plaintext token.
func NewCreatedProjectResponse(project models.Project) ProjectResponse {
	resp := NewProjectResponse(project, nil)
	resp.APIToken = project.APIToken
	return resp
}

// RegenerateTokenResponse carries only the rotated token.
type RegenerateTokenResponse struct {
	APIToken string `json:"apiToken"`
}
