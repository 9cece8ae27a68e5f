package services

import (
	"context"
	"fmt"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/models"
	"github.com/waitlist-simple/repositories"
	"github.com/waitlist-simple/utils"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	waitlistRepo *repositories.WaitlistRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(),
		waitlistRepo: repositories.NewWaitlistRepository(),
	}
}

// CreateProject persists a new project with a freshly generated API token.
// The create response is the only read that carries the token in plaintext.
func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (models.Project, error) {
	token, err := utils.GenerateAPIToken()
	if err != nil {
		return models.Project{}, apperrors.NewInternal(err)
	}

	project := models.Project{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		APIToken:    token,
		IsActive:    true,
	}

	return s.projectRepo.Create(ctx, project)
}

// ListProjects retrieves all projects newest-first, each annotated with its
// current waitlist entry count. Counts are recomputed per read; there is no
// denormalized copy to drift.
func (s *ProjectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		count, err := s.waitlistRepo.CountByProjectID(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.NewProjectResponse(project, &count))
	}

	return responses, nil
}

// GetProject retrieves a single project with its derived waitlist count.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	count, err := s.waitlistRepo.CountByProjectID(ctx, project.ID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	return dto.NewProjectResponse(project, &count), nil
}

// UpdateProject applies a partial merge. A slug that collides with a
// different project's surfaces as a conflict from the unique index.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Slug != nil {
		project.Slug = *req.Slug
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	return s.projectRepo.Update(ctx, project)
}

// DeleteProject removes a project unless it still owns waitlist entries.
// The check-then-delete race is benign: an entry inserted in between makes
// a later delete attempt fail the same guard again.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return err
	}

	count, err := s.waitlistRepo.CountByProjectID(ctx, projectID)
	if err != nil {
		return err
	}
	if count > 0 {
		message := fmt.Sprintf("Cannot delete project. It has %d waitlist entries. Please delete all entries first.", count)
		return apperrors.NewHasDependents(message, count)
	}

	return s.projectRepo.Delete(ctx, projectID)
}

// RegenerateToken rotates the project's API token. The previous token stops
// authenticating immediately; only the new one is returned.
func (s *ProjectService) RegenerateToken(ctx context.Context, projectID string) (string, error) {
	token, err := utils.GenerateAPIToken()
	if err != nil {
		return "", apperrors.NewInternal(err)
	}

	if err := s.projectRepo.UpdateToken(ctx, projectID, token); err != nil {
		return "", err
	}

	return token, nil
}
