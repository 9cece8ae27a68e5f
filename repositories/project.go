package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/database"
	"github.com/waitlist-simple/models"
)

const projectNotFound = "Project not found"

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) conn(ctx context.Context) (*gorm.DB, context.CancelFunc, error) {
	ctx, cancel := withQueryDeadline(ctx)
	if r.db != nil {
		return r.db.WithContext(ctx), cancel, nil
	}
	conn, err := database.Conn(ctx)
	if err != nil {
		cancel()
		return nil, nil, apperrors.NewUnavailable(err)
	}
	return conn, cancel, nil
}

// Create inserts a new project. A slug or token collision surfaces as a
// conflict from the unique indexes.
func (r *ProjectRepository) Create(ctx context.Context, project models.Project) (models.Project, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.Project{}, err
	}
	defer cancel()
	if err := db.Create(&project).Error; err != nil {
		return models.Project{}, translate(err, projectNotFound)
	}
	return project, nil
}

// FindAll retrieves all projects, newest first.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	var projects []models.Project
	if err := db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, translate(err, projectNotFound)
	}
	return projects, nil
}

// FindByID retrieves a project by its ID.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (models.Project, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.Project{}, err
	}
	defer cancel()
	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		return models.Project{}, translate(err, projectNotFound)
	}
	return project, nil
}

// FindByToken retrieves the active project owning the given API token.
// Inactive projects and unknown tokens are indistinguishable to callers.
func (r *ProjectRepository) FindByToken(ctx context.Context, token string) (models.Project, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.Project{}, err
	}
	defer cancel()
	var project models.Project
	if err := db.Where("api_token = ? AND is_active = ?", token, true).First(&project).Error; err != nil {
		return models.Project{}, translate(err, projectNotFound)
	}
	return project, nil
}

// Update persists the full project record. Slug collisions with another
// project surface as a conflict.
func (r *ProjectRepository) Update(ctx context.Context, project models.Project) (models.Project, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.Project{}, err
	}
	defer cancel()
	if err := db.Save(&project).Error; err != nil {
		return models.Project{}, translate(err, projectNotFound)
	}
	return project, nil
}

// UpdateToken overwrites the project's API token. The old token stops
// resolving the moment this commits.
func (r *ProjectRepository) UpdateToken(ctx context.Context, id, token string) error {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	result := db.Model(&models.Project{}).Where("id = ?", id).Update("api_token", token)
	if result.Error != nil {
		return translate(result.Error, projectNotFound)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound(projectNotFound)
	}
	return nil
}

// Delete removes a project record.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	result := db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, projectNotFound)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound(projectNotFound)
	}
	return nil
}
