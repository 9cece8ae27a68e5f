package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/services"
	"github.com/waitlist-simple/utils"
)

var projectService = services.NewProjectService()

// CreateProject handles POST /projects. The response is the only place the
// plaintext API token appears outside an explicit rotation.
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, utils.BindingError(err))
		return
	}

	project, err := projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusCreated, dto.NewCreatedProjectResponse(project), "Project created successfully")
}

// ListProjects handles GET /projects.
func ListProjects(c *gin.Context) {
	projects, err := projectService.ListProjects(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles GET /projects/:projectId.
func GetProject(c *gin.Context) {
	project, err := projectService.GetProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, project, "Project retrieved successfully")
}

// UpdateProject handles PUT /projects/:projectId with a partial merge.
func UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, utils.BindingError(err))
		return
	}

	project, err := projectService.UpdateProject(c.Request.Context(), c.Param("projectId"), req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, dto.NewProjectResponse(project, nil), "Project updated successfully")
}

// DeleteProject handles DELETE /projects/:projectId. Projects that still
// own waitlist entries are refused with the dependent count.
func DeleteProject(c *gin.Context) {
	if err := projectService.DeleteProject(c.Request.Context(), c.Param("projectId")); err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, gin.H{"message": "Project deleted successfully"}, "Project deleted successfully")
}

// RegenerateToken handles POST /projects/:projectId/regenerate-token.
func RegenerateToken(c *gin.Context) {
	token, err := projectService.RegenerateToken(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, dto.RegenerateTokenResponse{APIToken: token}, "API token regenerated successfully")
}
