package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/middleware"
	"github.com/waitlist-simple/services"
	"github.com/waitlist-simple/utils"
)

var waitlistService = services.NewWaitlistService()

// AddToWaitlist handles POST /waitlist/add, the endpoint tenant front-ends
// call. The owning project is the one resolved from the bearer token.
func AddToWaitlist(c *gin.Context) {
	project, ok := middleware.ProjectFromContext(c)
	if !ok {
		utils.SendError(c, apperrors.NewUnauthorized("Invalid or inactive API token"))
		return
	}

	var req dto.AddWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, utils.BindingError(err))
		return
	}

	entry, err := waitlistService.AddEntry(c.Request.Context(), project, req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusCreated, entry, "Successfully added to waitlist")
}

// GetWaitlistEntries handles GET /waitlist/project/:projectId.
func GetWaitlistEntries(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	filter := dto.WaitlistFilter{
		ProjectID: c.Param("projectId"),
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	entries, meta, err := waitlistService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponseWithMeta(c, http.StatusOK, entries, meta, "Waitlist entries retrieved successfully")
}

// GetWaitlistStats handles GET /waitlist/project/:projectId/stats.
func GetWaitlistStats(c *gin.Context) {
	stats, err := waitlistService.GetStats(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, stats, "Waitlist stats retrieved successfully")
}

// DeleteWaitlistEntry handles DELETE /waitlist/project/:projectId/entry/:entryId.
func DeleteWaitlistEntry(c *gin.Context) {
	err := waitlistService.DeleteEntry(c.Request.Context(), c.Param("projectId"), c.Param("entryId"))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, gin.H{"message": "Waitlist entry deleted successfully"}, "Waitlist entry deleted successfully")
}
